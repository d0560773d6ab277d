package get_free_resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
)

// UseCase use case для получения ресурсов, свободных на интервале
type UseCase struct {
	engine BookingEngine
	pool   ResourcePool
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine BookingEngine, pool ResourcePool, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		pool:   pool,
		logger: logger,
	}
}

// Execute выполняет use case получения свободных ресурсов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ids, err := uc.engine.FreeResources(req.Start, req.End)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidRange) {
			uc.logger.Warn("GetFreeResources: invalid range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		uc.logger.Error("GetFreeResources: failed to query engine: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		Start:     req.Start,
		End:       req.End,
		Resources: make([]Resource, 0, len(ids)),
	}

	for _, id := range ids {
		res, err := uc.pool.Get(id)
		if err != nil {
			uc.logger.Error("GetFreeResources: resource id=%d lookup failed: %v", id, err)
			return nil, fmt.Errorf("%w: resource id=%d: %v", ErrInternal, id, err)
		}
		resp.Resources = append(resp.Resources, Resource{ID: int64(res.ID), Name: res.Name})
	}

	uc.logger.Info("GetFreeResources: [%d, %d) - %d free", req.Start, req.End, len(resp.Resources))

	return resp, nil
}
