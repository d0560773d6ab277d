package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/catalog/models"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
)

// Service регистрация и просмотр ресурсов.
// Если repo != nil, новый ресурс сначала сохраняется в каталоге БД,
// чтобы пережить перезапуск сервиса.
type Service struct {
	pool     ResourcePool
	repo     ResourceRepository
	validate *validator.Validate
	logger   Logger
}

func NewService(pool ResourcePool, repo ResourceRepository, logger Logger) *Service {
	return &Service{
		pool:     pool,
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// AddResource регистрирует новый ресурс в пуле
func (s *Service) AddResource(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.repo != nil {
		dbID, err := s.repo.Create(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: AddResource - repository.Create: %v", ErrInternal, err)
		}
		s.logger.Info("AddResource: stored in catalog db_id=%d", dbID)
	}

	res := s.pool.Add(req.Name)
	s.logger.Info("AddResource: registered resource id=%d name=%q", res.ID, res.Name)

	return models.FromDomainResource(res), nil
}

// GetResource получает ресурс по ID
func (s *Service) GetResource(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	res, err := s.pool.Get(domain.ResourceID(id))
	if err != nil {
		if errors.Is(err, resources.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrResourceNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetResource - pool.Get: %v", ErrInternal, err)
	}

	return models.FromDomainResource(res), nil
}

// ListResources возвращает ресурсы в порядке создания
func (s *Service) ListResources(ctx context.Context) (*models.ResourceListResponse, error) {
	return models.FromDomainResourceList(s.pool.List()), nil
}
