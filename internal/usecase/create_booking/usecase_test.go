package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
	"github.com/m04kA/SMC-ResourceScheduler/pkg/logger"
)

type fakePublisher struct {
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newTestUseCase(t *testing.T, names ...string) (*UseCase, *fakePublisher) {
	t.Helper()

	pool := resources.NewPool()
	for _, name := range names {
		pool.Add(name)
	}
	pub := &fakePublisher{}

	uc := NewUseCase(engine.NewEngine(pool, nil), pool, pub, logger.Nop())
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)}

	return uc, pub
}

func TestUseCase_Execute(t *testing.T) {
	uc, pub := newTestUseCase(t, "Синяя", "Зелёная")

	first, err := uc.Execute(context.Background(), &Request{Start: 10, End: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ResourceID)
	assert.Equal(t, "Синяя", first.ResourceName)
	assert.Equal(t, string(domain.StatusActive), first.Status)

	second, err := uc.Execute(context.Background(), &Request{Start: 11, End: 13})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ResourceID)
	assert.Equal(t, "Зелёная", second.ResourceName)

	require.Len(t, pub.events, 2)
	assert.Equal(t, domain.EventBookingScheduled, pub.events[0].Type)
	assert.Equal(t, first.ID, pub.events[0].BookingID)
	assert.Equal(t, second.ID, pub.events[1].BookingID)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc, pub := newTestUseCase(t, "A")

	_, err := uc.Execute(context.Background(), &Request{Start: 5, End: 5})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), &Request{Start: 0, End: 10})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{Start: 9, End: 11})
	assert.ErrorIs(t, err, ErrNoCapacity)

	assert.Len(t, pub.events, 1)
}

func TestUseCase_Execute_PublishFailureKeepsBooking(t *testing.T) {
	uc, pub := newTestUseCase(t, "A")
	pub.err = errors.New("broker down")

	resp, err := uc.Execute(context.Background(), &Request{Start: 0, End: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}
