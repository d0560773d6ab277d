package get_free_resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
	"github.com/m04kA/SMC-ResourceScheduler/pkg/logger"
)

func TestUseCase_Execute(t *testing.T) {
	pool := resources.NewPool()
	pool.Add("A")
	pool.Add("B")
	pool.Add("C")

	eng := engine.NewEngine(pool, nil)
	_, err := eng.Schedule(10, 20) // A
	require.NoError(t, err)
	_, err = eng.Schedule(15, 25) // B
	require.NoError(t, err)

	uc := NewUseCase(eng, pool, logger.Nop())

	tests := []struct {
		name  string
		start int64
		end   int64
		want  []int64
	}{
		{name: "all busy except C", start: 15, end: 20, want: []int64{3}},
		{name: "touching A end", start: 20, end: 25, want: []int64{1, 3}},
		{name: "before everything", start: 0, end: 10, want: []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{Start: tt.start, End: tt.end})
			require.NoError(t, err)

			got := make([]int64, 0, len(resp.Resources))
			for _, r := range resp.Resources {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	pool := resources.NewPool()
	uc := NewUseCase(engine.NewEngine(pool, nil), pool, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Start: 3, End: 1})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUseCase_Execute_EmptyPool(t *testing.T) {
	pool := resources.NewPool()
	uc := NewUseCase(engine.NewEngine(pool, nil), pool, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Start: 1, End: 3})
	require.NoError(t, err)
	assert.Empty(t, resp.Resources)
}
