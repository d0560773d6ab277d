package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

func TestIntervalSet_Fits(t *testing.T) {
	set := newIntervalSet()
	set.insert(domain.Booking{ID: 1, Start: 10, End: 12})
	set.insert(domain.Booking{ID: 2, Start: 16, End: 18})

	tests := []struct {
		name       string
		start, end int64
		want       bool
	}{
		{name: "before all", start: 0, end: 5, want: true},
		{name: "touching previous end", start: 12, end: 14, want: true},
		{name: "touching next start", start: 14, end: 16, want: true},
		{name: "exact gap", start: 12, end: 16, want: true},
		{name: "touching first start", start: 8, end: 10, want: true},
		{name: "after all", start: 18, end: 20, want: true},
		{name: "overlaps previous tail", start: 11, end: 13, want: false},
		{name: "overlaps next head", start: 15, end: 17, want: false},
		{name: "same start", start: 10, end: 11, want: false},
		{name: "contains booking", start: 9, end: 13, want: false},
		{name: "inside booking", start: 10, end: 12, want: false},
		{name: "spans both", start: 9, end: 19, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.fits(tt.start, tt.end))
		})
	}
}

func TestIntervalSet_EmptyAdmitsAnything(t *testing.T) {
	set := newIntervalSet()
	assert.True(t, set.fits(-100, 100))
}

func TestIntervalSet_RemoveChecksID(t *testing.T) {
	set := newIntervalSet()
	set.insert(domain.Booking{ID: 7, Start: 10, End: 12})

	assert.False(t, set.remove(domain.Booking{ID: 8, Start: 10, End: 12}))
	assert.Len(t, set.snapshot(), 1)

	assert.True(t, set.remove(domain.Booking{ID: 7, Start: 10, End: 12}))
	assert.Empty(t, set.snapshot())
	assert.False(t, set.remove(domain.Booking{ID: 7, Start: 10, End: 12}))
}

func TestIntervalSet_SnapshotOrderedByStart(t *testing.T) {
	set := newIntervalSet()
	set.insert(domain.Booking{ID: 1, Start: 20, End: 22})
	set.insert(domain.Booking{ID: 2, Start: 6, End: 8})
	set.insert(domain.Booking{ID: 3, Start: 12, End: 14})

	snap := set.snapshot()
	starts := make([]int64, len(snap))
	for i, b := range snap {
		starts[i] = b.Start
	}
	assert.Equal(t, []int64{6, 12, 20}, starts)
}
