package engine

import (
	"sync"

	"github.com/google/btree"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

const btreeDegree = 16

// intervalSet упорядоченное по start множество непересекающихся бронирований одного ресурса.
// Все методы вызываются под mu.
type intervalSet struct {
	mu   sync.Mutex
	tree *btree.BTreeG[domain.Booking]
}

func newIntervalSet() *intervalSet {
	return &intervalSet{
		tree: btree.NewG(btreeDegree, func(a, b domain.Booking) bool {
			return a.Start < b.Start
		}),
	}
}

// fits проверяет, что [start, end) не пересекается ни с одним бронированием.
// Достаточно проверить двух соседей точки вставки: предыдущий (start' <= start)
// и следующий (start' >= start). Касание границ конфликтом не считается.
func (s *intervalSet) fits(start, end int64) bool {
	if s.tree.Len() == 0 {
		return true
	}

	pivot := domain.Booking{Start: start}
	ok := true

	s.tree.DescendLessOrEqual(pivot, func(prev domain.Booking) bool {
		if prev.End > start {
			ok = false
		}
		return false
	})
	if !ok {
		return false
	}

	s.tree.AscendGreaterOrEqual(pivot, func(next domain.Booking) bool {
		if next.Start < end {
			ok = false
		}
		return false
	})

	return ok
}

func (s *intervalSet) insert(b domain.Booking) {
	s.tree.ReplaceOrInsert(b)
}

// remove удаляет бронирование по ключу start, только если ID совпадает
func (s *intervalSet) remove(b domain.Booking) bool {
	stored, ok := s.tree.Get(b)
	if !ok || stored.ID != b.ID {
		return false
	}
	s.tree.Delete(b)
	return true
}

func (s *intervalSet) snapshot() []domain.Booking {
	out := make([]domain.Booking, 0, s.tree.Len())
	s.tree.Ascend(func(b domain.Booking) bool {
		out = append(out, b)
		return true
	})
	return out
}
