package engine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

// Engine распределяет интервалы по ресурсам без пересечений (first-fit).
//
// Структуры данных:
//   - sets: resourceID -> упорядоченное по start множество бронирований
//   - index: bookingID -> бронирование (ресурс + ключ start) для отмены за O(log n)
//
// Блокировки: у каждого ресурса свой мьютекс, индекс защищён indexMu.
// Порядок захвата всегда set.mu -> indexMu.
type Engine struct {
	pool     ResourcePool
	observer Observer

	mu   sync.RWMutex
	sets map[domain.ResourceID]*intervalSet

	indexMu sync.Mutex
	index   map[domain.BookingID]domain.Booking

	lastID atomic.Int64
}

// NewEngine создает движок бронирования поверх пула ресурсов.
// observer может быть nil.
func NewEngine(pool ResourcePool, observer Observer) *Engine {
	if observer == nil {
		observer = noopObserver{}
	}

	return &Engine{
		pool:     pool,
		observer: observer,
		sets:     make(map[domain.ResourceID]*intervalSet),
		index:    make(map[domain.BookingID]domain.Booking),
	}
}

// Schedule бронирует [start, end) на первом свободном ресурсе в порядке пула
func (e *Engine) Schedule(start, end int64) (domain.Booking, error) {
	if !domain.ValidRange(start, end) {
		e.observer.BookingRejected(domain.RejectReasonInvalidRange)
		return domain.Booking{}, fmt.Errorf("%w: start=%d must be before end=%d", ErrInvalidRange, start, end)
	}

	for _, resourceID := range e.pool.IDs() {
		if booking, ok := e.tryBook(resourceID, start, end); ok {
			e.observer.BookingScheduled(booking)
			return booking, nil
		}
	}

	e.observer.BookingRejected(domain.RejectReasonNoCapacity)
	return domain.Booking{}, fmt.Errorf("%w: [%d, %d)", ErrNoCapacity, start, end)
}

// tryBook проверяет и вставляет бронирование под блокировкой ресурса,
// чтобы два конкурентных вызова не заняли один и тот же интервал
func (e *Engine) tryBook(resourceID domain.ResourceID, start, end int64) (domain.Booking, bool) {
	set := e.setFor(resourceID)

	set.mu.Lock()
	defer set.mu.Unlock()

	if !set.fits(start, end) {
		return domain.Booking{}, false
	}

	booking := domain.Booking{
		ID:         domain.BookingID(e.lastID.Add(1)),
		ResourceID: resourceID,
		Start:      start,
		End:        end,
	}
	set.insert(booking)

	e.indexMu.Lock()
	e.index[booking.ID] = booking
	e.indexMu.Unlock()

	return booking, true
}

// CanBook проверяет, свободен ли ресурс на [start, end). O(log n).
func (e *Engine) CanBook(resourceID domain.ResourceID, start, end int64) (bool, error) {
	if !e.pool.Exists(resourceID) {
		return false, fmt.Errorf("%w: id=%d", ErrUnknownResource, resourceID)
	}
	if !domain.ValidRange(start, end) {
		return false, fmt.Errorf("%w: start=%d must be before end=%d", ErrInvalidRange, start, end)
	}

	return e.fits(resourceID, start, end), nil
}

// FreeResources возвращает все ресурсы, свободные на [start, end), в порядке пула
func (e *Engine) FreeResources(start, end int64) ([]domain.ResourceID, error) {
	if !domain.ValidRange(start, end) {
		return nil, fmt.Errorf("%w: start=%d must be before end=%d", ErrInvalidRange, start, end)
	}

	free := make([]domain.ResourceID, 0)
	for _, resourceID := range e.pool.IDs() {
		if e.fits(resourceID, start, end) {
			free = append(free, resourceID)
		}
	}

	return free, nil
}

// Cancel отменяет бронирование. Возвращает false, если ID неизвестен или уже отменён.
func (e *Engine) Cancel(id domain.BookingID) bool {
	e.indexMu.Lock()
	booking, ok := e.index[id]
	e.indexMu.Unlock()

	if !ok {
		return false
	}

	set := e.setFor(booking.ResourceID)

	set.mu.Lock()
	e.indexMu.Lock()

	// Повторная проверка: конкурентная отмена могла успеть раньше
	if _, still := e.index[id]; !still {
		e.indexMu.Unlock()
		set.mu.Unlock()
		return false
	}

	set.remove(booking)
	delete(e.index, id)

	e.indexMu.Unlock()
	set.mu.Unlock()

	e.observer.BookingCancelled(booking)
	return true
}

// Get возвращает активное бронирование по ID
func (e *Engine) Get(id domain.BookingID) (domain.Booking, bool) {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()

	booking, ok := e.index[id]
	return booking, ok
}

// Bookings возвращает активные бронирования ресурса, упорядоченные по start
func (e *Engine) Bookings(resourceID domain.ResourceID) ([]domain.Booking, error) {
	if !e.pool.Exists(resourceID) {
		return nil, fmt.Errorf("%w: id=%d", ErrUnknownResource, resourceID)
	}

	set := e.setFor(resourceID)

	set.mu.Lock()
	defer set.mu.Unlock()

	return set.snapshot(), nil
}

// ActiveCount возвращает количество активных бронирований
func (e *Engine) ActiveCount() int {
	e.indexMu.Lock()
	defer e.indexMu.Unlock()

	return len(e.index)
}

func (e *Engine) fits(resourceID domain.ResourceID, start, end int64) bool {
	set := e.setFor(resourceID)

	set.mu.Lock()
	defer set.mu.Unlock()

	return set.fits(start, end)
}

// setFor возвращает множество интервалов ресурса, создавая его при первом обращении
func (e *Engine) setFor(resourceID domain.ResourceID) *intervalSet {
	e.mu.RLock()
	set, ok := e.sets[resourceID]
	e.mu.RUnlock()
	if ok {
		return set
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if set, ok = e.sets[resourceID]; ok {
		return set
	}
	set = newIntervalSet()
	e.sets[resourceID] = set
	return set
}
