package resources

import (
	"sync"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

// Pool хранит набор известных ресурсов.
// Порядок перечисления совпадает с порядком создания и используется
// движком бронирования как порядок поиска (first-fit).
type Pool struct {
	mu        sync.RWMutex
	resources []domain.Resource
	byID      map[domain.ResourceID]int
	nextID    domain.ResourceID
}

// NewPool создает пустой пул ресурсов
func NewPool() *Pool {
	return &Pool{
		resources: make([]domain.Resource, 0),
		byID:      make(map[domain.ResourceID]int),
		nextID:    1,
	}
}

// Add регистрирует новый ресурс и возвращает его с выделенным ID
func (p *Pool) Add(name string) domain.Resource {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := domain.Resource{ID: p.nextID, Name: name}
	p.nextID++

	p.byID[res.ID] = len(p.resources)
	p.resources = append(p.resources, res)

	return res
}

// Exists проверяет, что ресурс был создан через Add
func (p *Pool) Exists(id domain.ResourceID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.byID[id]
	return ok
}

// Get возвращает ресурс по ID
func (p *Pool) Get(id domain.ResourceID) (domain.Resource, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	idx, ok := p.byID[id]
	if !ok {
		return domain.Resource{}, ErrResourceNotFound
	}
	return p.resources[idx], nil
}

// IDs возвращает идентификаторы в порядке создания
func (p *Pool) IDs() []domain.ResourceID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]domain.ResourceID, len(p.resources))
	for i, res := range p.resources {
		ids[i] = res.ID
	}
	return ids
}

// List возвращает копию всех ресурсов в порядке создания
func (p *Pool) List() []domain.Resource {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.Resource, len(p.resources))
	copy(out, p.resources)
	return out
}

// Len возвращает количество ресурсов
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.resources)
}
