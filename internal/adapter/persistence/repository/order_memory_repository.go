package repository

import (
	"strings"
	"sync"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"github.com/google/uuid"
)

// OrderMemoryRepository keeps one resident's orders in memory, newest
// first. It is created at sign-in and dropped at sign-out.
type OrderMemoryRepository struct {
	mu       sync.Mutex
	orders   []entities.Order
	clock    clock.Clock
	newID    func() string
	observer interfaces.IWorkflowObserver
}

var _ interfaces.IOrderStore = (*OrderMemoryRepository)(nil)

// NewOrderMemoryRepository returns an empty store. observer may be nil.
func NewOrderMemoryRepository(clk clock.Clock, observer interfaces.IWorkflowObserver) *OrderMemoryRepository {
	return &OrderMemoryRepository{
		clock:    clk,
		newID:    uuid.NewString,
		observer: observer,
	}
}

// Upsert inserts a new order at the front when the payload has no ID or an
// ID the store does not know, and otherwise replaces the matching order in
// place keeping its CreatedAt.
func (r *OrderMemoryRepository) Upsert(p entities.OrderPayload) entities.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	id := strings.TrimSpace(p.ID)

	if id != "" {
		if idx := r.indexLocked(id); idx >= 0 {
			updated := p.ToOrder(id, r.orders[idx].CreatedAt, now)
			r.orders[idx] = updated
			r.notifyUpsert(false)
			return updated.Clone()
		}
	} else {
		id = r.newID()
	}

	created := p.ToOrder(id, now, now)
	r.orders = append([]entities.Order{created}, r.orders...)
	r.notifyUpsert(true)
	return created.Clone()
}

// Delete removes the order with id. Unknown ids are ignored.
func (r *OrderMemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(strings.TrimSpace(id))
	if idx < 0 {
		return
	}
	r.orders = append(r.orders[:idx:idx], r.orders[idx+1:]...)
	if r.observer != nil {
		r.observer.OrderDeleted()
	}
}

func (r *OrderMemoryRepository) List() []entities.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (r *OrderMemoryRepository) GetByID(id string) (entities.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(strings.TrimSpace(id))
	if idx < 0 {
		return entities.Order{}, false
	}
	return r.orders[idx].Clone(), true
}

func (r *OrderMemoryRepository) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, o := range r.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (r *OrderMemoryRepository) notifyUpsert(inserted bool) {
	if r.observer != nil {
		r.observer.OrderUpserted(inserted)
	}
}
