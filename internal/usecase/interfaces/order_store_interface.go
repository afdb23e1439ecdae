package interfaces

import "resident_service/internal/domain/entities"

// IOrderStore is the session-lifetime collection of bookings.
//
// Every call is atomic with respect to the whole collection. List is
// newest-first and returns copies.
type IOrderStore interface {
	Upsert(p entities.OrderPayload) entities.Order
	Delete(id string)
	List() []entities.Order
	GetByID(id string) (entities.Order, bool)
}
