package domain

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// Order is the core CRUD resource. JSON field names follow the public API
// contract (camelCase); the id is the hex form of the store-generated ObjectID.
type Order struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Merge applies the partial-update policy: a zero value ("" or 0) in patch
// means "not supplied" and the stored value is kept. Callers therefore cannot
// zero out a field through update; that is the documented contract, not a bug.
func (o Order) Merge(patch OrderPatch) Order {
	if patch.CustomerName != "" {
		o.CustomerName = patch.CustomerName
	}
	if patch.ProductName != "" {
		o.ProductName = patch.ProductName
	}
	if patch.Quantity != 0 {
		o.Quantity = patch.Quantity
	}
	if patch.Price != 0 {
		o.Price = patch.Price
	}
	return o
}

// OrderPatch carries the optional fields of a partial update.
type OrderPatch struct {
	CustomerName string
	ProductName  string
	Quantity     int
	Price        float64
}
