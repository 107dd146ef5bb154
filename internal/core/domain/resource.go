package domain

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrUnknownResource  = errors.New("unknown resource")
)

// Resource names the back-office collections that share the generic CRUD
// shape. Orders and users are not resources: they have their own services.
type Resource string

const (
	ResourceSuppliers Resource = "suppliers"
	ResourceInventory Resource = "inventory"
	ResourceSales     Resource = "sales"
	ResourceEmployees Resource = "employees"
)

// Resources lists every mountable resource, in route registration order.
var Resources = []Resource{ResourceSuppliers, ResourceInventory, ResourceSales, ResourceEmployees}

// Valid reports whether r is one of the known resources.
func (r Resource) Valid() bool {
	for _, known := range Resources {
		if r == known {
			return true
		}
	}
	return false
}

// Document is a schemaless record stored in a resource collection. The "id"
// key holds the ObjectID hex once persisted.
type Document map[string]any
