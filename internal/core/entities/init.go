// Package entities defines the catalog of managed entities: store files,
// form fields, import alias schemas, and post-import rules.
//
// Alias schemas are immutable values built once at package load and handed
// to the service through a core.Registry; nothing here is mutated at run time.
package entities

import "github.com/JonMunkholm/assettrack/internal/core"

// Menu groups.
const (
	GroupPeople         = "Pessoas"
	GroupInfrastructure = "Infraestrutura"
	GroupPeripherals    = "Periféricos"
)

// definitions lists every entity in menu order.
var definitions = []core.EntityDefinition{
	licenses,
	vpn,
	vacations,
	equipment,
	cameras,
	printers,
	peripheralStock,
	peripheralDeliveries,
}

// Register adds every entity definition to r.
func Register(r *core.Registry) {
	for _, def := range definitions {
		r.Register(def)
	}
}

// Catalog returns a new registry holding every entity.
func Catalog() *core.Registry {
	r := core.NewRegistry()
	Register(r)
	return r
}
