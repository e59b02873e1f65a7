package entity

import "time"

// Sku representa una unidad de inventario (stock keeping unit) del catálogo.
type Sku struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
