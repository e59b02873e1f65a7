package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockingShipment representa un envío de reabastecimiento entrante de un comerciante.
// Es la raíz del agregado: posee sus RestockingShipmentItem, que se crean junto
// con el envío en la misma transacción y no tienen ciclo de vida propio.
type RestockingShipment struct {
	ID                   int64
	MerchantID           string
	ShipmentProviderID   int64
	ShippingCost         decimal.Decimal
	EstimatedArrivalDate *time.Time // opcional; nunca anterior a "hoy" al momento de crear
	TrackingCode         *string    // opcional, texto libre del transportista
	Status               *string    // reservado para el ciclo de vida; hoy siempre nil
	Items                []RestockingShipmentItem
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SkuCount devuelve la cantidad de SKUs distintos del envío.
func (s *RestockingShipment) SkuCount() int {
	seen := make(map[int64]struct{}, len(s.Items))
	for _, it := range s.Items {
		seen[it.SkuID] = struct{}{}
	}
	return len(seen)
}

// TotalCount devuelve la suma de cantidades de todas las líneas.
func (s *RestockingShipment) TotalCount() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// RestockingShipmentItem es una línea del envío: un SKU y su cantidad.
type RestockingShipmentItem struct {
	ID                   int64
	RestockingShipmentID int64
	SkuID                int64
	Quantity             int
	CreatedAt            time.Time
}
