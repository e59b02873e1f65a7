package dto

import (
	"github.com/jhoicas/restock-api/internal/domain/entity"
)

// ShipmentResponse vista extendida del agregado: envío, líneas con resumen de
// SKU, resumen del proveedor y contadores derivados.
type ShipmentResponse struct {
	ID               int64                  `json:"id"`
	Status           *string                `json:"status"`
	ShippingCost     float64                `json:"shipping_cost"`
	SkuCount         int                    `json:"sku_count"`
	TotalCount       int                    `json:"total_count"`
	Items            []ShipmentItemResponse `json:"restocking_shipment_items"`
	ShipmentProvider ProviderSummary        `json:"shipment_provider"`
}

// ShipmentItemResponse línea del envío en la vista extendida.
type ShipmentItemResponse struct {
	ID       int64      `json:"id"`
	Quantity int        `json:"quantity"`
	Sku      SkuSummary `json:"sku"`
}

// SkuSummary resumen de un SKU referenciado por una línea.
type SkuSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProviderSummary resumen del proveedor de envíos.
type ProviderSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewShipmentResponse arma la vista extendida. skuNames mapea id de SKU a su
// nombre (las líneas conservan el orden de inserción del agregado).
func NewShipmentResponse(
	shipment *entity.RestockingShipment,
	provider *entity.ShipmentProvider,
	skuNames map[int64]string,
) *ShipmentResponse {
	items := make([]ShipmentItemResponse, 0, len(shipment.Items))
	for _, it := range shipment.Items {
		items = append(items, ShipmentItemResponse{
			ID:       it.ID,
			Quantity: it.Quantity,
			Sku: SkuSummary{
				ID:   it.SkuID,
				Name: skuNames[it.SkuID],
			},
		})
	}
	return &ShipmentResponse{
		ID:           shipment.ID,
		Status:       shipment.Status,
		ShippingCost: shipment.ShippingCost.InexactFloat64(),
		SkuCount:     shipment.SkuCount(),
		TotalCount:   shipment.TotalCount(),
		Items:        items,
		ShipmentProvider: ProviderSummary{
			ID:   provider.ID,
			Name: provider.Name,
		},
	}
}
