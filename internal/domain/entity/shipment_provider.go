package entity

import "time"

// ShipmentProvider es la empresa de logística responsable de entregar un envío
// de reabastecimiento.
type ShipmentProvider struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
