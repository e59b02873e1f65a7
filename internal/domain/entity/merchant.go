package entity

import "time"

// Merchant es el tenant en cuyo nombre se crean los envíos de reabastecimiento.
type Merchant struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MerchantAccount vincula un usuario autenticado con su comerciante.
// Un usuario tiene como máximo una cuenta; sin cuenta no puede operar envíos.
type MerchantAccount struct {
	ID         string
	UserID     string
	MerchantID string
	CreatedAt  time.Time
}
