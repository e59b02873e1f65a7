package entity

import "time"

// User representa un usuario del sistema. El comerciante asociado se resuelve
// vía MerchantAccount, nunca viene en el cuerpo de las peticiones.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
