package shipments

import "time"

// Clock provee la fecha "hoy" para la regla de estimated_arrival_date.
// Se inyecta en el caso de uso para mantener la validación determinista en tests.
type Clock interface {
	Today() time.Time
}

// SystemClock reloj del sistema.
type SystemClock struct{}

// Today devuelve la hora actual del servidor.
func (SystemClock) Today() time.Time { return time.Now() }
