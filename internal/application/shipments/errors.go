package shipments

// ValidationError es la falla visible al cliente de la creación de un envío:
// forma/tipo del payload, regla de negocio o referencia inexistente. Siempre
// se reporta una sola falla, la primera encontrada.
type ValidationError struct {
	Reason string
}

// Error renderiza el mensaje con el prefijo del contrato externo.
func (e *ValidationError) Error() string {
	return "Validation failed: " + e.Reason
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// Mensajes fijos para referencias inexistentes detectadas dentro de la transacción.
const (
	reasonProviderMustExist = "Shipment provider must exist"
	reasonSkuMustExist      = "Sku must exist"
)
