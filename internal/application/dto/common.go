package dto

// SuccessResponse sobre de respuesta exitosa de la API de envíos.
type SuccessResponse struct {
	Success bool `json:"success"`
	Payload any  `json:"payload"`
}

// FailResponse sobre de respuesta fallida: lista de mensajes legibles.
// El contrato externo reporta siempre un único mensaje en la lista.
type FailResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// ErrorResponse cuerpo de error HTTP para los endpoints de auth.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
