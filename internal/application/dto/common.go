package dto

// ErrorResponse cuerpo de error HTTP. El contrato del tablero es
// {"error": "..."} con 404 para entidad inexistente y 500 para fallas
// inesperadas; 400/409 se usan para payloads inválidos y transiciones
// en conflicto.
type ErrorResponse struct {
	Error string `json:"error"`
}
