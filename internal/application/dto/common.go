package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse cuerpo de las operaciones sin datos de retorno.
type SuccessResponse struct {
	Success bool `json:"success"`
}
