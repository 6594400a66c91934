package dto

// LoginRequest body para POST /api/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthCheckResponse respuesta de GET /api/auth-check.
type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
