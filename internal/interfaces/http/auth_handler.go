package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/auth"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/pkg/session"
)

// AuthHandler maneja login, logout y auth-check con la contraseña compartida.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	secure bool
}

// NewAuthHandler construye el handler de auth. secure controla el atributo Secure de la cookie.
func NewAuthHandler(uc *auth.AuthUseCase, secure bool) *AuthHandler {
	return &AuthHandler{uc: uc, secure: secure}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "password"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := decodeJSON(c, &in, nil); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid_credentials"})
	}
	token, err := h.uc.Login(in.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid_credentials"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.uc.MaxAge() / time.Second),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// AuthCheck godoc
// @Summary      Comprobar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.AuthCheckResponse
// @Failure      401  {object}  dto.AuthCheckResponse
// @Router       /api/auth-check [get]
func (h *AuthHandler) AuthCheck(c *fiber.Ctx) error {
	if !h.uc.Authenticated(c.Cookies(session.CookieName)) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthCheckResponse{Authenticated: false})
	}
	return c.JSON(dto.AuthCheckResponse{Authenticated: true})
}
