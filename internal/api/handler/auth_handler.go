package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeops/backoffice-api/internal/api/metrics"
	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// AuthHandler serves the /api/login, /api/signup and /api/logout routes.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is the auth envelope: a success flag plus an optional message
// and token. It is shaped here rather than by the central error handler
// because the flag is part of the contract.
type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Login authenticates the administrative identity.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  authResponse
// @Failure      500   {object}  authResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Success: false, Message: "invalid payload"})
	}

	token, err := h.authService.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminNotConfigured):
			metrics.LoginsTotal.WithLabelValues("not_configured").Inc()
			return c.JSON(http.StatusInternalServerError, authResponse{Success: false, Message: "Admin credentials are not set in the environment variables"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, authResponse{Success: false, Message: "Unauthorized: Only admin can log in"})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusInternalServerError, authResponse{Success: false, Message: "internal server error"})
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true, Message: "Login successful", Token: token})
}

// Signup registers a self-service user account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      500   {object}  authResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Success: false, Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Success: false, Message: err.Error()})
	}

	if err := h.authService.Signup(c.Request().Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, authResponse{Success: false, Message: "User already exists"})
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, authResponse{Success: false, Message: "Server error"})
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true})
}

// Logout acknowledges the logout. No server-side state is cleared: tokens are
// short-lived and never stored.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": h.authService.Logout()})
}
