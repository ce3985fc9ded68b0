package handler

import (
	"net/http"

	"backoffice-service/internal/session"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/rentms"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler signs the operator in and out against the upstream API and
// keeps the durable session in step.
type AuthHandler struct {
	client   *rentms.Client
	sessions *session.Store
	metrics  Metrics
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(client *rentms.Client, sessions *session.Store, metrics Metrics) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, metrics: metrics}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login authenticates against the upstream API and persists the session.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	h.metrics.loginAttempt()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Phone == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Phone and password are required"})
	}

	result, err := h.client.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		log.Warn("Login rejected by upstream", zap.Error(err))
		if rentms.IsUnauthorized(err) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid phone or password"})
		}
		return upstreamError(c, log, err, "Login failed")
	}

	if err := h.sessions.Save(result.Token, result.User); err != nil {
		log.Error("Failed to persist session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to persist session"})
	}

	h.metrics.loginSuccess()
	log.Info("Operator logged in",
		zap.String("user_id", result.User.ID),
		zap.String("role", result.User.Role))
	return c.JSON(http.StatusOK, echo.Map{"user": result.User})
}

// Logout clears the durable session.
func (h *AuthHandler) Logout(c echo.Context) error {
	log := logger.FromContext(c)
	h.sessions.Clear()
	log.Info("Operator logged out")
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// Profile returns the signed-in operator.
func (h *AuthHandler) Profile(c echo.Context) error {
	user := h.sessions.User()
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
