package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"user-auth-service/internal/service"
)

type AuthHandler struct {
	svc    *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Health reports liveness.
func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	Message(w, http.StatusOK, "api is running.")
}

// Register handles POST /register. Each outcome gets exactly one
// terminal response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	res := h.svc.Register(r.Context(), payload)
	switch res.Kind {
	case service.KindOK:
		Message(w, http.StatusCreated, res.Message)
	case service.KindValidation:
		JSON(w, http.StatusBadRequest, res.Fields)
	default:
		JSON(w, http.StatusInternalServerError, map[string]string{"error": res.Message})
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	res := h.svc.Login(r.Context(), payload)
	switch res.Kind {
	case service.KindOK:
		JSON(w, http.StatusOK, map[string]string{
			"message": res.Message,
			"token":   res.Token,
		})
	case service.KindValidation, service.KindCredential:
		Message(w, http.StatusBadRequest, res.Message)
	case service.KindForbidden:
		Message(w, http.StatusForbidden, res.Message)
	default:
		Message(w, http.StatusInternalServerError, res.Message)
	}
}

func (h *AuthHandler) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Warn("malformed request body",
				zap.String("path", r.URL.Path), zap.Error(err))
			Message(w, http.StatusBadRequest, "invalid request body")
			return nil, false
		}
	}
	return payload, true
}
