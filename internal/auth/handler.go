package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
)

const maxJSONBodyBytes = 1 << 20

type Handler struct {
	service   *Service
	processor *TokenProcessor
}

func NewHandler(service *Service, processor *TokenProcessor) *Handler {
	return &Handler{service: service, processor: processor}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	body, ok := parseCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.service.Register(body.Username, body.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, ok := parseCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.service.Login(body.Username, body.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := h.processor.GenerateToken(user.ID)
	if err != nil {
		sentry.CaptureException(err)
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "Bearer " + token,
		Path:     "/",
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity := NewTokenIdentity(h.processor, TokenFromContext(r.Context()))

	user, err := h.service.AuthenticatedUser(identity)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	identity := NewTokenIdentity(h.processor, TokenFromContext(r.Context()))

	if err := h.service.DeleteAuthenticatedUser(identity); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	var body credentialsRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return credentialsRequest{}, false
	}

	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return credentialsRequest{}, false
	}
	if body.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return credentialsRequest{}, false
	}

	return body, true
}

func writeDomainError(w http.ResponseWriter, err error) {
	var unauthenticated UnauthenticatedError
	switch {
	case errors.As(err, &unauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, unauthenticated.Message)
	case errors.Is(err, ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		sentry.CaptureException(err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
