package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/adapter/http/middleware"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginResult, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	userUC AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC AuthService) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Login authenticates a user against a tenant and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.userUC.Login(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "login failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.UserFromDomain(result.User),
		Tenant:    result.Tenant.Slug,
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), claims.UserID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
