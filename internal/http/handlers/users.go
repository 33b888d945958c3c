package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/hongminglow/finance-be/internal/auth"
	"github.com/hongminglow/finance-be/internal/charts"
	"github.com/hongminglow/finance-be/internal/http/respond"
	"github.com/hongminglow/finance-be/internal/middleware"
	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/models/dto"
	"github.com/hongminglow/finance-be/internal/storage"
)

// DashboardBuilder produces a user's dashboard aggregate.
type DashboardBuilder interface {
	Build(ctx context.Context, userID string) (dto.Dashboard, error)
}

// UserHandler owns Telegram sign-in, the profile and the dashboard.
type UserHandler struct {
	store     storage.UserStore
	tokens    *auth.TokenManager
	dashboard DashboardBuilder
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, tokens *auth.TokenManager, dashboard DashboardBuilder) *UserHandler {
	return &UserHandler{store: store, tokens: tokens, dashboard: dashboard}
}

// Register attaches user routes to the mux. Only /users/auth is public.
func (h *UserHandler) Register(mux *http.ServeMux, gate *middleware.Gate) {
	mux.HandleFunc("POST /users/auth", h.handleAuth)
	mux.Handle("GET /users/me", gate.Require(h.handleMe))
	mux.Handle("PUT /users/me", gate.Require(h.handleUpdateMe))
	mux.Handle("GET /users/dashboard", gate.Require(h.handleDashboard))
	mux.Handle("GET /users/dashboard/chart", gate.Require(h.handleDashboardChart))
}

func (h *UserHandler) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	telegramID, err := req.TelegramIdentity()
	if err != nil {
		respond.Fail(w, err, "")
		return
	}

	user, err := h.signIn(r.Context(), telegramID, strings.TrimSpace(req.Name))
	if err != nil {
		log.Printf("telegram sign-in failed for %s: %v", telegramID, err)
		respond.Error(w, http.StatusInternalServerError, "authentication failed")
		return
	}
	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("generate token for %s: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "authentication failed")
		return
	}
	respond.JSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: user.Profile()})
}

// signIn returns the user for a Telegram id, creating it on first sight and
// renaming it when a different non-empty name is supplied.
func (h *UserHandler) signIn(ctx context.Context, telegramID, name string) (models.User, error) {
	user, err := h.store.FindUserByTelegramID(ctx, telegramID)
	if errors.Is(err, storage.ErrNotFound) {
		if name == "" {
			name = models.DefaultUserName
		}
		user, err = h.store.CreateUser(ctx, models.User{TelegramID: telegramID, Name: name})
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return user, err
		}
		// Lost a race with a concurrent first sign-in; use the row that won.
		user, err = h.store.FindUserByTelegramID(ctx, telegramID)
	}
	if err != nil {
		return models.User{}, err
	}
	if name != "" && name != user.Name {
		return h.store.UpdateUserName(ctx, user.ID, name)
	}
	return user, nil
}

func (h *UserHandler) handleMe(w http.ResponseWriter, r *http.Request, user models.User) {
	respond.JSON(w, http.StatusOK, user.Profile())
}

func (h *UserHandler) handleUpdateMe(w http.ResponseWriter, r *http.Request, user models.User) {
	var req dto.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || name == user.Name {
		respond.JSON(w, http.StatusOK, user.Profile())
		return
	}
	updated, err := h.store.UpdateUserName(r.Context(), user.ID, name)
	if err != nil {
		respond.Fail(w, err, "update user profile")
		return
	}
	respond.JSON(w, http.StatusOK, updated.Profile())
}

func (h *UserHandler) handleDashboard(w http.ResponseWriter, r *http.Request, user models.User) {
	d, err := h.dashboard.Build(r.Context(), user.ID)
	if err != nil {
		respond.Fail(w, err, "build dashboard")
		return
	}
	respond.JSON(w, http.StatusOK, d)
}

func (h *UserHandler) handleDashboardChart(w http.ResponseWriter, r *http.Request, user models.User) {
	d, err := h.dashboard.Build(r.Context(), user.ID)
	if err != nil {
		respond.Fail(w, err, "build dashboard")
		return
	}
	img, err := charts.NetWorthByType(d.NetWorthByType)
	if errors.Is(err, charts.ErrNothingToPlot) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		respond.Fail(w, err, "render dashboard chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		log.Printf("write dashboard chart: %v", err)
	}
}
