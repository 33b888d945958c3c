package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/hongminglow/finance-be/internal/http/respond"
	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/storage"
)

// ErrUnauthenticated is returned for every rejected credential. Callers only ever see one message.
var ErrUnauthenticated = errors.New("authentication required")

// TokenVerifier decodes a bearer token into a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder loads the user a token was issued to.
type UserFinder interface {
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// UserHandlerFunc is a handler that runs only for an authenticated caller.
type UserHandlerFunc func(w http.ResponseWriter, r *http.Request, user models.User)

// Gate resolves the caller of a request from its bearer token.
type Gate struct {
	tokens TokenVerifier
	users  UserFinder
}

// NewGate builds a gate over the token verifier and user store.
func NewGate(tokens TokenVerifier, users UserFinder) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Require wraps next so it only runs with a verified, existing user.
func (g *Gate) Require(next UserHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.Authenticate(r)
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				log.Printf("auth rejected %s %s: %v", r.Method, r.URL.Path, err)
				respond.Error(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}
			log.Printf("auth lookup failed %s %s: %v", r.Method, r.URL.Path, err)
			respond.Error(w, http.StatusInternalServerError, "internal server error")
			return
		}
		next(w, r, user)
	})
}

// Authenticate extracts and verifies the bearer token and loads its user.
// Credential problems wrap ErrUnauthenticated; other errors come from the store.
func (g *Gate) Authenticate(r *http.Request) (models.User, error) {
	token, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		return models.User{}, fmt.Errorf("%w: no bearer token", ErrUnauthenticated)
	}
	userID, err := g.tokens.Verify(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	user, err := g.users.FindUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, fmt.Errorf("%w: user %s no longer exists", ErrUnauthenticated, userID)
		}
		return models.User{}, err
	}
	return user, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
