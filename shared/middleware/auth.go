package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forumapi/shared/api"
	"github.com/itchan-dev/forumapi/shared/domain"
	"github.com/itchan-dev/forumapi/shared/logger"
	"github.com/itchan-dev/forumapi/shared/utils"
)

// TokenDecoder verifies an access token and returns who it was issued to.
type TokenDecoder interface {
	DecodeAccessToken(token string) (domain.TokenOwner, error)
}

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	tokens TokenDecoder
}

func NewAuth(tokens TokenDecoder) *Auth {
	return &Auth{tokens: tokens}
}

// NeedAuth rejects requests without a valid bearer access token and puts the
// token owner into the request context otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			tokenString = strings.TrimSpace(tokenString)
			if !found || tokenString == "" {
				writeUnauthorized(w, "Missing authentication")
				return
			}

			owner, err := a.tokens.DecodeAccessToken(tokenString)
			if err != nil {
				logger.Log.Debug("rejected access token", "error", err)
				writeUnauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, &owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, http.StatusUnauthorized, api.UnauthorizedResponse{Error: "Unauthorized", Message: message})
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.TokenOwner {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.TokenOwner)
	if !ok {
		return nil
	}
	return user
}
