package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/talespace/talespace-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const sessionKey contextKey = "session"

type Claims struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// RequireAuth rejects requests without a valid bearer token and puts
// the resulting session in the request context.
func RequireAuth(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, errMsg := sessionFromRequest(r, jwtSecret)
			if session == nil {
				if errMsg == "" {
					errMsg = "missing authorization header"
				}
				http.Error(w, `{"error":"`+errMsg+`"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
		})
	}
}

// OptionalAuth attaches a session when a valid bearer token is present
// and lets the request through either way. Public pages use this so an
// anonymous reader still sees comment threads.
func OptionalAuth(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session, _ := sessionFromRequest(r, jwtSecret); session != nil {
				r = r.WithContext(withSession(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionFromRequest(r *http.Request, jwtSecret string) (*models.Session, string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return nil, ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization format"
	}
	token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, "invalid or expired token"
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, "invalid token"
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, "invalid user id"
	}
	return &models.Session{UserID: userID, DisplayName: claims.DisplayName}, ""
}

func withSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the request's session, or nil when the
// request is unauthenticated.
func SessionFromContext(ctx context.Context) *models.Session {
	s, _ := ctx.Value(sessionKey).(*models.Session)
	return s
}
