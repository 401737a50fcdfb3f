package middleware

import (
	"context"
	"net/http"
	"net/url"

	"clinica-ginecologica/pkg/jwt"
	"clinica-ginecologica/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	PatientIDKey    contextKey = "patient_id"
	PatientEmailKey contextKey = "patient_email"
	TokenIDKey      contextKey = "token_id"
)

// Identity is the session owner resolved from the session cookie.
type Identity struct {
	PatientID int64
	Email     string
	TokenID   string
}

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger
	cookieName  string
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, log *logrus.Logger, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
		cookieName:  cookieName,
	}
}

// LoadSession attaches the session identity to the context when the cookie
// carries a valid, unrevoked token. Requests without one pass through untouched.
func (m *AuthMiddleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		// Check if the session still exists in Redis (not logged out)
		exists, err := m.redisClient.Exists(r.Context(), jwt.SessionKey(claims.PatientID, claims.TokenID)).Result()
		if err != nil {
			m.log.Warnf("Failed to validate session: %+v", err)
			next.ServeHTTP(w, r)
			return
		}
		if exists == 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), PatientIDKey, claims.PatientID)
		ctx = context.WithValue(ctx, PatientEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession sends anonymous visitors to the login page, remembering where they were going.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPatientIDFromContext(r.Context()); !ok {
			target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAPISession answers anonymous API calls with a JSON 401.
func (m *AuthMiddleware) RequireAPISession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPatientIDFromContext(r.Context()); !ok {
			response.Unauthorized(w, "Sesión requerida")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectAuthenticated sends visitors that already have a session to target.
func (m *AuthMiddleware) RedirectAuthenticated(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetPatientIDFromContext(r.Context()); ok {
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetPatientIDFromContext extracts patient ID from context
func GetPatientIDFromContext(ctx context.Context) (int64, bool) {
	patientID, ok := ctx.Value(PatientIDKey).(int64)
	return patientID, ok
}

// GetPatientEmailFromContext extracts patient email from context
func GetPatientEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(PatientEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetIdentityFromContext returns the full session identity, or nil for anonymous requests
func GetIdentityFromContext(ctx context.Context) *Identity {
	patientID, ok := GetPatientIDFromContext(ctx)
	if !ok {
		return nil
	}
	email, _ := GetPatientEmailFromContext(ctx)
	tokenID, _ := GetTokenIDFromContext(ctx)
	return &Identity{PatientID: patientID, Email: email, TokenID: tokenID}
}
