package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"deltaboard/appctx"
	"deltaboard/clients"
	"deltaboard/models"
)

// DiscordAuthMiddleware validates bearer tokens against Discord's identity endpoint
type DiscordAuthMiddleware struct {
	discordClient clients.DiscordClient
}

// NewDiscordAuthMiddleware creates a new authentication middleware instance
func NewDiscordAuthMiddleware(discordClient clients.DiscordClient) *DiscordAuthMiddleware {
	return &DiscordAuthMiddleware{
		discordClient: discordClient,
	}
}

// WithAuth wraps an HTTP handler with Discord bearer token authentication.
// On success the resolved identity and the raw token are attached to the
// request context for the remainder of the request.
func (m *DiscordAuthMiddleware) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("🔐 Authentication middleware processing request from %s", r.RemoteAddr)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Printf("❌ Missing Authorization header")
			m.writeErrorResponse(w, "missing authorization header", http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Printf("❌ Invalid Authorization header format")
			m.writeErrorResponse(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			log.Printf("❌ Empty bearer token")
			m.writeErrorResponse(w, "empty bearer token", http.StatusUnauthorized)
			return
		}

		// Every authenticated request is verified against Discord; expired,
		// revoked and malformed tokens all fail here identically.
		discordUser, err := m.discordClient.GetCurrentUser(r.Context(), "Bearer "+token)
		if err != nil {
			log.Printf("❌ Discord token verification failed: %v", err)
			m.writeErrorResponse(w, "invalid or expired Discord token", http.StatusUnauthorized)
			return
		}

		user := &models.DiscordUser{
			ID:            discordUser.ID,
			Username:      discordUser.Username,
			Discriminator: discordUser.Discriminator,
			GlobalName:    discordUser.GlobalName,
			Avatar:        discordUser.Avatar,
		}

		log.Printf("✅ User authenticated successfully: %s", user.ID)
		ctx := appctx.SetUser(r.Context(), user)
		ctx = appctx.SetAccessToken(ctx, token)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

// writeErrorResponse writes a standardized error response
func (m *DiscordAuthMiddleware) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("❌ Failed to encode error response: %v", err)
	}
}
