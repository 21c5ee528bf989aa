package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"deltaboard/core"
	"deltaboard/middleware"
)

type DashboardHTTPHandler struct {
	handler *DashboardAPIHandler
}

func NewDashboardHTTPHandler(handler *DashboardAPIHandler) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{
		handler: handler,
	}
}

type DiscordAuthRequest struct {
	Code string `json:"code"`
}

// EconomySettingsRequest uses pointer fields so missing keys are
// distinguishable from zero values
type EconomySettingsRequest struct {
	WorkCooldown  *int `json:"work_cooldown"`
	WorkMinAmount *int `json:"work_min_amount"`
	WorkMaxAmount *int `json:"work_max_amount"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *DashboardHTTPHandler) HandleDiscordAuth(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Discord OAuth request received from %s", r.RemoteAddr)

	var req DiscordAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Code == "" {
		log.Printf("❌ Missing code in request")
		h.writeErrorResponse(w, http.StatusBadRequest, "code is required")
		return
	}

	session, err := h.handler.AuthenticateWithCode(r.Context(), req.Code)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "failed to authenticate with Discord")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, session)
}

func (h *DashboardHTTPHandler) HandleListUserGuilds(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 List user guilds request received from %s", r.RemoteAddr)

	guilds, err := h.handler.ListUserGuilds(r.Context())
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "failed to fetch user guilds")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, guilds)
}

func (h *DashboardHTTPHandler) HandleGetGuild(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Get guild request received from %s", r.RemoteAddr)

	vars := mux.Vars(r)
	guildID := vars["guildId"]

	guild, err := h.handler.GetGuildInfo(r.Context(), guildID)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "failed to fetch guild info")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, guild)
}

func (h *DashboardHTTPHandler) HandleGetEconomySettings(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Get economy settings request received from %s", r.RemoteAddr)

	vars := mux.Vars(r)
	guildID := vars["guildId"]

	settings, err := h.handler.GetEconomySettings(r.Context(), guildID)
	if err != nil {
		if errors.Is(err, core.ErrForbidden) {
			h.writeErrorResponse(w, http.StatusForbidden, "you must be an administrator of this guild")
			return
		}
		h.writeErrorResponse(w, http.StatusInternalServerError, "failed to fetch economy settings")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, settings)
}

func (h *DashboardHTTPHandler) HandleUpdateEconomySettings(w http.ResponseWriter, r *http.Request) {
	log.Printf("💾 Update economy settings request received from %s", r.RemoteAddr)

	vars := mux.Vars(r)
	guildID := vars["guildId"]

	var req EconomySettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid input for economy settings")
		return
	}

	if !validEconomySettingsRequest(&req) {
		log.Printf("❌ Invalid economy settings payload for guild %s", guildID)
		h.writeErrorResponse(w, http.StatusBadRequest, "invalid input for economy settings")
		return
	}

	_, err := h.handler.UpdateEconomySettings(
		r.Context(),
		guildID,
		*req.WorkCooldown,
		*req.WorkMinAmount,
		*req.WorkMaxAmount,
	)
	if err != nil {
		if errors.Is(err, core.ErrForbidden) {
			h.writeErrorResponse(w, http.StatusForbidden, "you must be an administrator of this guild")
			return
		}
		h.writeErrorResponse(w, http.StatusInternalServerError, "failed to save economy settings")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, MessageResponse{Message: "Economy settings updated successfully!"})
}

// validEconomySettingsRequest requires all three fields present and
// non-negative. No relation between min and max is enforced.
func validEconomySettingsRequest(req *EconomySettingsRequest) bool {
	for _, field := range []*int{req.WorkCooldown, req.WorkMinAmount, req.WorkMaxAmount} {
		if field == nil || *field < 0 {
			return false
		}
	}
	return true
}

func (h *DashboardHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.DiscordAuthMiddleware) {
	log.Printf("🚀 Registering dashboard API endpoints")

	// OAuth code exchange (the only ungated endpoint)
	router.HandleFunc("/api/auth/discord", h.HandleDiscordAuth).Methods("POST")
	log.Printf("✅ POST /api/auth/discord endpoint registered")

	// Guild listing and info endpoints
	router.HandleFunc("/api/user/guilds", authMiddleware.WithAuth(h.HandleListUserGuilds)).Methods("GET")
	log.Printf("✅ GET /api/user/guilds endpoint registered")

	router.HandleFunc("/api/guilds/{guildId}", authMiddleware.WithAuth(h.HandleGetGuild)).Methods("GET")
	log.Printf("✅ GET /api/guilds/{guildId} endpoint registered")

	// Economy settings endpoints
	router.HandleFunc("/api/guilds/{guildId}/settings/economy", authMiddleware.WithAuth(h.HandleGetEconomySettings)).
		Methods("GET")
	log.Printf("✅ GET /api/guilds/{guildId}/settings/economy endpoint registered")

	router.HandleFunc("/api/guilds/{guildId}/settings/economy", authMiddleware.WithAuth(h.HandleUpdateEconomySettings)).
		Methods("POST")
	log.Printf("✅ POST /api/guilds/{guildId}/settings/economy endpoint registered")
}

func (h *DashboardHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *DashboardHTTPHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSONResponse(w, statusCode, map[string]string{"error": message})
}
