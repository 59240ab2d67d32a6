package handler

import (
	"net/http"

	"practicecoach/internal/model"
	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest/middleware"
)

// ProfileHandler handles the caller's profile
type ProfileHandler struct {
	profileSvc *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get godoc
// @Summary The caller's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.UserProfile
// @Router /v1/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileSvc.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Update godoc
// @Summary Edit display name, institution or preferences
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UpdateProfileRequest true "fields to change"
// @Success 200 {object} model.UserProfile
// @Router /v1/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.profileSvc.Update(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
