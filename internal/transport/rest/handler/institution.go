package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"practicecoach/internal/model"
	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest/middleware"
)

// InstitutionHandler handles schools and businesses
type InstitutionHandler struct {
	institutionSvc *service.InstitutionService
}

// NewInstitutionHandler creates a new institution handler
func NewInstitutionHandler(institutionSvc *service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institutionSvc: institutionSvc}
}

// Create godoc
// @Summary Register an institution (coach or admin)
// @Tags institutions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateInstitutionRequest true "institution"
// @Success 201 {object} model.Institution
// @Failure 403 {object} map[string]string
// @Router /v1/institutions [post]
func (h *InstitutionHandler) Create(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	if role != model.RoleCoach && role != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "only coaches and admins can register institutions")
		return
	}

	var req model.CreateInstitutionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inst, err := h.institutionSvc.Create(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inst)
}

// Get godoc
// @Summary One institution
// @Tags institutions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "institution id"
// @Success 200 {object} model.Institution
// @Router /v1/institutions/{id} [get]
func (h *InstitutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	inst, err := h.institutionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inst)
}

// List godoc
// @Summary Institutions, optionally by kind
// @Tags institutions
// @Produce json
// @Security ApiKeyAuth
// @Param kind query string false "school or business"
// @Success 200 {array} model.Institution
// @Router /v1/institutions [get]
func (h *InstitutionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.institutionSvc.List(r.Context(), model.InstitutionKind(r.URL.Query().Get("kind")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
