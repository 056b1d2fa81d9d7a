package plan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/revlytic/bplan/pkg/adapters"
	"github.com/revlytic/bplan/pkg/models/api"
	"github.com/revlytic/bplan/pkg/runtime/terminal/export"
	"github.com/revlytic/bplan/pkg/services/plan"
	"github.com/revlytic/bplan/pkg/services/projection"
	"github.com/revlytic/bplan/pkg/services/report"
	"github.com/revlytic/bplan/pkg/store/sqlite"
	"github.com/rs/zerolog"
)

type Handler struct {
	planMgmt plan.ManagementService
}

func NewHandler(planMgmt plan.ManagementService) *Handler {
	return &Handler{planMgmt: planMgmt}
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request api.Plan
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	created, err := h.planMgmt.CreatePlan(ctx, adapters.MapPlanApiToDomain(request))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, adapters.MapPlanDomainToApi(created))
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plans, err := h.planMgmt.ListPlans(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response := make([]api.Plan, 0, len(plans))
	for _, p := range plans {
		response = append(response, adapters.MapPlanDomainToApi(p))
	}

	respondJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	p, err := h.planMgmt.GetPlan(ctx, planID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, adapters.MapPlanDomainToApi(p))
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	var request api.Plan
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}
	request.ID = planID

	updated, err := h.planMgmt.UpdatePlan(ctx, adapters.MapPlanApiToDomain(request))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, adapters.MapPlanDomainToApi(updated))
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	if err := h.planMgmt.DeletePlan(ctx, planID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpsertYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	var request api.YearAssumptions
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}
	request.Year = year

	if err := h.planMgmt.UpsertYear(ctx, planID, adapters.MapYearApiToDomain(request)); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	years, err := h.planMgmt.GetYears(ctx, planID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response := make([]api.YearAssumptions, 0, len(years))
	for _, y := range years {
		response = append(response, adapters.MapYearDomainToApi(y))
	}

	respondJSON(w, r, http.StatusOK, response)
}

func (h *Handler) DeleteYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	if err := h.planMgmt.DeleteYear(ctx, planID, year); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PreviewProjection computes a single year from the payload without touching
// storage. The editor calls this on every assumption change.
func (h *Handler) PreviewProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request api.ProjectionPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := h.planMgmt.PreviewYear(
		ctx,
		adapters.MapPlanApiToDomain(request.Plan),
		adapters.MapYearApiToDomain(request.Year),
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, adapters.MapYearResultDomainToApi(result))
}

func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	_, outcomes, err := h.planMgmt.ProjectPlan(ctx, planID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, adapters.MapYearOutcomesDomainToApi(outcomes))
}

// ExportPlan renders the full projection as a plain-text report document.
func (h *Handler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	planID := chi.URLParam(r, "plan")

	p, outcomes, err := h.planMgmt.ProjectPlan(ctx, planID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	document := report.Build(p, outcomes)
	if err := export.NewReporter(w).Handle(&document); err != nil {
		logger.Error().
			Err(err).
			Str("plan", planID).
			Msg("failed to render plan export")
	}
}

func (h *Handler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planID := chi.URLParam(r, "plan")

	link, err := h.planMgmt.CreateShareLink(ctx, planID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, adapters.MapShareLinkDomainToApi(link))
}

// GetSharedProjection resolves a share token and returns the plan together
// with its projection. The shared view is read only, so this is the only
// route a token grants.
func (h *Handler) GetSharedProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")

	planID, err := h.planMgmt.ResolveShareLink(ctx, token)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	p, outcomes, err := h.planMgmt.ProjectPlan(ctx, planID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, api.SharedProjection{
		Plan:  adapters.MapPlanDomainToApi(p),
		Years: adapters.MapYearOutcomesDomainToApi(outcomes),
	})
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return 0, false
	}
	return year, true
}

func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sqlite.ErrNotFound):
		respondError(w, r, http.StatusNotFound, err)
	case errors.Is(err, projection.ErrInvalidInput):
		respondError(w, r, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, r, http.StatusInternalServerError, err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	response := api.Error{Error: err.Error()}
	if status == http.StatusUnprocessableEntity {
		response.Kind = adapters.MapProjectionErrorKind(err)
	}
	respondJSON(w, r, status, response)
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode response")
	}
}
