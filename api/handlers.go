/*
handlers.go - HTTP API handlers for the holiday engine

PURPOSE:
  Exposes the holiday engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the feriados package.

ENDPOINTS:
  Holidays:
    GET /api/feriados/v1/{ano}            National holidays of a year
    GET /api/feriados/v1/{ano}/{estado}   National + state holidays
    Query: tipo (or type) = national|nacional|state|estadual|municipal

  Business days:
    GET /api/dias-uteis/v1/{ano}
    GET /api/dias-uteis/v1/{ano}/{estado}

  States:
    GET /api/feriados/v1/estados          Known state codes

REQUEST FLOW:
  1. Read path/query parameters (state lower-cased)
  2. Validate the year (feriados.ValidateYear)
  3. Call the engine
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  - 404: Year outside the supported range (feriados_range_error)
  - 500: Anything else, malformed year included (feriados_error). The
         response never carries parser details.

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/warp/holiday-engine/feriados"
	"github.com/warp/holiday-engine/generic"
)

const (
	rangeErrorType    = "feriados_range_error"
	rangeErrorMessage = "Ano fora do intervalo suportado entre 1900 e 2199."

	internalErrorName    = "InternalError"
	internalErrorType    = "feriados_error"
	internalErrorMessage = "Erro ao calcular feriados."
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *feriados.Engine
	Logger *slog.Logger
}

// NewHandler creates a new handler over the given engine.
func NewHandler(engine *feriados.Engine, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Engine: engine,
		Logger: logger,
	}
}

// =============================================================================
// HOLIDAY ENDPOINTS
// =============================================================================

// ListHolidays returns the holidays of a year, optionally for a state.
// GET /api/feriados/v1/{ano}[/{estado}]
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := feriados.ValidateYear(chi.URLParam(r, "ano"))
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	state := stateParam(r)
	filter := feriados.ParseTypeFilter(typeParam(r))

	holidays := h.Engine.Holidays(year, state, filter)
	h.Logger.Debug("holidays computed",
		"year", year,
		"state", state,
		"filter", filter.String(),
		"count", len(holidays),
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, http.StatusOK, toHolidayDTOs(holidays))
}

// ListStates returns the state codes with state-level holidays.
// GET /api/feriados/v1/estados
func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.States())
}

// =============================================================================
// BUSINESS DAY ENDPOINTS
// =============================================================================

// GetBusinessDays returns the business-day summary of a year.
// GET /api/dias-uteis/v1/{ano}[/{estado}]
func (h *Handler) GetBusinessDays(w http.ResponseWriter, r *http.Request) {
	year, err := feriados.ValidateYear(chi.URLParam(r, "ano"))
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	summary := h.Engine.BusinessDays(year, stateParam(r))
	writeJSON(w, http.StatusOK, toBusinessDaysDTO(summary))
}

// =============================================================================
// HELPERS
// =============================================================================

func stateParam(r *http.Request) string {
	return strings.ToLower(chi.URLParam(r, "estado"))
}

// typeParam reads the filter from ?tipo=, falling back to ?type=.
func typeParam(r *http.Request) string {
	q := r.URL.Query()
	if v := q.Get("tipo"); v != "" {
		return v
	}
	return q.Get("type")
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeEngineError maps engine failures to the public error contract.
func (h *Handler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var rangeErr *generic.RangeError
	if errors.As(err, &rangeErr) {
		writeJSON(w, http.StatusNotFound, RangeErrorResponse{
			Type:    rangeErrorType,
			Message: rangeErrorMessage,
		})
		return
	}

	h.Logger.Error("failed to compute holidays",
		"error", err,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeInternalError(w)
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, InternalErrorResponse{
		Name:    internalErrorName,
		Type:    internalErrorType,
		Message: internalErrorMessage,
	})
}
