package employees

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/staffdesk/staffdesk/internal/platform/httpx"
	"github.com/staffdesk/staffdesk/internal/shared"
)

// Handler wires HTTP endpoints for the employee resource.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		service:   service,
		validator: NewValidator(),
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}
	if err := h.service.Create(r.Context(), req); err != nil {
		h.logger.Error("create employee", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Message(w, http.StatusCreated, "Employee Created Successfully")
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list employees", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if records == nil {
		records = []Employee{}
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}
	if err := h.service.Update(r.Context(), id, req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Updated Successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeEmployee parses and validates the request body, normalizing gender
// first so the validator only sees stored codes.
func (h *Handler) decodeEmployee(w http.ResponseWriter, r *http.Request) (EmployeeRequest, bool) {
	var req EmployeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return EmployeeRequest{}, false
	}
	req.Gender = NormalizeGender(req.Gender)
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return EmployeeRequest{}, false
	}
	return req, true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return uuid.Nil, false
	}
	return id, true
}
