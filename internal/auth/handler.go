package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/staffdesk/staffdesk/internal/platform/httpx"
	"github.com/staffdesk/staffdesk/internal/rbac"
	"github.com/staffdesk/staffdesk/internal/shared"
)

// Handler wires HTTP endpoints for signup and login.
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
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/users", h.listUsers)
	r.Post("/users", h.signUp)
	r.Post("/login", h.logIn)
}

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=6"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin guest viewer contributor"`
}

type logInRequest struct {
	Username string `json:"username" validate:"required,min=6"`
	Password string `json:"password" validate:"required,min=6"`
}

type logInResponse struct {
	Token       string             `json:"token"`
	Message     string             `json:"message"`
	Permissions rbac.PermissionSet `json:"permissions"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return
	}
	if err := h.service.SignUp(r.Context(), req.Username, req.Password, req.Role); err != nil {
		h.logger.Error("sign up", slog.String("username", req.Username), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"result": "User Created Successfully"})
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.Errorf(shared.ErrValidation, "Invalid Input Format"))
		return
	}
	signed, perms, err := h.service.LogIn(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, logInResponse{
		Token:       signed,
		Message:     "Logged In Successfully",
		Permissions: perms,
	})
}

type userEntry struct {
	Username string `json:"username"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.ListUsernames(r.Context())
	if err != nil {
		h.logger.Error("list users", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	users := make([]userEntry, 0, len(names))
	for _, name := range names {
		users = append(users, userEntry{Username: name})
	}
	httpx.JSON(w, http.StatusOK, map[string][]userEntry{"users": users})
}
