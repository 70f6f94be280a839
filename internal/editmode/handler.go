package editmode

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "strata/pkg/domain-errors"
	"strata/pkg/platform/httputil"
	"strata/pkg/requestcontext"
)

// Handler exposes the gate over HTTP. Routes expect the Session middleware.
type Handler struct {
	manager *Manager
	logger  *slog.Logger
}

func NewHandler(m *Manager, logger *slog.Logger) *Handler {
	return &Handler{manager: m, logger: logger}
}

// Register mounts the gate routes under /api/v1/edit-mode.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1/edit-mode", func(r chi.Router) {
		r.Get("/", h.handleState)
		r.Delete("/", h.handleExit)
		r.Post("/modal", h.handleOpenModal)
		r.Delete("/modal", h.handleCloseModal)
		r.Post("/verify", h.handleVerify)
	})
}

type verifyRequest struct {
	Password string `json:"password"`
}

// Validate accepts any password, blank included; a mismatch is answered by
// the verify handler like every other wrong password.
func (r *verifyRequest) Validate() error {
	return nil
}

// VerifyResponse is returned by the verify endpoint in both outcomes.
type VerifyResponse struct {
	Verified bool `json:"verified"`
	State
	// ClearAfterMS tells the client when to hide the failure hint.
	ClearAfterMS int64 `json:"clear_after_ms,omitempty"`
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := h.manager.State(ctx, requestcontext.EditSession(ctx))
	if err != nil {
		h.unavailable(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleOpenModal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeState(w, r)(h.manager.OpenModal(ctx, requestcontext.EditSession(ctx)))
}

func (h *Handler) handleCloseModal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeState(w, r)(h.manager.CloseModal(ctx, requestcontext.EditSession(ctx)))
}

func (h *Handler) handleExit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeState(w, r)(h.manager.Exit(ctx, requestcontext.EditSession(ctx)))
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[verifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	verified, st, err := h.manager.VerifyPassword(ctx, requestcontext.EditSession(ctx), req.Password)
	if err != nil {
		h.unavailable(w, r, err)
		return
	}
	if !verified {
		h.logger.InfoContext(ctx, "edit mode password rejected",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
		)
		httputil.WriteJSON(w, http.StatusUnauthorized, VerifyResponse{
			State:        st,
			ClearAfterMS: FailureDisplay.Milliseconds(),
		})
		return
	}

	h.logger.InfoContext(ctx, "edit mode unlocked", "request_id", requestID)
	httputil.WriteJSON(w, http.StatusOK, VerifyResponse{Verified: true, State: st})
}

func (h *Handler) writeState(w http.ResponseWriter, r *http.Request) func(State, error) {
	return func(st State, err error) {
		if err != nil {
			h.unavailable(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, st)
	}
}

func (h *Handler) unavailable(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, "edit session store failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "edit session unavailable"))
}
