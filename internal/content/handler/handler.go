package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"strata/internal/content/models"
	dErrors "strata/pkg/domain-errors"
	"strata/pkg/platform/httputil"
	"strata/pkg/requestcontext"
)

type EventService interface {
	List(ctx context.Context) []models.Event
	Grouped(ctx context.Context) models.Grouping
	ByCategory(ctx context.Context) []models.CategoryGroup
	Create(ctx context.Context, fields models.EventFields) *models.Event
	Update(ctx context.Context, id string, upd models.EventUpdate) bool
	Delete(ctx context.Context, id string) bool
}

type ThoughtService interface {
	List(ctx context.Context) []models.Thought
	Create(ctx context.Context, fields models.ThoughtFields) *models.Thought
	Update(ctx context.Context, id string, upd models.ThoughtUpdate) bool
	Delete(ctx context.Context, id string) bool
}

type CommentService interface {
	ListPublic(ctx context.Context, thoughtID string) []models.Comment
	ListAll(ctx context.Context, thoughtID string) []models.Comment
	Submit(ctx context.Context, sub models.CommentSubmission) *models.Comment
	Approve(ctx context.Context, id string) bool
	Delete(ctx context.Context, id string) bool
}

type PageService interface {
	Snapshot(ctx context.Context) models.Page
}

// Handler serves the content API. Mutations other than comment submission
// sit behind the edit guard.
type Handler struct {
	events   EventService
	thoughts ThoughtService
	comments CommentService
	page     PageService
	guard    func(http.Handler) http.Handler
	logger   *slog.Logger
}

// New creates the content handler. guard rejects requests outside edit mode.
func New(
	events EventService,
	thoughts ThoughtService,
	comments CommentService,
	page PageService,
	guard func(http.Handler) http.Handler,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		events:   events,
		thoughts: thoughts,
		comments: comments,
		page:     page,
		guard:    guard,
		logger:   logger,
	}
}

// Register registers the content routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/page", h.handlePage)

		r.Get("/events", h.handleListEvents)
		r.Get("/events/draft", h.handleEventDraft)
		r.Get("/thoughts", h.handleListThoughts)
		r.Get("/thoughts/{id}/comments", h.handleListComments)
		r.Post("/thoughts/{id}/comments", h.handleSubmitComment)

		r.Group(func(r chi.Router) {
			r.Use(h.guard)
			r.Post("/events", h.handleCreateEvent)
			r.Patch("/events/{id}", h.handleUpdateEvent)
			r.Delete("/events/{id}", h.handleDeleteEvent)
			r.Post("/thoughts", h.handleCreateThought)
			r.Patch("/thoughts/{id}", h.handleUpdateThought)
			r.Delete("/thoughts/{id}", h.handleDeleteThought)
			r.Post("/comments/{id}/approve", h.handleApproveComment)
			r.Delete("/comments/{id}", h.handleDeleteComment)
		})
	})
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.page.Snapshot(r.Context()))
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch view := r.URL.Query().Get("view"); view {
	case "", "flat":
		httputil.WriteJSON(w, http.StatusOK, EventListResponse{Events: toEventResponses(h.events.List(ctx))})
	case "grouped":
		g := h.events.Grouped(ctx)
		httputil.WriteJSON(w, http.StatusOK, GroupedEventsResponse{Timeline: g.Timeline(), Orphans: g.Orphans()})
	case "categories":
		httputil.WriteJSON(w, http.StatusOK, CategoryViewResponse{Categories: h.events.ByCategory(ctx)})
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "view must be flat, grouped or categories"))
	}
}

func (h *Handler) handleEventDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draft := models.NewEventDraft(requestcontext.Now(ctx), r.URL.Query().Get("parent_id"))
	httputil.WriteJSON(w, http.StatusOK, DraftResponse{Draft: draft, Categories: models.Categories()})
}

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateEventRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	e := h.events.Create(ctx, req.ToFields())
	if e == nil {
		writeUnavailable(w, "event could not be saved")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toEventResponse(*e))
}

func (h *Handler) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpdateEventRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	h.writeOutcome(w, h.events.Update(ctx, chi.URLParam(r, "id"), req.ToUpdate()), "event could not be updated")
}

func (h *Handler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, h.events.Delete(r.Context(), chi.URLParam(r, "id")), "event could not be deleted")
}

func (h *Handler) handleListThoughts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, ThoughtListResponse{Thoughts: h.thoughts.List(r.Context())})
}

func (h *Handler) handleCreateThought(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateThoughtRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	t := h.thoughts.Create(ctx, req.ToFields())
	if t == nil {
		writeUnavailable(w, "thought could not be saved")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleUpdateThought(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpdateThoughtRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	h.writeOutcome(w, h.thoughts.Update(ctx, chi.URLParam(r, "id"), req.ToUpdate()), "thought could not be updated")
}

func (h *Handler) handleDeleteThought(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, h.thoughts.Delete(r.Context(), chi.URLParam(r, "id")), "thought could not be deleted")
}

// handleListComments shows moderators the pending queue too.
func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	thoughtID := chi.URLParam(r, "id")

	var comments []models.Comment
	if requestcontext.EditMode(ctx) {
		comments = h.comments.ListAll(ctx, thoughtID)
	} else {
		comments = h.comments.ListPublic(ctx, thoughtID)
	}
	httputil.WriteJSON(w, http.StatusOK, toCommentList(comments))
}

func (h *Handler) handleSubmitComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitCommentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	sub, err := models.NewSubmission(chi.URLParam(r, "id"), req.Content, req.Author)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid comment submission",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	c := h.comments.Submit(ctx, sub)
	if c == nil {
		writeUnavailable(w, "comment could not be saved")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCommentResponse(*c))
}

func (h *Handler) handleApproveComment(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, h.comments.Approve(r.Context(), chi.URLParam(r, "id")), "comment could not be approved")
}

func (h *Handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, h.comments.Delete(r.Context(), chi.URLParam(r, "id")), "comment could not be deleted")
}

func (h *Handler) writeOutcome(w http.ResponseWriter, ok bool, failure string) {
	if !ok {
		writeUnavailable(w, failure)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeUnavailable reports a degraded operation. The message stays
// server-side; clients only see the code.
func writeUnavailable(w http.ResponseWriter, msg string) {
	httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, msg))
}
