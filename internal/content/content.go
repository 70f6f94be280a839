package content

import (
	"log/slog"
	"net/http"

	"strata/internal/content/handler"
	"strata/internal/content/service"
	"strata/internal/content/store"
	"strata/internal/rowstore"
)

// Handler wires HTTP endpoints to the content services.
type Handler = handler.Handler

// Services bundles the portfolio content services over one gateway.
type Services struct {
	Events   *service.EventService
	Thoughts *service.ThoughtService
	Comments *service.CommentService
	Page     *service.PageService
}

// NewServices builds stores and services over gw. opts apply to every service.
func NewServices(gw rowstore.Gateway, opts ...service.Option) Services {
	events := service.NewEventService(store.NewEventStore(gw), opts...)
	thoughts := service.NewThoughtService(store.NewThoughtStore(gw), opts...)
	return Services{
		Events:   events,
		Thoughts: thoughts,
		Comments: service.NewCommentService(store.NewCommentStore(gw), opts...),
		Page:     service.NewPageService(events, thoughts),
	}
}

// NewHandler constructs the content API. guard gates every mutation except
// comment submission.
func NewHandler(s Services, guard func(http.Handler) http.Handler, logger *slog.Logger) *Handler {
	return handler.New(s.Events, s.Thoughts, s.Comments, s.Page, guard, logger)
}
