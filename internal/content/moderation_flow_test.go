package content_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata/internal/content"
	"strata/internal/content/handler"
	contentmetrics "strata/internal/content/metrics"
	"strata/internal/content/models"
	"strata/internal/content/service"
	"strata/internal/editmode"
	"strata/internal/platform/logger"
	"strata/internal/rowstore/memory"
	"strata/pkg/testutil"
)

const (
	visitorSession   = "6d0e3c2a-1b7f-4f3e-8a55-0c9a4d2b7e11"
	moderatorSession = "a3c1f0d2-5e6b-4c7a-9d8e-2f1b0a9c8d7e"
	firefoxUA        = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

// Walks one comment from visitor submission to public visibility over the
// in-memory gateway.
func TestCommentModerationFlow(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := contentmetrics.New(reg)
	services := content.NewServices(memory.New(), service.WithMetrics(m))

	r := chi.NewRouter()
	content.NewHandler(services, editmode.RequireEditMode(logger.Discard()), logger.Discard()).Register(r)

	var thoughtID, commentID string
	commentsPath := func() string { return "/api/v1/thoughts/" + thoughtID + "/comments" }
	list := func(t *testing.T, session string, editing bool) handler.CommentListResponse {
		req := testutil.WithEditMode(testutil.NewRequest(t, http.MethodGet, commentsPath()), session, editing)
		rr := testutil.DoRequest(r, req)
		require.Equal(t, http.StatusOK, rr.Code)
		return testutil.Decode[handler.CommentListResponse](t, rr)
	}

	testutil.Given(t, "a thought in the philosophy space", func(t *testing.T) {
		th := services.Thoughts.Create(context.Background(), models.ThoughtFields{Title: "Impermanence"})
		require.NotNil(t, th)
		require.True(t, th.HasPosition())
		thoughtID = th.ID
	})

	testutil.When(t, "a visitor submits a comment", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, commentsPath(), map[string]any{"content": " so true ", "is_public": true})
		req = testutil.WithUserAgent(testutil.WithRequestID(req, "req-flow-1"), firefoxUA)
		req = testutil.WithEditMode(req, visitorSession, false)
		rr := testutil.DoRequest(r, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		c := testutil.Decode[handler.CommentResponse](t, rr)
		assert.Equal(t, "so true", c.Content)
		assert.Equal(t, models.CommentStatusPending, c.Status)
		assert.Equal(t, models.AnonymousAuthor, c.DisplayAuthor)
		commentID = c.ID
	})

	testutil.Then(t, "visitors do not see it yet", func(t *testing.T) {
		resp := list(t, visitorSession, false)
		assert.Empty(t, resp.Comments)
	})

	testutil.Then(t, "the moderator sees it pending", func(t *testing.T) {
		resp := list(t, moderatorSession, true)
		require.Len(t, resp.Comments, 1)
		assert.Equal(t, models.CommentStatusPending, resp.Comments[0].Status)
		assert.Zero(t, resp.PublicCount)
	})

	testutil.When(t, "a visitor tries to approve it", func(t *testing.T) {
		req := testutil.WithEditMode(testutil.NewRequest(t, http.MethodPost, "/api/v1/comments/"+commentID+"/approve"), visitorSession, false)
		testutil.AssertStatusAndError(t, testutil.DoRequest(r, req), http.StatusForbidden, "forbidden")
	})

	testutil.When(t, "the moderator approves it", func(t *testing.T) {
		req := testutil.WithEditMode(testutil.NewRequest(t, http.MethodPost, "/api/v1/comments/"+commentID+"/approve"), moderatorSession, true)
		assert.Equal(t, http.StatusNoContent, testutil.DoRequest(r, req).Code)
	})

	testutil.Then(t, "visitors see it", func(t *testing.T) {
		resp := list(t, visitorSession, false)
		require.Len(t, resp.Comments, 1)
		assert.Equal(t, models.CommentStatusPublic, resp.Comments[0].Status)
		assert.Equal(t, 1, resp.PublicCount)
	})

	testutil.Then(t, "moderation traffic is counted", func(t *testing.T) {
		assert.Equal(t, 1.0, promtest.ToFloat64(m.CommentsSubmitted))
		assert.Equal(t, 1.0, promtest.ToFloat64(m.CommentsApproved))
		assert.Equal(t, 1.0, promtest.ToFloat64(m.SubmissionsByClient.WithLabelValues("Firefox", "false")))
	})
}
