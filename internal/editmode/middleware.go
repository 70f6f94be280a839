package editmode

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	dErrors "strata/pkg/domain-errors"
	"strata/pkg/platform/httputil"
	"strata/pkg/requestcontext"
)

const (
	// CookieName holds the opaque session id in browsers.
	CookieName = "edit_session"
	// HeaderName carries the session id for non-browser clients.
	HeaderName = "X-Edit-Session"
)

// SessionID reads the session id from the request, preferring the header.
// Ids that are not UUIDs are ignored.
func SessionID(r *http.Request) string {
	if v := r.Header.Get(HeaderName); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	return ""
}

// Session binds a session id and its edit mode flag to the request context,
// minting a session when none is presented. A store failure reads as edit
// mode off.
func Session(m *Manager, secureCookie bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := SessionID(r)
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(HeaderName, id)

			st, err := m.State(ctx, id)
			if err != nil {
				logger.WarnContext(ctx, "edit session unavailable",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
			}
			ctx = requestcontext.WithEditSession(ctx, id)
			ctx = requestcontext.WithEditMode(ctx, st.EditMode)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireEditMode answers 403 unless the session is in edit mode.
func RequireEditMode(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !requestcontext.EditMode(ctx) {
				logger.WarnContext(ctx, "mutation attempted outside edit mode",
					"request_id", requestcontext.RequestID(ctx),
					"method", r.Method,
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "edit mode required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
