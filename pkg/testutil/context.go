package testutil

import (
	"net/http"

	"strata/pkg/requestcontext"
)

// WithEditMode marks the request's session as unlocked or locked, as the
// edit-mode Session middleware would.
func WithEditMode(req *http.Request, sessionID string, on bool) *http.Request {
	ctx := requestcontext.WithEditSession(req.Context(), sessionID)
	ctx = requestcontext.WithEditMode(ctx, on)
	return req.WithContext(ctx)
}

// WithRequestID attaches a request id.
func WithRequestID(req *http.Request, id string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), id))
}

// WithUserAgent sets the header and the client metadata the metadata
// middleware would derive from it.
func WithUserAgent(req *http.Request, ua string) *http.Request {
	req.Header.Set("User-Agent", ua)
	ctx := requestcontext.WithClientMetadata(req.Context(), "203.0.113.7", ua)
	return req.WithContext(ctx)
}
