package editmode

import (
	"context"
	"log/slog"
)

// Manager applies Gate transitions to per-session state.
type Manager struct {
	store    SessionStore
	verifier Verifier
	logger   *slog.Logger
}

func NewManager(store SessionStore, verifier Verifier, logger *slog.Logger) *Manager {
	return &Manager{store: store, verifier: verifier, logger: logger}
}

// State loads a session's state.
func (m *Manager) State(ctx context.Context, sessionID string) (State, error) {
	return m.store.Load(ctx, sessionID)
}

// OpenModal shows the password prompt.
func (m *Manager) OpenModal(ctx context.Context, sessionID string) (State, error) {
	return m.apply(ctx, sessionID, func(g *Gate) { g.OpenModal() })
}

func (m *Manager) CloseModal(ctx context.Context, sessionID string) (State, error) {
	return m.apply(ctx, sessionID, func(g *Gate) { g.CloseModal() })
}

// Exit turns edit mode off for the session.
func (m *Manager) Exit(ctx context.Context, sessionID string) (State, error) {
	return m.apply(ctx, sessionID, func(g *Gate) { g.Exit() })
}

// VerifyPassword tries candidate against the secret. A mismatch leaves the
// stored state untouched and is not an error.
func (m *Manager) VerifyPassword(ctx context.Context, sessionID, candidate string) (bool, State, error) {
	var ok bool
	st, err := m.apply(ctx, sessionID, func(g *Gate) { ok = g.VerifyPassword(candidate) })
	if err != nil {
		return false, st, err
	}
	return ok, st, nil
}

func (m *Manager) apply(ctx context.Context, sessionID string, fn func(*Gate)) (State, error) {
	before, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	g := Restore(m.verifier, before)
	fn(g)
	after := g.State()
	if after == before {
		return after, nil
	}
	if err := m.store.Save(ctx, sessionID, after); err != nil {
		return before, err
	}
	return after, nil
}
