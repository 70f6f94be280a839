// Package editmode implements the edit-mode gate: a shared-secret toggle
// that reveals the owner's editing UI. It is a convenience switch, not a
// security boundary; real protection would need server-verified identity.
package editmode

import (
	"sync"
	"time"
)

// FailureDisplay is how long a client should show a wrong-password hint.
const FailureDisplay = 2 * time.Second

// State is the gate as seen by one browser session.
type State struct {
	EditMode          bool `json:"edit_mode"`
	ShowPasswordModal bool `json:"show_password_modal"`
}

// Gate is the two-flag state machine. Both flags start false.
type Gate struct {
	mu       sync.Mutex
	state    State
	verifier Verifier
}

// NewGate returns a gate in initial state.
func NewGate(v Verifier) *Gate {
	return &Gate{verifier: v}
}

// Restore returns a gate resuming from a stored state.
func Restore(v Verifier, st State) *Gate {
	return &Gate{verifier: v, state: st}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) IsEditMode() bool {
	return g.State().EditMode
}

func (g *Gate) ShowPasswordModal() bool {
	return g.State().ShowPasswordModal
}

func (g *Gate) OpenModal() {
	g.mu.Lock()
	g.state.ShowPasswordModal = true
	g.mu.Unlock()
}

func (g *Gate) CloseModal() {
	g.mu.Lock()
	g.state.ShowPasswordModal = false
	g.mu.Unlock()
}

// VerifyPassword enters edit mode and closes the modal on a match. On a
// mismatch nothing changes, the modal included.
func (g *Gate) VerifyPassword(candidate string) bool {
	if !g.verifier.Verify(candidate) {
		return false
	}
	g.mu.Lock()
	g.state = State{EditMode: true, ShowPasswordModal: false}
	g.mu.Unlock()
	return true
}

// Exit leaves edit mode.
func (g *Gate) Exit() {
	g.mu.Lock()
	g.state.EditMode = false
	g.mu.Unlock()
}
