package storefront

import (
	"sync"

	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
)

// ModalPane identifies which auth pane is showing, if any.
type ModalPane string

const (
	PaneClosed   ModalPane = "closed"
	PaneLogin    ModalPane = "login"
	PaneRegister ModalPane = "register"
)

// ModalAction is a transition request on the auth modal.
type ModalAction string

const (
	ActionOpenLogin    ModalAction = "open-login"
	ActionOpenRegister ModalAction = "open-register"
	ActionSwitch       ModalAction = "switch"
	ActionClose        ModalAction = "close"
)

// LoginDraft echoes the last login submission back into the form.
type LoginDraft struct {
	Email string `json:"email"`
}

// RegisterDraft echoes the last registration submission back into the
// form. The password fields are never echoed.
type RegisterDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ModalState is the auth-modal UI state: which pane is open plus the
// form-field echo drafts.
type ModalState struct {
	Pane     ModalPane
	Login    LoginDraft
	Register RegisterDraft
}

// ModalFlow is the auth-modal state machine. Legal transitions are
// closed → login, closed → register, login ⇄ register via switch, and
// open → closed. An illegal transition is a no-op that returns the
// current state; closing clears both drafts.
type ModalFlow struct {
	mu    sync.Mutex
	state ModalState
}

// NewModalFlow starts closed with empty drafts.
func NewModalFlow() *ModalFlow {
	return &ModalFlow{state: ModalState{Pane: PaneClosed}}
}

// State returns the current modal state.
func (f *ModalFlow) State() ModalState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Apply runs the named transition. An unknown action is a validation
// error; a known-but-illegal transition is a silent no-op.
func (f *ModalFlow) Apply(action ModalAction) (ModalState, error) {
	switch action {
	case ActionOpenLogin:
		return f.OpenLogin(), nil
	case ActionOpenRegister:
		return f.OpenRegister(), nil
	case ActionSwitch:
		return f.Switch(), nil
	case ActionClose:
		return f.Close(), nil
	default:
		return f.State(), pkgerrors.New(pkgerrors.CodeValidation, "unknown modal action")
	}
}

// OpenLogin opens the login pane. Only legal from closed.
func (f *ModalFlow) OpenLogin() ModalState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Pane == PaneClosed {
		f.state.Pane = PaneLogin
	}
	return f.state
}

// OpenRegister opens the register pane. Only legal from closed.
func (f *ModalFlow) OpenRegister() ModalState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Pane == PaneClosed {
		f.state.Pane = PaneRegister
	}
	return f.state
}

// Switch flips between the login and register panes. A no-op while
// closed.
func (f *ModalFlow) Switch() ModalState {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state.Pane {
	case PaneLogin:
		f.state.Pane = PaneRegister
	case PaneRegister:
		f.state.Pane = PaneLogin
	}
	return f.state
}

// Close dismisses the modal and clears the form drafts. A no-op while
// already closed.
func (f *ModalFlow) Close() ModalState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Pane != PaneClosed {
		f.state = ModalState{Pane: PaneClosed}
	}
	return f.state
}

// RecordLoginDraft keeps the submitted email for form echo while the
// login pane is open.
func (f *ModalFlow) RecordLoginDraft(draft LoginDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Pane == PaneLogin {
		f.state.Login = draft
	}
}

// RecordRegisterDraft keeps the submitted fields for form echo while
// the register pane is open.
func (f *ModalFlow) RecordRegisterDraft(draft RegisterDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Pane == PaneRegister {
		f.state.Register = draft
	}
}
