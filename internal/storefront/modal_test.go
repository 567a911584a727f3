package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
)

func TestModalLegalTransitions(t *testing.T) {
	t.Parallel()

	flow := NewModalFlow()
	assert.Equal(t, PaneClosed, flow.State().Pane)

	assert.Equal(t, PaneLogin, flow.OpenLogin().Pane)
	assert.Equal(t, PaneRegister, flow.Switch().Pane)
	assert.Equal(t, PaneLogin, flow.Switch().Pane)
	assert.Equal(t, PaneClosed, flow.Close().Pane)

	assert.Equal(t, PaneRegister, flow.OpenRegister().Pane)
	assert.Equal(t, PaneClosed, flow.Close().Pane)
}

func TestModalIllegalTransitionsAreNoOps(t *testing.T) {
	t.Parallel()

	flow := NewModalFlow()

	// Switch and Close do nothing while closed.
	assert.Equal(t, PaneClosed, flow.Switch().Pane)
	assert.Equal(t, PaneClosed, flow.Close().Pane)

	// Opening a pane while another is open does not change panes.
	flow.OpenLogin()
	assert.Equal(t, PaneLogin, flow.OpenRegister().Pane)
	assert.Equal(t, PaneLogin, flow.OpenLogin().Pane)
}

func TestModalCloseClearsDrafts(t *testing.T) {
	t.Parallel()

	flow := NewModalFlow()
	flow.OpenLogin()
	flow.RecordLoginDraft(LoginDraft{Email: "shopper@freshmart.dev"})
	flow.Switch()
	flow.RecordRegisterDraft(RegisterDraft{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210"})

	state := flow.State()
	assert.Empty(t, state.Login.Email)
	assert.Equal(t, "Asha Rao", state.Register.Name)

	cleared := flow.Close()
	assert.Equal(t, PaneClosed, cleared.Pane)
	assert.Empty(t, cleared.Login.Email)
	assert.Empty(t, cleared.Register.Name)
	assert.Empty(t, cleared.Register.Phone)
}

func TestModalDraftIgnoredWhenPaneMismatch(t *testing.T) {
	t.Parallel()

	flow := NewModalFlow()
	flow.RecordLoginDraft(LoginDraft{Email: "shopper@freshmart.dev"})
	assert.Empty(t, flow.State().Login.Email)

	flow.OpenRegister()
	flow.RecordLoginDraft(LoginDraft{Email: "shopper@freshmart.dev"})
	assert.Empty(t, flow.State().Login.Email)
}

func TestModalApply(t *testing.T) {
	t.Parallel()

	flow := NewModalFlow()

	state, err := flow.Apply(ActionOpenLogin)
	require.NoError(t, err)
	assert.Equal(t, PaneLogin, state.Pane)

	state, err = flow.Apply(ActionSwitch)
	require.NoError(t, err)
	assert.Equal(t, PaneRegister, state.Pane)

	state, err = flow.Apply(ActionClose)
	require.NoError(t, err)
	assert.Equal(t, PaneClosed, state.Pane)

	_, err = flow.Apply(ModalAction("explode"))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
