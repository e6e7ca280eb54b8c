package compose

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/testutil"
)

func newHarness(kind toast.Kind) *testutil.PopupHarness {
	m := New(kind)
	m.SetSize(40, 10)
	return testutil.NewPopupHarness(m)
}

func TestCompose_TypeAndSubmit(t *testing.T) {
	h := newHarness(toast.KindInfo)

	h.SendText("Deploy finished")
	cmd := h.SendSpecialKey(tea.KeyEnter)

	msg, ok := testutil.ExecuteCmd(cmd).(SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, SubmitMsg{Kind: toast.KindInfo, Message: "Deploy finished"}, msg)
}

func TestCompose_TabCyclesKinds(t *testing.T) {
	h := newHarness(toast.KindSuccess)
	m := h.Popup().(*Model)
	assert.Equal(t, toast.KindSuccess, m.Kind())

	h.SendSpecialKey(tea.KeyTab)
	assert.Equal(t, toast.KindError, m.Kind(), "wraps around to the first kind")

	h.SendSpecialKey(tea.KeyShiftTab)
	h.SendSpecialKey(tea.KeyShiftTab)
	assert.Equal(t, toast.KindInfo, m.Kind())
}

func TestCompose_UnknownKindFallsBackToFirst(t *testing.T) {
	assert.Equal(t, toast.KindError, New(toast.Kind("debug")).Kind())
}

func TestCompose_Escape(t *testing.T) {
	h := newHarness(toast.KindError)
	h.SendText("abc")

	_, ok := testutil.ExecuteCmd(h.SendSpecialKey(tea.KeyEsc)).(CancelMsg)
	assert.True(t, ok)
}

func TestCompose_BackspaceEdits(t *testing.T) {
	h := newHarness(toast.KindError)
	h.SendText("abcd")
	h.SendSpecialKey(tea.KeyBackspace)

	assert.Equal(t, "abc", h.Popup().(*Model).Value())
}

func TestCompose_View(t *testing.T) {
	h := newHarness(toast.KindWarning)
	h.SendText("hello")

	out := testutil.StripANSI(h.View())
	for _, k := range toast.Kinds {
		assert.Contains(t, out, string(k))
	}
	assert.Contains(t, out, "> hello")

	f := h.Popup().(*Model).Frame()
	assert.Equal(t, "New toast", f.Title)
}
