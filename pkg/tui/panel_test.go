package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-props/pkg/models"
	th "github.com/pluqqy/pluqqy-props/pkg/tui/testhelpers"
)

type saveRecorder struct {
	saved []*models.Node
	err   error
}

func (r *saveRecorder) save(node *models.Node) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, node)
	return nil
}

func newTestPanel(t *testing.T, settings *models.Settings) (*PropertyPanelModel, *saveRecorder) {
	t.Helper()
	rec := &saveRecorder{}
	panel := NewPropertyPanel(th.MakeSampleNode(), settings, rec.save, nil)
	panel.Init()
	panel.SetSize(100, 30)
	return panel, rec
}

func press(p *PropertyPanelModel, msg tea.Msg) tea.Cmd {
	_, cmd := p.Update(msg)
	return cmd
}

func hasMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestPanel_InitFocusesFirstProperty(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	item := panel.FocusedItem()
	require.NotNil(t, item)
	assert.Equal(t, "label", item.Name)
	assert.True(t, item.Focused())
}

func TestPanel_CommitOnFocusChange(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	press(panel, th.Type("s"))
	assert.Equal(t, "thumb", panel.Node().Properties[0].Value, "typing must not commit")
	assert.False(t, panel.Dirty())

	cmd := press(panel, th.Key(tea.KeyTab))
	assert.Equal(t, "thumbs", panel.Node().Properties[0].Value)
	assert.True(t, panel.Dirty())
	assert.Equal(t, "enabled", panel.FocusedItem().Name)

	status, ok := hasMsg[StatusMsg](th.CollectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, StatusMsg("label = thumbs"), status)
}

func TestPanel_ToggleCommitsImmediately(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	press(panel, th.Key(tea.KeyTab))
	require.Equal(t, "enabled", panel.FocusedItem().Name)

	press(panel, th.Space())
	assert.Equal(t, true, panel.Node().Properties[1].Value)
	assert.True(t, panel.Dirty())
}

func TestPanel_RejectedEditNeverReachesNode(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	press(panel, th.Key(tea.KeyTab))
	press(panel, th.Key(tea.KeyTab))
	require.Equal(t, "width", panel.FocusedItem().Name)

	press(panel, th.Key(tea.KeyCtrlU))
	cmd := press(panel, th.Paste("-1"))
	note, ok := hasMsg[NotifyMsg](th.CollectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, NotifyWarning, note.Level)

	cmd = press(panel, th.Key(tea.KeyTab))
	assert.Equal(t, 5, panel.Node().Properties[2].Value)
	assert.False(t, panel.Dirty())

	// the deferred reset reaches the blurred row through the panel
	width := panel.Items()[2].Input()
	require.Equal(t, models.StatusError, width.Status())
	for _, msg := range th.CollectMsgs(cmd) {
		if reset, ok := msg.(statusResetMsg); ok {
			press(panel, reset)
		}
	}
	assert.Equal(t, models.StatusNone, width.Status())
}

func TestPanel_FocusWrapsAndSkipsHiddenRows(t *testing.T) {
	node := th.NewNodeBuilder("mixed").
		WithProperty("first", models.PropertyTypeString, "a").
		WithProperty("hidden", "", "b").
		WithProperty("last", models.PropertyTypeInt32, 1).
		Build()
	panel := NewPropertyPanel(node, nil, nil, nil)
	panel.Init()

	assert.Equal(t, "first", panel.FocusedItem().Name)
	press(panel, th.Key(tea.KeyTab))
	assert.Equal(t, "last", panel.FocusedItem().Name)
	press(panel, th.Key(tea.KeyTab))
	assert.Equal(t, "first", panel.FocusedItem().Name)
	press(panel, th.Key(tea.KeyShiftTab))
	assert.Equal(t, "last", panel.FocusedItem().Name)

	assert.NotContains(t, panel.View(), "hidden")
}

func TestPanel_SaveWritesSnapshot(t *testing.T) {
	panel, rec := newTestPanel(t, nil)

	press(panel, th.Type("s"))
	msgs := th.CollectMsgs(press(panel, th.Key(tea.KeyCtrlS)))

	require.Len(t, rec.saved, 1)
	assert.Equal(t, "thumbs", rec.saved[0].Properties[0].Value)
	assert.True(t, panel.FocusedItem().Focused(), "saving keeps the row focused")

	saved, ok := hasMsg[documentSavedMsg](msgs)
	require.True(t, ok)
	require.NoError(t, saved.err)

	cmd := press(panel, saved)
	assert.False(t, panel.Dirty())
	status, ok := hasMsg[StatusMsg](th.CollectMsgs(cmd))
	require.True(t, ok)
	assert.Contains(t, string(status), "Saved")
}

func TestPanel_SaveFailureNotifies(t *testing.T) {
	panel, rec := newTestPanel(t, nil)
	rec.err = errors.New("disk full")

	press(panel, th.Type("s"))
	msgs := th.CollectMsgs(press(panel, th.Key(tea.KeyCtrlS)))
	saved, ok := hasMsg[documentSavedMsg](msgs)
	require.True(t, ok)

	note, ok := hasMsg[NotifyMsg](th.CollectMsgs(press(panel, saved)))
	require.True(t, ok)
	assert.Equal(t, NotifyError, note.Level)
	assert.Contains(t, note.Text, "disk full")
	assert.True(t, panel.Dirty())
}

func TestPanel_AutoSave(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Editor.AutoSave = true
	panel, rec := newTestPanel(t, settings)

	press(panel, th.Key(tea.KeyTab))
	msgs := th.CollectMsgs(press(panel, th.Space()))

	require.Len(t, rec.saved, 1)
	assert.Equal(t, true, rec.saved[0].Properties[1].Value)
	_, ok := hasMsg[documentSavedMsg](msgs)
	assert.True(t, ok)
}

func TestPanel_QuitWhenClean(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	cmd := press(panel, th.Key(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPanel_QuitWithUnsavedChangesAsks(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	// pending edit is committed by the quit itself
	press(panel, th.Type("s"))
	press(panel, th.Key(tea.KeyEsc))
	assert.True(t, panel.Dirty())
	assert.Equal(t, "thumbs", panel.Node().Properties[0].Value)
	assert.Contains(t, panel.View(), "EXIT CONFIRMATION")

	press(panel, th.Type("n"))
	assert.NotContains(t, panel.View(), "EXIT CONFIRMATION")
	assert.True(t, panel.FocusedItem().Focused())

	press(panel, th.Key(tea.KeyEsc))
	cmd := press(panel, th.Type("y"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPanel_QuitWithAutoSaveWritesFirst(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Editor.AutoSave = true
	panel, rec := newTestPanel(t, settings)

	press(panel, th.Type("s"))
	cmd := press(panel, th.Key(tea.KeyEsc))

	require.Len(t, rec.saved, 1)
	assert.Equal(t, "thumbs", rec.saved[0].Properties[0].Value)
	assert.False(t, panel.Dirty())
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPanel_ViewShowsRowsAndDirtyMarker(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	view := panel.View()
	for _, name := range []string{"RESIZE", "label:", "enabled:", "width:", "offset:", "scale:"} {
		assert.Contains(t, view, name)
	}
	assert.NotContains(t, view, "RESIZE *")

	press(panel, th.Key(tea.KeyTab))
	press(panel, th.Space())
	assert.Contains(t, panel.View(), "RESIZE *")
}

func TestPanel_CopyReportsOutcome(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	cmd := press(panel, th.Key(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case StatusMsg:
		assert.Contains(t, string(msg), "label")
	case NotifyMsg:
		// headless environments have no clipboard
		assert.Equal(t, NotifyError, msg.Level)
	default:
		t.Fatalf("unexpected message %T", msg)
	}
}
