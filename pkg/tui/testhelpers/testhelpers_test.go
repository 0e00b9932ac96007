package testhelpers

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

type pingMsg int

func TestCollectMsgsExpandsBatches(t *testing.T) {
	cmd := tea.Batch(
		func() tea.Msg { return pingMsg(1) },
		tea.Batch(
			func() tea.Msg { return pingMsg(2) },
			func() tea.Msg { return pingMsg(3) },
		),
	)

	msgs := CollectMsgs(cmd)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, msg := range msgs {
		if msg != pingMsg(i+1) {
			t.Errorf("message %d = %v, want %v", i, msg, pingMsg(i+1))
		}
	}
}

func TestCollectMsgsSkipsSlowCommands(t *testing.T) {
	cmd := tea.Batch(
		tea.Tick(time.Second, func(time.Time) tea.Msg { return pingMsg(1) }),
		func() tea.Msg { return pingMsg(2) },
	)

	msgs := CollectMsgs(cmd)
	if len(msgs) != 1 || msgs[0] != pingMsg(2) {
		t.Errorf("expected only the fast message, got %v", msgs)
	}
}

func TestCollectMsgsNil(t *testing.T) {
	if msgs := CollectMsgs(nil); msgs != nil {
		t.Errorf("expected nil, got %v", msgs)
	}
}

func TestNodeBuilder(t *testing.T) {
	b := NewNodeBuilder("blur").
		WithPath("nodes/blur.yaml").
		WithProperty("radius", models.PropertyTypeInt32, 4)

	first := b.Build()
	second := b.Build()
	first.Properties[0].Value = 9

	if second.Properties[0].Value != 4 {
		t.Error("Build should return independent copies")
	}
	if first.Path != "nodes/blur.yaml" {
		t.Errorf("unexpected path %q", first.Path)
	}
}

func TestKeyHelpers(t *testing.T) {
	if got := Type("ab").String(); got != "ab" {
		t.Errorf("Type(ab).String() = %q", got)
	}
	if got := Space().String(); got != " " {
		t.Errorf("Space().String() = %q", got)
	}
	if got := Key(tea.KeyTab).String(); got != "tab" {
		t.Errorf("Key(tab).String() = %q", got)
	}
}
