package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

func TestReadNode(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "resize.yaml")

	doc := `name: Resize
properties:
  - name: width
    type: Uint32
    value: 640
  - name: keep_aspect
    type: bool
    value: true
  - name: scale
    type: float64
    value: 2.5
  - name: tint
    type: Color
    value: "#ff0000"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	node, err := ReadNode(path)
	require.NoError(t, err)

	want := &models.Node{
		Name: "Resize",
		Path: path,
		Properties: []models.Property{
			{Name: "width", Type: models.PropertyTypeUint32, Value: 640},
			{Name: "keep_aspect", Type: models.PropertyTypeBool, Value: true},
			{Name: "scale", Type: models.PropertyTypeFloat64, Value: 2.5},
			{Name: "tint", Type: models.PropertyType("Color"), Value: "#ff0000"},
		},
	}
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("ReadNode mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNodeDefaultsNameFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "blur-pass.yaml")
	require.NoError(t, os.WriteFile(path, []byte("properties: []\n"), 0644))

	node, err := ReadNode(path)
	require.NoError(t, err)
	assert.Equal(t, "blur-pass", node.Name)
}

func TestReadNodeErrors(t *testing.T) {
	tempDir := t.TempDir()

	_, err := ReadNode(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(tempDir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("properties: [\n"), 0644))
	_, err = ReadNode(broken)
	assert.Error(t, err)

	empty := filepath.Join(tempDir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\n"), 0644))
	_, err = ReadNode(empty)
	assert.ErrorIs(t, err, ErrNoProperties)
}

func TestWriteNodeRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "node.yaml")

	node := &models.Node{
		Name: "Blur",
		Properties: []models.Property{
			{Name: "radius", Type: models.PropertyTypeInt32, Value: 4},
			{Name: "label", Type: models.PropertyTypeString, Value: "soft"},
			{Name: "enabled", Type: models.PropertyTypeBool, Value: false},
			{Name: "sigma", Type: models.PropertyTypeFloat64, Value: 1.5},
		},
	}
	require.NoError(t, WriteNode(path, node))

	loaded, err := ReadNode(path)
	require.NoError(t, err)

	if diff := cmp.Diff(node, loaded, cmpopts.IgnoreFields(models.Node{}, "Path")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInitNode(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sample.yaml")

	node, err := InitNode(path, "")
	require.NoError(t, err)
	assert.Equal(t, "sample", node.Name)
	assert.NotEmpty(t, node.Properties)

	loaded, err := ReadNode(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Properties, len(node.Properties))

	_, err = InitNode(path, "again")
	assert.Error(t, err, "existing documents must not be overwritten")
}

func TestReadSettings(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("missing file gives defaults", func(t *testing.T) {
		settings, err := ReadSettings(filepath.Join(tempDir, "none.yaml"))
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSettings(), settings)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(tempDir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("editor:\n  auto_save: true\n"), 0644))

		settings, err := ReadSettings(path)
		require.NoError(t, err)
		assert.True(t, settings.Editor.AutoSave)
		assert.Equal(t, models.DefaultSettings().UI, settings.UI)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(tempDir, "full.yaml")
		want := models.DefaultSettings()
		want.UI.LabelWidth = 24
		want.UI.ShowHelp = false
		require.NoError(t, WriteSettings(path, want))

		got, err := ReadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
