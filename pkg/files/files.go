package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

const (
	SettingsFile       = ".pluqqy-props.yaml"
	DocumentExtension  = ".yaml"
	defaultNodeName    = "node"
	documentPermission = 0644
)

// ErrNoProperties is returned for documents without a properties list
var ErrNoProperties = errors.New("document has no properties")

// ReadNode loads a node document and normalizes its property types
func ReadNode(path string) (*models.Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	var node models.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, fmt.Errorf("failed to parse document YAML %s: %w", path, err)
	}

	if node.Properties == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoProperties)
	}

	for i := range node.Properties {
		node.Properties[i].Type = models.ParsePropertyType(string(node.Properties[i].Type))
	}

	if node.Name == "" {
		node.Name = nameFromPath(path)
	}
	node.Path = path

	return &node, nil
}

// WriteNode stores a node document at path, creating parent directories
func WriteNode(path string, node *models.Node) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for document: %w", err)
	}

	content, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("failed to marshal document to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, documentPermission); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}

// InitNode writes a sample document showing every known property type.
// An existing file is never overwritten.
func InitNode(path, name string) (*models.Node, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("document %s already exists", path)
	}

	if name == "" {
		name = nameFromPath(path)
	}

	node := &models.Node{
		Name: name,
		Path: path,
		Properties: []models.Property{
			{Name: "label", Type: models.PropertyTypeString, Value: name},
			{Name: "enabled", Type: models.PropertyTypeBool, Value: true},
			{Name: "width", Type: models.PropertyTypeUint32, Value: 640},
			{Name: "height", Type: models.PropertyTypeUint32, Value: 480},
			{Name: "offset", Type: models.PropertyTypeInt32, Value: 0},
			{Name: "scale", Type: models.PropertyTypeFloat64, Value: 1.0},
			{Name: "opacity", Type: models.PropertyTypeFloat32, Value: 0.5},
		},
	}

	if err := WriteNode(path, node); err != nil {
		return nil, err
	}
	return node, nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	name := base[:len(base)-len(filepath.Ext(base))]
	if name == "" {
		return defaultNodeName
	}
	return name
}
