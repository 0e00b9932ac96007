package testhelpers

import (
	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// NodeBuilder provides a fluent interface for building test nodes
type NodeBuilder struct {
	node models.Node
}

// NewNodeBuilder creates a node builder with no properties
func NewNodeBuilder(name string) *NodeBuilder {
	return &NodeBuilder{
		node: models.Node{
			Name:       name,
			Path:       name + ".yaml",
			Properties: []models.Property{},
		},
	}
}

// WithPath sets the document path of the node
func (b *NodeBuilder) WithPath(path string) *NodeBuilder {
	b.node.Path = path
	return b
}

// WithProperty appends a property
func (b *NodeBuilder) WithProperty(name string, pt models.PropertyType, value any) *NodeBuilder {
	b.node.Properties = append(b.node.Properties, models.Property{
		Name:  name,
		Type:  pt,
		Value: value,
	})
	return b
}

// Build returns a copy of the node
func (b *NodeBuilder) Build() *models.Node {
	node := b.node
	node.Properties = make([]models.Property, len(b.node.Properties))
	copy(node.Properties, b.node.Properties)
	return &node
}

// MakeSampleNode returns a node covering every control kind
func MakeSampleNode() *models.Node {
	return NewNodeBuilder("resize").
		WithProperty("label", models.PropertyTypeString, "thumb").
		WithProperty("enabled", models.PropertyTypeBool, false).
		WithProperty("width", models.PropertyTypeUint32, 5).
		WithProperty("offset", models.PropertyTypeInt32, 3).
		WithProperty("scale", models.PropertyTypeFloat64, 1.0).
		Build()
}
