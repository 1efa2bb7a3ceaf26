package optfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads a YAML mapping of HiGHS options into an Options
// dictionary, preserving the document order of the keys.
//
// The file must contain a single top-level mapping of scalars, e.g.:
//
//	presolve: "on"
//	mip_rel_gap: 0.01
//	threads: 4
//
// Decoding goes through yaml.Node rather than a map so the insertion
// order written to the options file matches the preset file.
func LoadPreset(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("optfile: preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset parses YAML preset content. See LoadPreset.
func ParsePreset(data []byte) (*Options, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("optfile: preset: %w", err)
	}

	opts := New()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return opts, nil // empty document
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("optfile: preset: top level must be a mapping, got %s", nodeKind(root))
	}

	// Mapping content alternates key, value.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("optfile: preset: option %q must be a scalar, got %s", key.Value, nodeKind(val))
		}
		opts.Set(key.Value, val.Value)
	}
	return opts, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
