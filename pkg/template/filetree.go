package template

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileTree is either a file holding template source or a directory of named
// subtrees.
type FileTree struct {
	content string
	entries map[string]FileTree
}

// File returns a leaf holding content
func File(content string) FileTree {
	return FileTree{content: content}
}

// Directory returns an interior node with the given entries
func Directory(entries map[string]FileTree) FileTree {
	if entries == nil {
		entries = map[string]FileTree{}
	}
	return FileTree{entries: entries}
}

// IsDir reports whether the tree is a directory
func (t FileTree) IsDir() bool {
	return t.entries != nil
}

// Flatten maps every leaf to its '/'-joined path. A bare file maps to the
// empty path. Two leaves reaching the same path, as "a/b" next to a directory
// "a" holding "b", are an error.
func (t FileTree) Flatten() (map[string]string, error) {
	out := make(map[string]string)
	if err := t.flattenInto("", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t FileTree) flattenInto(prefix string, out map[string]string) error {
	if !t.IsDir() {
		if _, dup := out[prefix]; dup {
			return fmt.Errorf("file tree path %q is declared more than once", prefix)
		}
		out[prefix] = t.content
		return nil
	}
	for _, name := range sortedNames(t.entries) {
		if err := t.entries[name].flattenInto(join(prefix, name), out); err != nil {
			return err
		}
	}
	return nil
}

func sortedNames(entries map[string]FileTree) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// UnmarshalYAML decodes scalars as files and mappings as directories
func (t *FileTree) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.AliasNode:
		return t.UnmarshalYAML(node.Alias)

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*t = File("")
			return nil
		}
		*t = File(node.Value)
		return nil

	case yaml.MappingNode:
		entries := make(map[string]FileTree, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: file tree names must be scalars", key.Line)
			}
			if _, dup := entries[key.Value]; dup {
				return fmt.Errorf("line %d: duplicate file tree entry %q", key.Line, key.Value)
			}
			var sub FileTree
			if err := sub.UnmarshalYAML(value); err != nil {
				return err
			}
			entries[key.Value] = sub
		}
		*t = Directory(entries)
		return nil

	default:
		return fmt.Errorf("line %d: file tree entries must be text or a mapping", node.Line)
	}
}
