package config

import "gopkg.in/yaml.v3"

// Manifest keys.
const (
	keyName          = "name"
	keyCmd           = "cmd"
	keyRequiredFiles = "required_files"
	keyFiles         = "files"
	keyDigest        = "digest"
	// keyLegacyDigest is read from manifests written by older releases.
	keyLegacyDigest = "sha"
)

const nullTag = "!!null"

// resolve follows aliases to the node they point at.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// scalarValue returns the text of a scalar node. Null scalars are empty.
func scalarValue(n *yaml.Node) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	if n.Tag == nullTag {
		return "", true
	}
	return n.Value, true
}

// stringValue is like scalarValue but rejects null.
func stringValue(n *yaml.Node) (string, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == nullTag {
		return "", false
	}
	return n.Value, true
}

// stringList coerces a node into a list of strings: a scalar becomes a
// one-element list, a sequence keeps its scalar items, and anything else,
// including null, is empty.
func stringList(n *yaml.Node) []string {
	n = resolve(n)
	if n == nil {
		return nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == nullTag {
			return nil
		}
		return []string{n.Value}
	case yaml.SequenceNode:
		var items []string
		for _, item := range n.Content {
			if v, ok := scalarValue(item); ok {
				items = append(items, v)
			}
		}
		return items
	default:
		return nil
	}
}
