// Package config reads and writes reify manifest documents.
package config

import (
	"errors"

	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestCodec = (*Codec)(nil)

// Codec implements ports.ManifestCodec for YAML manifests.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses a manifest document. The document must be a sequence of
// mappings, each holding at least a cmd.
func (c *Codec) Decode(data []byte) ([]domain.Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrManifestMalformed, err), "cannot parse manifest")
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, zerr.Wrap(domain.ErrManifestMalformed, "manifest is empty")
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.SequenceNode {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrManifestMalformed, "manifest must be a list of entries"),
			"line", root.Line,
		)
	}

	entries := make([]domain.Entry, 0, len(root.Content))
	for i, item := range root.Content {
		entry, err := decodeEntry(resolve(item))
		if err != nil {
			return nil, zerr.With(zerr.With(err, "entry", i+1), "line", item.Line)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func decodeEntry(n *yaml.Node) (domain.Entry, error) {
	if n.Kind != yaml.MappingNode {
		return domain.Entry{}, zerr.Wrap(domain.ErrManifestMalformed, "entry must be a mapping")
	}

	var (
		entry     domain.Entry
		hasCmd    bool
		hasDigest bool
		legacy    string
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]

		switch key {
		case keyName:
			entry.Name, _ = scalarValue(value)
		case keyCmd:
			entry.Cmd, hasCmd = stringValue(value)
		case keyFiles:
			entry.Files = stringList(value)
		case keyRequiredFiles:
			entry.RequiredFiles = stringList(value)
		case keyDigest:
			entry.Digest, hasDigest = scalarValue(value)
		case keyLegacyDigest:
			legacy, _ = scalarValue(value)
		}
	}

	if !hasCmd {
		return domain.Entry{}, zerr.Wrap(domain.ErrMissingCmd, "cannot decode entry")
	}
	if !hasDigest {
		entry.Digest = legacy
	}

	return entry, nil
}
