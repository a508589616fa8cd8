package config

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/reify/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const (
	fieldIndent = "  "
	cmdIndent   = "    "
)

// EncodeEntry renders the canonical block of entry. A non-empty digestOverride
// replaces the recorded digest.
func (c *Codec) EncodeEntry(entry *domain.Entry, digestOverride string) []byte {
	var b strings.Builder
	writeEntry(&b, entry, digestOverride)
	return []byte(b.String())
}

// Encode renders every entry in order.
func (c *Codec) Encode(entries []domain.Entry) []byte {
	var b strings.Builder
	for i := range entries {
		writeEntry(&b, &entries[i], "")
	}
	return []byte(b.String())
}

func writeEntry(b *strings.Builder, entry *domain.Entry, digestOverride string) {
	b.WriteString("-\n")

	if entry.Name != "" {
		b.WriteString(fieldIndent + keyName + ": " + scalarText(entry.Name) + "\n")
	}

	writeCmd(b, entry.Cmd)
	writeList(b, keyRequiredFiles, entry.RequiredFiles)
	writeList(b, keyFiles, entry.Files)

	digest := entry.Digest
	if digestOverride != "" {
		digest = digestOverride
	}
	if digest != "" {
		b.WriteString(fieldIndent + keyDigest + ": " + scalarText(digest) + "\n")
	}
}

// writeCmd writes cmd as a literal block scalar whose header makes the parser
// return cmd unchanged. Commands a literal block cannot carry are written
// double-quoted instead.
func writeCmd(b *strings.Builder, cmd string) {
	if !literalSafe(cmd) {
		b.WriteString(fieldIndent + keyCmd + ": " + scalarText(cmd) + "\n")
		return
	}

	body := strings.TrimRight(cmd, "\n")
	trailing := len(cmd) - len(body)

	header := "|"
	if needsIndentIndicator(body) {
		header += "2"
	}
	switch {
	case trailing == 0:
		header += "-"
	case trailing > 1 || body == "":
		header += "+"
	}

	b.WriteString(fieldIndent + keyCmd + ": " + header + "\n")

	if body != "" {
		for line := range strings.SplitSeq(body, "\n") {
			if line != "" {
				b.WriteString(cmdIndent + line)
			}
			b.WriteString("\n")
		}
		trailing--
	}

	b.WriteString(strings.Repeat("\n", max(trailing, 0)))
}

// needsIndentIndicator reports whether the first non-empty line starts with a
// space, which would otherwise be taken as indentation.
func needsIndentIndicator(body string) bool {
	for line := range strings.SplitSeq(body, "\n") {
		if line != "" {
			return line[0] == ' '
		}
	}
	return false
}

// literalSafe reports whether every rune of s may appear verbatim in a literal
// block. Line breaks other than \n and non-printable characters must be
// escaped, which only the double-quoted style can do.
func literalSafe(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n':
		case r < 0x20 || r == 0x7f:
			return false
		case r >= 0x80 && r <= 0x9f:
			return false
		case r == 0x2028 || r == 0x2029:
			return false
		case r >= 0xd800 && r <= 0xdfff, r == 0xfffe || r == 0xffff:
			return false
		}
	}
	return true
}

func writeList(b *strings.Builder, key string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fieldIndent + key + ":\n")
	for _, item := range items {
		b.WriteString(fieldIndent + "- " + scalarText(item) + "\n")
	}
}

// scalarText renders s as a single-line YAML scalar that parses back to s.
// YAML's own choice of style is used when it fits on one line and s holds
// nothing that needs escaping.
func scalarText(s string) string {
	if s != "" && !strings.Contains(s, "\n") && literalSafe(s) {
		if out, err := yaml.Marshal(s); err == nil {
			text := strings.TrimSuffix(string(out), "\n")
			if !strings.Contains(text, "\n") {
				return text
			}
		}
	}

	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
	out, err := yaml.Marshal(node)
	if err != nil {
		return `""`
	}
	return strings.TrimSuffix(string(out), "\n")
}
