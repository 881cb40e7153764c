// Package markdown renders report notes: YAML frontmatter plus a body that
// may carry regenerated blocks between comment markers.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Note is a markdown file split into frontmatter and body.
type Note struct {
	Meta map[string]any
	Body string
}

// Parse splits content; content without frontmatter yields empty Meta.
func Parse(content string) (Note, error) {
	if !strings.HasPrefix(content, separator) {
		return Note{Meta: map[string]any{}, Body: content}, nil
	}
	rest := strings.TrimPrefix(content, separator)
	idx := strings.Index(rest, "\n"+separator)
	if idx < 0 {
		return Note{}, fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return Note{}, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return Note{Meta: meta, Body: rest[idx+len("\n"+separator):]}, nil
}

// Render writes the note back with its frontmatter first.
func (n Note) Render() (string, error) {
	raw, err := yaml.Marshal(n.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	if !strings.HasPrefix(n.Body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(n.Body)
	return buf.String(), nil
}

// Merge sets every key of meta, keeping keys the note already had.
func (n *Note) Merge(meta map[string]any) {
	if n.Meta == nil {
		n.Meta = map[string]any{}
	}
	for k, v := range meta {
		n.Meta[k] = v
	}
}

func blockMarkers(name string) (string, string) {
	return "<!-- switchsprint:" + name + ":start -->", "<!-- switchsprint:" + name + ":end -->"
}

// ReplaceBlock swaps the named generated block in the body, appending it
// when absent. Text outside the markers is left alone.
func (n *Note) ReplaceBlock(name, generated string) {
	startMarker, endMarker := blockMarkers(name)
	block := startMarker + "\n" + strings.TrimRight(generated, "\n") + "\n" + endMarker
	body := n.Body

	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	switch {
	case start >= 0 && end > start:
		n.Body = body[:start] + block + body[end+len(endMarker):]
	case strings.TrimSpace(body) == "":
		n.Body = block + "\n"
	case strings.HasSuffix(body, "\n"):
		n.Body = body + "\n" + block + "\n"
	default:
		n.Body = body + "\n\n" + block + "\n"
	}
}
