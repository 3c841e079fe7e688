package inject

import "encoding/json"

// Manifest is the ordered set of stylesheet paths already injected into a
// document. Its wire form is a bare JSON string array stored in a single
// dataset attribute on the document root: no schema tag, no versioning,
// compatible with documents written by earlier hosts.
type Manifest struct {
	paths []string
}

// ParseManifest decodes a manifest from its attribute value. An empty
// string means no previous injections. Invalid JSON yields a *ParseError.
func ParseManifest(raw string) (*Manifest, error) {
	m := &Manifest{}
	if raw == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(raw), &m.paths); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return m, nil
}

// Contains reports whether path was already injected.
func (m *Manifest) Contains(path string) bool {
	for _, p := range m.paths {
		if p == path {
			return true
		}
	}
	return false
}

// Add appends path with set semantics: a path never appears twice.
func (m *Manifest) Add(path string) {
	if m.Contains(path) {
		return
	}
	m.paths = append(m.paths, path)
}

// Len returns the number of recorded paths.
func (m *Manifest) Len() int { return len(m.paths) }

// Paths returns a copy of the recorded paths in injection order.
func (m *Manifest) Paths() []string {
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

// Encode serializes the manifest back to its attribute form.
func (m *Manifest) Encode() string {
	if m.paths == nil {
		return "[]"
	}
	data, err := json.Marshal(m.paths)
	if err != nil {
		// A []string cannot fail to marshal.
		return "[]"
	}
	return string(data)
}
