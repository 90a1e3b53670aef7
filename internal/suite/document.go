package suite

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	vowerrors "github.com/alexisbeaulieu97/vow/pkg/errors"
)

// Document is a YAML-decoded value tree that contracts are evaluated
// against.
type Document map[string]any

// ParseDocument loads a candidate document from disk.
func ParseDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vowerrors.NewParseError(path, 0, err)
	}

	return ParseDocumentBytes(data, path)
}

// ParseDocumentBytes decodes a candidate document. The path is used only
// for diagnostics.
func ParseDocumentBytes(data []byte, path string) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, vowerrors.NewParseError(path, extractLine(err), err)
	}

	return doc, nil
}

// Lookup resolves a dotted field path ("user.name") against the
// document. The boolean reports whether the full path was present.
func (d Document) Lookup(path string) (any, bool) {
	var current any = map[string]any(d)

	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
