package suite

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	vowerrors "github.com/alexisbeaulieu97/vow/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a suite file from disk, validates it, and returns the
// resulting model.
func Parse(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vowerrors.NewParseError(path, 0, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes decodes and validates a suite document. The path is used
// only for diagnostics.
func ParseBytes(data []byte, path string) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, vowerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
