package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vow/internal/logger"
	"github.com/alexisbeaulieu97/vow/internal/registry"
	"github.com/alexisbeaulieu97/vow/internal/suite"
)

const testSuite = `
version: "1.0"
name: user-input
contracts:
  - id: username
    field: user.name
    rules:
      - type: trimmed
      - type: non_empty
      - type: matches
        pattern: "^[a-z0-9_-]+$"
  - id: age
    field: user.age
    rules:
      - type: range
        min: 0
        max: 150
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return log
}

func TestCheckDocuments(t *testing.T) {
	t.Parallel()

	s, err := suite.ParseBytes([]byte(testSuite), "suite.yaml")
	require.NoError(t, err)

	good := writeFile(t, "good.yaml", "user:\n  name: jane_doe\n  age: 30\n")
	bad := writeFile(t, "bad.yaml", "user:\n  name: \"Jane!\"\n  age: 200\n")

	reports, err := checkDocuments(context.Background(), s, registry.Default(), testLogger(t), []string{good, bad})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	require.False(t, reports[0].Failed())
	require.Equal(t, good, reports[0].Document)

	require.True(t, reports[1].Failed())
	require.Equal(t, 2, reports[1].Violated)
}

func TestCheckDocumentsBadDocument(t *testing.T) {
	t.Parallel()

	s, err := suite.ParseBytes([]byte(testSuite), "suite.yaml")
	require.NoError(t, err)

	_, err = checkDocuments(context.Background(), s, registry.Default(), testLogger(t), []string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestToJSONFailureShape(t *testing.T) {
	t.Parallel()

	s, err := suite.ParseBytes([]byte(testSuite), "suite.yaml")
	require.NoError(t, err)

	c, err := registry.Default().Compile(s.Contracts[0])
	require.NoError(t, err)

	verdict := c.Evaluate("")
	require.False(t, verdict.Satisfied())

	jf := toJSONFailure(verdict.Failure())
	require.Equal(t, "username", jf.Name)
	require.Len(t, jf.Nested, 2)
	require.Equal(t, "non_empty", jf.Nested[0].Name)
	require.Equal(t, "matches", jf.Nested[1].Name)
}

func TestFindContract(t *testing.T) {
	t.Parallel()

	s, err := suite.ParseBytes([]byte(testSuite), "suite.yaml")
	require.NoError(t, err)

	spec, err := findContract(s, "age")
	require.NoError(t, err)
	require.Equal(t, "user.age", spec.Field)

	_, err = findContract(s, "email")
	require.ErrorContains(t, err, `no contract "email"`)
}
