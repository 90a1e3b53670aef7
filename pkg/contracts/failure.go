package contracts

import (
	"fmt"
	"strings"
)

// Failure describes why a contract was violated. Composite contracts
// attach the failures of their violated constituents to Nested, in the
// order the constituents were declared.
type Failure struct {
	Name    string
	Message string
	Nested  []*Failure
}

// NewFailure constructs a leaf failure for the named contract.
func NewFailure(name, message string) *Failure {
	return &Failure{Name: name, Message: message}
}

// newCompositeFailure wraps the failures of violated constituents.
// Declaration order of the constituents is preserved.
func newCompositeFailure(name, message string, nested []*Failure) *Failure {
	return &Failure{Name: name, Message: message, Nested: nested}
}

// IsLeaf reports whether the failure has no nested failures.
func (f *Failure) IsLeaf() bool {
	return len(f.Nested) == 0
}

// Leaves returns the leaf failures beneath f in declaration order. A
// leaf failure returns itself.
func (f *Failure) Leaves() []*Failure {
	if f == nil {
		return nil
	}
	if f.IsLeaf() {
		return []*Failure{f}
	}
	leaves := make([]*Failure, 0, len(f.Nested))
	for _, nested := range f.Nested {
		leaves = append(leaves, nested.Leaves()...)
	}
	return leaves
}

// LeafNames returns the names of the leaf failures in declaration order.
func (f *Failure) LeafNames() []string {
	leaves := f.Leaves()
	names := make([]string, len(leaves))
	for i, leaf := range leaves {
		names[i] = leaf.Name
	}
	return names
}

// Error renders the failure as a single line. Composite failures list
// every leaf violation so one evaluation pass reports all problems.
func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	if f.IsLeaf() {
		return fmt.Sprintf("contract %q violated: %s", f.Name, f.Message)
	}

	parts := make([]string, 0, len(f.Nested))
	for _, leaf := range f.Leaves() {
		parts = append(parts, fmt.Sprintf("%s: %s", leaf.Name, leaf.Message))
	}
	return fmt.Sprintf("contract %q violated: %s", f.Name, strings.Join(parts, "; "))
}

// renamed returns a copy of f with the top-level name replaced. Nested
// failures are shared, not copied; failures are treated as immutable
// once returned from an evaluation.
func (f *Failure) renamed(name string) *Failure {
	if f == nil {
		return nil
	}
	return &Failure{Name: name, Message: f.Message, Nested: f.Nested}
}
