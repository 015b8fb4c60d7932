package numbering

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
)

var (
	ErrDuplicateAnchor = errors.New("duplicate anchor")
	ErrUnknownAnchor   = errors.New("unknown anchor")
)

// Anchors maps names of referenced document parts to values (figure numbers
// and such).
type Anchors struct {
	values map[string]any
}

func NewAnchors() *Anchors {
	return &Anchors{values: make(map[string]any)}
}

// Add registers anchor and returns its value.
func (a *Anchors) Add(name string, value any) (any, error) {
	if _, ok := a.values[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAnchor, name)
	}
	a.values[name] = value
	return value, nil
}

func (a *Anchors) Get(name string) (any, error) {
	v, ok := a.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnchor, name)
	}
	return v, nil
}

func (a *Anchors) Len() int {
	return len(a.values)
}

// Names returns anchor names in natural order.
func (a *Anchors) Names() []string {
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}
