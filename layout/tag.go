package layout

import (
	"slices"
	"sort"
	"sync"

	"github.com/maruel/natural"
)

// Tag annotates its optional child with key/value pair discoverable through
// Query. Tag without child is a zero-size marker.
type Tag struct {
	composite
	Key   string
	Value any
}

func NewTag(key string, value any) Tag {
	return Tag{Key: key, Value: value}
}

// WithTag wraps n into tag.
func WithTag(key string, value any, n Node) Node {
	return NewTag(key, value).With(n)
}

func (t Tag) With(children ...Node) Node {
	t.set(children)
	return t
}

func (t Tag) Layout(ctx *Context, c Constraints) (*Layout, error) {
	return layoutSingle(ctx, t, c)
}

// Query answers questions about a laid out tree. The tag index is built on
// first use and shared afterwards. Nil query behaves as a query over an
// empty tree.
type Query struct {
	root *Layout
	page int

	once  sync.Once
	index map[string][]any
}

func NewQuery(root *Layout, pageIndex int) *Query {
	return &Query{root: root, page: pageIndex}
}

func (q *Query) PageIndex() int {
	if q == nil {
		return 0
	}
	return q.page
}

func (q *Query) Root() *Layout {
	if q == nil {
		return nil
	}
	return q.root
}

func (q *Query) build() {
	q.index = make(map[string][]any)
	if q.root == nil {
		return
	}
	for l := range Walk(q.root) {
		if t, ok := l.DrawNode().(Tag); ok {
			q.index[t.Key] = append(q.index[t.Key], t.Value)
		}
	}
}

// Values returns values of all tags with key in discovery order.
func (q *Query) Values(key string) []any {
	if q == nil {
		return nil
	}
	q.once.Do(q.build)
	return slices.Clone(q.index[key])
}

// First returns value of the first tag with key.
func (q *Query) First(key string) (any, bool) {
	if q == nil {
		return nil, false
	}
	q.once.Do(q.build)
	if v := q.index[key]; len(v) > 0 {
		return v[0], true
	}
	return nil, false
}

// Keys returns all known tag keys sorted naturally.
func (q *Query) Keys() []string {
	if q == nil {
		return nil
	}
	q.once.Do(q.build)
	keys := make([]string, 0, len(q.index))
	for k := range q.index {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Find returns first layout in pre-order satisfying pred.
func (q *Query) Find(pred func(*Layout) bool) *Layout {
	if q == nil || q.root == nil {
		return nil
	}
	for l := range Walk(q.root) {
		if pred(l) {
			return l
		}
	}
	return nil
}

// FindNode returns first layout which draws node of type T.
func FindNode[T Node](q *Query) (*Layout, T, bool) {
	var found T
	l := q.Find(func(l *Layout) bool {
		n, ok := l.DrawNode().(T)
		if ok {
			found = n
		}
		return ok
	})
	return l, found, l != nil
}
