// Package loadplan declares the ordered plan of step methods a load
// harness executes. Each method carries at most one ordering tag; tags
// are registered once at process start and read-only afterwards, so an
// external runner can resolve a deterministic execution order without
// runtime reflection.
package loadplan

import (
	"errors"
	"fmt"
	"sort"
)

// Tag is the ordering hint attached to a plan method. The zero value is
// the default tag: order 0.
type Tag struct {
	Order int
}

// ErrDuplicateTag reports an attempt to tag a method that already has
// one. Duplicates are rejected at registration time, never merged or
// silently overwritten.
var ErrDuplicateTag = errors.New("method already has an ordering tag")

// Registry maps method names to their ordering tag. Populate it from a
// single goroutine during startup; once populated it is read-only and
// safe for concurrent readers. Register is not safe for concurrent use.
type Registry struct {
	tags map[string]Tag
	seq  []string // registration sequence, breaks order ties
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tags: make(map[string]Tag)}
}

// Register attaches tag to method. Registering the same method twice is
// a configuration error wrapping ErrDuplicateTag; the registry keeps the
// first tag and records nothing for the rejected declaration.
func (r *Registry) Register(method string, tag Tag) error {
	if method == "" {
		return errors.New("method name required")
	}
	if _, ok := r.tags[method]; ok {
		return fmt.Errorf("method %q: %w", method, ErrDuplicateTag)
	}
	r.tags[method] = tag
	r.seq = append(r.seq, method)
	return nil
}

// MustRegister is Register for static declaration blocks; it panics on a
// configuration error so a bad plan fails at startup, not at query time.
func (r *Registry) MustRegister(method string, tag Tag) {
	if err := r.Register(method, tag); err != nil {
		panic(err)
	}
}

// Lookup reports whether method carries a tag and, if so, the tag value.
func (r *Registry) Lookup(method string) (Tag, bool) {
	tag, ok := r.tags[method]
	return tag, ok
}

// Len returns the number of tagged methods.
func (r *Registry) Len() int { return len(r.seq) }

// Methods returns every tagged method in resolved execution order:
// ascending tag order, ties broken by registration sequence. The
// returned slice is a copy; callers may mutate it freely.
func (r *Registry) Methods() []string {
	out := make([]string, len(r.seq))
	copy(out, r.seq)
	sort.SliceStable(out, func(i, j int) bool {
		return r.tags[out[i]].Order < r.tags[out[j]].Order
	})
	return out
}
