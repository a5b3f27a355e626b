package ax

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxDepth bounds how deep a search descends. Nodes below it are
	// still tested but never expanded.
	DefaultMaxDepth = 100
	// DefaultPollInterval is the longest a search sleeps between passes.
	DefaultPollInterval = 250 * time.Millisecond
)

// Predicate decides whether a node is the one being searched for. It runs on
// the caller's goroutine during each pass and must not retain el.
type Predicate func(el *Element) bool

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithWait sets the total time a search keeps polling before giving up.
// Zero means a single pass.
func WithWait(d time.Duration) FinderOption {
	return func(f *Finder) {
		if d > 0 {
			f.wait = d
		}
	}
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) FinderOption {
	return func(f *Finder) {
		if n > 0 {
			f.maxDepth = n
		}
	}
}

// WithPollInterval overrides DefaultPollInterval.
func WithPollInterval(d time.Duration) FinderOption {
	return func(f *Finder) {
		if d > 0 {
			f.interval = d
		}
	}
}

// Finder searches a tree for the first node matching a predicate, polling
// until a deadline, and caches the match. A Finder is not safe for concurrent
// use.
type Finder struct {
	root     *Element
	match    Predicate
	wait     time.Duration
	interval time.Duration
	maxDepth int

	cached *Element
	passes int
}

// NewFinder returns a Finder over root. The finder keeps its own handle to
// root; root may be nil if the finder is only used with FindIn.
func NewFinder(root *Element, match Predicate, opts ...FinderOption) *Finder {
	f := &Finder{
		root:     root.Clone(),
		match:    match,
		interval: DefaultPollInterval,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find searches the finder's own root. See FindIn.
func (f *Finder) Find(ctx context.Context) (*Element, error) {
	return f.FindIn(ctx, f.root)
}

// FindIn returns the cached match if there is one. Otherwise it walks root
// repeatedly until the predicate matches, the wait budget is spent
// (ErrNotFound) or ctx is done (ctx.Err()).
//
// The returned Element belongs to the finder and stays valid until Reset or
// Close. Callers that need it longer must Clone it.
func (f *Finder) FindIn(ctx context.Context, root *Element) (*Element, error) {
	if f.cached != nil {
		return f.cached, nil
	}
	if root == nil {
		return nil, ErrorInvalidUIElement
	}

	deadline := time.Now().Add(f.wait)
	walker := Walker{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f.passes++
		walker.Walk(root, &search{finder: f, ctx: ctx})
		if f.cached != nil {
			logrus.Debugf("finder: matched %s after %d pass(es)", f.cached, f.passes)
			return f.cached, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		now := time.Now()
		if !now.Before(deadline) {
			logrus.Debugf("finder: no match after %d pass(es)", f.passes)
			return nil, ErrNotFound
		}

		timer := time.NewTimer(min(deadline.Sub(now), f.interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// Passes reports how many walks the finder has performed since it was created.
func (f *Finder) Passes() int {
	return f.passes
}

// Reset drops the cached match so the next Find walks again.
func (f *Finder) Reset() {
	if f.cached != nil {
		f.cached.Close()
		f.cached = nil
	}
}

// Close resets the finder and releases its root.
func (f *Finder) Close() {
	f.Reset()
	if f.root != nil {
		f.root.Close()
		f.root = nil
	}
}

// Attribute finds the element and reads an attribute from it.
func (f *Finder) Attribute(ctx context.Context, attr Attribute[Value]) (Value, error) {
	return FinderGet(ctx, f, attr)
}

// SetAttribute finds the element and writes an attribute on it.
func (f *Finder) SetAttribute(ctx context.Context, attr Attribute[Value], v Value) error {
	return FinderSet(ctx, f, attr, v)
}

// PerformAction finds the element and performs the named action on it.
func (f *Finder) PerformAction(ctx context.Context, name string) error {
	el, err := f.Find(ctx)
	if err != nil {
		return err
	}
	return el.PerformAction(name)
}

// FinderGet is Get on the element found by f.
func FinderGet[T any](ctx context.Context, f *Finder, attr Attribute[T]) (T, error) {
	el, err := f.Find(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return Get(el, attr)
}

// FinderSet is Set on the element found by f.
func FinderSet[T any](ctx context.Context, f *Finder, attr Attribute[T], v T) error {
	el, err := f.Find(ctx)
	if err != nil {
		return err
	}
	return Set(el, attr, v)
}

// search is the visitor for one pass of a Finder.
type search struct {
	finder *Finder
	ctx    context.Context
	depth  int
}

func (s *search) Enter(el *Element) Flow {
	s.depth++
	if s.ctx.Err() != nil {
		return Exit
	}
	if s.finder.match(el) {
		s.finder.cached = el.Clone()
		return Exit
	}
	if s.depth > s.finder.maxDepth {
		return SkipSubtree
	}
	return Continue
}

func (s *search) Exit(*Element) {
	s.depth--
}
