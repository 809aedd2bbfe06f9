// Package idgen issues entity IDs as prefixed, monotonically increasing
// millisecond tokens ("gal-1736700000000"). Tokens never repeat within a
// generator: two calls in the same millisecond bump the counter forward.
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Generator produces IDs for one collection.
type Generator struct {
	mu     sync.Mutex
	prefix string
	last   int64
	now    func() time.Time
}

// New creates a Generator with the given prefix.
func New(prefix string) *Generator {
	return &Generator{prefix: prefix, now: time.Now}
}

// NewWithClock creates a Generator with an injected clock for tests.
func NewWithClock(prefix string, now func() time.Time) *Generator {
	return &Generator{prefix: prefix, now: now}
}

// Next returns a fresh ID.
// POST: Returned IDs are strictly increasing per generator and never reused
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return g.prefix + "-" + strconv.FormatInt(ms, 10)
}
