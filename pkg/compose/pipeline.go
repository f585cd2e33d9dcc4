// Package compose accumulates generated parts and maintains the combined,
// welded mesh of the whole composition.
package compose

import (
	"fmt"
	"sync"

	"github.com/chazu/tenon/pkg/geom"
)

// Pipeline collects meshes in append order and caches a combined+welded
// result over all of them. The cache is rebuilt from scratch on every
// append; the rebuild is quadratic-ish across a session but the part count
// is small, and rebuilding keeps the weld's first-match scan order exact.
// An incremental update would have to reproduce that scan order, not just
// the final counts, so don't introduce one casually.
//
// The combined result is absent until at least two parts exist; with a
// single part there is nothing to fuse and callers use the part directly.
// A Pipeline is safe for concurrent use. Each caller constructs and passes
// its own instance, there is no process-wide pipeline.
type Pipeline struct {
	mu       sync.Mutex
	meshes   []*geom.Mesh
	combined *geom.Mesh
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Append adds a copy of m to the composition and rebuilds the combined
// result. A malformed mesh is rejected and leaves the pipeline unchanged.
func (p *Pipeline) Append(m *geom.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("compose: append: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.meshes = append(p.meshes, m.Clone())
	return p.recompute()
}

// recompute rebuilds the cached result. Callers hold mu.
func (p *Pipeline) recompute() error {
	if len(p.meshes) < 2 {
		p.combined = nil
		return nil
	}
	c, err := geom.Concat(p.meshes)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}
	w, err := geom.Weld(c, geom.DefaultWeldThreshold)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}
	p.combined = w
	return nil
}

// Result returns a copy of the combined+welded mesh, or false while fewer
// than two parts have been appended.
func (p *Pipeline) Result() (*geom.Mesh, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.combined == nil {
		return nil, false
	}
	return p.combined.Clone(), true
}

// Clear empties the accumulator and drops the cached result.
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.meshes = nil
	p.combined = nil
}

// Len returns the number of parts appended so far.
func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.meshes)
}
