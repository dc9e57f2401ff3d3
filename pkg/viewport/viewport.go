// Package viewport tracks which regions of a scrolling page are engaged
// for a given viewport position and fires state-change callbacks on each
// transition.
//
// A Controller is driven by explicit Evaluate calls with a Snapshot. It
// owns no timers and performs no I/O; hosts are expected to coalesce
// bursts of scroll and resize signals before calling Evaluate.
//
// A Controller is not safe for concurrent use. It is designed to live
// inside a single event loop (for example a bubbletea Update function).
// Register, Unregister and Evaluate may all be called from inside an
// OnChange callback.
package viewport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrGeometryUnavailable reports a bounds query that failed or produced
	// a zero-height interval. The region is skipped for that pass only.
	ErrGeometryUnavailable = errors.New("viewport: geometry unavailable")

	// ErrCallbackFailure reports an OnChange callback that panicked. The
	// remaining regions are still evaluated.
	ErrCallbackFailure = errors.New("viewport: callback failure")
)

// BoundsFunc returns a region's current interval in scroll coordinates.
type BoundsFunc func() (Interval, error)

// Region describes one watched unit of the page.
type Region struct {
	// ID is informational. It correlates callbacks with host elements but
	// does not need to be unique.
	ID string

	// Bounds is queried on every evaluation. It may be nil for
	// ScrollDepth regions.
	Bounds BoundsFunc

	Policy Policy

	// OnChange receives the new engagement state on every transition.
	OnChange func(engaged bool)
}

// Handle identifies a registered region.
type Handle struct {
	region Region
	state  bool
	active bool
}

// ID returns the region's informational identifier.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.region.ID
}

// Active reports whether the handle is still in the controller's set.
func (h *Handle) Active() bool {
	return h != nil && h.active
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for skipped regions and recovered
// callback panics. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorHandler installs a hook that receives every
// ErrGeometryUnavailable and ErrCallbackFailure, wrapped with the region ID.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Controller) {
		c.onError = fn
	}
}

// Controller evaluates registered regions against viewport snapshots.
type Controller struct {
	regions []*Handle
	current *Handle // engaged ActiveSection region, if any

	evaluating bool
	pending    *Snapshot

	logger  *slog.Logger
	onError func(error)
}

// New creates an empty Controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds region to the active set. The region is not evaluated
// until the next Evaluate call.
func (c *Controller) Register(region Region) *Handle {
	h := &Handle{region: region, active: true}
	c.regions = append(c.regions, h)
	return h
}

// Unregister removes h from the active set. Unregistering a nil or already
// removed handle is a no-op.
func (c *Controller) Unregister(h *Handle) {
	if h == nil || !h.active {
		return
	}
	h.active = false
	for i, r := range c.regions {
		if r == h {
			c.regions = append(c.regions[:i:i], c.regions[i+1:]...)
			break
		}
	}
	if c.current == h {
		c.current = nil
	}
}

// Len returns the number of regions in the active set.
func (c *Controller) Len() int {
	return len(c.regions)
}

// Engaged returns the last computed state of h. A reveal region that has
// fired reports true forever.
func (c *Controller) Engaged(h *Handle) bool {
	return h != nil && h.state
}

// Evaluate recomputes engagement for every active region, in registration
// order, and fires OnChange for each transition.
//
// The set is snapshotted before traversal, so callbacks may register or
// unregister regions freely: removed regions are skipped when their turn
// comes and new regions wait for the next pass. An Evaluate issued from a
// callback is deferred until the current pass completes.
func (c *Controller) Evaluate(s Snapshot) {
	if c.evaluating {
		c.pending = &s
		return
	}
	c.evaluating = true
	defer func() { c.evaluating = false }()

	c.pass(s)
	for c.pending != nil {
		next := *c.pending
		c.pending = nil
		c.pass(next)
	}
}

func (c *Controller) pass(s Snapshot) {
	order := make([]*Handle, len(c.regions))
	copy(order, c.regions)

	geometry := make(map[*Handle]Interval, len(order))
	winner := c.resolveSection(order, s, geometry)
	prev := c.current

	for _, h := range order {
		if !h.active {
			continue
		}
		switch p := h.region.Policy.(type) {
		case OneShotReveal:
			iv, ok := c.bounds(h, geometry)
			if !ok || h.state || !p.engaged(iv, s) {
				continue
			}
			h.state = true
			c.fire(h, true)
			c.Unregister(h)

		case ScrollDepth:
			engaged := p.engaged(s)
			if engaged == h.state {
				continue
			}
			h.state = engaged
			c.fire(h, engaged)

		case ActiveSection:
			switch {
			case h == winner && !h.state:
				if prev != nil && prev != h && prev.active && prev.state {
					prev.state = false
					c.fire(prev, false)
				}
				h.state = true
				c.current = h
				c.fire(h, true)
			case h == prev && winner == nil && h.state && c.lostGeometry(h, geometry):
				h.state = false
				c.current = nil
				c.fire(h, false)
			}

		default:
			c.logger.Warn("viewport: unknown policy", "region", h.region.ID)
		}
	}
}

// resolveSection picks the ActiveSection region to engage in this pass.
// The engaged region keeps the slot for as long as it still overlaps the
// band; otherwise the first overlapping region in registration order wins.
// Regions whose geometry is unavailable cannot win, but an engaged region
// with missing geometry keeps its state unless another region takes over.
func (c *Controller) resolveSection(order []*Handle, s Snapshot, geometry map[*Handle]Interval) *Handle {
	var checked *Handle
	if cur := c.current; cur != nil && cur.active && cur.state {
		if p, ok := cur.region.Policy.(ActiveSection); ok {
			checked = cur
			if iv, ok := c.bounds(cur, geometry); ok && p.engaged(iv, s) {
				return cur
			}
		}
	}
	for _, h := range order {
		p, ok := h.region.Policy.(ActiveSection)
		if !ok || !h.active || h == checked {
			continue
		}
		iv, ok := c.bounds(h, geometry)
		if !ok {
			continue
		}
		if p.engaged(iv, s) {
			return h
		}
	}
	return nil
}

// lostGeometry reports whether h lost engagement because it moved out of
// the band, as opposed to a failed bounds query.
func (c *Controller) lostGeometry(h *Handle, geometry map[*Handle]Interval) bool {
	_, ok := geometry[h]
	return ok
}

// bounds queries and memoises a region's interval for the current pass.
func (c *Controller) bounds(h *Handle, geometry map[*Handle]Interval) (Interval, bool) {
	if iv, ok := geometry[h]; ok {
		return iv, true
	}
	if h.region.Bounds == nil {
		c.skip(h, fmt.Errorf("region %q: %w: no bounds provider", h.region.ID, ErrGeometryUnavailable))
		return Interval{}, false
	}
	iv, err := c.queryBounds(h)
	if err != nil {
		c.skip(h, fmt.Errorf("region %q: %w: %v", h.region.ID, ErrGeometryUnavailable, err))
		return Interval{}, false
	}
	if iv.Degenerate() {
		c.skip(h, fmt.Errorf("region %q: %w: degenerate interval [%g, %g)", h.region.ID, ErrGeometryUnavailable, iv.Top, iv.Bottom))
		return Interval{}, false
	}
	geometry[h] = iv
	return iv, true
}

// queryBounds calls the bounds provider, converting a panic into an error.
func (c *Controller) queryBounds(h *Handle) (iv Interval, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bounds provider panicked: %v", r)
		}
	}()
	return h.region.Bounds()
}

// fire invokes the region's callback, recovering and reporting panics so
// the remaining regions are still evaluated.
func (c *Controller) fire(h *Handle, engaged bool) {
	if h.region.OnChange == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("region %q: %w: %v", h.region.ID, ErrCallbackFailure, r)
			c.logger.Error("viewport: callback panicked", "region", h.region.ID, "engaged", engaged, "err", err)
			if c.onError != nil {
				c.onError(err)
			}
		}
	}()
	h.region.OnChange(engaged)
}

func (c *Controller) skip(h *Handle, err error) {
	c.logger.Log(context.Background(), slog.LevelDebug, "viewport: region skipped", "region", h.region.ID, "err", err)
	if c.onError != nil {
		c.onError(err)
	}
}
