// Package drag turns raw pointer events into drag-gesture callbacks: start,
// over, end. It owns the activation threshold that separates clicks from
// drags and the collision logic that picks the drop target.
package drag

import "math"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

func (r Rect) intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// cornerDistance is the mean distance between corresponding corners of two
// rects. Smaller means a better drop candidate.
func cornerDistance(a, b Rect) float64 {
	ca := a.corners()
	cb := b.corners()
	var sum float64
	for i := range ca {
		sum += distance(ca[i], cb[i])
	}
	return sum / float64(len(ca))
}

type TargetKind int

const (
	TargetColumn TargetKind = iota
	TargetCard
)

// Target is a registered drop area: a column container or a task card.
type Target struct {
	ID   string
	Kind TargetKind
	Rect Rect
}

// Callbacks receive the gesture lifecycle. OnDragEnd gets a nil target when
// the card was dropped outside every drop area; that is a cancellation, not
// an error.
type Callbacks struct {
	OnDragStart func(activeID string)
	OnDragOver  func(activeID, overID string)
	OnDragEnd   func(activeID string, overID *string)
}

type session struct {
	activeID string
	origin   Point
	rect     Rect
	started  bool
	lastOver string
}

type Controller struct {
	activation float64
	callbacks  Callbacks
	targets    []Target
	session    *session
}

// NewController builds a controller with the given activation distance: the
// pointer must travel at least that far from its press point before the
// gesture counts as a drag rather than a click.
func NewController(activationDistance float64, callbacks Callbacks) *Controller {
	return &Controller{
		activation: activationDistance,
		callbacks:  callbacks,
	}
}

// SetTargets replaces the registered drop targets. Order matters: when two
// targets tie on proximity, the earlier one wins.
func (c *Controller) SetTargets(targets []Target) {
	c.targets = append(c.targets[:0], targets...)
}

// PointerDown arms a potential drag of the card with the given id and rect.
func (c *Controller) PointerDown(activeID string, rect Rect, p Point) {
	c.session = &session{activeID: activeID, origin: p, rect: rect}
}

func (c *Controller) PointerMove(p Point) {
	s := c.session
	if s == nil {
		return
	}

	if !s.started {
		if distance(s.origin, p) < c.activation {
			return
		}
		s.started = true
		if c.callbacks.OnDragStart != nil {
			c.callbacks.OnDragStart(s.activeID)
		}
	}

	overID := c.collide(s.rect.translate(p.X-s.origin.X, p.Y-s.origin.Y), s.activeID)
	if overID != "" && overID != s.lastOver {
		s.lastOver = overID
		if c.callbacks.OnDragOver != nil {
			c.callbacks.OnDragOver(s.activeID, overID)
		}
	}
}

// PointerUp resolves the gesture. A press that never crossed the activation
// threshold ends silently (a click). An activated drag always emits
// OnDragEnd, with nil when no target qualifies.
func (c *Controller) PointerUp(p Point) {
	s := c.session
	c.session = nil
	if s == nil || !s.started {
		return
	}

	if c.callbacks.OnDragEnd == nil {
		return
	}

	overID := c.collide(s.rect.translate(p.X-s.origin.X, p.Y-s.origin.Y), s.activeID)
	if overID == "" {
		c.callbacks.OnDragEnd(s.activeID, nil)
		return
	}
	c.callbacks.OnDragEnd(s.activeID, &overID)
}

// Active reports whether an activated drag is in progress.
func (c *Controller) Active() bool {
	return c.session != nil && c.session.started
}

// collide picks the nearest target by corner distance among those the dragged
// rect overlaps. Ties resolve to the first registered target so behavior is
// deterministic.
func (c *Controller) collide(dragged Rect, excludeID string) string {
	bestID := ""
	bestDist := math.Inf(1)
	for _, target := range c.targets {
		if target.ID == excludeID {
			continue
		}
		if !dragged.intersects(target.Rect) {
			continue
		}
		if d := cornerDistance(dragged, target.Rect); d < bestDist {
			bestDist = d
			bestID = target.ID
		}
	}
	return bestID
}
