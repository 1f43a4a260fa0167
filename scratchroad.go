package scratchroad

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. In surface space the coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Lerp returns the point at fractions (fx, fy) across the rectangle.
func (r Rect) Lerp(fx, fy float64) Vec2 {
	return Vec2{X: lerp(r.X, r.X+r.Width, fx), Y: lerp(r.Y, r.Y+r.Height, fy)}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// At returns the value at fraction t between Min and Max.
func (r Range) At(t float64) float64 {
	return lerp(r.Min, r.Max, t)
}

// Side identifies a lane side of the road.
type Side uint8

const (
	SideNone  Side = iota // no spawn recorded yet
	SideLeft              // left of the road center
	SideRight             // right of the road center
)

// Opposite returns the other lane side. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Sign returns -1 for the left side, +1 for the right side and 0 otherwise.
func (s Side) Sign() float64 {
	switch s {
	case SideLeft:
		return -1
	case SideRight:
		return 1
	default:
		return 0
	}
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventObstacleSpawned    EventType = iota // an obstacle entered the active set
	EventObstacleDespawned                   // an obstacle passed the exit line and was recycled
	EventLaneMarkingSpawned                  // a lane marking was placed on the road
	EventLaneMarkingHidden                   // a lane marking passed the end line
	EventProgress                            // a progress signal was reported
	EventScratchComplete                     // every region has been scratched
)

func (t EventType) String() string {
	switch t {
	case EventObstacleSpawned:
		return "obstacle-spawned"
	case EventObstacleDespawned:
		return "obstacle-despawned"
	case EventLaneMarkingSpawned:
		return "lane-spawned"
	case EventLaneMarkingHidden:
		return "lane-hidden"
	case EventProgress:
		return "progress"
	case EventScratchComplete:
		return "scratch-complete"
	default:
		return "unknown"
	}
}

// lerp linearly interpolates between a and b by t. The endpoints are exact:
// lerp(a, b, 0) == a and lerp(a, b, 1) == b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
