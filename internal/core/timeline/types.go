// Package timeline lays out instants on a bounded horizontal axis: it projects
// events to ratios, groups events that would overlap at the current axis width
// and zooms into a group on demand. Everything here is pure; rendering lives in
// the presentation layer.
package timeline

// Range is a span of epoch milliseconds. It is valid when End > Start.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Span returns End - Start.
func (r Range) Span() int64 {
	return r.End - r.Start
}

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool {
	return r.End > r.Start
}

// Clamp restricts instant to the range.
func (r Range) Clamp(instant int64) int64 {
	if instant < r.Start {
		return r.Start
	}
	if instant > r.End {
		return r.End
	}
	return instant
}

// Contains reports whether instant lies inside the range, bounds included.
func (r Range) Contains(instant int64) bool {
	return instant >= r.Start && instant <= r.End
}

type Placement string

const (
	PlacementAbove Placement = "above"
	PlacementBelow Placement = "below"
)

type Marker string

const (
	MarkerDot      Marker = "dot"
	MarkerTriangle Marker = "triangle"
)

type Accent string

const (
	AccentDefault   Accent = "default"
	AccentHighlight Accent = "highlight"
	AccentMuted     Accent = "muted"
)

// Event is a labelled instant. IDs are unique within one layout.
type Event struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	SubLabel  string    `json:"sub_label,omitempty"`
	Instant   int64     `json:"instant"`
	Placement Placement `json:"placement"`
	Marker    Marker    `json:"marker"`
	Accent    Accent    `json:"accent"`
}

// Tick is a labelled axis mark
type Tick struct {
	ID      string `json:"id"`
	Instant int64  `json:"instant"`
	Label   string `json:"label"`
}

type ItemKind int

const (
	ItemSingle ItemKind = iota
	ItemGroup
)

// RenderItem is either a single event or a group of events too close to draw
// separately. Ratio is the marker position in [0,1]; for a group it is the mean
// of its members' ratios.
type RenderItem struct {
	Kind       ItemKind `json:"kind"`
	ID         string   `json:"id"`
	Events     []Event  `json:"events"`
	Ratio      float64  `json:"ratio"`
	StartRatio float64  `json:"start_ratio"`
	EndRatio   float64  `json:"end_ratio"`
	// ValueRange spans the members' clamped instants
	ValueRange Range `json:"value_range"`
	// Clamped is set when the event, or any member of a group, lies outside the
	// axis range
	Clamped bool `json:"clamped,omitempty"`
}

// Count returns the number of events the item stands for.
func (i RenderItem) Count() int {
	return len(i.Events)
}

// IsGroup reports whether the item is a group.
func (i RenderItem) IsGroup() bool {
	return i.Kind == ItemGroup
}
