package domain

// Primitive is the kind of map geometry a draw command describes.
type Primitive string

const (
	// PrimitiveCircle is a circle with a radius in meters.
	PrimitiveCircle Primitive = "circle"
	// PrimitiveCircleMarker is a circle with a radius in screen pixels.
	PrimitiveCircleMarker Primitive = "circleMarker"
	// PrimitiveMarker is an icon marker.
	PrimitiveMarker Primitive = "marker"
	// PrimitivePolyline is a line through the points.
	PrimitivePolyline Primitive = "polyline"
)

// Style carries the stroke and fill properties of a draw command.
type Style struct {
	Color       string  `json:"color,omitempty"`
	FillColor   string  `json:"fillColor,omitempty"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      float64 `json:"weight"`
	DashArray   string  `json:"dashArray,omitempty"`
	ClassName   string  `json:"className,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// DrawCommand is one renderer-agnostic draw instruction.
type DrawCommand struct {
	Category  Category       `json:"category"`
	Primitive Primitive      `json:"primitive"`
	Points    []GeoPoint     `json:"points"`
	Radius    float64        `json:"radius,omitempty"`
	Style     Style          `json:"style"`
	Tooltip   string         `json:"tooltip,omitempty"`
	Popup     map[string]any `json:"popup,omitempty"`
}

// Summary is the textual digest of one category at a year.
type Summary struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Headline string   `json:"headline"`
	Details  []string `json:"details,omitempty"`
}

// Frame is the full regenerated output of every visible overlay at one year.
type Frame struct {
	Year      Year          `json:"year"`
	Label     string        `json:"label"`
	Visible   []Category    `json:"visible"`
	Commands  []DrawCommand `json:"commands"`
	Summaries []Summary     `json:"summaries"`
}
