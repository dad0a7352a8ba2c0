package domain

type AnnotationTool string

const (
	AnnotationToolPen         AnnotationTool = "PEN"
	AnnotationToolArrow       AnnotationTool = "ARROW"
	AnnotationToolHighlight   AnnotationTool = "HIGHLIGHT"
	AnnotationToolFrameChange AnnotationTool = "FRAME_CHANGE"
)

// Annotation is one timestamped tool event within a session. Payload is a
// tool-specific document that the server stores opaquely; only the client
// renderer interprets it (see core/timeline).
type Annotation struct {
	ID        string                 `json:"id" yaml:"id"`
	SessionID string                 `json:"session_id" yaml:"session_id"`
	FrameID   string                 `json:"frame_id,omitempty" yaml:"frame_id,omitempty"`
	Tool      AnnotationTool         `json:"tool" yaml:"tool"`
	TStartMs  int64                  `json:"t_start_ms" yaml:"t_start_ms"`
	TEndMs    *int64                 `json:"t_end_ms,omitempty" yaml:"t_end_ms,omitempty"`
	Order     int                    `json:"order" yaml:"order"`
	Payload   map[string]interface{} `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Point is a coordinate normalized to [0,1] relative to the frame.
type Point struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

// StrokePayload is the payload shape shared by PEN and HIGHLIGHT events.
type StrokePayload struct {
	Points []Point `json:"points" mapstructure:"points"`
	Color  string  `json:"color" mapstructure:"color"`
	Width  float64 `json:"width" mapstructure:"width"`
}

type ArrowPayload struct {
	From  Point   `json:"from" mapstructure:"from"`
	To    Point   `json:"to" mapstructure:"to"`
	Color string  `json:"color" mapstructure:"color"`
	Width float64 `json:"width" mapstructure:"width"`
}

type FrameChangePayload struct {
	FrameID string `json:"frame_id" mapstructure:"frame_id"`
}
