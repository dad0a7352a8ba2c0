package timeline

import (
	"context"
	"sync"

	"github.com/goto/spotlight/core/session"
	"github.com/goto/spotlight/domain"
)

type annotationAppender interface {
	AppendAnnotations(ctx context.Context, sessionID string, events []*domain.Annotation, actor domain.Actor) ([]*domain.Annotation, error)
}

// Buffer is the append-only client-side store of annotation events captured
// while recording. Events are stamped with a monotonic order so replay is
// stable for events sharing a timestamp.
type Buffer struct {
	mu     sync.Mutex
	events []*domain.Annotation
	order  int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append records one tool event at the orchestrator's current elapsed time.
func (b *Buffer) Append(tool domain.AnnotationTool, frameID string, tStartMs int64, tEndMs *int64, payload map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, &domain.Annotation{
		Tool:     tool,
		FrameID:  frameID,
		TStartMs: tStartMs,
		TEndMs:   tEndMs,
		Order:    b.order,
		Payload:  payload,
	})
	b.order++
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Events returns a snapshot of the buffered events.
func (b *Buffer) Events() []*domain.Annotation {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*domain.Annotation, len(b.events))
	copy(out, b.events)
	return out
}

// Flush sends every buffered event to the session service in batches no
// larger than the append limit and clears the buffer on full success. A
// failed batch leaves the unsent remainder buffered.
func (b *Buffer) Flush(ctx context.Context, appender annotationAppender, sessionID string, actor domain.Actor) error {
	for {
		b.mu.Lock()
		if len(b.events) == 0 {
			b.mu.Unlock()
			return nil
		}
		n := len(b.events)
		if n > session.MaxAnnotationBatchSize {
			n = session.MaxAnnotationBatchSize
		}
		batch := make([]*domain.Annotation, n)
		copy(batch, b.events[:n])
		b.mu.Unlock()

		if _, err := appender.AppendAnnotations(ctx, sessionID, batch, actor); err != nil {
			return err
		}

		b.mu.Lock()
		b.events = b.events[n:]
		b.mu.Unlock()
	}
}

// ActiveFrame resolves which frame should be displayed at playback time t: the
// target of the last FRAME_CHANGE event with tStartMs <= t, or defaultFrame
// when no switch has happened yet. Events may be in any order.
func ActiveFrame(events []*domain.Annotation, t int64, defaultFrame string) string {
	active := defaultFrame
	bestT := int64(-1)
	bestOrder := -1
	for _, e := range events {
		if e.Tool != domain.AnnotationToolFrameChange || e.TStartMs > t {
			continue
		}
		if e.TStartMs < bestT || (e.TStartMs == bestT && e.Order < bestOrder) {
			continue
		}
		payload, err := DecodeFrameChange(e.Payload)
		if err != nil || payload.FrameID == "" {
			continue
		}
		active = payload.FrameID
		bestT = e.TStartMs
		bestOrder = e.Order
	}
	return active
}

// VisibleAt returns the annotation events that should be rendered at playback
// time t on the given frame: events whose interval [tStartMs, tEndMs] covers t
// (an event without tEndMs stays visible from its start onward).
func VisibleAt(events []*domain.Annotation, t int64, frameID string) []*domain.Annotation {
	var visible []*domain.Annotation
	for _, e := range events {
		if e.Tool == domain.AnnotationToolFrameChange || e.FrameID != frameID {
			continue
		}
		if e.TStartMs > t {
			continue
		}
		if e.TEndMs != nil && *e.TEndMs < t {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}
