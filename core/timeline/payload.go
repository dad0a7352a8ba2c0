package timeline

import (
	"fmt"

	"github.com/goto/spotlight/domain"
	"github.com/mitchellh/mapstructure"
)

// DecodeStroke interprets a PEN or HIGHLIGHT payload.
func DecodeStroke(payload map[string]interface{}) (*domain.StrokePayload, error) {
	var out domain.StrokePayload
	if err := mapstructure.Decode(payload, &out); err != nil {
		return nil, fmt.Errorf("decoding stroke payload: %w", err)
	}
	return &out, nil
}

// DecodeArrow interprets an ARROW payload.
func DecodeArrow(payload map[string]interface{}) (*domain.ArrowPayload, error) {
	var out domain.ArrowPayload
	if err := mapstructure.Decode(payload, &out); err != nil {
		return nil, fmt.Errorf("decoding arrow payload: %w", err)
	}
	return &out, nil
}

// DecodeFrameChange interprets a FRAME_CHANGE payload.
func DecodeFrameChange(payload map[string]interface{}) (*domain.FrameChangePayload, error) {
	var out domain.FrameChangePayload
	if err := mapstructure.Decode(payload, &out); err != nil {
		return nil, fmt.Errorf("decoding frame change payload: %w", err)
	}
	return &out, nil
}

// EncodeFrameChange builds the payload stored for a FRAME_CHANGE event.
func EncodeFrameChange(frameID string) map[string]interface{} {
	return map[string]interface{}{"frame_id": frameID}
}
