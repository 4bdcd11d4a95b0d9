package sensor

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/2beens/sportai/internal/posture"
)

// maxCoordinate bounds landmark coordinates far outside any real frame.
const maxCoordinate = 1 << 16

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// wireFrame is the JSON frame produced by the pose estimator, e.g.
//
//	{"seq":1,"timestamp":"2025-01-02T15:04:05Z","width":640,"height":480,
//	 "normalized":true,"landmarks":{"left_shoulder":{"x":0.41,"y":0.33}}}
type wireFrame struct {
	Seq        int64                `json:"seq"`
	Timestamp  time.Time            `json:"timestamp"`
	Width      int                  `json:"width"`
	Height     int                  `json:"height"`
	Normalized bool                 `json:"normalized"`
	Landmarks  map[string]wirePoint `json:"landmarks"`
}

// DecodeFrame parses one wire frame. Normalized coordinates are scaled to
// frame pixels, truncated and clamped to ±maxCoordinate. A missing landmarks
// object means no pose. Errors wrap posture.ErrMalformedFrame.
func DecodeFrame(data []byte) (posture.Frame, error) {
	var wf wireFrame
	if err := json.Unmarshal(data, &wf); err != nil {
		return posture.Frame{}, fmt.Errorf("%w: %w", posture.ErrMalformedFrame, err)
	}

	if wf.Normalized && (wf.Width <= 0 || wf.Height <= 0) {
		return posture.Frame{}, fmt.Errorf("%w: frame %d: normalized landmarks need frame size", posture.ErrMalformedFrame, wf.Seq)
	}

	frame := posture.Frame{
		Seq:       wf.Seq,
		Timestamp: wf.Timestamp,
		Width:     wf.Width,
		Height:    wf.Height,
	}
	if frame.Timestamp.IsZero() {
		frame.Timestamp = time.Now()
	}

	if wf.Landmarks == nil {
		return frame, nil
	}

	frame.Pose = make(posture.Pose, len(wf.Landmarks))
	for name, p := range wf.Landmarks {
		x, y := p.X, p.Y
		if wf.Normalized {
			x *= float64(wf.Width)
			y *= float64(wf.Height)
		}
		frame.Pose[posture.Landmark(name)] = posture.Point{X: toPixel(x), Y: toPixel(y)}
	}

	return frame, nil
}

func toPixel(v float64) int {
	return int(math.Max(-maxCoordinate, math.Min(maxCoordinate, v)))
}
