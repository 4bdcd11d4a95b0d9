package history

import (
	"context"
	"fmt"

	"github.com/2beens/sportai/internal/posture"
)

type alarmsAdder interface {
	Add(ctx context.Context, event posture.AlarmEvent) (*posture.AlarmEvent, error)
}

// Recorder persists alarms handed over by the alarm dispatcher.
type Recorder struct {
	repo alarmsAdder
}

func NewRecorder(repo alarmsAdder) *Recorder {
	return &Recorder{
		repo: repo,
	}
}

func (r *Recorder) Record(ctx context.Context, event posture.AlarmEvent) error {
	if _, err := r.repo.Add(ctx, event); err != nil {
		return fmt.Errorf("record %s alarm for frame %d: %w", event.Mode, event.FrameSeq, err)
	}
	return nil
}
