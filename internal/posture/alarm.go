package posture

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/2beens/sportai/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// AlarmRecorder persists fired alarms.
type AlarmRecorder interface {
	Record(ctx context.Context, event AlarmEvent) error
}

// AlarmDispatcher hands alarms over to a single playback worker through a
// bounded queue, so triggering never blocks the frame loop.
type AlarmDispatcher struct {
	player   Player
	recorder AlarmRecorder
	metrics  *metrics.Manager
	log      *log.Entry

	mu     sync.RWMutex
	closed bool
	queue  chan AlarmEvent
	wg     sync.WaitGroup

	dropped atomic.Int64
	played  atomic.Int64
	failed  atomic.Int64
}

// NewAlarmDispatcher starts the playback worker. The recorder may be nil.
func NewAlarmDispatcher(
	player Player,
	recorder AlarmRecorder,
	queueSize int,
	metricsManager *metrics.Manager,
) *AlarmDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}

	d := &AlarmDispatcher{
		player:   player,
		recorder: recorder,
		metrics:  metricsManager,
		log:      log.WithField("component", "alarm-dispatcher"),
		queue:    make(chan AlarmEvent, queueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// Trigger enqueues the alarm and reports whether it was accepted. A full
// queue or a closed dispatcher drops the alarm.
func (d *AlarmDispatcher) Trigger(event AlarmEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false
	}

	select {
	case d.queue <- event:
		return true
	default:
		d.dropped.Add(1)
		d.metrics.CounterAlarmsDropped.Inc()
		d.log.Warnf("alarm queue full, dropping alarm for frame %d", event.FrameSeq)
		return false
	}
}

// Close stops accepting alarms and waits for the queued ones to be handled.
func (d *AlarmDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *AlarmDispatcher) Dropped() int64 {
	return d.dropped.Load()
}

func (d *AlarmDispatcher) Played() int64 {
	return d.played.Load()
}

func (d *AlarmDispatcher) Failed() int64 {
	return d.failed.Load()
}

func (d *AlarmDispatcher) worker() {
	defer d.wg.Done()
	for event := range d.queue {
		d.handle(event)
	}
}

func (d *AlarmDispatcher) handle(event AlarmEvent) {
	ctx := context.Background()

	if err := d.play(ctx); err != nil {
		d.failed.Add(1)
		d.metrics.CounterAlarmPlaybackErrors.Inc()
		d.log.Errorf("alarm playback for frame %d: %s", event.FrameSeq, err)
	} else {
		d.played.Add(1)
	}

	if d.recorder == nil {
		return
	}
	if err := d.recorder.Record(ctx, event); err != nil {
		d.log.Errorf("record alarm for frame %d: %s", event.FrameSeq, err)
	}
}

func (d *AlarmDispatcher) play(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("player panic: %v\n%s", r, debug.Stack())
		}
	}()
	return d.player.Play(ctx)
}
