package posture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/sportai/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

var (
	ErrSensorUnavailable = errors.New("sensor unavailable")
	// ErrMalformedFrame marks a single undecodable frame; the stream stays usable.
	ErrMalformedFrame = errors.New("malformed frame")
)

// Sensor opens frame streams. Each successful Open acquires the underlying
// device, file or connection until the stream is closed.
type Sensor interface {
	Open(ctx context.Context) (FrameStream, error)
}

// FrameStream yields frames until io.EOF. Errors wrapping ErrMalformedFrame
// skip one frame, any other error ends the stream. Close must unblock a
// pending Next.
type FrameStream interface {
	Next(ctx context.Context) (Frame, error)
	Close() error
}

// FrameSink observes every processed frame, e.g. to render it.
type FrameSink interface {
	Consume(report FrameReport)
}

type alarmTrigger interface {
	Trigger(event AlarmEvent) bool
}

// Status is a point in time snapshot of the monitor.
type Status struct {
	Running         bool         `json:"running"`
	Mode            ExerciseMode `json:"mode"`
	Counter         int          `json:"counter"`
	FramesProcessed int64        `json:"framesProcessed"`
	AlarmsFired     int64        `json:"alarmsFired"`
	LastReport      *FrameReport `json:"lastReport,omitempty"`
}

// Monitor runs the frame loop: read, measure, classify, debounce, alarm.
type Monitor struct {
	sensor  Sensor
	alarm   alarmTrigger
	sinks   []FrameSink
	metrics *metrics.Manager
	log     *log.Entry
	now     func() time.Time

	mode    atomic.Value // ExerciseMode
	running atomic.Bool

	// lifecycleMu serializes Start and Stop
	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	stream      *releasableStream
	done        chan struct{}

	// replaced by Start, then written only by the loop goroutine
	debouncer *Debouncer

	lastReport      atomic.Pointer[FrameReport]
	framesProcessed atomic.Int64
	alarmsFired     atomic.Int64
}

func NewMonitor(
	sensor Sensor,
	alarm alarmTrigger,
	mode ExerciseMode,
	metricsManager *metrics.Manager,
	sinks ...FrameSink,
) *Monitor {
	m := &Monitor{
		sensor:    sensor,
		alarm:     alarm,
		sinks:     sinks,
		metrics:   metricsManager,
		log:       log.WithField("component", "form-monitor"),
		now:       time.Now,
		debouncer: NewDebouncer(AlarmThreshold),
	}
	if !mode.IsValid() {
		mode = ModeHandRaise
	}
	m.mode.Store(mode)
	return m
}

func (m *Monitor) Mode() ExerciseMode {
	return m.mode.Load().(ExerciseMode)
}

// SetMode switches the exercise evaluated from the next frame on. The
// consecutive incorrect frame counter is kept.
func (m *Monitor) SetMode(mode ExerciseMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("unknown exercise mode: %q", mode)
	}
	prev := m.mode.Swap(mode).(ExerciseMode)
	if prev != mode {
		m.log.Infof("exercise mode changed: %s -> %s", prev, mode)
	}
	return nil
}

func (m *Monitor) IsRunning() bool {
	return m.running.Load()
}

// Start acquires the sensor and launches the frame loop. It is a no-op when
// the loop is already running. The loop outlives ctx cancellation; use Stop.
func (m *Monitor) Start(ctx context.Context) error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	if m.running.Load() {
		return nil
	}

	// a previous loop may still be finishing after reaching the end of stream
	if m.done != nil {
		<-m.done
	}

	stream, err := m.sensor.Open(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSensorUnavailable, err)
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.stream = &releasableStream{FrameStream: stream}
	m.done = make(chan struct{})
	// a new stream starts a new streak
	m.debouncer = NewDebouncer(AlarmThreshold)
	m.lastReport.Store(nil)

	m.running.Store(true)
	m.metrics.GaugeMonitorRunning.Set(1)
	m.log.Infof("form monitor started, mode: %s", m.Mode())

	go m.loop(loopCtx, m.stream, m.done)

	return nil
}

// Stop signals the loop, releases the sensor and blocks until the loop has
// terminated. It is a no-op when not running.
func (m *Monitor) Stop() {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	if m.done == nil {
		return
	}

	m.running.Store(false)
	m.cancel()
	m.stream.release(m.log)
	<-m.done
	m.metrics.GaugeMonitorRunning.Set(0)
}

func (m *Monitor) Status() Status {
	st := Status{
		Running:         m.running.Load(),
		Mode:            m.Mode(),
		FramesProcessed: m.framesProcessed.Load(),
		AlarmsFired:     m.alarmsFired.Load(),
		LastReport:      m.lastReport.Load(),
	}
	if st.LastReport != nil {
		st.Counter = st.LastReport.Counter
	}
	return st
}

func (m *Monitor) loop(ctx context.Context, stream *releasableStream, done chan struct{}) {
	defer close(done)
	defer func() {
		stream.release(m.log)
		m.running.Store(false)
		m.metrics.GaugeMonitorRunning.Set(0)
	}()
	defer func() {
		if r := recover(); r != nil {
			m.log.Errorf("frame loop panic: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		frame, err := stream.Next(ctx)
		if errors.Is(err, ErrMalformedFrame) && ctx.Err() == nil {
			m.metrics.CounterMalformedFrames.Inc()
			m.log.Warnf("skipping frame: %s", err)
			continue
		}
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				m.log.Infoln("sensor stream ended")
			case ctx.Err() != nil:
				// stopped
			default:
				m.log.Errorf("read frame: %s", err)
			}
			return
		}

		report := m.process(frame)
		for _, sink := range m.sinks {
			sink.Consume(report)
		}
	}
}

func (m *Monitor) process(frame Frame) FrameReport {
	mode := m.Mode()
	report := FrameReport{
		Seq:       frame.Seq,
		Timestamp: frame.Timestamp,
		Width:     frame.Width,
		Height:    frame.Height,
		Mode:      mode,
		Keypoints: frame.Pose,
	}

	m.framesProcessed.Add(1)
	m.metrics.CounterFramesProcessed.Inc()

	measurement, ok := Measure(frame.Pose)
	if ok {
		report.PoseDetected = true
		report.ShoulderAngle = measurement.Shoulder
		report.ElbowAngle = measurement.Elbow
		report.Incorrect = IsIncorrect(measurement.Shoulder, measurement.Elbow, mode)
		report.Warning = Warning(mode, report.Incorrect)

		if report.Incorrect {
			m.metrics.CounterIncorrectFrames.WithLabelValues(mode.String()).Inc()
		}

		if m.debouncer.Observe(report.Incorrect) {
			report.AlarmFired = true
			m.fireAlarm(report)
		}
	}

	report.Counter = m.debouncer.Count()
	m.lastReport.Store(&report)

	return report
}

func (m *Monitor) fireAlarm(report FrameReport) {
	m.alarmsFired.Add(1)
	m.metrics.CounterAlarmsFired.WithLabelValues(report.Mode.String()).Inc()
	m.log.Warnf("incorrect %s form for %d frames, firing alarm", report.Mode, AlarmThreshold)

	m.alarm.Trigger(AlarmEvent{
		Mode:          report.Mode,
		FiredAt:       m.now(),
		FrameSeq:      report.Seq,
		ShoulderAngle: report.ShoulderAngle,
		ElbowAngle:    report.ElbowAngle,
	})
}

// releasableStream closes the wrapped stream at most once, whichever of
// Stop and the loop exit gets there first.
type releasableStream struct {
	FrameStream
	once sync.Once
}

func (s *releasableStream) release(logger *log.Entry) {
	s.once.Do(func() {
		if err := s.FrameStream.Close(); err != nil {
			logger.Warnf("release sensor: %s", err)
			return
		}
		logger.Debugln("sensor released")
	})
}
