package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterChatQueries         *prometheus.CounterVec
	CounterEmailsSent          *prometheus.CounterVec

	// posture monitor
	CounterFramesProcessed     prometheus.Counter
	CounterMalformedFrames     prometheus.Counter
	CounterIncorrectFrames     *prometheus.CounterVec
	CounterAlarmsFired         *prometheus.CounterVec
	CounterAlarmsDropped       prometheus.Counter
	CounterAlarmPlaybackErrors prometheus.Counter
	GaugeMonitorRunning        prometheus.Gauge

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramLLMDuration     prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("sportai", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("sportai", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterChatQueries := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "chat_queries",
		Help:      "The total number of athlete chat queries, by outcome",
	}, []string{"outcome"})
	counterEmailsSent := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "emails_sent",
		Help:      "The total number of sent emails, by template",
	}, []string{"template"})

	counterFramesProcessed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_frames_processed",
		Help:      "The total number of frames read by the form monitor",
	})
	counterIncorrectFrames := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_incorrect_frames",
		Help:      "The total number of frames classified as incorrect form",
	}, []string{"mode"})
	counterAlarmsFired := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_alarms_fired",
		Help:      "The total number of triggered posture alarms",
	}, []string{"mode"})
	counterMalformedFrames := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_frames_malformed",
		Help:      "Frames from the sensor that could not be decoded",
	})
	counterAlarmsDropped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_alarms_dropped",
		Help:      "Alarms dropped because the playback queue was full",
	})
	counterAlarmPlaybackErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_alarm_playback_errors",
		Help:      "The total number of failed alarm playbacks",
	})
	gaugeMonitorRunning := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posture_monitor_running",
		Help:      "1 while the form monitor loop is running",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramLLMDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "llm_request_duration_seconds",
		Help:      "Duration of generation requests to the LLM in seconds",
		Buckets:   []float64{.1, .25, .5, 1, 2, 4, 8, 16, 32},
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterChatQueries:         counterChatQueries,
		CounterEmailsSent:          counterEmailsSent,
		CounterFramesProcessed:     counterFramesProcessed,
		CounterMalformedFrames:     counterMalformedFrames,
		CounterIncorrectFrames:     counterIncorrectFrames,
		CounterAlarmsFired:         counterAlarmsFired,
		CounterAlarmsDropped:       counterAlarmsDropped,
		CounterAlarmPlaybackErrors: counterAlarmPlaybackErrors,
		GaugeMonitorRunning:        gaugeMonitorRunning,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
		HistogramLLMDuration:       histogramLLMDuration,
	}
}
