package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"maitri/internal/db"
)

var (
	resolutionDesc = prometheus.NewDesc(
		"maitri_resolutions_total",
		"Total replies produced, by source (keyword or topic) and rule or topic name",
		[]string{"source", "name"},
		nil,
	)

	alertsRaised = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "maitri_alerts_raised_total",
		Help: "Emergency alerts raised since process start, by level",
	}, []string{"level"})
)

// ResolutionCollector is a custom Prometheus collector that reads resolution
// counts from the store on each scrape.
type ResolutionCollector struct {
	store db.Store
}

// NewResolutionCollector creates a collector over store.
func NewResolutionCollector(store db.Store) *ResolutionCollector {
	return &ResolutionCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *ResolutionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- resolutionDesc
}

// Collect queries the store for all counters and emits them.
func (c *ResolutionCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.store.GetAllResolutionCounts(context.Background())
	if err != nil {
		slog.Error("failed to collect resolution metrics", "error", err)
		return
	}
	for _, rc := range counts {
		ch <- prometheus.MustNewConstMetric(
			resolutionDesc,
			prometheus.CounterValue,
			float64(rc.Count),
			rc.Source,
			rc.Name,
		)
	}
}

// Recorder provides async resolution recording.
type Recorder struct {
	store db.Store
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder. activeSessions
// reports the number of live chat sessions. Must be called once at startup.
func Init(store db.Store, activeSessions func() int) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(NewResolutionCollector(store))
		prometheus.MustRegister(alertsRaised)
		prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "maitri_chat_sessions",
			Help: "Chat sessions currently held in memory",
		}, func() float64 { return float64(activeSessions()) }))
	})
}

// RecordResolution asynchronously records which rule or topic produced a reply.
func RecordResolution(source, name string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.store.IncrementResolution(context.Background(), source, name); err != nil {
			slog.Error("failed to record resolution", "source", source, "name", name, "error", err)
		}
	}()
}

// RecordAlert counts a raised emergency alert.
func RecordAlert(level string) {
	alertsRaised.WithLabelValues(level).Inc()
}
