package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"maitri/internal/db"
)

func TestResolutionCollector(t *testing.T) {
	store := db.NewMemoryStore()
	ctx := context.Background()
	store.IncrementResolution(ctx, "keyword", "hello")
	store.IncrementResolution(ctx, "keyword", "hello")
	store.IncrementResolution(ctx, "topic", "sleep")

	c := NewResolutionCollector(store)
	if n := testutil.CollectAndCount(c); n != 2 {
		t.Fatalf("CollectAndCount() = %d, want 2", n)
	}

	expected := `
# HELP maitri_resolutions_total Total replies produced, by source (keyword or topic) and rule or topic name
# TYPE maitri_resolutions_total counter
maitri_resolutions_total{name="hello",source="keyword"} 2
maitri_resolutions_total{name="sleep",source="topic"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestRecordAlert(t *testing.T) {
	before := testutil.ToFloat64(alertsRaised.WithLabelValues("critical"))
	RecordAlert("critical")
	if got := testutil.ToFloat64(alertsRaised.WithLabelValues("critical")); got != before+1 {
		t.Errorf("alerts counter = %v, want %v", got, before+1)
	}
}

func TestRecordResolution_NoRecorder(t *testing.T) {
	// Before Init, recording is a no-op and must not panic.
	if recorder != nil {
		t.Skip("recorder already initialized")
	}
	RecordResolution("keyword", "hello")
}
