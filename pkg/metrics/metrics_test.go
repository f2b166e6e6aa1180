package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewManager_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewManager(WithRegistry(reg), WithNamespace("testns"))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metrics, got none")
	}
	for _, f := range families {
		if got := f.GetName(); !strings.HasPrefix(got, "testns_") {
			t.Errorf("metric %q not namespaced", got)
		}
	}
}

func TestGlobalRecorders_DoNotPanic(t *testing.T) {
	RecordReplace(3, 5, 5)
	RecordIngestFailure()
	RecordMatchRun(2, 0.05)
	RecordMatchScore(92)
	RecordMatchFailure()
	RecordHTTPRequest("match", "POST", "200", 0.01)

	if GetRegistry() == nil {
		t.Fatal("expected a global registry")
	}
}
