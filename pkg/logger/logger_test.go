package logger

import (
	"context"
	"testing"
)

func TestInitAndLog(t *testing.T) {
	if err := Init("debug"); err != nil {
		t.Fatalf("init: %v", err)
	}
	log := Get()
	ctx := context.Background()

	// Exercise every level and a named sub-logger; none of these may panic.
	log.Debug(ctx, "debug line", String("k", "v"))
	log.Info(ctx, "info line", Int("n", 1), Int64("m", 2))
	log.Warn(ctx, "warn line", Any("x", struct{}{}))
	log.Error(ctx, "error line", Error(nil))
	log.Named("sub").Info(ctx, "named line")
}

func TestSetLevelString(t *testing.T) {
	valid := []string{"", "debug", "info", "WARN", "warning", "Error"}
	for _, lvl := range valid {
		if err := SetLevelString(lvl); err != nil {
			t.Errorf("SetLevelString(%q) = %v, want nil", lvl, err)
		}
	}
	if err := SetLevelString("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
