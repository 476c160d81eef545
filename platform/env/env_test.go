package env

import (
	"go.uber.org/zap"
	"testing"
	"time"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTEBOOK_TEST_STRING", "")
	if got := OrDefault(log, "NOTEBOOK_TEST_STRING", "fallback"); got != "fallback" {
		t.Fatalf("Test OrDefault: Should return the default when the var is empty: %q", got)
	}

	t.Setenv("NOTEBOOK_TEST_STRING", "value")
	if got := OrDefault(log, "NOTEBOOK_TEST_STRING", "fallback"); got != "value" {
		t.Fatalf("Test OrDefault: Should return the var value when set: %q", got)
	}
}

func TestParsedDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTEBOOK_TEST_DURATION", "3s")
	if got := DurationDefault(log, "NOTEBOOK_TEST_DURATION", "1s"); got != 3*time.Second {
		t.Fatalf("Test DurationDefault: Should parse the var value: %v", got)
	}
	t.Setenv("NOTEBOOK_TEST_DURATION", "soon")
	if got := DurationDefault(log, "NOTEBOOK_TEST_DURATION", "1s"); got != time.Second {
		t.Fatalf("Test DurationDefault: Should fall back to the default on a bad value: %v", got)
	}

	t.Setenv("NOTEBOOK_TEST_INT", "many")
	if got := IntDefault(log, "NOTEBOOK_TEST_INT", "4"); got != 4 {
		t.Fatalf("Test IntDefault: Should fall back to the default on a bad value: %v", got)
	}

	t.Setenv("NOTEBOOK_TEST_BOOL", "")
	if got := BoolDefault(log, "NOTEBOOK_TEST_BOOL", "f"); got {
		t.Fatalf("Test BoolDefault: Should parse \"f\" as false")
	}
	t.Setenv("NOTEBOOK_TEST_BOOL", "true")
	if got := BoolDefault(log, "NOTEBOOK_TEST_BOOL", "f"); !got {
		t.Fatalf("Test BoolDefault: Should parse \"true\" as true")
	}
}
