package otel

import (
	"context"
	"testing"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("SOLCALC_OTEL_ENDPOINT", "")
	t.Setenv("SOLCALC_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("SOLCALC_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("SOLCALC_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	t.Setenv("SOLCALC_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("SOLCALC_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupRejectsInvalidSampleRatio(t *testing.T) {
	t.Setenv("SOLCALC_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("SOLCALC_OTEL_SAMPLE_RATIO", "half")

	shutdown, err := Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected invalid sample ratio error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSamplerBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: "AlwaysOnSampler"},
		{ratio: 2, want: "AlwaysOnSampler"},
		{ratio: 0, want: "AlwaysOffSampler"},
		{ratio: -1, want: "AlwaysOffSampler"},
	}
	for _, tc := range tests {
		if got := sampler(tc.ratio).Description(); got != tc.want {
			t.Fatalf("sampler(%v) = %q, want %q", tc.ratio, got, tc.want)
		}
	}
}
