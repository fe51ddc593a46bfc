package otel

import (
	"context"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		raw  string
		want map[string]string
	}{
		{"", map[string]string{}},
		{"Authorization=Basic abc", map[string]string{"Authorization": "Basic abc"}},
		{" a = 1 , b=2,=skip,novalue", map[string]string{"a": "1", "b": "2"}},
		{"x=a=b", map[string]string{"x": "a=b"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parseHeaders(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseHeaders(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("header %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestInit_NoEndpointIsNoop(t *testing.T) {
	ctx := context.Background()
	tel, err := Init(ctx, Config{})
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer tel.Shutdown(ctx)

	if tel.Tracer == nil || tel.Metrics == nil {
		t.Fatal("expected tracer and metrics to be set")
	}
	_, span := tel.Start(ctx, "test")
	span.End()

	tel.Metrics.RecordFileWritten(ctx, ".envrc")
	tel.Metrics.RecordBackup(ctx, ".envrc")
	tel.Metrics.RecordCheck(ctx, "tmux", true)
}

func TestNilMetricsAndTelemetry(t *testing.T) {
	ctx := context.Background()
	var m *Metrics
	m.RecordFileWritten(ctx, "x")
	m.RecordBackup(ctx, "x")
	m.RecordCheck(ctx, "x", false)

	var tel *Telemetry
	_, span := tel.Start(ctx, "nil")
	span.End()
	tel.Shutdown(ctx)
}
