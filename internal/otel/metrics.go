package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tmuxify"

// Metrics holds the tmuxify counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	FilesWritten   metric.Int64Counter
	BackupsCreated metric.Int64Counter
	DoctorChecks   metric.Int64Counter
}

// NewMetrics creates the instruments on the global MeterProvider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.FilesWritten, err = meter.Int64Counter("tmuxify.files.written",
		metric.WithDescription("Generated files written to disk, by file name"))
	if err != nil {
		return nil, err
	}

	m.BackupsCreated, err = meter.Int64Counter("tmuxify.backups.created",
		metric.WithDescription("Timestamped backups made before overwriting, by file name"))
	if err != nil {
		return nil, err
	}

	m.DoctorChecks, err = meter.Int64Counter("tmuxify.doctor.checks",
		metric.WithDescription("Doctor checks run, partitioned by check and result"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordFileWritten counts one artifact written.
func (m *Metrics) RecordFileWritten(ctx context.Context, file string) {
	if m == nil {
		return
	}
	m.FilesWritten.Add(ctx, 1, metric.WithAttributes(attribute.String("file", file)))
}

// RecordBackup counts one backup created.
func (m *Metrics) RecordBackup(ctx context.Context, file string) {
	if m == nil {
		return
	}
	m.BackupsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("file", file)))
}

// RecordCheck counts one doctor check and whether it passed.
func (m *Metrics) RecordCheck(ctx context.Context, check string, passed bool) {
	if m == nil {
		return
	}
	result := "fail"
	if passed {
		result = "pass"
	}
	m.DoctorChecks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("check", check),
		attribute.String("result", result),
	))
}
