package activity

import (
	"context"
	"time"

	"jewelry-inventory-api/internal/model"

	"go.uber.org/zap"
)

// LogSink writes each report as a structured log entry.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a log sink.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Name implements Sink.
func (s *LogSink) Name() string { return "log" }

// Record implements Sink.
func (s *LogSink) Record(_ context.Context, report model.ActivityReport) error {
	fields := []zap.Field{
		zap.String("timestamp", report.Timestamp.UTC().Format(time.RFC3339Nano)),
		zap.String("method", report.Method),
		zap.String("path", report.Path),
		zap.String("request_id", report.RequestID),
	}
	if report.HasQuery() {
		fields = append(fields, zap.Any("query", report.Query))
	} else {
		fields = append(fields, zap.String("query", "none"))
	}

	s.logger.Info("activity report", fields...)
	return nil
}
