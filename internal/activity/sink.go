// Package activity records a report for every incoming request on side
// channels that never influence the response.
package activity

import (
	"context"
	"io"
	"sync"
	"time"

	"jewelry-inventory-api/internal/metrics"
	"jewelry-inventory-api/internal/model"

	"go.uber.org/zap"
)

// Reporter defaults
const (
	DefaultQueueSize = 1024
	SinkTimeout      = 5 * time.Second
)

// Sink receives activity reports.
type Sink interface {
	// Name identifies the sink in logs and metrics.
	Name() string

	// Record stores or forwards one report.
	Record(ctx context.Context, report model.ActivityReport) error
}

// Reporter queues reports and fans them out to every configured sink on
// its own goroutine. Record never blocks the caller.
type Reporter struct {
	sinks  []Sink
	logger *zap.Logger
	queue  chan queuedReport
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

type queuedReport struct {
	ctx    context.Context
	report model.ActivityReport
}

// NewReporter creates a reporter over the given sinks and starts its
// worker. queueSize <= 0 uses DefaultQueueSize.
func NewReporter(logger *zap.Logger, queueSize int, sinks ...Sink) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	r := &Reporter{
		sinks:  sinks,
		logger: logger.With(zap.String("component", "activity")),
		queue:  make(chan queuedReport, queueSize),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

// Record enqueues report. When the queue is full, or the reporter is
// closed, the report is dropped and counted.
func (r *Reporter) Record(ctx context.Context, report model.ActivityReport) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		metrics.ActivityReportsDropped.Inc()
		return
	}

	select {
	case r.queue <- queuedReport{ctx: context.WithoutCancel(ctx), report: report}:
	default:
		metrics.ActivityReportsDropped.Inc()
	}
}

func (r *Reporter) run() {
	defer close(r.done)

	for q := range r.queue {
		for _, sink := range r.sinks {
			r.deliver(q.ctx, sink, q.report)
		}
	}
}

// deliver hands report to one sink. Failures are logged and counted,
// never returned.
func (r *Reporter) deliver(parent context.Context, sink Sink, report model.ActivityReport) {
	ctx, cancel := context.WithTimeout(parent, SinkTimeout)
	defer cancel()

	if err := sink.Record(ctx, report); err != nil {
		metrics.ActivitySinkErrors.WithLabelValues(sink.Name()).Inc()
		r.logger.Warn("activity sink failed",
			zap.String("sink", sink.Name()),
			zap.String("request_id", report.RequestID),
			zap.Error(err),
		)
	}
}

// Sinks returns the names of the configured sinks.
func (r *Reporter) Sinks() []string {
	names := make([]string, len(r.sinks))
	for i, s := range r.sinks {
		names[i] = s.Name()
	}
	return names
}

// Close stops accepting reports, delivers everything already queued and
// closes every sink that holds resources. It is safe to call more than once.
func (r *Reporter) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.done
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	<-r.done

	var firstErr error
	for _, sink := range r.sinks {
		if c, ok := sink.(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
