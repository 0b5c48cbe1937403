package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"jewelry-inventory-api/internal/activity"
	"jewelry-inventory-api/pkg/response"
)

// StatsSource reports backend statistics.
type StatsSource interface {
	Stats(ctx context.Context) (map[string]interface{}, error)
}

// StatsHandler serves operational statistics.
type StatsHandler struct {
	inventory StatsSource
	dbType    string
	memory    *activity.MemorySink
	redis     *activity.RedisSink
	sinks     []string
	startTime time.Time
}

// StatsConfig holds the dependencies of the stats handler. Nil sinks are
// reported as not configured.
type StatsConfig struct {
	Inventory StatsSource
	DBType    string
	Memory    *activity.MemorySink
	Redis     *activity.RedisSink
	Sinks     []string
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(cfg StatsConfig) *StatsHandler {
	return &StatsHandler{
		inventory: cfg.Inventory,
		dbType:    cfg.DBType,
		memory:    cfg.Memory,
		redis:     cfg.Redis,
		sinks:     cfg.Sinks,
		startTime: time.Now(),
	}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats := make(map[string]interface{})

	// System info
	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["uptime_human"] = time.Since(h.startTime).Round(time.Second).String()
	stats["server_time"] = time.Now().Format(time.RFC3339)
	stats["db_type"] = h.dbType

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":      float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":        float64(memStats.Sys) / 1024 / 1024,
		"heap_inuse_mb": float64(memStats.HeapInuse) / 1024 / 1024,
		"num_gc":        memStats.NumGC,
		"goroutines":    runtime.NumGoroutine(),
	}

	if h.inventory != nil {
		dbStats, err := h.inventory.Stats(ctx)
		if err == nil {
			dbStats["status"] = "connected"
			stats["inventory"] = dbStats
		} else {
			stats["inventory"] = map[string]interface{}{
				"status": "error",
				"error":  err.Error(),
			}
		}
	} else {
		stats["inventory"] = map[string]interface{}{
			"status": "not_configured",
		}
	}

	stats["activity"] = h.activityStats(ctx)

	stats["runtime"] = map[string]interface{}{
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"cpus":       runtime.NumCPU(),
	}

	response.OK(w, stats)
}

func (h *StatsHandler) activityStats(ctx context.Context) map[string]interface{} {
	out := map[string]interface{}{
		"sinks": h.sinks,
	}

	if h.memory != nil {
		out["memory"] = map[string]interface{}{
			"held":     h.memory.Len(),
			"recorded": h.memory.Total(),
		}
	}

	if h.redis == nil {
		out["redis"] = map[string]interface{}{"status": "not_configured"}
		return out
	}

	count, err := h.redis.Count(ctx)
	if err != nil {
		out["redis"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		out["redis"] = map[string]interface{}{
			"status":  "connected",
			"entries": count,
		}
	}
	return out
}
