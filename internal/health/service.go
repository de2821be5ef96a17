package health

import (
	"context"
	"fmt"
	"time"

	"lifeflow-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// DBPinger is optional for the health check. If nil, the database is
// reported as disconnected.
type DBPinger interface {
	Ping() error
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

type Traffic struct {
	TotalRequests int64  `json:"totalRequests"`
	FailedCount   int64  `json:"failedCount"`
	AvgResponseMs string `json:"avgResponseMs"`
}

type Result struct {
	Status       string               `json:"status"`
	Dependencies map[string]DepStatus `json:"dependencies"`
	Traffic      Traffic              `json:"traffic"`
}

// Collect gathers dependency status from the DB and Redis plus the request
// counters written by the RequestStats middleware.
func Collect(ctx context.Context, rdb *redis.Client, db DBPinger) Result {
	result := Result{Dependencies: make(map[string]DepStatus)}

	dbStatus := "disconnected"
	var dbPingMs interface{}
	if db != nil {
		start := time.Now()
		if err := db.Ping(); err == nil {
			dbPingMs = time.Since(start).Milliseconds()
			dbStatus = "connected"
		} else {
			dbStatus = "error"
		}
	}
	result.Dependencies["database"] = DepStatus{Status: dbStatus, PingMs: dbPingMs}

	redisStatus := "disconnected"
	var redisPingMs interface{}
	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			redisPingMs = time.Since(start).Milliseconds()
			redisStatus = "connected"
		} else {
			redisStatus = "error"
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}

	if rdb != nil && redisStatus == "connected" {
		total, _ := rdb.Get(ctx, middleware.KeyReqTotal).Int64()
		failed, _ := rdb.Get(ctx, middleware.KeyReqErrors).Int64()
		resTime, _ := rdb.Get(ctx, middleware.KeyResTime).Float64()
		resCount, _ := rdb.Get(ctx, middleware.KeyResCount).Int64()
		avg := "n/a"
		if resCount > 0 {
			avg = fmt.Sprintf("%.1f", resTime/float64(resCount))
		}
		result.Traffic = Traffic{TotalRequests: total, FailedCount: failed, AvgResponseMs: avg}
	} else {
		result.Traffic = Traffic{AvgResponseMs: "n/a"}
	}

	result.Status = "ok"
	if dbStatus == "error" || redisStatus == "error" {
		result.Status = "issue"
	}
	return result
}
