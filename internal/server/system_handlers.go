package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/RawdaYassin/financial-distress-app/internal/database"
)

// SystemHandlers serves the operational health surface: process resource
// usage plus per-database integrity and size statistics.
type SystemHandlers struct {
	log       zerolog.Logger
	catalogDB *database.DB
	cacheDB   *database.DB
}

// NewSystemHandlers creates system handlers.
func NewSystemHandlers(log zerolog.Logger, catalogDB, cacheDB *database.DB) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("component", "system_handlers").Logger(),
		catalogDB: catalogDB,
		cacheDB:   cacheDB,
	}
}

type databaseHealth struct {
	Name         string  `json:"name"`
	Healthy      bool    `json:"healthy"`
	SizeMB       float64 `json:"size_mb"`
	WALSizeMB    float64 `json:"wal_size_mb"`
	PageCount    int64   `json:"page_count"`
	FreelistSize int64   `json:"freelist_size"`
}

// HandleSystemHealth reports process and database health.
// GET /api/system/health
func (h *SystemHandlers) HandleSystemHealth(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.systemStats()

	databases := []databaseHealth{
		h.databaseHealth(r, h.catalogDB),
		h.databaseHealth(r, h.cacheDB),
	}

	healthy := true
	for _, db := range databases {
		if !db.Healthy {
			healthy = false
		}
	}

	status := "healthy"
	if !healthy {
		status = "degraded"
	}

	response := map[string]interface{}{
		"status":      status,
		"cpu_percent": cpuPercent,
		"ram_percent": memPercent,
		"databases":   databases,
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *SystemHandlers) databaseHealth(r *http.Request, db *database.DB) databaseHealth {
	health := databaseHealth{Name: db.Name(), Healthy: true}

	if err := db.QuickCheck(r.Context()); err != nil {
		h.log.Warn().Err(err).Str("db", db.Name()).Msg("Database quick check failed")
		health.Healthy = false
	}

	stats, err := db.GetStats()
	if err != nil {
		h.log.Warn().Err(err).Str("db", db.Name()).Msg("Failed to get database stats")
		return health
	}
	health.SizeMB = float64(stats.SizeBytes) / 1024 / 1024
	health.WALSizeMB = float64(stats.WALSizeBytes) / 1024 / 1024
	health.PageCount = stats.PageCount
	health.FreelistSize = stats.FreelistCount

	return health
}

// systemStats returns CPU and RAM usage percentages. The CPU sample uses a
// 100ms window to keep the endpoint responsive for pollers.
func (h *SystemHandlers) systemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
