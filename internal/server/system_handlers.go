package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// handleSystemStatus handles GET /api/system/status. Resource metrics are
// best-effort: a probe failure reports -1 rather than failing the request.
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuUsage := -1.0
	if percents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0]
	} else if err != nil {
		s.log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	memUsage := -1.0
	if memStat, err := mem.VirtualMemory(); err == nil {
		memUsage = memStat.UsedPercent
	} else {
		s.log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	s.writeData(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"version":         s.version,
		"uptime_seconds":  int64(time.Since(s.started).Seconds()),
		"cpu_percent":     cpuUsage,
		"memory_percent":  memUsage,
		"goroutines":      runtime.NumGoroutine(),
		"profiles_loaded": len(s.registry.List()),
		"ai_configured":   s.gemini.Configured(),
	})
}
