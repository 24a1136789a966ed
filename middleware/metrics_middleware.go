package middleware

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"pokedex/metrics"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

const systemMetricsInterval = 15 * time.Second

// MetricsMiddleware collects HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.RequestInProgress.WithLabelValues(method, path).Inc()
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestCounter.WithLabelValues(status, method, path).Inc()
		metrics.RequestDuration.WithLabelValues(status, method, path).Observe(duration)
		metrics.RequestInProgress.WithLabelValues(method, path).Dec()
	}
}

// UpdateSystemMetrics periodically updates runtime and host metrics until ctx is done
func UpdateSystemMetrics(ctx context.Context, log logrus.FieldLogger) {
	go func() {
		ticker := time.NewTicker(systemMetricsInterval)
		defer ticker.Stop()

		for {
			CollectSystemMetrics(ctx, log)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// CollectSystemMetrics takes one sample of every runtime and host metric
func CollectSystemMetrics(ctx context.Context, log logrus.FieldLogger) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	metrics.MemoryStats.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	metrics.MemoryStats.WithLabelValues("sys").Set(float64(memStats.Sys))
	metrics.MemoryStats.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
	metrics.MemoryStats.WithLabelValues("heap_sys").Set(float64(memStats.HeapSys))
	metrics.MemoryStats.WithLabelValues("heap_idle").Set(float64(memStats.HeapIdle))
	metrics.MemoryStats.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))
	metrics.GoroutineCount.Set(float64(runtime.NumGoroutine()))

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		metrics.MemoryStats.WithLabelValues("host_total").Set(float64(vm.Total))
		metrics.MemoryStats.WithLabelValues("host_used").Set(float64(vm.Used))
	} else {
		log.WithError(err).Debug("failed to read host memory")
	}

	if percents, err := cpu.PercentWithContext(ctx, 0, true); err == nil {
		for i, p := range percents {
			metrics.SystemCPUUsage.WithLabelValues(strconv.Itoa(i)).Set(p)
		}
	} else {
		log.WithError(err).Debug("failed to read cpu usage")
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		metrics.SystemLoadAverage.WithLabelValues("1min").Set(avg.Load1)
		metrics.SystemLoadAverage.WithLabelValues("5min").Set(avg.Load5)
		metrics.SystemLoadAverage.WithLabelValues("15min").Set(avg.Load15)
	} else {
		log.WithError(err).Debug("failed to read load average")
	}

	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		log.WithError(err).Debug("failed to list disk partitions")
		return
	}
	for _, part := range partitions {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		metrics.SystemDiskUsage.WithLabelValues(part.Device, part.Mountpoint, "used").Set(float64(usage.Used))
		metrics.SystemDiskUsage.WithLabelValues(part.Device, part.Mountpoint, "free").Set(float64(usage.Free))
		metrics.SystemDiskUsage.WithLabelValues(part.Device, part.Mountpoint, "total").Set(float64(usage.Total))
	}
}
