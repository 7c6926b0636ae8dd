package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

var errInsufficientMemory = errors.New("not enough free memory for the render target")

// hostInfo describes the machine a render runs on
type hostInfo struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64
	FreeMemory   uint64
}

// getHostInfo queries CPU and memory details, falling back to the Go
// runtime's view of the CPU count when the host cannot be inspected.
func getHostInfo() hostInfo {
	info := hostInfo{
		CPUModel:     "unknown",
		LogicalCores: runtime.NumCPU(),
	}

	if cores, err := cpu.Counts(true); err == nil && cores > 0 {
		info.LogicalCores = cores
	} else if err != nil {
		logger.Debugf("cpu count unavailable: %v", err)
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = memInfo.Total
		info.FreeMemory = memInfo.Available
	} else {
		logger.Debugf("memory info unavailable: %v", err)
	}

	return info
}

// renderTargetBytes estimates the memory held by a renderer of the given
// size: three float64 sums plus one packed pixel per pixel.
func renderTargetBytes(width, height int) uint64 {
	return uint64(width) * uint64(height) * (3*8 + 4)
}

// checkMemory fails when the render target clearly cannot fit. Unknown free
// memory is never an error.
func checkMemory(host hostInfo, width, height int) error {
	need := renderTargetBytes(width, height)
	if host.FreeMemory == 0 || need <= host.FreeMemory {
		return nil
	}
	return fmt.Errorf("%w: need %s, %s available", errInsufficientMemory, formatBytes(need), formatBytes(host.FreeMemory))
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
