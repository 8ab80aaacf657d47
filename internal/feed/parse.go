package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hwpanel/internal/models"
)

// FieldCount is the exact number of comma-separated values in one wire record:
// CPU temp, GPU temp, CPU usage, RAM usage, GPU usage, FPS.
const FieldCount = 6

// ParseLine parses one newline-framed CSV record into a snapshot. A record
// with more or fewer than six fields is rejected and the caller keeps its
// previous snapshot. Malformed numeric fields parse to zero rather than
// failing the whole record, and every field is clamped to its domain.
func ParseLine(line string, now time.Time) (models.Snapshot, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != FieldCount {
		return models.Snapshot{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}

	snap := models.Snapshot{
		CPUTemp:   atoiLenient(fields[0]),
		GPUTemp:   atoiLenient(fields[1]),
		CPUUsage:  atoiLenient(fields[2]),
		RAMUsage:  atoiLenient(fields[3]),
		GPUUsage:  atoiLenient(fields[4]),
		FPS:       atoiLenient(fields[5]),
		UpdatedAt: now,
	}
	return snap.Clamped(), nil
}

// atoiLenient converts a decimal field, treating junk as zero.
func atoiLenient(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
