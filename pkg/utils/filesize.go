package utils

import "fmt"

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
)

// FormatBytes converts bytes to human-readable format
func FormatBytes(bytes int64) string {
	value, unit := FormatBytesParts(bytes)
	if unit == "B" {
		return fmt.Sprintf("%d B", int64(value))
	}
	return fmt.Sprintf("%.1f %s", value, unit)
}

// FormatBytesParts returns the scaled value and its unit separately so
// callers can style them by magnitude.
func FormatBytesParts(bytes int64) (float64, string) {
	if bytes < 0 {
		return 0, "B"
	}

	switch {
	case bytes >= TB:
		return float64(bytes) / float64(TB), "TB"
	case bytes >= GB:
		return float64(bytes) / float64(GB), "GB"
	case bytes >= MB:
		return float64(bytes) / float64(MB), "MB"
	case bytes >= KB:
		return float64(bytes) / float64(KB), "KB"
	default:
		return float64(bytes), "B"
	}
}

// SumSizes adds up a slice of sizes
func SumSizes(sizes []int64) int64 {
	var total int64
	for _, size := range sizes {
		total += size
	}
	return total
}
