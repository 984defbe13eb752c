// Package platform provides host-level lookups: the usage of the volume
// holding a path and the user's config directory.
package platform

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
)

// DiskUsage describes the volume holding a path
type DiskUsage struct {
	Path        string
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// GetDiskUsage returns usage for the volume holding path
func GetDiskUsage(path string) (*DiskUsage, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}

	return &DiskUsage{
		Path:        usage.Path,
		Total:       usage.Total,
		Free:        usage.Free,
		Used:        usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// GetUserConfigDir returns the user's config directory
func GetUserConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return configDir, nil
	}

	// Fall back to ~/.config
	currentUser, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(currentUser.HomeDir, ".config"), nil
}
