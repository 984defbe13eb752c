package config

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		Color:           "auto",
		Progress:        "auto",
		ListLimit:       0,    // Full listing unless the user caps it
		ShowVolumeUsage: true,
		LogLevel:        "disabled", // Diagnostics are opt-in
	}
}
