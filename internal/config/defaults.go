package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"app":        "cursor",
		"timeout":    10,
		"sounds_dir": "/System/Library/Sounds",
		"sound_ext":  ".aiff",
		"voice":      "Samantha",
		"debug":      false,
	}
}
