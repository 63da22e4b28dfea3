package main

import (
	"github.com/spf13/viper"
)

func initViperDefaults() {
	// Steam Web API
	viper.SetDefault("steam.api_host", "https://api.steampowered.com")
	viper.SetDefault("steam.api_key", "")
	viper.SetDefault("steam.enabled", false)

	// Global
	viper.SetDefault("file_state_dir", "~/.steamward")

	// Logging
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.add_source", false)
	viper.SetDefault("trace", false)
}
