package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	// OutputDir receives saved chart documents; empty means the working
	// directory.
	OutputDir string
	// ShowDir receives interactive HTML renditions; empty means the system
	// temp directory.
	ShowDir string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance.
func GetConfig() *Config {
	once.Do(func() {
		// .env is optional; absent, the process environment decides.
		_ = godotenv.Load()

		config = &Config{
			OutputDir: os.Getenv("PLOT_OUTPUT_DIR"),
			ShowDir:   os.Getenv("PLOT_SHOW_DIR"),
		}
	})
	return config
}
