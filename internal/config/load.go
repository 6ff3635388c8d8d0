package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the resolved harness configuration.
type Settings struct {
	MinTime          time.Duration
	MaxIterations    int
	CheckEquivalence bool
	StoreBackend     string
	StorePath        string
	MetricsPort      int
	PlotWidth        int
}

// Load initializes configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".benchpress")
	}

	viper.SetEnvPrefix("BENCHPRESS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("min_time", "500ms")
	viper.SetDefault("max_iterations", 10000)
	viper.SetDefault("check_equivalence", true)
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.path", ".benchpress/history.json")
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("plot.width", 72)

	// If a config file is found, read it in; absence is not an error.
	_ = viper.ReadInConfig()
}

// Resolve materializes the current viper state into Settings.
func Resolve() Settings {
	return Settings{
		MinTime:          viper.GetDuration("min_time"),
		MaxIterations:    viper.GetInt("max_iterations"),
		CheckEquivalence: viper.GetBool("check_equivalence"),
		StoreBackend:     viper.GetString("store.backend"),
		StorePath:        viper.GetString("store.path"),
		MetricsPort:      viper.GetInt("metrics_port"),
		PlotWidth:        viper.GetInt("plot.width"),
	}
}
