package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// Config is the full service configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Parking ParkingConfig `toml:"parking"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type StorageConfig struct {
	DataFile string `toml:"data_file"`
}

type ParkingConfig struct {
	TotalSlots int     `toml:"total_slots"`
	HourlyRate float64 `toml:"hourly_rate"`
	DailyRate  float64 `toml:"daily_rate"`
	MinimumFee float64 `toml:"minimum_fee"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load reads the configuration from path, filling in defaults for
// anything the file leaves unset. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Storage: StorageConfig{
			DataFile: "parking.txt",
		},
		Parking: ParkingConfig{
			TotalSlots: domain.DefaultTotalSlots,
			HourlyRate: domain.DefaultHourlyRate,
			DailyRate:  domain.DefaultDailyRate,
			MinimumFee: domain.DefaultMinimumFee,
		},
		Logs: LogsConfig{
			File:  "logs/parking-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "pms-parking-service",
			Path:        "/metrics",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Parking.TotalSlots <= 0 {
		return fmt.Errorf("config: total_slots must be positive, got %d", c.Parking.TotalSlots)
	}
	if c.Parking.HourlyRate < 0 || c.Parking.DailyRate < 0 || c.Parking.MinimumFee < 0 {
		return fmt.Errorf("config: parking rates must not be negative")
	}
	if c.Storage.DataFile == "" {
		return fmt.Errorf("config: data_file must not be empty")
	}
	return nil
}
