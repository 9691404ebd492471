package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
	Worker   WorkerConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BookingConfig holds the venue-level defaults applied when a venue is
// created without explicit values.
type BookingConfig struct {
	ToleranceMinutes int
	MinDpPercentage  int
}

type WorkerConfig struct {
	SweepIntervalSeconds   int
	MonitorIntervalSeconds int
}

func (w WorkerConfig) SweepInterval() time.Duration {
	return time.Duration(w.SweepIntervalSeconds) * time.Second
}

func (w WorkerConfig) MonitorInterval() time.Duration {
	return time.Duration(w.MonitorIntervalSeconds) * time.Second
}

type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	NotifyChannel string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BOOKING_TOLERANCE_MINUTES", 15)
	viper.SetDefault("MIN_DP_PERCENTAGE", 50)
	viper.SetDefault("SWEEP_INTERVAL_SECONDS", 30)
	viper.SetDefault("MONITOR_INTERVAL_SECONDS", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("NOTIFY_CHANNEL", "venue-booking:events")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			ToleranceMinutes: viper.GetInt("BOOKING_TOLERANCE_MINUTES"),
			MinDpPercentage:  viper.GetInt("MIN_DP_PERCENTAGE"),
		},
		Worker: WorkerConfig{
			SweepIntervalSeconds:   viper.GetInt("SWEEP_INTERVAL_SECONDS"),
			MonitorIntervalSeconds: viper.GetInt("MONITOR_INTERVAL_SECONDS"),
		},
		Redis: RedisConfig{
			Addr:          viper.GetString("REDIS_ADDR"),
			Password:      viper.GetString("REDIS_PASS"),
			DB:            viper.GetInt("REDIS_DB"),
			NotifyChannel: viper.GetString("NOTIFY_CHANNEL"),
		},
	}

	return config, nil
}
