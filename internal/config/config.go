package config

import (
	"slices"
	"time"
)

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Drivers lists the accepted storage.driver values.
var Drivers = []string{DriverFile, DriverSQLite, DriverRedis, DriverMemory}

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Desk    DeskConfig    `yaml:"desk"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where the store document lives.
type StorageConfig struct {
	Driver        string `yaml:"driver"         env:"STORAGE_DRIVER"         env-default:"file"`
	Path          string `yaml:"path"           env:"STORAGE_PATH"           env-default:"./printmax-data"`
	Key           string `yaml:"key"            env:"STORAGE_KEY"            env-default:"printmax_store_v1"`
	RedisAddr     string `yaml:"redis_addr"     env:"STORAGE_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"STORAGE_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"STORAGE_REDIS_DB"       env-default:"0"`
}

// UsesPath reports whether the driver keeps data under Path.
func (c StorageConfig) UsesPath() bool {
	return slices.Contains([]string{DriverFile, DriverSQLite}, c.Driver)
}

// DeskConfig holds settings of the enquiry desk itself.
type DeskConfig struct {
	Timezone      string `yaml:"timezone"       env:"DESK_TIMEZONE"       env-default:"Local"`
	RetentionDays int    `yaml:"retention_days" env:"DESK_RETENTION_DAYS" env-default:"180"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
