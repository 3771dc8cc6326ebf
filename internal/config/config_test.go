package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.CORSOrigins)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "database.db", cfg.Storage.Path)
	assert.Equal(t, "Local", cfg.History.Timezone)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "elevator.history", cfg.Kafka.Topic)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadReadsConfigFileFromWorkingDirectory(t *testing.T) {
	isolate(t)

	content := `[storage]
driver = "toml"
path = "ledger.toml"

[history]
timezone = "UTC"

[server]
addr = ":9000"
read_timeout = "2s"
`
	require.NoError(t, os.WriteFile("elevator.toml", []byte(content), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DriverTOML, cfg.Storage.Driver)
	assert.Equal(t, "ledger.toml", cfg.Storage.Path)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)

	loc, err := cfg.History.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\ndriver = \"toml\"\npath = \"file.toml\"\n"), 0o600))
	t.Setenv("ELEVATOR_STORAGE_DRIVER", "memory")
	t.Setenv("ELEVATOR_KAFKA_ENABLED", "true")
	t.Setenv("ELEVATOR_KAFKA_TOPIC", "lifts")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "file.toml", cfg.Storage.Path)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, "lifts", cfg.Kafka.Topic)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Storage: StorageConfig{Driver: DriverSQLite, Path: "database.db"},
		History: HistoryConfig{Timezone: "Local"},
		Kafka:   KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "elevator.history"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "postgres" }, want: "storage.driver"},
		{name: "empty path", mutate: func(c *Config) { c.Storage.Path = " " }, want: "storage.path"},
		{name: "bad timezone", mutate: func(c *Config) { c.History.Timezone = "Mars/Olympus" }, want: "history.timezone"},
		{name: "kafka without brokers", mutate: func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil }, want: "kafka.brokers"},
		{name: "kafka without topic", mutate: func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Topic = "" }, want: "kafka.topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestMemoryDriverAllowsEmptyPath(t *testing.T) {
	cfg := Config{
		Storage: StorageConfig{Driver: DriverMemory},
		History: HistoryConfig{Timezone: "UTC"},
	}

	require.NoError(t, cfg.Validate())
}
