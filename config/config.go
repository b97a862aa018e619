package config

import "time"

// FromEnv carries the scan daemon's configuration.
type FromEnv struct {
	ScanIntervalSeconds int      `env:"SCAN_INTERVAL_SECONDS,default=60"`
	WorkersNum          int      `env:"WORKERS_NUM,default=10"`
	QueueLength         int      `env:"QUEUE_LENGTH,default=100"`
	LogLevel            string   `env:"LOG_LEVEL"`
	RootOids            []string `env:"ROOT_OIDS,required"`
	DeviceTimeoutSec    int      `env:"DEVICE_TIMEOUT_SECONDS,default=5"`
	DeviceRetries       int      `env:"DEVICE_RETRIES,default=3"`

	// LibreNMS DB credentials
	DbUsername string `env:"DB_USERNAME,required"`
	DbPassword string `env:"DB_PASSWORD,required"`
	DbHost     string `env:"DB_HOST,required"`
	DbPort     string `env:"DB_PORT,required"`
	DbName     string `env:"DB_NAME,required"`
	// Overrides the default devices query when set.
	DbQuery string `env:"DB_QUERY"`

	ClickhouseTableName      string `env:"CLICKHOUSE_TABLE_NAME,required"`
	ClickhouseQueueLength    int    `env:"CLICKHOUSE_QUEUE_LENGTH,required"`
	ClickhouseFlushBatchSize int    `env:"CLICKHOUSE_FLUSH_BATCH_SIZE,required"`
	ClickhouseDb             string `env:"CLICKHOUSE_DB,required"`
	ClickhouseUsername       string `env:"CLICKHOUSE_USERNAME,required"`
	ClickhousePassword       string `env:"CLICKHOUSE_PASSWORD,required"`
	ClickhouseAddr           string `env:"CLICKHOUSE_ADDR,required"`
	ClickhousePort           string `env:"CLICKHOUSE_PORT,required"`
}

func (c *FromEnv) ScanInterval() time.Duration {
	return time.Duration(c.ScanIntervalSeconds) * time.Second
}

func (c *FromEnv) DeviceTimeout() time.Duration {
	return time.Duration(c.DeviceTimeoutSec) * time.Second
}
