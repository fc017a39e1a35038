package config

import (
	"time"
)

type (
	Config struct {
		App         App         `json:"app" mapstructure:"app"`
		Postgres    Postgres    `json:"postgres" mapstructure:"postgres"`
		Redis       Redis       `json:"redis" mapstructure:"redis"`
		Auth        Auth        `json:"auth" mapstructure:"auth"`
		Broker      Broker      `json:"message_broker" mapstructure:"message_broker"`
		Retry       Retry       `json:"retry" mapstructure:"retry"`
		Idempotency Idempotency `json:"idempotency" mapstructure:"idempotency"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		Name            string        `json:"name" mapstructure:"name"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	Auth struct {
		JWTSecret string        `json:"jwt_secret" mapstructure:"jwt_secret"`
		TokenTTL  time.Duration `json:"token_ttl" mapstructure:"token_ttl"`
	}

	Broker struct {
		Brokers        []string      `json:"brokers" mapstructure:"brokers"`
		LoanEventTopic string        `json:"loan_event_topic" mapstructure:"loan_event_topic"`
		Timeout        time.Duration `json:"timeout" mapstructure:"timeout"`
	}

	Retry struct {
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
	}

	Idempotency struct {
		TTL time.Duration `json:"ttl" mapstructure:"ttl"`
	}
)
