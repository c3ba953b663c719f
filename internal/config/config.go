package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Sourcing    SourcingConfig    `mapstructure:"sourcing"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler"`
	CORS        CORSConfig        `mapstructure:"cors"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AWSConfig is local-friendly: DynamoDB Local does not validate credentials
// but the SDK still requires them.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Budgets       string `mapstructure:"budgets"`
	Reservations  string `mapstructure:"reservations"`
	BudgetRules   string `mapstructure:"budget_rules"`
	OrderPayments string `mapstructure:"order_payments"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	PoolSize   int           `mapstructure:"pool_size"`
	BalanceTTL time.Duration `mapstructure:"balance_ttl"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	PublicKey       string `mapstructure:"public_key"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

type SourcingConfig struct {
	TechnicalWeight float64 `mapstructure:"technical_weight"`
	PriceWeight     float64 `mapstructure:"price_weight"`
	MinBids         int     `mapstructure:"min_bids"`
}

type SchedulerConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	BudgetAlertsSpec string `mapstructure:"budget_alerts_spec"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configs/config.yaml (or ./config.yaml) when present and lets
// environment variables override it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Sourcing.TechnicalWeight < 0 || c.Sourcing.PriceWeight < 0 {
		return errors.New("sourcing weights must not be negative")
	}
	if c.Sourcing.MinBids < 1 {
		return fmt.Errorf("invalid sourcing.min_bids %d", c.Sourcing.MinBids)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.budgets", "budgets")
	v.SetDefault("tables.reservations", "reservations")
	v.SetDefault("tables.budget_rules", "budget_rules")
	v.SetDefault("tables.order_payments", "order_payments")

	v.SetDefault("database.enabled", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "suprimentos")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 10*time.Minute)
	v.SetDefault("database.conn_max_idle_time", 5*time.Minute)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.balance_ttl", 30*time.Second)

	v.SetDefault("sourcing.technical_weight", 0.4)
	v.SetDefault("sourcing.price_weight", 0.6)
	v.SetDefault("sourcing.min_bids", 3)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.budget_alerts_spec", "0 7 * * *")

	v.SetDefault("cors.allow_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT", "SERVER_PORT")
	v.BindEnv("server.mode", "GIN_MODE", "SERVER_MODE")

	// AWS / DynamoDB
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.dynamodb_endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("tables.budgets", "BUDGETS_TABLE")
	v.BindEnv("tables.reservations", "RESERVATIONS_TABLE")
	v.BindEnv("tables.budget_rules", "BUDGET_RULES_TABLE")
	v.BindEnv("tables.order_payments", "ORDER_PAYMENTS_TABLE")

	// Database
	v.BindEnv("database.enabled", "DB_ENABLED")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Mercado Pago
	v.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("mercadopago.public_key", "MERCADOPAGO_PUBLIC_KEY")
	v.BindEnv("mercadopago.mock", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	v.BindEnv("mercadopago.test_payer_email", "MERCADOPAGO_TEST_PAYER_EMAIL")
	v.BindEnv("mercadopago.test_payer_user_id", "MERCADOPAGO_TEST_PAYER_USER_ID")

	// Sourcing
	v.BindEnv("sourcing.technical_weight", "SOURCING_TECHNICAL_WEIGHT")
	v.BindEnv("sourcing.price_weight", "SOURCING_PRICE_WEIGHT")
	v.BindEnv("sourcing.min_bids", "SOURCING_MIN_BIDS")

	// Scheduler
	v.BindEnv("scheduler.enabled", "SCHEDULER_ENABLED")
	v.BindEnv("scheduler.budget_alerts_spec", "BUDGET_ALERTS_CRON")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}
