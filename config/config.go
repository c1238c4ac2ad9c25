package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Partner  PartnerConfig  `mapstructure:"partner"`
	Identity IdentityConfig `mapstructure:"identity"`
	Balance  BalanceConfig  `mapstructure:"balance"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Flow     FlowConfig     `mapstructure:"flow"`
	Site     SiteConfig     `mapstructure:"site"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PartnerConfig holds the partner signing identity used for authorization tokens.
type PartnerConfig struct {
	ID               string        `mapstructure:"id"`
	PrivateKey       string        `mapstructure:"private_key"` // PKCS#8 PEM, or bare base64 body
	PublicKey        string        `mapstructure:"public_key"`  // SPKI PEM, or bare base64 body
	SigningAlgorithm string        `mapstructure:"signing_algorithm"`
	TokenTTL         time.Duration `mapstructure:"token_ttl"`
}

// IdentityConfig points at the external identity service.
type IdentityConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	BuildEnv          string        `mapstructure:"build_env"` // sandbox, production
	EnableLogging     bool          `mapstructure:"enable_logging"`
	PreloadCredential bool          `mapstructure:"preload_credential"`
	IssuerDID         string        `mapstructure:"issuer_did"`
	CredentialID      string        `mapstructure:"credential_id"`
	VerifierProgramID string        `mapstructure:"verifier_program_id"`
	IssuerURL         string        `mapstructure:"issuer_url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
}

// BalanceConfig points at the chain RPC endpoint and spot price API.
type BalanceConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	PriceAPIURL    string        `mapstructure:"price_api_url"`
	PriceTTL       time.Duration `mapstructure:"price_ttl"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type AdminConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	JWTIssuer  string        `mapstructure:"jwt_issuer"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type FlowConfig struct {
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	ReapInterval time.Duration `mapstructure:"reap_interval"`
}

type SiteConfig struct {
	Name string `mapstructure:"name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: OYF_.
// Nested keys use underscore: OYF_DATABASE_HOST, OYF_PARTNER_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "oyunfor")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("partner.id", "oyunfor")
	v.SetDefault("partner.private_key", "")
	v.SetDefault("partner.public_key", "")
	v.SetDefault("partner.signing_algorithm", "RS256")
	v.SetDefault("partner.token_ttl", "15m")
	v.SetDefault("identity.base_url", "")
	v.SetDefault("identity.build_env", "sandbox")
	v.SetDefault("identity.enable_logging", true)
	v.SetDefault("identity.preload_credential", true)
	v.SetDefault("identity.issuer_did", "")
	v.SetDefault("identity.credential_id", "")
	v.SetDefault("identity.verifier_program_id", "")
	v.SetDefault("identity.issuer_url", "/issue")
	v.SetDefault("identity.request_timeout", "0s")
	v.SetDefault("balance.rpc_url", "")
	v.SetDefault("balance.price_api_url", "https://api.coingecko.com/api/v3/simple/price")
	v.SetDefault("balance.price_ttl", "60s")
	v.SetDefault("balance.request_timeout", "15s")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.jwt_issuer", "oyunfor-admin")
	v.SetDefault("admin.session_ttl", "24h")
	v.SetDefault("flow.session_ttl", "30m")
	v.SetDefault("flow.reap_interval", "1m")
	v.SetDefault("site.name", "Oyunfor")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: OYF_DATABASE_HOST -> database.host
	v.SetEnvPrefix("OYF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Partner.SigningAlgorithm {
	case "RS256", "ES256":
	default:
		return fmt.Errorf("partner.signing_algorithm must be RS256 or ES256, got %q", c.Partner.SigningAlgorithm)
	}
	switch c.Identity.BuildEnv {
	case "sandbox", "production":
	default:
		return fmt.Errorf("identity.build_env must be sandbox or production, got %q", c.Identity.BuildEnv)
	}
	if c.Partner.ID == "" {
		return fmt.Errorf("partner.id is required")
	}
	if c.Partner.TokenTTL <= 0 {
		return fmt.Errorf("partner.token_ttl must be positive")
	}
	return nil
}
