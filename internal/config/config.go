package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	authservice "github.com/goserg/volunteerhub/auth/service"
)

const DefaultPath = "configs/server.toml"

type Server struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Debug   bool   `toml:"debug_mode"`
	TLSCert string `toml:"tls_cert"`
	TLSKey  string `toml:"tls_key"`
	// AuthRate limits register and login requests per client ip and second.
	// Zero disables the limit.
	AuthRate  float64 `toml:"auth_rate"`
	AuthBurst int     `toml:"auth_burst"`
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file"`
}

type Matching struct {
	NormalizeCase             bool `toml:"normalize_case"`
	KeywordLimit              int  `toml:"keyword_limit"`
	RecomputeKeywordsOnUpdate bool `toml:"recompute_keywords_on_update"`
	CacheOpenOpportunities    bool `toml:"cache_open_opportunities"`
}

type Events struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"`
	Embedded      bool   `toml:"embedded"`
	EmbeddedPort  int    `toml:"embedded_port"`
	SubjectPrefix string `toml:"subject_prefix"`
}

type Config struct {
	Server   Server
	Storage  Storage
	Auth     authservice.Config
	Matching Matching
	Events   Events
}

// Default is used for every key missing from the config file.
func Default() Config {
	return Config{
		Server: Server{
			Host:      "0.0.0.0",
			Port:      3000,
			AuthRate:  1,
			AuthBurst: 5,
		},
		Storage: Storage{
			SqliteFile: "volunteerhub.sqlite",
		},
		Auth: authservice.Config{
			ExpirationRaw: "24h",
			Expiration:    24 * time.Hour,
			BcryptCost:    bcrypt.DefaultCost,
		},
		Matching: Matching{
			KeywordLimit:              20,
			RecomputeKeywordsOnUpdate: true,
			CacheOpenOpportunities:    true,
		},
		Events: Events{
			SubjectPrefix: "volunteerhub",
		},
	}
}

func New(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if secret := os.Getenv("VOLUNTEERHUB_JWT_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if file := os.Getenv("VOLUNTEERHUB_SQLITE_FILE"); file != "" {
		cfg.Storage.SqliteFile = file
	}
	if url := os.Getenv("VOLUNTEERHUB_NATS_URL"); url != "" {
		cfg.Events.URL = url
		cfg.Events.Enabled = true
	}

	expiration, err := time.ParseDuration(cfg.Auth.ExpirationRaw)
	if err != nil {
		return Config{}, fmt.Errorf("auth expiration: %w", err)
	}
	cfg.Auth.Expiration = expiration

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var err error
	if c.Auth.Secret == "" {
		err = errors.Join(err, errors.New("auth secret is empty, set auth.secret or VOLUNTEERHUB_JWT_SECRET"))
	}
	if c.Server.Port <= 0 {
		err = errors.Join(err, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	if c.Server.AuthRate < 0 || (c.Server.AuthRate > 0 && c.Server.AuthBurst <= 0) {
		err = errors.Join(err, errors.New("auth_rate must not be negative and needs a positive auth_burst"))
	}
	if c.Matching.KeywordLimit <= 0 {
		err = errors.Join(err, fmt.Errorf("invalid keyword limit %d", c.Matching.KeywordLimit))
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		err = errors.Join(err, errors.New("tls_cert and tls_key must be set together"))
	}
	return err
}
