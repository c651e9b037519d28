package service

import "time"

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
}

type Config struct {
	Secret     string        `toml:"secret"`
	Expiration time.Duration `toml:"-"`
	// ExpirationRaw is parsed into Expiration by config.New.
	ExpirationRaw string `toml:"expiration"`
	BcryptCost    int    `toml:"bcrypt_cost"`
	Rules         []Rule `toml:"rules"`
}
