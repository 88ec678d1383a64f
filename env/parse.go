package env

import (
	envconfig "github.com/caarlos0/env/v11"
)

// Parse populates a struct from the environment using `env:"..."` field
// tags. It is a thin wrapper so callers of this package do not need a
// second env import for struct-based configuration.
//
//	type Config struct {
//	    Home  string `env:"HOME"`
//	    Port  int    `env:"PORT" envDefault:"3000"`
//	    Debug bool   `env:"DEBUG"`
//	}
func Parse(cfg any) error {
	return envconfig.Parse(cfg)
}
