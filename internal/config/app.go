package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/replkit/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"REPL_RUNTIME_PATH" envDefault:".replkit"`
	Prompt      string `env:"REPL_PROMPT" envDefault:"> "`

	// Plain disables line editing and reads stdin as a plain stream.
	Plain  bool `env:"REPL_PLAIN" envDefault:"false"`
	Banner bool `env:"REPL_BANNER" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) IsPlain() bool {
	return c.Plain
}
