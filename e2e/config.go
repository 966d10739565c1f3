package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// MESSAGE_BOARD_ADDR points at a running server, scenarios are skipped when empty
	ServerAddr string `envconfig:"MESSAGE_BOARD_ADDR"`
	// E2E_DEBUG_DUMP dumps full request/response bodies
	DebugDump bool `envconfig:"E2E_DEBUG_DUMP" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
