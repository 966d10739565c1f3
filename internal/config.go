package internal

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"message-board/errors"
	"message-board/repositories"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH" validate:"required_unless=InMemory true"`
	InMemory          bool          `env:"IN_MEMORY,default=false"`
	LogLevel          string        `env:"LOG_LEVEL,required=true" validate:"required"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081" validate:"min=0,max=65535"`
	MaxKeySize        int           `env:"MAX_KEY_SIZE,default=44" validate:"gt=0"`
	MaxValueSize      int           `env:"MAX_VALUE_SIZE,default=1024" validate:"gt=0"`
	GCInterval        time.Duration `env:"GC_INTERVAL,default=5m" validate:"gt=0"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
}

// LoadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: reading env file: %v", errors.ErrInvalidConfig, err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) StoreLimits() repositories.StoreLimits {
	return repositories.StoreLimits{MaxKeySize: c.MaxKeySize, MaxValueSize: c.MaxValueSize}
}
