package playground

import (
	"flag"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Config for the playground HTTP server.
type Config struct {
	ListenAddress string        `yaml:"listen_address" validate:"required"`
	H2C           bool          `yaml:"h2c"`
	MaxElements   int           `yaml:"max_elements" validate:"min=1"`
	Limiter       LimiterConfig `yaml:"limiter"`
}

// LimiterConfig configures the sliding window request limiter.
type LimiterConfig struct {
	Window      time.Duration `yaml:"window" validate:"gt=0"`
	SubWindows  int64         `yaml:"sub_windows" validate:"min=1"`
	MaxRequests int64         `yaml:"max_requests" validate:"min=0"`
}

// RegisterFlags adds the flags required to config this to the given FlagSet.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.ListenAddress, "server.listen-address", ":8080", "Address the playground listens on.")
	f.BoolVar(&cfg.H2C, "server.h2c", true, "Serve HTTP/2 over cleartext next to HTTP/1.1.")
	f.IntVar(&cfg.MaxElements, "server.max-elements", 1<<16, "Maximum number of values accepted in one request.")
	cfg.Limiter.RegisterFlags(f)
}

func (cfg *LimiterConfig) RegisterFlags(f *flag.FlagSet) {
	f.DurationVar(&cfg.Window, "limiter.window", 3*time.Second, "Length of the sliding window.")
	f.Int64Var(&cfg.SubWindows, "limiter.sub-windows", 32, "Number of buckets the window is split into. More buckets expire requests more smoothly.")
	f.Int64Var(&cfg.MaxRequests, "limiter.max-requests", 3000, "Requests allowed per window, 0 to disable limiting.")
}

// Validate checks the config using its struct tags.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid playground config")
	}
	return nil
}
