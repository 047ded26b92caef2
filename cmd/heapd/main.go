package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"gocontainer/playground"
)

const configFileOption = "config.file"

// Config is the root configuration of heapd.
type Config struct {
	LogLevel string            `yaml:"log_level"`
	Server   playground.Config `yaml:"server"`
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
	cfg.Server.RegisterFlags(f)
}

func main() {
	var cfg Config

	// Defaults come from the flags and must be set before the config file
	// is parsed, so that the file overrides them.
	cfg.RegisterFlags(flag.CommandLine)
	configFile := parseConfigFileParameter(os.Args[1:])
	if configFile != "" {
		if err := LoadConfig(configFile, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error loading config from %s: %v\n", configFile, err)
			os.Exit(1)
		}
	}

	// Ignore -config.file here, it was already parsed.
	flag.String(configFileOption, "", "Configuration file to load.")
	flag.Parse()

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	checkFatal(logger, "initializing logger", err)

	server, err := playground.New(cfg.Server, logger)
	checkFatal(logger, "initializing playground", err)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = server.Run(ctx)
	checkFatal(logger, "running playground", err)
	level.Info(logger).Log("msg", "heapd stopped")
}

// parseConfigFileParameter finds -config.file among args without failing on
// flags it does not know.
func parseConfigFileParameter(args []string) string {
	var configFile = ""
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&configFile, configFileOption, "", "")

	for len(args) > 0 {
		_ = fs.Parse(args)
		if configFile != "" {
			break
		}
		args = args[1:]
	}
	return configFile
}

// LoadConfig reads the YAML file into cfg.
func LoadConfig(filename string, cfg *Config) error {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "Error reading config file")
	}

	err = yaml.UnmarshalStrict(buf, cfg)
	if err != nil {
		return errors.Wrap(err, "Error parsing config file")
	}
	return nil
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var filter level.Option
	switch lvl {
	case "debug":
		filter = level.AllowDebug()
	case "info":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return log.NewLogfmtLogger(w), errors.Errorf("unrecognized log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, filter)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

// checkFatal logs err with its stack trace and exits when it is non-nil.
func checkFatal(logger log.Logger, location string, err error) {
	if err == nil {
		return
	}
	logger = level.Error(logger)
	if location != "" {
		logger = log.With(logger, "msg", "error "+location)
	}
	// %+v gets the stack trace from errors using github.com/pkg/errors
	logger.Log("err", fmt.Sprintf("%+v", err))
	os.Exit(1)
}
