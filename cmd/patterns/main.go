package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-leo/patterns/demo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const all = "all"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newLogger(cfg.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	registry := demo.NewRegistry(logger)
	ctx := context.Background()
	if cfg.Pattern == all {
		err = registry.RunAll(ctx, stdout)
	} else {
		err = registry.Run(ctx, cfg.Pattern, stdout)
	}
	if err != nil {
		if errors.Is(err, demo.ErrUnknownDemo) {
			fmt.Fprintf(stderr, "unknown pattern %q, choose one of %v or %q\n", cfg.Pattern, registry.Names(), all)
			return 2
		}
		logger.Error("pattern failed", zap.String("pattern", cfg.Pattern), zap.Error(err))
		return 1
	}
	return 0
}

type config struct {
	Pattern string
	Verbose bool
}

// loadConfig reads flags, falling back to PATTERNS_* environment variables.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	flags := pflag.NewFlagSet("patterns", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("pattern", "p", all, "pattern demo to run, or \"all\"")
	flags.BoolP("verbose", "v", false, "log to stderr")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("patterns")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return config{}, errors.Wrap(err, "bind flags")
	}
	return config{
		Pattern: v.GetString("pattern"),
		Verbose: v.GetBool("verbose"),
	}, nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core)
}
