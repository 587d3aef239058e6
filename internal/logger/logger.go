package logger

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"syscall"

	"github.com/TheZeroSlave/zapsentry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gatherly/community-service/internal/buildinfo"
)

//go:generate options-gen -out-filename=logger_options.gen.go -from-struct=Options
type Options struct {
	level          string `option:"mandatory" validate:"required,oneof=debug info warn error"`
	productionMode bool
	sentryDsn      string `validate:"omitempty,url"`
	sentryEnv      string `validate:"omitempty,oneof=dev stage prod"`
}

// Level is the root log level. It backs every core built by Init and
// implements http.Handler, so the debug server can change it at runtime.
var Level = zap.NewAtomicLevelAt(zap.InfoLevel)

func MustInit(opts Options) {
	if err := Init(opts); err != nil {
		panic(err)
	}
}

func Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("validate options: %v", err)
	}

	lvl, err := zapcore.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("invalid logger level: %v", err)
	}
	Level.SetLevel(lvl)

	encoder := zapcore.NewConsoleEncoder
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "component",
		TimeKey:        "T",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if opts.productionMode {
		encoder = zapcore.NewJSONEncoder
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(encoderCfg), os.Stdout, Level),
	}

	if opts.sentryDsn != "" {
		sentryClient, err := NewSentryClient(opts.sentryDsn, opts.sentryEnv, buildinfo.Version())
		if err != nil {
			return fmt.Errorf("create sentry client: %v", err)
		}

		sentryCore, err := zapsentry.NewCore(
			zapsentry.Configuration{Level: zapcore.WarnLevel},
			zapsentry.NewSentryClientFromClient(sentryClient),
		)
		if err != nil {
			return fmt.Errorf("create sentry core: %v", err)
		}
		cores = append(cores, sentryCore)
	}

	l := zap.New(zapcore.NewTee(cores...))
	zap.ReplaceGlobals(l)

	return nil
}

func Sync() {
	if err := zap.L().Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) {
		stdlog.Printf("cannot sync logger: %v", err)
	}
}
