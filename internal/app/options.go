package app

import (
	"os"
	"strings"
	"time"

	"github.com/techmarket-api/internal/config"
	"github.com/techmarket-api/internal/constants"
	"github.com/techmarket-api/internal/logger"

	"go.uber.org/zap"
)

const (
	ModeAll    = constants.RunModeAll
	ModeAPI    = constants.RunModeAPI
	ModeWorker = constants.RunModeWorker
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}

func isValidMode(mode string) bool {
	switch mode {
	case ModeAll, ModeAPI, ModeWorker:
		return true
	default:
		return false
	}
}

func isDebugMode(mode string) bool {
	return strings.EqualFold(strings.TrimSpace(mode), "debug")
}
