// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pagelay/config"
	"pagelay/images"
	"pagelay/text"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// RunID marks all artifacts of a single program run.
	RunID uuid.UUID

	// prepared by PrepareResources
	Fonts  *text.Fonts
	Images *images.FileProvider

	// DefaultVignettes are ornaments available to documents as images named
	// "vignette/<name>".
	DefaultVignettes map[string][]byte

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// PrepareResources creates font and image caches from configuration.
func (e *LocalEnv) PrepareResources() error {
	if e.Cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	e.Fonts = text.NewFonts(log.Named("fonts"), e.Cfg.Fonts.DPI, e.Cfg.Fonts.Dirs...)
	e.Images = images.NewFileProvider(e.Cfg.Images.Dir,
		images.WithLogger(log.Named("images")),
		images.WithPlaceholder(e.Cfg.Images.UseBroken))
	for name, data := range e.DefaultVignettes {
		e.Images.Add(VignetteName(name), data)
	}
	return nil
}

// VignetteName returns image name of the default vignette.
func VignetteName(name string) string {
	return "vignette/" + name
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
