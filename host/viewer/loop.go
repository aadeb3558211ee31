package viewer

import (
	"fmt"
	"log/slog"
)

type FrameScheduler interface {
	RequestFrame(cb func())
}

// Loop renders one composer frame per display refresh, forever.
type Loop struct {
	scheduler FrameScheduler
	composer  Composer
	logger    *slog.Logger

	frames   uint64
	failures uint64
}

func NewLoop(scheduler FrameScheduler, composer Composer, logger *slog.Logger) *Loop {
	return &Loop{
		scheduler: scheduler,
		composer:  composer,
		logger:    logger,
	}
}

func (l *Loop) Start() {
	l.scheduler.RequestFrame(l.tick)
}

func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) Failures() uint64 {
	return l.failures
}

func (l *Loop) tick() {
	l.scheduler.RequestFrame(l.tick)
	l.render()
}

func (l *Loop) render() {
	defer func() {
		if r := recover(); r != nil {
			l.failures++
			l.logger.Error("Frame failed",
				slog.Uint64("frame", l.frames),
				slog.String("error", fmt.Sprint(r)),
			)
		}
	}()
	l.composer.Render()
	l.frames++
}
