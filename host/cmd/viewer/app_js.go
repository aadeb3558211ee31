//go:build js

package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nobonobo/neon-viewer/host/three"
	"github.com/nobonobo/neon-viewer/host/viewer"
)

func runApplication() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to initialize viewer: %v", r)
		}
	}()

	id := three.GetParam("id")
	if id == "" {
		uid, err := uuid.NewV6()
		if err != nil {
			return fmt.Errorf("failed to generate session id: %w", err)
		}
		id = uid.String()
	}
	logger := slog.Default().With(slog.String("session", id))

	v := viewer.New(three.NewBackend(), viewer.DefaultConfig(), logger)
	v.Run()
	select {}
}
