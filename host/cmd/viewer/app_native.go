//go:build !js

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/nobonobo/neon-viewer/host/devserver"
)

func runApplication() error {
	defaults := devserver.DefaultConfig()
	app := &cli.App{
		Name:  "viewer",
		Usage: "serve the neon viewer web build with live reload",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen address",
				Value:   defaults.Addr,
				EnvVars: []string{"NEON_ADDR"},
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "directory with index.html, wasm_exec.js and main.wasm",
				Value:   defaults.Root,
				EnvVars: []string{"NEON_ROOT"},
			},
			&cli.StringFlag{
				Name:    "assets",
				Usage:   "directory served under /assets/",
				Value:   defaults.Assets,
				EnvVars: []string{"NEON_ASSETS"},
			},
			&cli.BoolFlag{
				Name:    "watch",
				Usage:   "reload open pages when served files change",
				Value:   defaults.Watch,
				EnvVars: []string{"NEON_WATCH"},
			},
			&cli.BoolFlag{
				Name:    "open",
				Usage:   "open the viewer in a browser",
				EnvVars: []string{"NEON_OPEN"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log every request",
				EnvVars: []string{"NEON_VERBOSE"},
			},
		},
		Action: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := devserver.New(devserver.Config{
				Addr:   c.String("addr"),
				Root:   c.String("root"),
				Assets: c.String("assets"),
				Watch:  c.Bool("watch"),
				Open:   c.Bool("open"),
			}, logger)
			return server.Run(ctx)
		},
	}
	return app.RunContext(context.Background(), os.Args)
}
