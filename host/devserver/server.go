package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

type Config struct {
	Addr   string
	Root   string
	Assets string
	Watch  bool
	Open   bool
}

func DefaultConfig() Config {
	return Config{
		Addr:   ":8080",
		Root:   "host/web",
		Assets: "assets",
		Watch:  true,
	}
}

// Server hosts the web shell, the wasm bundle and the model assets, and
// tells connected pages to reload when any of them change.
type Server struct {
	cfg    Config
	logger *slog.Logger
	hub    *Hub
}

func New(cfg Config, logger *slog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		hub:    NewHub(logger),
	}
}

func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.Assets))))
	mux.Handle("/livereload", s.hub)
	mux.HandleFunc("/livereload.js", serveReloadScript)
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Root)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("Request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		w.Header().Set("Cache-Control", "no-cache")
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		mux.ServeHTTP(w, r)
	})
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}

	if s.cfg.Watch {
		watcher, err := NewWatcher([]string{s.cfg.Root, s.cfg.Assets}, s.hub.Reload, s.logger)
		if err != nil {
			listener.Close()
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				s.logger.Error("Watcher stopped",
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	url := browserURL(listener.Addr())
	s.logger.Info("Serving",
		slog.String("url", url),
		slog.String("root", s.cfg.Root),
		slog.String("assets", s.cfg.Assets),
	)
	if s.cfg.Open {
		if err := URLOpen(url); err != nil {
			s.logger.Warn("Cannot open browser",
				slog.String("error", err.Error()),
			)
		}
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.Close()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	}
}

func browserURL(addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String() + "/"
	}
	return "http://localhost:" + port + "/"
}
