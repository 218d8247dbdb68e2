package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/config"
	"github.com/muurk/numfield/internal/discovery"
	"github.com/muurk/numfield/internal/logging"
	"github.com/muurk/numfield/internal/numinput"
	"github.com/muurk/numfield/internal/version"
)

// Config holds the server configuration
type Config struct {
	Host     string
	Port     int
	LogLevel string

	// Options are used for sessions that do not name a profile.
	Options numinput.Options

	// Registry resolves the "profile" query parameter. Nil limits lookups
	// to the builtin profiles.
	Registry *config.Registry

	// MDNS advertises the server as "_numfield._tcp"
	MDNS     bool
	Instance string // mDNS instance name, defaults to "numfield on <hostname>"
}

// Server serves field sessions over WebSocket
type Server struct {
	config     *Config
	httpServer *http.Server
	listener   net.Listener
	mdns       *discovery.Registration

	wg          sync.WaitGroup
	mu          sync.Mutex
	activeConns map[string]*websocket.Conn
	sessionSeq  atomic.Uint64
}

// New creates a new Server instance
func New(cfg *Config) (*Server, error) {
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Fail at startup rather than on the first connection.
	if _, err := numinput.New(numinput.NewMemoryField(""), cfg.Options, numinput.Callbacks{}); err != nil {
		return nil, fmt.Errorf("invalid default options: %w", err)
	}

	s := &Server{
		config:      cfg,
		activeConns: make(map[string]*websocket.Conn),
	}
	s.httpServer = &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Addr returns the listening address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	return nil
}

// Start serves until an interrupt signal arrives or serving fails.
func (s *Server) Start() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	logging.Info("Starting numfield server",
		zap.String("addr", s.listener.Addr().String()),
		zap.String("version", version.Version),
		zap.String("locale", s.config.Options.Locale),
		zap.String("currency", s.config.Options.Currency),
		zap.String("log_level", s.config.LogLevel),
	)

	if s.config.MDNS {
		if err := s.advertise(); err != nil {
			// The server is still reachable by address.
			logging.Warn("mDNS registration failed", zap.Error(err))
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) advertise() error {
	instance := s.config.Instance
	if instance == "" {
		host, _ := os.Hostname()
		instance = "numfield on " + host
	}
	port := s.listener.Addr().(*net.TCPAddr).Port

	reg, err := discovery.Register(instance, port, map[string]string{
		"path":    FieldPath,
		"version": version.Version,
		"locale":  s.config.Options.Locale,
	})
	if err != nil {
		return err
	}
	s.mdns = reg
	logging.Info("Advertising over mDNS",
		zap.String("instance", instance),
		zap.String("service", discovery.ServiceType),
		zap.Int("port", port),
	)
	return nil
}

// Shutdown stops accepting connections, closes active sessions and waits
// for their goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.mdns.Shutdown()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Error("Error closing listener", zap.Error(err))
	}

	// Hijacked connections are not closed by http.Server.
	s.mu.Lock()
	for id, conn := range s.activeConns {
		logging.Info("Closing active session", zap.String("session", id))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()
	return nil
}

// ActiveSessions returns the number of connected sessions
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

func (s *Server) track(id string, conn *websocket.Conn) {
	s.wg.Add(1)
	s.mu.Lock()
	s.activeConns[id] = conn
	s.mu.Unlock()
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	delete(s.activeConns, id)
	s.mu.Unlock()
	s.wg.Done()
}

func (s *Server) nextSessionID() string {
	return fmt.Sprintf("s%d", s.sessionSeq.Add(1))
}

// sessionOptions resolves a profile name to options. An empty name selects
// the server defaults.
func (s *Server) sessionOptions(profile string) (numinput.Options, error) {
	if profile == "" {
		return s.config.Options, nil
	}

	var p *config.Profile
	if s.config.Registry != nil {
		p = s.config.Registry.LookupProfile(profile)
	} else {
		p = config.BuiltinProfiles[profile]
	}
	if p == nil {
		return numinput.Options{}, fmt.Errorf("unknown profile %q", profile)
	}
	return p.Options()
}
