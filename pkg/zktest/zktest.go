// Package zktest runs an in-process server for tests.
package zktest

import (
	"context"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/server"
	"github.com/stretchr/testify/require"
	"github.com/travisjeffery/go-dynaport"
)

// Config is a server configuration with short timeouts, so that expiry can
// be observed quickly. Everything is kept in memory.
func Config() config.Server {
	cfg := config.DefaultServer()
	cfg.DataDir = ""
	cfg.TickInterval = 20 * time.Millisecond
	cfg.MinSessionTimeout = 100 * time.Millisecond
	cfg.MaxSessionTimeout = 10 * time.Second
	return cfg
}

// Server is a running server bound to a free local port.
type Server struct {
	*server.Server
	Addr string

	cancel context.CancelFunc
	done   chan error
	once   sync.Once
}

// NewServer starts a server with the Config above, overridden by opts. It is
// stopped when the test ends.
func NewServer(t testing.TB, opts ...server.Option) *Server {
	t.Helper()

	ports := dynaport.Get(1)
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(ports[0]))
	cfg := Config()
	cfg.Listen = addr

	base := []server.Option{server.WithConfig(cfg), server.WithLogger(log.DiscardLogger)}
	srv, err := server.NewServer(append(base, opts...)...)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", addr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		Server: srv,
		Addr:   addr,
		cancel: cancel,
		done:   make(chan error, 1),
	}
	go func() {
		s.done <- srv.Serve(ctx, lis)
	}()
	t.Cleanup(s.Stop)
	return s
}

// Stop shuts the server down and waits for it. Calling it twice is fine.
func (s *Server) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		_ = s.Server.Close()
	})
}
