package server

import (
	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
)

type Option func(s *Server)

// WithConfig replaces the whole server configuration.
func WithConfig(cfg config.Server) Option {
	return func(s *Server) {
		s.cfg = cfg
	}
}

// WithDataDir keeps the transaction log in dir.
func WithDataDir(dir string) Option {
	return func(s *Server) {
		s.cfg.DataDir = dir
	}
}

func WithLogger(logger log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}
