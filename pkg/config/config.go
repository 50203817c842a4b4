package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// Client configures a client connection.
type Client struct {
	Endpoint       string
	SessionTimeout time.Duration
	ConnectTimeout time.Duration
	// RetryInitial and RetryMax bound the reconnect backoff.
	RetryInitial time.Duration
	RetryMax     time.Duration
	// RecursiveDelete makes Delete remove non-empty nodes with their subtree.
	RecursiveDelete bool
	// RefreshRetries is how many times a persistent watch refetches a node before giving up.
	RefreshRetries int
	LogLevel       string
}

// Server configures the reference server.
type Server struct {
	Listen            string
	DataDir           string
	TickInterval      time.Duration
	MinSessionTimeout time.Duration
	MaxSessionTimeout time.Duration
	LogLevel          string
}

type Config struct {
	Client Client
	Server Server
}

func DefaultClient() Client {
	return Client{
		Endpoint:       "127.0.0.1:2181",
		SessionTimeout: 10 * time.Second,
		ConnectTimeout: 5 * time.Second,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       2 * time.Second,
		RefreshRetries: 3,
		LogLevel:       "info",
	}
}

func DefaultServer() Server {
	return Server{
		Listen:            "127.0.0.1:2181",
		DataDir:           "data",
		TickInterval:      200 * time.Millisecond,
		MinSessionTimeout: 400 * time.Millisecond,
		MaxSessionTimeout: 40 * time.Second,
		LogLevel:          "info",
	}
}

func Default() Config {
	return Config{
		Client: DefaultClient(),
		Server: DefaultServer(),
	}
}

type fileClient struct {
	Endpoint        string `toml:"endpoint"`
	SessionTimeout  string `toml:"session_timeout"`
	ConnectTimeout  string `toml:"connect_timeout"`
	RetryInitial    string `toml:"retry_initial"`
	RetryMax        string `toml:"retry_max"`
	RecursiveDelete bool   `toml:"recursive_delete"`
	RefreshRetries  int    `toml:"refresh_retries"`
	LogLevel        string `toml:"log_level"`
}

type fileServer struct {
	Listen            string `toml:"listen"`
	DataDir           string `toml:"data_dir"`
	TickInterval      string `toml:"tick_interval"`
	MinSessionTimeout string `toml:"min_session_timeout"`
	MaxSessionTimeout string `toml:"max_session_timeout"`
	LogLevel          string `toml:"log_level"`
}

type fileConfig struct {
	Client fileClient `toml:"client"`
	Server fileServer `toml:"server"`
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return overlay(Default(), raw, meta)
}

// Parse is Load for configuration held in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return overlay(Default(), raw, meta)
}

func overlay(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	var err error
	str := func(section, key, value string, dst *string) {
		if meta.IsDefined(section, key) {
			*dst = strings.TrimSpace(value)
		}
	}
	dur := func(section, key, value string, dst *time.Duration) {
		if !meta.IsDefined(section, key) {
			return
		}
		d, parseErr := time.ParseDuration(strings.TrimSpace(value))
		if parseErr != nil {
			err = multierr.Append(err, fmt.Errorf("parse %s.%s: %w", section, key, parseErr))
			return
		}
		*dst = d
	}

	str("client", "endpoint", raw.Client.Endpoint, &cfg.Client.Endpoint)
	dur("client", "session_timeout", raw.Client.SessionTimeout, &cfg.Client.SessionTimeout)
	dur("client", "connect_timeout", raw.Client.ConnectTimeout, &cfg.Client.ConnectTimeout)
	dur("client", "retry_initial", raw.Client.RetryInitial, &cfg.Client.RetryInitial)
	dur("client", "retry_max", raw.Client.RetryMax, &cfg.Client.RetryMax)
	if meta.IsDefined("client", "recursive_delete") {
		cfg.Client.RecursiveDelete = raw.Client.RecursiveDelete
	}
	if meta.IsDefined("client", "refresh_retries") {
		cfg.Client.RefreshRetries = raw.Client.RefreshRetries
	}
	str("client", "log_level", raw.Client.LogLevel, &cfg.Client.LogLevel)

	str("server", "listen", raw.Server.Listen, &cfg.Server.Listen)
	str("server", "data_dir", raw.Server.DataDir, &cfg.Server.DataDir)
	dur("server", "tick_interval", raw.Server.TickInterval, &cfg.Server.TickInterval)
	dur("server", "min_session_timeout", raw.Server.MinSessionTimeout, &cfg.Server.MinSessionTimeout)
	dur("server", "max_session_timeout", raw.Server.MaxSessionTimeout, &cfg.Server.MaxSessionTimeout)
	str("server", "log_level", raw.Server.LogLevel, &cfg.Server.LogLevel)

	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	return multierr.Combine(c.Client.Validate(), c.Server.Validate())
}

func (c Client) Validate() error {
	var err error
	if c.Endpoint == "" {
		err = multierr.Append(err, errors.New("client.endpoint is required"))
	}
	if c.SessionTimeout <= 0 {
		err = multierr.Append(err, errors.New("client.session_timeout must be positive"))
	}
	if c.ConnectTimeout <= 0 {
		err = multierr.Append(err, errors.New("client.connect_timeout must be positive"))
	}
	if c.RetryInitial <= 0 || c.RetryMax < c.RetryInitial {
		err = multierr.Append(err, fmt.Errorf("client retry bounds [%s, %s] are invalid", c.RetryInitial, c.RetryMax))
	}
	if c.RefreshRetries < 1 {
		err = multierr.Append(err, errors.New("client.refresh_retries must be at least 1"))
	}
	return err
}

func (s Server) Validate() error {
	var err error
	if s.Listen == "" {
		err = multierr.Append(err, errors.New("server.listen is required"))
	}
	if s.TickInterval <= 0 {
		err = multierr.Append(err, errors.New("server.tick_interval must be positive"))
	}
	if s.MinSessionTimeout <= 0 || s.MaxSessionTimeout < s.MinSessionTimeout {
		err = multierr.Append(err, fmt.Errorf("server session timeout bounds [%s, %s] are invalid",
			s.MinSessionTimeout, s.MaxSessionTimeout))
	}
	return err
}
