package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultListenAddr = ":50051"
	defaultLogLevel   = "info"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig は zap ロガーの設定です。
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DatabaseConfig は永続化先の接続設定です。driver が sqlite の場合は path のみを使用します。
type DatabaseConfig struct {
	Driver             string        `yaml:"driver"`
	Path               string        `yaml:"path"`
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnectTimeout     time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
	ConnectTimeoutRaw  string        `yaml:"connect_timeout"`
	TraceQueries       bool          `yaml:"trace_queries"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
// ファイル中の ${VAR} は環境変数で展開されます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	return Parse(b)
}

// Parse は YAML の内容から設定を構築します。
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}
	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		return fmt.Errorf("config: server.listen_addr: %w", err)
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}

	db := &c.Database
	if err := db.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Driver == "" {
		d.Driver = DriverPostgres
	}

	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return fmt.Errorf("config: database.path must be set for sqlite")
		}
		return nil
	case DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported database.driver %q", d.Driver)
	}

	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"conn_max_lifetime", d.ConnMaxLifetimeRaw, &d.ConnMaxLifetime},
		{"conn_max_idle_time", d.ConnMaxIdleTimeRaw, &d.ConnMaxIdleTime},
		{"connect_timeout", d.ConnectTimeoutRaw, &d.ConnectTimeout},
	}
	for _, item := range durations {
		v, err := parseDurationAllowEmpty(item.raw)
		if err != nil {
			return fmt.Errorf("config: database.%s: %w", item.key, err)
		}
		*item.dst = v
	}

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

// DSN は pgx および golang-migrate 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}

	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(d.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()

	return u.String()
}
