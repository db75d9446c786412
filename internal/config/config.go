// Package config loads runtime settings from an optional file and the environment.
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ROIDS_SSH_PORT.
const EnvPrefix = "ROIDS"

// PathEnv names the environment variable holding an optional config file path.
const PathEnv = EnvPrefix + "_CONFIG"

// Settings holds runtime configuration shared by the commands.
type Settings struct {
	Log     LogSettings     `mapstructure:"log"`
	SSH     SSHSettings     `mapstructure:"ssh"`
	Desktop DesktopSettings `mapstructure:"desktop"`
	Web     WebSettings     `mapstructure:"web"`
	Seed    int64           `mapstructure:"seed"` // 0 seeds from the clock
}

// LogSettings configures the logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text, logfmt or json
	File   string `mapstructure:"file"`   // Empty discards logs in terminal frontends
}

// SSHSettings configures the SSH server.
type SSHSettings struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	HostKey     string `mapstructure:"hostKey"`
	MaxSessions int    `mapstructure:"maxSessions"`
}

// Addr returns the listen address.
func (s SSHSettings) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DesktopSettings configures the desktop window.
type DesktopSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// WebSettings configures the landing page that explains how to connect.
type WebSettings struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	DisplayHost string `mapstructure:"displayHost"` // Hostname shown in the ssh command
}

// Addr returns the listen address.
func (s WebSettings) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("ssh.host", "0.0.0.0")
	v.SetDefault("ssh.port", "2222")
	v.SetDefault("ssh.hostKey", ".ssh/id_ed25519")
	v.SetDefault("ssh.maxSessions", 32)

	v.SetDefault("desktop.width", 960)
	v.SetDefault("desktop.height", 720)

	v.SetDefault("web.host", "0.0.0.0")
	v.SetDefault("web.port", "8080")
	v.SetDefault("web.displayHost", "localhost")

	v.SetDefault("seed", 0)
}

// Load reads settings. path may be empty, in which case only defaults and
// environment overrides apply.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks settings that would otherwise fail later at startup.
func (s *Settings) Validate() error {
	switch s.Log.Format {
	case "text", "logfmt", "json":
	default:
		return fmt.Errorf("invalid log format %q", s.Log.Format)
	}
	if s.SSH.Port == "" {
		return fmt.Errorf("ssh port must not be empty")
	}
	if s.SSH.MaxSessions <= 0 {
		return fmt.Errorf("ssh maxSessions must be positive, got %d", s.SSH.MaxSessions)
	}
	if s.Desktop.Width <= 0 || s.Desktop.Height <= 0 {
		return fmt.Errorf("invalid desktop size %dx%d", s.Desktop.Width, s.Desktop.Height)
	}
	return nil
}
