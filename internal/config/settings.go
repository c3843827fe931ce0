package config

import (
	"errors"
	"strings"
	"time"
)

const (
	defaultPort            = 8001
	defaultMonPort         = 8888
	defaultLogLevel        = "info"
	defaultServiceName     = "line-echo-bot"
	defaultPlatformBaseURL = "https://api.line.me/v2/bot"
	defaultDedupTTL        = 10 * time.Minute
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// ChannelSecret keys the HMAC used to sign webhook bodies.
	ChannelSecret string `env:"CHANNEL_SECRET"`
	// ChannelAccessToken authorizes outbound Messaging API calls.
	ChannelAccessToken string `env:"CHANNEL_ACCESS_TOKEN"`
	PlatformBaseURL    string `env:"PLATFORM_BASE_URL"`

	// SkipSignatureCheck keeps processing callbacks whose signature does not match.
	SkipSignatureCheck bool          `env:"SKIP_SIGNATURE_CHECK"`
	DedupTTL           time.Duration `env:"DEDUP_TTL"`

	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// ApplyDefaults fills in every optional setting that was left empty.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.PlatformBaseURL == "" {
		s.PlatformBaseURL = defaultPlatformBaseURL
	}
	s.PlatformBaseURL = strings.TrimRight(s.PlatformBaseURL, "/")
	if s.DedupTTL == 0 {
		s.DedupTTL = defaultDedupTTL
	}
}

// Validate reports every required credential that is missing.
func (s *Settings) Validate() error {
	var errs []error
	if s.ChannelSecret == "" {
		errs = append(errs, errors.New("specify CHANNEL_SECRET as environment variable"))
	}
	if s.ChannelAccessToken == "" {
		errs = append(errs, errors.New("specify CHANNEL_ACCESS_TOKEN as environment variable"))
	}
	if (s.TLSCertFile == "") != (s.TLSKeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together"))
	}
	return errors.Join(errs...)
}

// TLSEnabled reports whether the web server should listen with TLS.
func (s *Settings) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}
