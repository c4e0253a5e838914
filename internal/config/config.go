package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/cloudctx/internal/failure"
)

// ErrConfig는 설정 파일을 읽거나 해석하지 못했을 때의 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// DefaultEndpoint는 endpoint가 설정되지 않았을 때 사용하는 API base URI다.
const DefaultEndpoint = "https://cloud.engineyard.com/"

// 환경변수 override.
const (
	EnvEndpoint = "CLOUDCTX_ENDPOINT"
	EnvAPIToken = "CLOUDCTX_API_TOKEN"
)

// Config는 cloudctx 설정 파일의 최상위 구조체다.
type Config struct {
	Version        int    `toml:"version"`
	Endpoint       string `toml:"endpoint"`
	APIToken       string `toml:"api_token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값과 환경변수만으로 구성한다. endpoint가 절대 URI가 아니면 BadEndpointError다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := ValidateEndpoint(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한, 상위 디렉토리 생성).
func Save(path string, cfg *Config) error {
	if err := ValidateEndpoint(cfg.Endpoint); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// ValidateEndpoint는 raw가 scheme과 host를 가진 절대 URI인지 확인한다.
func ValidateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &failure.BadEndpointError{Endpoint: raw}
	}
	return nil
}

// RequireToken은 API 토큰이 없으면 AttributeRequiredError를 반환한다.
func (c *Config) RequireToken() error {
	if c.APIToken == "" {
		return &failure.AttributeRequiredError{Attribute: "api_token"}
	}
	return nil
}

// Timeout은 API 요청 timeout이다.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.APIToken = v
	}
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}
