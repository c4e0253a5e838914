package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RepoHintsFile은 리포지토리 루트에 두는 기본 판정 힌트 파일 이름이다.
const RepoHintsFile = ".cloudctx.yml"

// RepoHints는 리포지토리별 기본 환경/계정/애플리케이션이다. 명령 플래그가 우선한다.
type RepoHints struct {
	Environment string `yaml:"environment"`
	Account     string `yaml:"account"`
	App         string `yaml:"app"`
}

// LoadRepoHints는 repoDir/.cloudctx.yml을 읽는다. 파일이 없으면 빈 힌트를 반환한다.
func LoadRepoHints(repoDir string) (RepoHints, error) {
	var h RepoHints
	data, err := os.ReadFile(filepath.Join(repoDir, RepoHintsFile))
	if errors.Is(err, os.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return h, fmt.Errorf("config.LoadRepoHints: %w", err)
	}
	if err := yaml.Unmarshal(data, &h); err != nil {
		return RepoHints{}, fmt.Errorf("config.LoadRepoHints: %w: %v", ErrConfig, err)
	}
	return h, nil
}
