package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/cloudctx/internal/cloud"
	"github.com/hbjs97/cloudctx/internal/cmdexec"
	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/failure"
	"github.com/hbjs97/cloudctx/internal/git"
	"github.com/hbjs97/cloudctx/internal/inventory"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=doctor.go -destination=mockdoctor.gen.go -package=doctor

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Fetcher는 inventory를 가져오는 API 클라이언트다.
type Fetcher interface {
	FetchInventory(ctx context.Context) (*inventory.Inventory, error)
}

// CheckBinaries는 git 바이너리 존재 여부를 확인한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander) []DiagResult {
	out, err := cmd.Run(ctx, "git", "--version")
	if err != nil {
		return []DiagResult{{
			Name:    "git",
			Status:  StatusFail,
			Message: "git 없음",
			Fix:     "설치: https://git-scm.com/downloads",
		}}
	}
	return []DiagResult{{Name: "git", Status: StatusOK, Message: strings.TrimSpace(string(out))}}
}

// CheckConfig는 설정 파일을 읽고 endpoint와 파일 권한을 검증한다. 읽기에 실패하면 cfg는 nil이다.
func CheckConfig(path string) (DiagResult, *config.Config) {
	cfg, err := config.Load(path)
	if err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: failure.Render(err),
			Fix:     "cloudctx setup 실행 또는 " + path + " 확인",
		}, nil
	}
	if err := config.ValidateFilePermissions(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: "API 토큰이 담긴 설정 파일을 다른 사용자가 읽을 수 있음",
			Fix:     "chmod 600 " + path,
		}, cfg
	}
	return DiagResult{Name: "config", Status: StatusOK, Message: "endpoint " + cfg.Endpoint}, cfg
}

// CheckToken은 API 토큰 설정 여부를 확인한다.
func CheckToken(cfg *config.Config) DiagResult {
	if err := cfg.RequireToken(); err != nil {
		return DiagResult{
			Name:    "api_token",
			Status:  StatusFail,
			Message: failure.Render(err),
			Fix:     fmt.Sprintf("cloudctx setup 실행 또는 %s 설정", config.EnvAPIToken),
		}
	}
	return DiagResult{Name: "api_token", Status: StatusOK, Message: "API 토큰 설정됨"}
}

// CheckRemotes는 현재 리포지토리에 remote가 있는지 확인한다.
func CheckRemotes(ctx context.Context, cmd cmdexec.Commander, repoDir string) DiagResult {
	remotes, err := git.NewAdapter(cmd).Remotes(ctx, repoDir)
	if err != nil {
		return DiagResult{
			Name:    "git_remotes",
			Status:  StatusWarn,
			Message: "git 리포지토리가 아님",
			Fix:     "리포지토리 안에서 실행하거나 -e <envname> 지정",
		}
	}
	if remotes.Len() == 0 {
		return DiagResult{
			Name:    "git_remotes",
			Status:  StatusWarn,
			Message: "No remotes found.",
			Fix:     "git remote add origin <url>",
		}
	}
	return DiagResult{Name: "git_remotes", Status: StatusOK, Message: strings.Join(remotes.URLs(), ", ")}
}

// CheckAPI는 inventory를 가져와 인증과 연결을 확인한다.
func CheckAPI(ctx context.Context, f Fetcher) DiagResult {
	inv, err := f.FetchInventory(ctx)
	switch {
	case err == nil:
		return DiagResult{
			Name:   "api",
			Status: StatusOK,
			Message: fmt.Sprintf("계정 %d개, 환경 %d개, 애플리케이션 %d개",
				len(inv.Accounts()), len(inv.Environments()), len(inv.Applications())),
		}
	case errors.Is(err, cloud.ErrInvalidCredentials):
		return DiagResult{Name: "api", Status: StatusFail, Message: "API 토큰 거부됨", Fix: "cloudctx setup으로 토큰 재설정"}
	default:
		return DiagResult{Name: "api", Status: StatusFail, Message: failure.Render(err), Fix: "endpoint와 네트워크 확인"}
	}
}

// RunAll은 모든 진단을 실행한다. 설정을 읽지 못하면 API 진단은 생략한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath, repoDir string, newFetcher func(*config.Config) Fetcher) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, cmd)...)
	results = append(results, CheckRemotes(ctx, cmd, repoDir))

	cfgResult, cfg := CheckConfig(cfgPath)
	results = append(results, cfgResult)
	if cfg == nil {
		return results
	}
	tokenResult := CheckToken(cfg)
	results = append(results, tokenResult)
	if tokenResult.Status != StatusOK {
		return results
	}
	return append(results, CheckAPI(ctx, newFetcher(cfg)))
}
