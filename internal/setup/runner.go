package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/inventory"
)

// Fetcher는 입력한 자격 증명으로 inventory를 가져와 검증한다.
type Fetcher interface {
	FetchInventory(ctx context.Context) (*inventory.Inventory, error)
}

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	FormRunner FormRunner
	Out        io.Writer
	// NewFetcher가 nil이 아니면 저장 전에 자격 증명을 검증한다.
	NewFetcher func(*config.Config) Fetcher
}

// Run은 setup 플로우를 실행한다.
func (r *Runner) Run(ctx context.Context) error {
	defaults := CredentialsInput{Endpoint: config.DefaultEndpoint}

	_, statErr := os.Stat(r.CfgPath)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("setup.Run: %w", statErr)
	}
	if exists {
		if cfg, err := config.Load(r.CfgPath); err == nil {
			defaults = CredentialsInput{Endpoint: cfg.Endpoint, APIToken: cfg.APIToken}
		}
		ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("%s 설정을 덮어쓰시겠습니까?", r.CfgPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.Out, "변경 사항 없음")
			return nil
		}
	}

	input, err := r.FormRunner.RunCredentialsForm(defaults)
	if err != nil {
		return err
	}
	if err := config.ValidateEndpoint(input.Endpoint); err != nil {
		return fmt.Errorf("setup.Run: %w", err)
	}

	cfg := &config.Config{Version: 1, Endpoint: input.Endpoint, APIToken: input.APIToken, TimeoutSeconds: 30}
	if r.NewFetcher != nil {
		inv, err := r.NewFetcher(cfg).FetchInventory(ctx)
		if err != nil {
			return fmt.Errorf("setup.Run: %w", err)
		}
		fmt.Fprintf(r.Out, "인증 확인: 환경 %d개\n", len(inv.Environments()))
	}

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "설정 파일이 저장되었습니다: %s\n", r.CfgPath)
	return nil
}
