package setup

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/failure"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunCredentialsForm은 endpoint/API 토큰 입력 폼을 실행한다.
func (h *HuhFormRunner) RunCredentialsForm(defaults CredentialsInput) (*CredentialsInput, error) {
	input := defaults

	endpointValidate := func(s string) error {
		if err := config.ValidateEndpoint(s); err != nil {
			return errors.New(failure.Render(err))
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("API endpoint").
			Description("클라우드 API의 절대 URI (예: https://cloud.engineyard.com/)").
			Value(&input.Endpoint).
			Validate(endpointValidate),
		huh.NewInput().
			Title("API token").
			EchoMode(huh.EchoModePassword).
			Value(&input.APIToken).
			Validate(huh.ValidateNotEmpty()),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunCredentialsForm: %w", err)
	}
	return &input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
