package setup

// CredentialsInput은 setup 폼에서 입력받는 값이다.
type CredentialsInput struct {
	Endpoint string
	APIToken string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunCredentialsForm은 endpoint와 API 토큰 입력 폼을 실행한다.
	// defaults의 값을 기본값으로 표시한다.
	RunCredentialsForm(defaults CredentialsInput) (*CredentialsInput, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
