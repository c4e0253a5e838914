package cli

import (
	"errors"

	"github.com/hbjs97/cloudctx/internal/cloud"
	"github.com/hbjs97/cloudctx/internal/failure"
)

// ExitCode는 cloudctx의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitAmbiguous는 모호한 판정이다.
	ExitAmbiguous ExitCode = 3
	// ExitAuthFail는 인증 실패다.
	ExitAuthFail ExitCode = 4
	// ExitConfigError는 설정 오류다.
	ExitConfigError ExitCode = 5
	// ExitNotFound는 일치하는 대상이 없거나 환경에 애플리케이션이 연결되지 않은 경우다.
	ExitNotFound ExitCode = 6
	// ExitNotOperable는 판정된 환경에서 작업할 수 없는 경우다 (master 없음, 정지 상태 등).
	ExitNotOperable ExitCode = 7
	// ExitRequestFailed는 API 요청 실패다.
	ExitRequestFailed ExitCode = 8
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrAmbiguous):
		return ExitAmbiguous
	case errors.Is(err, ErrAuthFail):
		return ExitAuthFail
	case errors.Is(err, failure.ErrValidation), errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound), errors.Is(err, failure.ErrEnvironment):
		return ExitNotFound
	case errors.Is(err, failure.ErrOperability):
		return ExitNotOperable
	case errors.Is(err, cloud.ErrRequestFailed):
		return ExitRequestFailed
	default:
		return ExitGeneral
	}
}
