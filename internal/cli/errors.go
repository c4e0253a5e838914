package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hbjs97/cloudctx/internal/cloud"
	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/failure"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrAmbiguous는 후보가 여럿이라 판정할 수 없을 때의 sentinel error다.
	ErrAmbiguous = failure.ErrMultipleMatches
	// ErrNotFound는 일치하는 대상이 없을 때의 sentinel error다.
	ErrNotFound = failure.ErrNoMatches
	// ErrAuthFail는 API 토큰이 거부되었을 때의 sentinel error다.
	ErrAuthFail = cloud.ErrInvalidCredentials
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)

// Message는 사용자에게 보여줄 에러 메시지다. 판정 실패는 wrap 체인 없이 템플릿 문구만 보여준다.
func Message(err error) string {
	return failure.Render(err)
}

// PrintError는 에러 메시지를 줄바꿈 하나로 끝나도록 w에 출력한다.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, strings.TrimRight(Message(err), "\n"))
}
