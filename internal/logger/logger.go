// Package logger는 --verbose일 때만 출력하는 진단 로그다.
package logger

import (
	"fmt"
	"io"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger는 형식화된 진단 메시지를 기록한다.
type Logger interface {
	Logf(format string, args ...any)
}

type noopLogger struct{}

// NewNoop은 아무것도 출력하지 않는 Logger를 반환한다.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Logf(string, ...any) {}

type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// New는 verbose이면 w에 "cloudctx: " 접두사와 함께 한 줄씩 기록하는 Logger를 반환한다.
func New(w io.Writer, verbose bool) Logger {
	if !verbose || w == nil {
		return NewNoop()
	}
	return &writerLogger{w: w}
}

func (l *writerLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "cloudctx: "+format+"\n", args...)
}
