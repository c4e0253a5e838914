package cloud

import (
	"errors"
	"fmt"
)

// ErrRequestFailed는 API 요청 실패 전체를 나타낸다. 판정 실패와는 별개다.
var ErrRequestFailed = errors.New("request failed")

// ErrInvalidCredentials는 API 토큰이 거부되었을 때 반환된다.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrResourceNotFound는 API 리소스가 없을 때 반환된다.
var ErrResourceNotFound = errors.New("resource not found")

// RequestError는 실패한 API 요청이다.
// errors.Is로 ErrRequestFailed와 Kind(ErrInvalidCredentials/ErrResourceNotFound) 모두에 매칭된다.
type RequestError struct {
	Kind   error
	Method string
	URL    string
	Status string
	Err    error
}

func (e *RequestError) Error() string {
	detail := e.Status
	if e.Err != nil {
		detail = e.Err.Error()
	}
	return fmt.Sprintf("%v: %s %s: %s", e.Kind, e.Method, e.URL, detail)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed || target == e.Kind
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
