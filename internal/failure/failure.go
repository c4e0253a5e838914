// Package failure는 환경/애플리케이션 판정 실패와 설정 검증 실패의 닫힌 분류 체계다.
// 각 실패 타입은 메시지 템플릿에 필요한 필드만 가진다. 메시지는 Render가 만든다.
package failure

import (
	"errors"
)

// Kind는 실패 종류다.
type Kind int

const (
	// KindUnknown은 이 패키지의 실패가 아닌 에러다.
	KindUnknown Kind = iota
	KindNoApp
	KindInvalidApp
	KindNoAppMaster
	KindNoInstances
	KindBadAppMasterStatus
	KindAmbiguousEnvironment
	KindAmbiguousApplication
	KindNoEnvironment
	KindEnvironmentUnlinked
	KindAttributeRequired
	KindBadEndpoint
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindNoApp:                "no_app",
	KindInvalidApp:           "invalid_app",
	KindNoAppMaster:          "no_app_master",
	KindNoInstances:          "no_instances",
	KindBadAppMasterStatus:   "bad_app_master_status",
	KindAmbiguousEnvironment: "ambiguous_environment",
	KindAmbiguousApplication: "ambiguous_application",
	KindNoEnvironment:        "no_environment",
	KindEnvironmentUnlinked:  "environment_unlinked",
	KindAttributeRequired:    "attribute_required",
	KindBadEndpoint:          "bad_endpoint",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// 실패 계열 sentinel. 각 실패 타입의 Is가 자신이 속한 계열에 대해 true를 반환한다.
var (
	// ErrResolver는 matcher 결과로 판정에 실패한 모든 경우를 포함한다.
	ErrResolver = errors.New("resolver error")
	// ErrNoMatches는 matcher가 후보를 하나도 찾지 못한 경우다.
	ErrNoMatches = errors.New("no matches")
	// ErrMultipleMatches는 matcher가 후보를 둘 이상 찾은 경우다.
	ErrMultipleMatches = errors.New("multiple matches")
	// ErrEnvironment는 환경 관련 실패다.
	ErrEnvironment = errors.New("environment error")
	// ErrValidation은 네트워크/판정 작업 전에 발생하는 입력 검증 실패다.
	ErrValidation = errors.New("validation error")
	// ErrOperability는 판정된 환경이 작업 가능한 상태가 아닌 경우다.
	ErrOperability = errors.New("environment not operable")
)

// Failure는 이 패키지의 모든 실패 타입이 구현한다.
type Failure interface {
	error
	Kind() Kind
}

// Candidate는 모호성 메시지에 표시되는 환경 후보다.
type Candidate struct {
	Environment string
	Account     string
}

// NoAppError는 리포지토리 remote와 일치하는 애플리케이션이 없을 때 반환된다.
type NoAppError struct {
	Remotes  []string
	Endpoint string
}

// InvalidAppError는 요청한 이름의 애플리케이션이 없을 때 반환된다.
type InvalidAppError struct {
	Name string
}

// NoAppMasterError는 환경에 master 인스턴스가 없을 때 반환된다.
type NoAppMasterError struct {
	Environment string
}

// NoInstancesError는 작업 대상 인스턴스가 없을 때 반환된다.
type NoInstancesError struct {
	Environment string
}

// BadAppMasterStatusError는 master 인스턴스가 running 상태가 아닐 때 반환된다.
type BadAppMasterStatusError struct {
	Status string
}

// AmbiguousEnvironmentError는 후보 환경이 둘 이상일 때 반환된다.
// Name이 있으면 같은 이름의 환경이 여러 계정에 있는 경우, App이 있으면 -a로 지정한 애플리케이션이
// 여러 환경에서 실행 중인 경우, 둘 다 비어있으면 git remote 매칭의 모호성이다.
// Candidates는 (Account, Environment) 순으로 정렬되어 있어야 한다.
type AmbiguousEnvironmentError struct {
	Name       string
	App        string
	Candidates []Candidate
}

// AmbiguousApplicationError는 한 환경에 후보 애플리케이션이 둘 이상일 때 반환된다.
type AmbiguousApplicationError struct {
	Environment  string
	Applications []string
}

// NoEnvironmentError는 요청한 이름의 환경이 없을 때 반환된다.
type NoEnvironmentError struct {
	Name     string
	Account  string
	Endpoint string
}

// EnvironmentUnlinkedError는 환경이 이 애플리케이션을 실행하지 않을 때 반환된다.
type EnvironmentUnlinkedError struct {
	Environment string
}

// AttributeRequiredError는 필수 속성이 비어있을 때 반환된다. Class는 선택이다.
type AttributeRequiredError struct {
	Attribute string
	Class     string
}

// BadEndpointError는 endpoint가 절대 URI가 아닐 때 반환된다.
type BadEndpointError struct {
	Endpoint string
}

func (e *NoAppError) Error() string                { return Render(e) }
func (e *InvalidAppError) Error() string           { return Render(e) }
func (e *NoAppMasterError) Error() string          { return Render(e) }
func (e *NoInstancesError) Error() string          { return Render(e) }
func (e *BadAppMasterStatusError) Error() string   { return Render(e) }
func (e *AmbiguousEnvironmentError) Error() string { return Render(e) }
func (e *AmbiguousApplicationError) Error() string { return Render(e) }
func (e *NoEnvironmentError) Error() string        { return Render(e) }
func (e *EnvironmentUnlinkedError) Error() string  { return Render(e) }
func (e *AttributeRequiredError) Error() string    { return Render(e) }
func (e *BadEndpointError) Error() string          { return Render(e) }

func (e *NoAppError) Kind() Kind                { return KindNoApp }
func (e *InvalidAppError) Kind() Kind           { return KindInvalidApp }
func (e *NoAppMasterError) Kind() Kind          { return KindNoAppMaster }
func (e *NoInstancesError) Kind() Kind          { return KindNoInstances }
func (e *BadAppMasterStatusError) Kind() Kind   { return KindBadAppMasterStatus }
func (e *AmbiguousEnvironmentError) Kind() Kind { return KindAmbiguousEnvironment }
func (e *AmbiguousApplicationError) Kind() Kind { return KindAmbiguousApplication }
func (e *NoEnvironmentError) Kind() Kind        { return KindNoEnvironment }
func (e *EnvironmentUnlinkedError) Kind() Kind  { return KindEnvironmentUnlinked }
func (e *AttributeRequiredError) Kind() Kind    { return KindAttributeRequired }
func (e *BadEndpointError) Kind() Kind          { return KindBadEndpoint }

func (e *NoAppError) Is(target error) bool {
	return target == ErrNoMatches || target == ErrResolver
}

func (e *InvalidAppError) Is(target error) bool {
	return target == ErrNoMatches || target == ErrResolver
}

func (e *NoAppMasterError) Is(target error) bool        { return target == ErrOperability }
func (e *NoInstancesError) Is(target error) bool        { return target == ErrOperability }
func (e *BadAppMasterStatusError) Is(target error) bool { return target == ErrOperability }

func (e *AmbiguousEnvironmentError) Is(target error) bool {
	return target == ErrMultipleMatches || target == ErrResolver || target == ErrEnvironment
}

func (e *AmbiguousApplicationError) Is(target error) bool {
	return target == ErrMultipleMatches || target == ErrResolver
}

func (e *NoEnvironmentError) Is(target error) bool {
	return target == ErrNoMatches || target == ErrResolver || target == ErrEnvironment
}

func (e *EnvironmentUnlinkedError) Is(target error) bool { return target == ErrEnvironment }
func (e *AttributeRequiredError) Is(target error) bool   { return target == ErrValidation }
func (e *BadEndpointError) Is(target error) bool         { return target == ErrValidation }

// KindOf는 에러 체인에서 첫 번째 Failure의 Kind를 반환한다.
func KindOf(err error) Kind {
	var f Failure
	if errors.As(err, &f) {
		return f.Kind()
	}
	return KindUnknown
}
