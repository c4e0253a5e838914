package resolver

import (
	"fmt"

	"github.com/hbjs97/cloudctx/internal/failure"
	"github.com/hbjs97/cloudctx/internal/inventory"
)

// Master는 판정된 환경의 master 인스턴스를 반환한다.
func (r *Result) Master() (*inventory.Instance, error) {
	if r.Environment.AppMaster == nil {
		return nil, fmt.Errorf("resolver.Master: %w", &failure.NoAppMasterError{Environment: r.Environment.Name})
	}
	return r.Environment.AppMaster, nil
}

// RunningMaster는 master 인스턴스가 running 상태일 때만 반환한다.
func (r *Result) RunningMaster() (*inventory.Instance, error) {
	m, err := r.Master()
	if err != nil {
		return nil, err
	}
	if m.Status != inventory.StatusRunning {
		return nil, fmt.Errorf("resolver.RunningMaster: %w", &failure.BadAppMasterStatusError{Status: m.Status})
	}
	return m, nil
}

// Instances는 roles 중 하나의 역할을 가진 인스턴스를 반환한다. roles가 비어있으면 전체다.
func (r *Result) Instances(roles ...string) ([]*inventory.Instance, error) {
	want := make(map[string]bool, len(roles))
	for _, role := range roles {
		want[role] = true
	}
	var out []*inventory.Instance
	for _, inst := range r.Environment.Instances {
		if len(want) == 0 || want[inst.Role] {
			out = append(out, inst)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("resolver.Instances: %w", &failure.NoInstancesError{Environment: r.Environment.Name})
	}
	return out, nil
}

// String은 "account/environment/app" 형식이다.
func (r *Result) String() string {
	return fmt.Sprintf("%s/%s/%s", r.Account.Name, r.Environment.Name, r.Application.Name)
}
