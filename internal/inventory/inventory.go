// Package inventory는 클라우드 API에서 가져온 계정/환경/애플리케이션 스냅샷이다.
// Inventory는 Builder.Build로만 만들어지며 만들어진 뒤에는 변경되지 않는다.
package inventory

import (
	"sort"
)

// StatusRunning은 작업 가능한 master 인스턴스의 상태 값이다.
const StatusRunning = "running"

// 인스턴스 역할.
const (
	RoleAppMaster = "app_master"
	RoleApp       = "app"
	RoleSolo      = "solo"
	RoleDBMaster  = "db_master"
	RoleDBSlave   = "db_slave"
	RoleUtil      = "util"
)

// Account는 클라우드 계정이다.
type Account struct {
	ID   int
	Name string
}

// Environment는 계정에 속한 배포 대상이다. Name은 계정 안에서만 유일하다.
type Environment struct {
	ID        int
	Name      string
	Account   *Account
	Apps      []*Application
	AppMaster *Instance
	Instances []*Instance
}

// AccountName은 소유 계정 이름을 반환한다.
func (e *Environment) AccountName() string {
	if e.Account == nil {
		return ""
	}
	return e.Account.Name
}

// App은 이 환경에 연결된 애플리케이션 중 이름이 name인 것을 찾는다.
func (e *Environment) App(name string) (*Application, bool) {
	for _, a := range e.Apps {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// AppNames는 연결된 애플리케이션 이름을 정렬해서 반환한다.
func (e *Environment) AppNames() []string {
	names := make([]string, 0, len(e.Apps))
	for _, a := range e.Apps {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}

// Application은 배포 단위다. RepositoryURIs는 API에 등록된 git remote 목록이다.
type Application struct {
	ID             int
	Name           string
	RepositoryURIs []string
	Environments   []*Environment
}

// Instance는 환경 안의 서버다.
type Instance struct {
	ID       int
	Role     string
	Name     string
	Hostname string
	Status   string
}

// Inventory는 접근 가능한 모든 계정의 환경과 애플리케이션을 합친 스냅샷이다.
type Inventory struct {
	accounts     []*Account
	environments []*Environment
	applications []*Application
}

// Accounts는 계정 목록을 반환한다.
func (inv *Inventory) Accounts() []*Account {
	return append([]*Account(nil), inv.accounts...)
}

// Environments는 모든 계정의 환경 목록을 반환한다.
func (inv *Inventory) Environments() []*Environment {
	return append([]*Environment(nil), inv.environments...)
}

// Applications는 모든 애플리케이션 목록을 반환한다.
func (inv *Inventory) Applications() []*Application {
	return append([]*Application(nil), inv.applications...)
}

// ApplicationsNamed는 이름이 name인 애플리케이션을 모두 반환한다.
// 같은 이름의 애플리케이션이 여러 계정에 있을 수 있다.
func (inv *Inventory) ApplicationsNamed(name string) []*Application {
	var out []*Application
	for _, a := range inv.applications {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}
