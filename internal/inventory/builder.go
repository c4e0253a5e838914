package inventory

import (
	"github.com/hbjs97/cloudctx/internal/failure"
)

// AccountRecord는 API 응답의 계정 항목이다.
type AccountRecord struct {
	ID   int
	Name string
}

// AppRecord는 API 응답의 애플리케이션 항목이다.
type AppRecord struct {
	ID             int
	Name           string
	RepositoryURIs []string
}

// EnvironmentRecord는 API 응답의 환경 항목이다.
type EnvironmentRecord struct {
	ID        int
	Name      string
	Account   AccountRecord
	AppMaster *Instance
	Instances []Instance
	Apps      []AppRecord
}

// Builder는 여러 계정/페이지의 응답을 모아 하나의 Inventory를 만든다.
// Build 전까지는 Inventory가 존재하지 않으므로 부분 스냅샷이 노출되지 않는다.
type Builder struct {
	records []EnvironmentRecord
}

// NewBuilder는 빈 Builder를 생성한다.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add는 환경 레코드를 추가한다.
func (b *Builder) Add(records ...EnvironmentRecord) *Builder {
	b.records = append(b.records, records...)
	return b
}

// Len은 지금까지 추가된 환경 레코드 수다.
func (b *Builder) Len() int {
	return len(b.records)
}

// Build는 레코드를 검증하고 역참조를 연결한 Inventory를 반환한다.
// 계정과 애플리케이션은 ID로 중복 제거되며 처음 등장한 순서를 유지한다.
// 같은 ID의 환경이 다시 나오면 처음 것만 남긴다.
func (b *Builder) Build() (*Inventory, error) {
	inv := &Inventory{}
	accounts := make(map[int]*Account)
	apps := make(map[int]*Application)
	seen := make(map[int]bool)

	for _, rec := range b.records {
		if err := validate(rec); err != nil {
			return nil, err
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true

		acct, ok := accounts[rec.Account.ID]
		if !ok {
			acct = &Account{ID: rec.Account.ID, Name: rec.Account.Name}
			accounts[rec.Account.ID] = acct
			inv.accounts = append(inv.accounts, acct)
		}

		env := &Environment{ID: rec.ID, Name: rec.Name, Account: acct}
		for i := range rec.Instances {
			inst := rec.Instances[i]
			env.Instances = append(env.Instances, &inst)
		}
		env.AppMaster = pickMaster(rec.AppMaster, env.Instances)

		for _, ar := range rec.Apps {
			app, ok := apps[ar.ID]
			if !ok {
				app = &Application{
					ID:             ar.ID,
					Name:           ar.Name,
					RepositoryURIs: append([]string(nil), ar.RepositoryURIs...),
				}
				apps[ar.ID] = app
				inv.applications = append(inv.applications, app)
			}
			env.Apps = append(env.Apps, app)
			app.Environments = append(app.Environments, env)
		}
		inv.environments = append(inv.environments, env)
	}
	return inv, nil
}

// validate는 병합 키인 ID와 이름이 있는지 확인한다.
func validate(rec EnvironmentRecord) error {
	if err := required("Environment", rec.ID, rec.Name); err != nil {
		return err
	}
	if err := required("Account", rec.Account.ID, rec.Account.Name); err != nil {
		return err
	}
	for _, a := range rec.Apps {
		if err := required("Application", a.ID, a.Name); err != nil {
			return err
		}
	}
	return nil
}

func required(class string, id int, name string) error {
	if id == 0 {
		return &failure.AttributeRequiredError{Attribute: "id", Class: class}
	}
	if name == "" {
		return &failure.AttributeRequiredError{Attribute: "name", Class: class}
	}
	return nil
}

// pickMaster는 명시된 master를 우선하고, 없으면 app_master 또는 solo 역할 인스턴스를 사용한다.
// 명시된 master에 ID가 있고 같은 ID의 인스턴스가 있으면 그 포인터를 재사용한다.
func pickMaster(explicit *Instance, instances []*Instance) *Instance {
	if explicit != nil {
		for _, inst := range instances {
			if explicit.ID != 0 && inst.ID == explicit.ID {
				return inst
			}
		}
		m := *explicit
		return &m
	}
	for _, inst := range instances {
		if inst.Role == RoleAppMaster || inst.Role == RoleSolo {
			return inst
		}
	}
	return nil
}
