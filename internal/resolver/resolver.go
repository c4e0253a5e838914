package resolver

import (
	"fmt"
	"sort"

	"github.com/hbjs97/cloudctx/internal/failure"
	"github.com/hbjs97/cloudctx/internal/git"
	"github.com/hbjs97/cloudctx/internal/inventory"
	"github.com/hbjs97/cloudctx/internal/match"
)

// Hints는 운영자가 명시한 판정 힌트다. 빈 문자열은 지정하지 않음을 뜻한다.
type Hints struct {
	Environment string
	Account     string
	App         string
}

// Result는 판정된 (계정, 환경, 애플리케이션) 세 쌍이다.
type Result struct {
	Account     *inventory.Account
	Environment *inventory.Environment
	Application *inventory.Application
	Reason      string // "name", "remote", "app", "single"
}

// Resolver는 inventory와 remote/힌트로 배포 대상을 하나로 판정한다.
// 재시도하거나 임의로 고르지 않는다. 모호성은 항상 실패로 반환한다.
type Resolver struct {
	inv      *inventory.Inventory
	endpoint string
}

// New는 새 Resolver를 생성한다. endpoint는 실패 메시지에 사용된다.
func New(inv *inventory.Inventory, endpoint string) *Resolver {
	return &Resolver{inv: inv, endpoint: endpoint}
}

// Resolve는 환경 이름 → git remote 순으로 판정한다.
func (r *Resolver) Resolve(hints Hints, remotes git.RemoteURLSet) (*Result, error) {
	// Step 1: 명시된 환경 이름
	if hints.Environment != "" {
		return r.byName(hints)
	}

	// Step 2: 명시된 애플리케이션 이름
	if hints.App != "" {
		return r.byApp(hints)
	}

	// Step 3: git remote
	return r.byRemote(hints, remotes)
}

// ResolveSingle은 git remote 매칭 없이 (계정 힌트로 거른) 환경이 정확히 하나일 때 그 환경을 판정한다.
func (r *Resolver) ResolveSingle(hints Hints, remotes git.RemoteURLSet) (*Result, error) {
	envs := match.ByAccount(r.inv.Environments(), hints.Account)
	switch len(envs) {
	case 0:
		return nil, fmt.Errorf("resolver.ResolveSingle: %w", r.noApp(remotes))
	case 1:
		return r.selectApp(envs[0], hints.App, nil, "single")
	default:
		return nil, fmt.Errorf("resolver.ResolveSingle: %w", ambiguousEnvironments("", envs))
	}
}

func (r *Resolver) byName(hints Hints) (*Result, error) {
	envs := match.ByName(hints.Environment, r.inv.Environments(), hints.Account)
	switch len(envs) {
	case 0:
		return nil, fmt.Errorf("resolver.Resolve: %w", &failure.NoEnvironmentError{
			Name: hints.Environment, Account: hints.Account, Endpoint: r.endpoint,
		})
	case 1:
		return r.selectApp(envs[0], hints.App, nil, "name")
	default:
		return nil, fmt.Errorf("resolver.Resolve: %w", ambiguousEnvironments(hints.Environment, envs))
	}
}

func (r *Resolver) byApp(hints Hints) (*Result, error) {
	apps := r.inv.ApplicationsNamed(hints.App)
	if len(apps) == 0 {
		return nil, fmt.Errorf("resolver.Resolve: %w", &failure.InvalidAppError{Name: hints.App})
	}
	var envs []*inventory.Environment
	seen := make(map[*inventory.Environment]bool)
	for _, app := range apps {
		for _, env := range app.Environments {
			if !seen[env] {
				seen[env] = true
				envs = append(envs, env)
			}
		}
	}
	envs = match.ByAccount(envs, hints.Account)
	switch len(envs) {
	case 0:
		return nil, fmt.Errorf("resolver.Resolve: %w", &failure.InvalidAppError{Name: hints.App})
	case 1:
		return r.selectApp(envs[0], hints.App, nil, "app")
	default:
		amb := ambiguousEnvironments("", envs)
		amb.App = hints.App
		return nil, fmt.Errorf("resolver.Resolve: %w", amb)
	}
}

func (r *Resolver) byRemote(hints Hints, remotes git.RemoteURLSet) (*Result, error) {
	matched := match.AppsByRemote(remotes, r.inv.Applications())
	envs := match.ByAccount(match.ByRemote(remotes, r.inv.Applications()), hints.Account)
	switch len(envs) {
	case 0:
		return nil, fmt.Errorf("resolver.Resolve: %w", r.noApp(remotes))
	case 1:
		return r.selectApp(envs[0], "", matched, "remote")
	default:
		return nil, fmt.Errorf("resolver.Resolve: %w", ambiguousEnvironments("", envs))
	}
}

// selectApp은 하나로 좁혀진 환경에서 애플리케이션을 고른다.
// matched가 nil이 아니면 그 안에 있는 애플리케이션만 후보가 된다 (remote 판정).
func (r *Resolver) selectApp(env *inventory.Environment, appName string, matched []*inventory.Application, reason string) (*Result, error) {
	if appName != "" {
		if app, ok := env.App(appName); ok {
			return newResult(env, app, reason), nil
		}
		if len(r.inv.ApplicationsNamed(appName)) == 0 {
			return nil, fmt.Errorf("resolver.Resolve: %w", &failure.InvalidAppError{Name: appName})
		}
		return nil, fmt.Errorf("resolver.Resolve: %w", &failure.EnvironmentUnlinkedError{Environment: env.Name})
	}

	candidates := env.Apps
	if matched != nil {
		candidates = intersect(env.Apps, matched)
	}
	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("resolver.Resolve: %w", &failure.EnvironmentUnlinkedError{Environment: env.Name})
	case 1:
		return newResult(env, candidates[0], reason), nil
	default:
		names := make([]string, 0, len(candidates))
		for _, a := range candidates {
			names = append(names, a.Name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("resolver.Resolve: %w", &failure.AmbiguousApplicationError{
			Environment: env.Name, Applications: names,
		})
	}
}

func (r *Resolver) noApp(remotes git.RemoteURLSet) *failure.NoAppError {
	return &failure.NoAppError{Remotes: remotes.URLs(), Endpoint: r.endpoint}
}

func ambiguousEnvironments(name string, envs []*inventory.Environment) *failure.AmbiguousEnvironmentError {
	sorted := match.SortEnvironments(envs)
	candidates := make([]failure.Candidate, 0, len(sorted))
	for _, env := range sorted {
		candidates = append(candidates, failure.Candidate{Environment: env.Name, Account: env.AccountName()})
	}
	return &failure.AmbiguousEnvironmentError{Name: name, Candidates: candidates}
}

func intersect(apps, matched []*inventory.Application) []*inventory.Application {
	var out []*inventory.Application
	for _, a := range apps {
		for _, m := range matched {
			if a == m {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func newResult(env *inventory.Environment, app *inventory.Application, reason string) *Result {
	return &Result{Account: env.Account, Environment: env, Application: app, Reason: reason}
}
