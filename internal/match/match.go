// Package match는 inventory에서 remote URL 또는 이름에 대응하는 환경을 찾는 순수 함수 모음이다.
package match

import (
	"sort"

	"github.com/hbjs97/cloudctx/internal/git"
	"github.com/hbjs97/cloudctx/internal/inventory"
)

// AppsByRemote는 등록된 repository URI 중 하나가 remotes에 포함된 애플리케이션을 반환한다.
// 비교는 정규화 후 문자열 동등성이다.
func AppsByRemote(remotes git.RemoteURLSet, apps []*inventory.Application) []*inventory.Application {
	var out []*inventory.Application
	for _, app := range apps {
		for _, uri := range app.RepositoryURIs {
			if remotes.Contains(uri) {
				out = append(out, app)
				break
			}
		}
	}
	return out
}

// ByRemote는 remotes와 일치하는 애플리케이션이 배포된 환경의 합집합을 반환한다.
func ByRemote(remotes git.RemoteURLSet, apps []*inventory.Application) []*inventory.Environment {
	var out []*inventory.Environment
	seen := make(map[*inventory.Environment]bool)
	for _, app := range AppsByRemote(remotes, apps) {
		for _, env := range app.Environments {
			if seen[env] {
				continue
			}
			seen[env] = true
			out = append(out, env)
		}
	}
	return out
}

// ByName은 이름이 정확히 name인 환경을 반환한다. 대소문자를 구분한다.
// accountHint가 비어있지 않으면 그 계정의 환경만 남긴다.
func ByName(name string, envs []*inventory.Environment, accountHint string) []*inventory.Environment {
	var out []*inventory.Environment
	for _, env := range envs {
		if env.Name == name {
			out = append(out, env)
		}
	}
	return ByAccount(out, accountHint)
}

// ByAccount는 accountHint 계정의 환경만 남긴다. accountHint가 비어있으면 그대로 반환한다.
func ByAccount(envs []*inventory.Environment, accountHint string) []*inventory.Environment {
	if accountHint == "" {
		return envs
	}
	var out []*inventory.Environment
	for _, env := range envs {
		if env.AccountName() == accountHint {
			out = append(out, env)
		}
	}
	return out
}

// SortEnvironments는 (계정 이름, 환경 이름) 오름차순으로 정렬한 복사본을 반환한다.
// 계정 안에서 환경 이름은 유일하므로 두 키가 모두 같은 경우는 없다.
func SortEnvironments(envs []*inventory.Environment) []*inventory.Environment {
	out := append([]*inventory.Environment(nil), envs...)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].AccountName(), out[j].AccountName()
		if ai != aj {
			return ai < aj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
