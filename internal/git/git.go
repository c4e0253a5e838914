package git

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/cloudctx/internal/cmdexec"
)

// Remote는 로컬 리포지토리에 설정된 remote 하나다.
type Remote struct {
	Name string
	URL  string
}

// RemoteURLSet은 리포지토리의 push/fetch URL 집합이다.
// git이 출력한 순서를 유지하고 정규화된 URL 기준으로 중복을 제거한다. 비어있어도 유효하다.
type RemoteURLSet struct {
	remotes []Remote
}

// NewRemoteURLSet은 주어진 remote로 집합을 만든다.
func NewRemoteURLSet(remotes ...Remote) RemoteURLSet {
	var s RemoteURLSet
	seen := make(map[string]bool)
	for _, r := range remotes {
		u := NormalizeURL(r.URL)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		s.remotes = append(s.remotes, Remote{Name: r.Name, URL: u})
	}
	return s
}

// URLSetOf는 이름 없는 URL 목록으로 집합을 만든다.
func URLSetOf(urls ...string) RemoteURLSet {
	remotes := make([]Remote, 0, len(urls))
	for _, u := range urls {
		remotes = append(remotes, Remote{URL: u})
	}
	return NewRemoteURLSet(remotes...)
}

// URLs는 URL 목록을 순서대로 반환한다.
func (s RemoteURLSet) URLs() []string {
	urls := make([]string, 0, len(s.remotes))
	for _, r := range s.remotes {
		urls = append(urls, r.URL)
	}
	return urls
}

// Len은 URL 수다.
func (s RemoteURLSet) Len() int {
	return len(s.remotes)
}

// Contains는 정규화된 url이 집합에 있는지 확인한다.
func (s RemoteURLSet) Contains(url string) bool {
	u := NormalizeURL(url)
	for _, r := range s.remotes {
		if r.URL == u {
			return true
		}
	}
	return false
}

// NormalizeURL은 앞뒤 공백과 끝의 "/"를 제거한다. 그 외의 변환은 하지 않는다.
func NormalizeURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// ParseRemotes는 `git remote -v` 출력을 파싱한다.
// 각 줄은 "name<TAB>url (fetch)" 또는 "name<TAB>url (push)" 형식이다.
func ParseRemotes(out string) RemoteURLSet {
	var remotes []Remote
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		remotes = append(remotes, Remote{Name: fields[0], URL: fields[1]})
	}
	return NewRemoteURLSet(remotes...)
}

// Adapter는 git CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 Git Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// Remotes는 repoDir 리포지토리의 remote URL 집합을 반환한다.
func (a *Adapter) Remotes(ctx context.Context, repoDir string) (RemoteURLSet, error) {
	out, err := a.cmd.Run(ctx, "git", "-C", repoDir, "remote", "-v")
	if err != nil {
		return RemoteURLSet{}, fmt.Errorf("git.Remotes: %w", err)
	}
	return ParseRemotes(string(out)), nil
}

// TopLevel은 repoDir이 속한 워킹 트리의 최상위 경로를 반환한다.
func (a *Adapter) TopLevel(ctx context.Context, repoDir string) (string, error) {
	out, err := a.cmd.Run(ctx, "git", "-C", repoDir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("git.TopLevel: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
