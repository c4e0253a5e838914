// Package cloud는 클라우드 API에서 계정/환경/애플리케이션 inventory를 가져온다.
package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hbjs97/cloudctx/internal/failure"
	"github.com/hbjs97/cloudctx/internal/inventory"
	"github.com/hbjs97/cloudctx/internal/logger"
)

// TokenHeader는 API 토큰을 전달하는 요청 헤더다.
const TokenHeader = "X-EY-Cloud-Token"

const environmentsPath = "api/v2/environments"

// maxPages는 잘못된 next_page 응답으로 무한 루프에 빠지지 않도록 하는 상한이다.
const maxPages = 1000

// Client는 클라우드 API 클라이언트다.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      logger.Logger
}

// Option은 Client 설정이다.
type Option func(*Client)

// WithHTTPClient는 사용할 http.Client를 지정한다.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout은 기본 http.Client의 timeout을 지정한다.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// WithLogger는 요청 로그를 기록할 Logger를 지정한다.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient는 새 Client를 생성한다. endpoint는 이미 검증된 절대 URI여야 한다.
func NewClient(endpoint, token string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type accountJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type instanceJSON struct {
	ID       int    `json:"id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Hostname string `json:"hostname"`
	Status   string `json:"status"`
}

type appJSON struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	RepositoryURIs []string `json:"repository_uris"`
}

type environmentJSON struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Account   accountJSON    `json:"account"`
	AppMaster *instanceJSON  `json:"app_master"`
	Instances []instanceJSON `json:"instances"`
	Apps      []appJSON      `json:"apps"`
}

type environmentsResponse struct {
	Environments []environmentJSON `json:"environments"`
	Meta         struct {
		NextPage int `json:"next_page"`
	} `json:"meta"`
}

// FetchInventory는 모든 페이지를 가져와 하나의 Inventory로 합친다.
// 중간에 실패하면 부분 inventory 없이 에러만 반환한다.
func (c *Client) FetchInventory(ctx context.Context) (*inventory.Inventory, error) {
	if c.token == "" {
		return nil, fmt.Errorf("cloud.FetchInventory: %w", &failure.AttributeRequiredError{Attribute: "api_token"})
	}

	b := inventory.NewBuilder()
	for n, page := 1, 1; page > 0; n++ {
		if n > maxPages {
			return nil, fmt.Errorf("cloud.FetchInventory: %w", c.pagingError(page, fmt.Errorf("%d 페이지 초과", maxPages)))
		}
		resp, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("cloud.FetchInventory: %w", err)
		}
		for _, e := range resp.Environments {
			b.Add(toRecord(e))
		}
		next := resp.Meta.NextPage
		if next != 0 && next <= page {
			return nil, fmt.Errorf("cloud.FetchInventory: %w", c.pagingError(page, fmt.Errorf("next_page %d가 현재 페이지 %d 이후가 아님", next, page)))
		}
		page = next
	}
	c.log.Logf("fetched %d environments from %s", b.Len(), c.endpoint)

	inv, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("cloud.FetchInventory: %w", err)
	}
	return inv, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) (*environmentsResponse, error) {
	u, err := c.url(environmentsPath, url.Values{"page": {strconv.Itoa(page)}})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(TokenHeader, c.token)
	req.Header.Set("Accept", "application/json")

	c.log.Logf("GET %s", u)
	res, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Kind: ErrRequestFailed, Method: req.Method, URL: u, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RequestError{Kind: kindForStatus(res.StatusCode), Method: req.Method, URL: u, Status: res.Status}
	}

	var body environmentsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &RequestError{
			Kind: ErrRequestFailed, Method: req.Method, URL: u,
			Err: fmt.Errorf("JSON 파싱 실패: %w", err),
		}
	}
	return &body, nil
}

// pagingError는 페이지 진행이 끝나지 않는 응답에 대한 요청 실패다.
func (c *Client) pagingError(page int, err error) *RequestError {
	u, _ := c.url(environmentsPath, url.Values{"page": {strconv.Itoa(page)}})
	return &RequestError{Kind: ErrRequestFailed, Method: http.MethodGet, URL: u, Err: err}
}

func (c *Client) url(path string, q url.Values) (string, error) {
	base, err := url.Parse(c.endpoint)
	if err != nil {
		return "", &failure.BadEndpointError{Endpoint: c.endpoint}
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	ref := &url.URL{Path: path, RawQuery: q.Encode()}
	return base.ResolveReference(ref).String(), nil
}

func kindForStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidCredentials
	case http.StatusNotFound:
		return ErrResourceNotFound
	default:
		return ErrRequestFailed
	}
}

func toRecord(e environmentJSON) inventory.EnvironmentRecord {
	rec := inventory.EnvironmentRecord{
		ID:      e.ID,
		Name:    e.Name,
		Account: inventory.AccountRecord{ID: e.Account.ID, Name: e.Account.Name},
	}
	if e.AppMaster != nil {
		m := toInstance(*e.AppMaster)
		rec.AppMaster = &m
	}
	for _, inst := range e.Instances {
		rec.Instances = append(rec.Instances, toInstance(inst))
	}
	for _, a := range e.Apps {
		rec.Apps = append(rec.Apps, inventory.AppRecord{ID: a.ID, Name: a.Name, RepositoryURIs: a.RepositoryURIs})
	}
	return rec
}

func toInstance(i instanceJSON) inventory.Instance {
	return inventory.Instance{ID: i.ID, Role: i.Role, Name: i.Name, Hostname: i.Hostname, Status: i.Status}
}
