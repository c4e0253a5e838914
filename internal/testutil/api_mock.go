package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

// TestToken is the API token written by ConfigFor and accepted by InventoryHandler.
const TestToken = "test-token"

// MockAPIServer creates a test HTTP server for the cloud API.
// Returns the server URL with a trailing slash. The server is closed when the test finishes.
func MockAPIServer(t *testing.T, handler http.Handler) string {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server.URL + "/"
}

// InventoryHandler serves /api/v2/environments. pages[i] is the JSON body of page i+1.
// Requests without the test token get 401.
func InventoryHandler(pages ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/environments" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-EY-Cloud-Token") != TestToken {
			StatusResponse(http.StatusUnauthorized, `{"message":"unauthorized"}`)(w, r)
			return
		}
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 || page > len(pages) {
			StatusResponse(http.StatusNotFound, `{"message":"not found"}`)(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pages[page-1])
	}
}

// StatusResponse creates a handler that always answers with status and body.
func StatusResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// SingleAppJSON is the API form of SingleAppInventory with a running master.
const SingleAppJSON = `{
	"environments": [{
		"id": 1,
		"name": "staging",
		"account": {"id": 7, "name": "acme"},
		"app_master": {"id": 11, "role": "app_master", "hostname": "ec2-1.example", "status": "running"},
		"instances": [
			{"id": 11, "role": "app_master", "hostname": "ec2-1.example", "status": "running"},
			{"id": 12, "role": "app", "hostname": "ec2-2.example", "status": "running"},
			{"id": 13, "role": "db_master", "hostname": "ec2-3.example", "status": "running"}
		],
		"apps": [{"id": 1, "name": "app1", "repository_uris": ["git@git.host:acme/app1.git"]}]
	}],
	"meta": {"next_page": 0}
}`

// StoppedMasterJSON is a single environment whose master status is "red".
const StoppedMasterJSON = `{
	"environments": [{
		"id": 1,
		"name": "staging",
		"account": {"id": 7, "name": "acme"},
		"app_master": {"id": 11, "role": "app_master", "hostname": "ec2-1.example", "status": "red"},
		"instances": [{"id": 11, "role": "app_master", "hostname": "ec2-1.example", "status": "red"}],
		"apps": [{"id": 1, "name": "app1", "repository_uris": ["git@git.host:acme/app1.git"]}]
	}],
	"meta": {"next_page": 0}
}`

// TwoAccountPages is TwoAccountInventory split over two API pages.
var TwoAccountPages = []string{
	`{
	"environments": [
		{"id": 1, "name": "production", "account": {"id": 7, "name": "acme"},
		 "apps": [{"id": 1, "name": "app1", "repository_uris": ["git@git.host:acme/app1.git"]}]},
		{"id": 2, "name": "staging", "account": {"id": 7, "name": "acme"},
		 "apps": [{"id": 1, "name": "app1", "repository_uris": ["git@git.host:acme/app1.git"]}]}
	],
	"meta": {"next_page": 2}
}`,
	`{
	"environments": [
		{"id": 3, "name": "production", "account": {"id": 8, "name": "globex"},
		 "apps": [{"id": 2, "name": "app2", "repository_uris": ["git@git.host:globex/app2.git"]}]}
	],
	"meta": {"next_page": 0}
}`,
}
