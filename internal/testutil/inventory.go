package testutil

import (
	"hash/fnv"
	"testing"

	"github.com/hbjs97/cloudctx/internal/inventory"
)

// App1URL is the registered remote of "app1" in the shared fixtures.
const App1URL = "git@git.host:acme/app1.git"

// App2URL is the registered remote of "app2" in the shared fixtures.
const App2URL = "git@git.host:globex/app2.git"

// App returns an application record.
func App(id int, name string, uris ...string) inventory.AppRecord {
	return inventory.AppRecord{ID: id, Name: name, RepositoryURIs: uris}
}

// Env returns an environment record owned by the named account.
// Accounts with the same name get the same ID.
func Env(id int, name, account string, apps ...inventory.AppRecord) inventory.EnvironmentRecord {
	return inventory.EnvironmentRecord{
		ID:      id,
		Name:    name,
		Account: inventory.AccountRecord{ID: accountID(account), Name: account},
		Apps:    apps,
	}
}

func accountID(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum32() & 0x7fffffff)
}

// BuildInventory builds an inventory from records and fails the test on error.
func BuildInventory(t *testing.T, records ...inventory.EnvironmentRecord) *inventory.Inventory {
	t.Helper()

	inv, err := inventory.NewBuilder().Add(records...).Build()
	if err != nil {
		t.Fatalf("BuildInventory: %v", err)
	}
	return inv
}

// SingleAppInventory is acme → staging → app1 (App1URL).
func SingleAppInventory(t *testing.T) *inventory.Inventory {
	t.Helper()

	return BuildInventory(t, Env(1, "staging", "acme", App(1, "app1", App1URL)))
}

// TwoAccountInventory has "production" in both acme and globex:
//
//	acme   → production → app1 (App1URL)
//	acme   → staging    → app1 (App1URL)
//	globex → production → app2 (App2URL)
func TwoAccountInventory(t *testing.T) *inventory.Inventory {
	t.Helper()

	return BuildInventory(t,
		Env(1, "production", "acme", App(1, "app1", App1URL)),
		Env(2, "staging", "acme", App(1, "app1", App1URL)),
		Env(3, "production", "globex", App(2, "app2", App2URL)),
	)
}
