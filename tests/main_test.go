// Package tests contains integration tests for the repository and
// business flow packages to avoid circular imports
package tests

import (
	"testing"

	testingutil "github.com/stagedoor/stagedoor/testing"
)

// withTestDB runs fn against a freshly created database, skipping the
// test when no Postgres server is reachable
func withTestDB(t *testing.T, fn func(*testingutil.TestDB)) {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	defer func() {
		_ = testDB.TeardownTestDB()
	}()

	fn(testDB)
}
