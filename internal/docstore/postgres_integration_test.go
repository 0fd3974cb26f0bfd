//go:build integration

package docstore_test

import (
	"os"
	"testing"

	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// sharedStore keeps the suite from closing the shared connection pool.
type sharedStore struct {
	docstore.Store
}

func (sharedStore) Close() error { return nil }

func TestPostgresStore(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &StoreSuite{newStore: func() docstore.Store {
		base.CleanTestDB()
		return sharedStore{base.Store}
	}})
}
