// Package testutil holds shared test fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/minhtran-dev/deskboard/internal/storage"
)

// OpenStorage opens an in-memory storage backend that is closed when
// the test finishes.
func OpenStorage(t *testing.T) *storage.Store {
	t.Helper()

	st, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open test storage: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
