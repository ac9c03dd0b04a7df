//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/sourcing-lens/internal/testutil"
)

// TestMain shares one MongoDB container across the HTTP integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
