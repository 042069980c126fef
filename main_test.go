package qtree

import (
	"os"
	"testing"

	"github.com/sourcegraph/log/logtest"
)

// TestMain initializes the package's loggers before any test calls
// BuildTree or Evaluate, the same way the teacher's own command packages
// do (e.g. cmd/zoekt-sourcegraph-indexserver/main_test.go) -- sglog.Scoped
// panics if nothing has called log.Init/logtest.Init yet.
func TestMain(m *testing.M) {
	logtest.Init(m)
	os.Exit(m.Run())
}
