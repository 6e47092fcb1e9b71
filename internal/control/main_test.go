package control

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// TestMain keeps debug output out of test logs.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}
