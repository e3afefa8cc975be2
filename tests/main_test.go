package tests

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("GIT_TERMINAL_PROMPT", "0")
	os.Exit(m.Run())
}
