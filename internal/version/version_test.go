package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = old })

	got := String()
	if !strings.HasPrefix(got, "devdocs v1.2.3 (") {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(got, "go="+GoVersion) {
		t.Errorf("String() = %q, missing go version", got)
	}
}
