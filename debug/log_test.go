package debug

import (
	"bytes"
	"testing"

	"github.com/Totox00/multiarchi-tools/tree"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("%v -> %v [%s]\n", tree.FromString("a"), tree.FromPairs("x", 1), []string{"k"})
	want := "a -> x: 1 [[\n   |  \"k\"\n   |]]\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
