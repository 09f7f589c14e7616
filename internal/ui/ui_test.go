package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterRoutesByKind(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Success("✅ Updated %s", "src/reviews/views.py")
	p.Warning("⚠️  Remember to restart")
	p.Error("Error: %s not found.", "x.py")

	assert.Contains(t, out.String(), "✅ Updated src/reviews/views.py\n")
	assert.Contains(t, out.String(), "⚠️  Remember to restart\n")
	assert.NotContains(t, out.String(), "Error:")
	assert.Contains(t, errOut.String(), "Error: x.py not found.\n")
	assert.NotContains(t, errOut.String(), "Updated")
}

func TestPrinterStack(t *testing.T) {
	var out, errOut bytes.Buffer
	New(&out, &errOut).Stack([]byte("goroutine 1 [running]:"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "--- Stack Trace ---")
	assert.Contains(t, errOut.String(), "goroutine 1 [running]:")
}
