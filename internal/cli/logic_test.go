package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, progressEnabled("table", false, true))
	assert.False(t, progressEnabled("json", false, true))
	assert.False(t, progressEnabled("JSON", false, true))
	assert.False(t, progressEnabled("table", true, true))
	assert.False(t, progressEnabled("table", false, false))
}
