package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	t.Parallel()

	key := ObjectKey("user1", "gear1", "strat.jpg")
	assert.True(t, strings.HasPrefix(key, "gear-images/user1/gear1/"))
	assert.True(t, strings.HasSuffix(key, "-strat.jpg"))

	// Same inputs must still yield distinct keys.
	assert.NotEqual(t, key, ObjectKey("user1", "gear1", "strat.jpg"))
}
