package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	assert := require.New(t)

	stack := Stack()
	assert.Contains(stack, "debug.TestStack")
	assert.Contains(stack, "debug_test.go:")
}

func TestStackNesting(t *testing.T) {
	assert := require.New(t)

	capture := func() string { return Stack() }
	stack := capture()

	// both the closure and the test function show up, innermost first
	inner := strings.Index(stack, "TestStackNesting.func1")
	outer := strings.Index(stack, "debug.TestStackNesting\n")
	assert.GreaterOrEqual(inner, 0)
	assert.Greater(outer, inner)
}
