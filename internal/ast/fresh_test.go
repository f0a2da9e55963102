package ast

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreshNamesAreDistinctAndMonotonic(t *testing.T) {
	seen := make(map[string]bool)
	var prev uint64
	for i := 0; i < 1000; i++ {
		name := Fresh()
		require.False(t, seen[name], "Fresh produced a repeat: %s", name)
		seen[name] = true
		n, err := strconv.ParseUint(strings.TrimPrefix(name, "Var"), 10, 64)
		require.NoError(t, err)
		require.Greater(t, n, prev, "Fresh counter did not increase: %s", name)
		prev = n
	}
}

func TestFreshNamesAreUppercase(t *testing.T) {
	// user identifiers are [a-z][A-Za-z0-9]* (spec §6); a generated name
	// must be outside that lexical class so it can never collide.
	name := Fresh()
	require.Regexp(t, `^[A-Z]`, name)
}
