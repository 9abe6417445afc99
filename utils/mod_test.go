package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]int{4, 5}, 5))
	require.False(t, Contains([]int{4, 5}, 6))
}

func TestCount(t *testing.T) {
	require.Equal(t, map[string]int{"x": 2, "o": 1}, Count([]string{"x", "o", "x"}))
	require.Empty(t, Count([]int{}))
}
