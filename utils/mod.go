package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// Count returns how many times each item occurs in slice.
func Count[T comparable](slice []T) map[T]int {
	counts := make(map[T]int, len(slice))
	for _, v := range slice {
		counts[v]++
	}
	return counts
}
