package utils

import "iter"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// CountUpTo counts the elements of seq, stopping once limit is reached.
func CountUpTo[T any](seq iter.Seq[T], limit int) int {
	n := 0
	if limit <= 0 {
		return n
	}
	for range seq {
		n++
		if n >= limit {
			break
		}
	}
	return n
}
