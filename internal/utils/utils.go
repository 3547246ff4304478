package utils

import (
	"math"
	"unicode/utf8"
)

// CountChars returns the number of characters (Unicode code points) in s.
// Length bounds on user supplied text are defined in characters, not bytes,
// so a multi-byte rune counts as one.
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}

// CalculateTotalPages computes the total number of pages required to display all elements,
// given the total number of matching elements (`matchCount`) and the number of elements per page (`pageSize`).
//
// It performs a ceiling division to ensure that any remaining elements that don't fill a full page
// still count as an additional page.
//
// If `pageSize` is zero or negative, the function returns 0 to avoid division by zero.
//
// Parameters:
//   - matchCount: the total number of elements to paginate
//   - pageSize: the number of elements per page
//
// Returns:
//   - int: the total number of pages needed
func CalculateTotalPages(matchCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	exactPageSize := float64(matchCount) / float64(pageSize)
	return int(math.Ceil(exactPageSize))
}
