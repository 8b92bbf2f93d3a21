package utils

import (
	"strconv"
)

// TotalPages is ceil(total/pageSize); it is 0 when there is nothing to page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ParsePage reads a 1-based page number, falling back to 1 for anything invalid.
func ParsePage(page string) int {
	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
