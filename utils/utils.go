package utils

import "strings"

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// NormalizeInput lowercases the input and removes surrounding whitespace
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
