package domain

import "strings"

// ContainsKeyword reports whether the lowercased keyword occurs in the
// lowercased text on token boundaries. A boundary is the string edge or any
// non-alphanumeric byte, which keeps symbol-bearing keywords ("c++",
// "node.js") matchable while "java" stays distinct from "javascript".
func ContainsKeyword(textLower, keywordLower string) bool {
	if keywordLower == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(textLower[start:], keywordLower)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keywordLower)
		if boundaryAt(textLower, idx-1) && boundaryAt(textLower, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryAt(text string, idx int) bool {
	if idx < 0 || idx >= len(text) {
		return true
	}
	b := text[idx]
	return !((b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9'))
}
