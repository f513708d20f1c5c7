package domain

import "testing"

func TestContainsKeywordTokenBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"exact word", "experience with python and sql", "python", true},
		{"substring must not match", "expert in javascript", "java", false},
		{"symbol keyword", "wrote services in c++ for years", "c++", true},
		{"dotted keyword", "built a node.js backend", "node.js", true},
		{"keyword at start", "docker containers everywhere", "docker", true},
		{"keyword at end", "deployed with kubernetes", "kubernetes", true},
		{"phrase keyword", "applied machine learning models", "machine learning", true},
		{"missing keyword", "plain text about nothing", "rust", false},
		{"empty keyword", "anything", "", false},
		{"second occurrence matches", "javascript and then java", "java", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsKeyword(tc.text, tc.keyword); got != tc.want {
				t.Fatalf("ContainsKeyword(%q, %q) = %v, want %v", tc.text, tc.keyword, got, tc.want)
			}
		})
	}
}
