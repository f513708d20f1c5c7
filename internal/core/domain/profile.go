package domain

// UnknownBranch is the inferred branch when no taxonomy skill matches.
const UnknownBranch = "Unknown"

// ExtractedProfile is the result of résumé ingestion: the matched taxonomy
// skills, the project titles found under a projects heading, and the branch
// inferred from the skill set.
type ExtractedProfile struct {
	Skills   []string `json:"skills"`
	Projects []string `json:"projects"`
	Branch   string   `json:"branch"`
}

// JobRoleProfile is one selectable role with its required-keyword evidence set.
type JobRoleProfile struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// MatchResult is the outcome of matching a résumé against a role profile.
// FoundKeywords and MissingKeywords partition the role's required set.
type MatchResult struct {
	Role            string   `json:"role"`
	Score           int      `json:"score"`
	FoundKeywords   []string `json:"found_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
}
