package domain

// TokenScope limits what a partner authorization token may be used for.
type TokenScope string

const (
	ScopeVerify TokenScope = "verify"
	ScopeIssue  TokenScope = "issue"
)

// IsValid reports whether s is a known scope.
func (s TokenScope) IsValid() bool {
	return s == ScopeVerify || s == ScopeIssue
}
