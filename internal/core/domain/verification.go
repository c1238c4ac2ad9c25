package domain

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultPartnerID  = "oyunfor"
	DefaultRule       = "wallet_balance_gt_1000"
	DefaultSuccessURL = "/okx"
	DefaultFailURL    = "/fallback"

	// DefaultRequiredBalance applies when a rule's last token has no leading
	// integer, or that integer is zero.
	DefaultRequiredBalance = 1000
)

// ParseRule extracts the balance threshold from a rule such as
// "wallet_balance_gt_1000". Only the last "_" token is inspected; the
// operator and subject are not validated. The token is read like a lenient
// integer parse: leading space and an optional sign are skipped, and reading
// stops at the first non-digit, so "12abc" and " 12" both give 12.
func ParseRule(rule string) int {
	parts := strings.Split(rule, "_")
	n, ok := leadingInt(parts[len(parts)-1])
	if !ok || n == 0 {
		return DefaultRequiredBalance
	}
	return n
}

// leadingInt parses the optionally signed run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// VerifierParams are the inputs of a verification flow.
type VerifierParams struct {
	PartnerID  string `json:"partner_id"`
	Rule       string `json:"rule"`
	SuccessURL string `json:"success_url"`
	FailURL    string `json:"fail_url"`
}

// WithDefaults fills every empty field with its default.
func (p VerifierParams) WithDefaults() VerifierParams {
	if p.PartnerID == "" {
		p.PartnerID = DefaultPartnerID
	}
	if p.Rule == "" {
		p.Rule = DefaultRule
	}
	if p.SuccessURL == "" {
		p.SuccessURL = DefaultSuccessURL
	}
	if p.FailURL == "" {
		p.FailURL = DefaultFailURL
	}
	return p
}

// RequiredBalance is the threshold encoded in the rule.
func (p VerifierParams) RequiredBalance() int {
	return ParseRule(p.WithDefaults().Rule)
}

// BuildVerifierURL renders the in-app link that starts a verification flow.
// Parameters keep a fixed order: partnerId, rule, successUrl, failUrl.
func BuildVerifierURL(p VerifierParams) string {
	p = p.WithDefaults()
	var b strings.Builder
	b.WriteString("/verify?")
	for i, kv := range [][2]string{
		{"partnerId", p.PartnerID},
		{"rule", p.Rule},
		{"successUrl", p.SuccessURL},
		{"failUrl", p.FailURL},
	} {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

// IsExternalURL reports whether target needs a full page navigation
// rather than in-app routing.
func IsExternalURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
