package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// --- TrimStrings tests ---

func TestTrimStrings_TrimsWhitespace(t *testing.T) {
	req := CreateAdSubmissionRequest{
		AdName:            "  Summer Drop  ",
		ContactEmail:      " ops@example.com ",
		ContactPersonName: " Ayse ",
	}
	TrimStrings(&req)

	assert.Equal(t, "Summer Drop", req.AdName)
	assert.Equal(t, "ops@example.com", req.ContactEmail)
	assert.Equal(t, "Ayse", req.ContactPersonName)
}

func TestTrimStrings_KeepsTextVerbatim(t *testing.T) {
	req := CreateAdSubmissionRequest{
		AdName:        " Tom & Jerry ",
		AdDescription: "campaign <b>bold</b> copy",
	}
	TrimStrings(&req)

	assert.Equal(t, "Tom & Jerry", req.AdName)
	assert.Equal(t, "campaign <b>bold</b> copy", req.AdDescription)
}

func TestTrimStrings_LeavesNonStringFields(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	req := CreateAdSubmissionRequest{
		MaximumIssuance: 100,
		AccessibleFrom:  from,
	}
	TrimStrings(&req)

	assert.Equal(t, 100, req.MaximumIssuance)
	assert.Equal(t, from, req.AccessibleFrom)
}

func TestTrimStrings_HandlesPointerString(t *testing.T) {
	type withPointer struct {
		Note *string
		Skip *string
	}
	note := "  <b>hi</b>  "
	req := withPointer{Note: &note}
	TrimStrings(&req)

	assert.Equal(t, "<b>hi</b>", *req.Note)
	assert.Nil(t, req.Skip)
}

func TestTrimStrings_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	TrimStrings(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"oyunfor",
		"wallet_balance_gt_1000",
		"a.b.c",
		"partner-2",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"rule 1000",  // space
		"rule<1000>", // angle brackets
		"id;DROP",    // semicolon
		"",           // empty
		"a\nb",       // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestIsRedirectTarget(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", true},
		{"/okx", true},
		{"/fallback?x=1", true},
		{"https://partner.example.com/ok", true},
		{"http://localhost:3000/done", true},
		{"//evil.example.com", false},
		{"javascript:alert(1)", false},
		{"ftp://example.com", false},
		{"okx", false},
		{"https://", false},
		{"/ok\r\nSet-Cookie: x", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRedirectTarget(tt.raw))
		})
	}
}
