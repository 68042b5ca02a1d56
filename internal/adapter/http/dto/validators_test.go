package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := StartBankLinkRequest{
		BankName:      "  Access Bank  ",
		BankCode:      " 044 ",
		AccountNumber: " 0123456789",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Access Bank", req.BankName)
	assert.Equal(t, "044", req.BankCode)
	assert.Equal(t, "0123456789", req.AccountNumber)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := StartBankLinkRequest{BankName: "Bank <script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.BankName, "&lt;script&gt;")
	assert.NotContains(t, req.BankName, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	reason := "  balance changed  "
	resp := WithdrawalResponse{FailureReason: &reason}
	SanitizeStruct(&resp)

	assert.Equal(t, "balance changed", *resp.FailureReason)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	resp := WithdrawalResponse{}
	SanitizeStruct(&resp)
	assert.Nil(t, resp.FailureReason)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ord-001",
		"ORD_002",
		"a.b.c",
		"simple123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ord 001",  // space
		"ord<001>", // angle brackets
		"ord;DROP", // semicolon
		"",         // empty
		"ord\n001", // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestBinding_PinAndAccountNumber(t *testing.T) {
	valid := StartBankLinkRequest{
		BankName:      "Access Bank",
		BankCode:      "044",
		AccountNumber: "0123456789",
		Pin:           "1234",
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	tests := []struct {
		name   string
		mutate func(*StartBankLinkRequest)
	}{
		{"short account number", func(r *StartBankLinkRequest) { r.AccountNumber = "012345678" }},
		{"alpha account number", func(r *StartBankLinkRequest) { r.AccountNumber = "01234567ab" }},
		{"five digit pin", func(r *StartBankLinkRequest) { r.Pin = "12345" }},
		{"alpha pin", func(r *StartBankLinkRequest) { r.Pin = "12a4" }},
		{"unsafe bank code", func(r *StartBankLinkRequest) { r.BankCode = "04 4" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, binding.Validator.ValidateStruct(&req))
		})
	}
}

func TestBinding_ConfirmWithdrawalOtp(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&ConfirmWithdrawalRequest{Otp: "012345"}))
	assert.Error(t, binding.Validator.ValidateStruct(&ConfirmWithdrawalRequest{Otp: "12345"}))
	assert.Error(t, binding.Validator.ValidateStruct(&ConfirmWithdrawalRequest{Otp: "12345a"}))
}
