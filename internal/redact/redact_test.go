package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact_Email(t *testing.T) {
	redacted, tm := Redact("Contact: jane.doe@example.com for details")

	assert.Equal(t, "Contact: [EMAIL_1] for details", redacted)
	original, ok := tm.Original("[EMAIL_1]")
	require.True(t, ok)
	assert.Equal(t, "jane.doe@example.com", original)
}

func TestRedact_PhoneRequiresDelimiters(t *testing.T) {
	redacted, tm := Redact("Call (555) 123-4567 or 555.987.6543")
	assert.Equal(t, "Call [PHONE_1] or [PHONE_2]", redacted)
	assert.Equal(t, 2, tm.Len())
}

func TestRedact_BareDigitRunIsNotAPhone(t *testing.T) {
	redacted, tm := Redact("Employee ID 5551234567 since 2019")
	assert.Equal(t, "Employee ID 5551234567 since 2019", redacted)
	assert.Equal(t, 0, tm.Len())
}

func TestRedact_SocialProfileURLs(t *testing.T) {
	redacted, _ := Redact("See linkedin.com/in/janedoe and https://github.com/janedoe")
	assert.Equal(t, "See [URL_1] and [URL_2]", redacted)
}

func TestRedact_StreetAddress(t *testing.T) {
	redacted, _ := Redact("Lives at 42 Maple Grove Avenue, Springfield")
	assert.Equal(t, "Lives at [ADDRESS_1], Springfield", redacted)
}

func TestRedact_ResumeProsePassesThrough(t *testing.T) {
	text := "Senior Engineer at Acme Corp. Skills: machine learning, Go, Kubernetes. " +
		"Improved throughput 40% across 12 services between 2019 and 2023."
	redacted, tm := Redact(text)

	assert.Equal(t, text, redacted)
	assert.Equal(t, 0, tm.Len())
}

func TestRedact_RepeatedValueReusesToken(t *testing.T) {
	redacted, tm := Redact("jane@example.com (primary), jane@example.com (backup)")

	assert.Equal(t, "[EMAIL_1] (primary), [EMAIL_1] (backup)", redacted)
	assert.Equal(t, 1, tm.Len())
}

func TestRedact_SequentialPerKindTokens(t *testing.T) {
	redacted, _ := Redact("a@x.com then b@y.com then (555) 111-2222")
	assert.Equal(t, "[EMAIL_1] then [EMAIL_2] then [PHONE_1]", redacted)
}

func TestRestore_RoundTrip(t *testing.T) {
	original := "Jane Doe | jane@example.com | (555) 123-4567 | linkedin.com/in/janedoe\n" +
		"42 Maple Grove Avenue\nBuilt data pipelines at Acme."

	redacted, tm := Redact(original)
	require.NotEqual(t, original, redacted)

	assert.Equal(t, original, Restore(redacted, tm))
}

func TestRestore_MultipleTokenOccurrences(t *testing.T) {
	_, tm := Redact("Reach me at jane@example.com")

	generated := "Email [EMAIL_1] today. A follow-up to [EMAIL_1] is fine."
	restored := Restore(generated, tm)

	assert.Equal(t, "Email jane@example.com today. A follow-up to jane@example.com is fine.", restored)
}

func TestRestore_NilMapIsIdentity(t *testing.T) {
	assert.Equal(t, "unchanged", Restore("unchanged", nil))
}

func TestTokenMapRedact_SharedAcrossTexts(t *testing.T) {
	tm := NewTokenMap()
	first := tm.Redact("Contact candidate@example.com for an interview.")
	second := tm.Redact("Apply to recruiter@example.com or candidate@example.com.")

	// Distinct originals across texts get distinct token names.
	assert.Contains(t, first, "[EMAIL_1]")
	assert.Contains(t, second, "[EMAIL_2]")
	// The repeated original reuses its token from the first text.
	assert.Contains(t, second, "[EMAIL_1]")
	assert.Equal(t, 2, tm.Len())

	// Restoration works for tokens from either text.
	assert.Equal(t, "send to recruiter@example.com", Restore("send to [EMAIL_2]", tm))
	assert.Equal(t, "cc candidate@example.com", Restore("cc [EMAIL_1]", tm))
}
