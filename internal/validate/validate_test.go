package validate

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormRequired(t *testing.T) {
	errs := Form(map[string]string{"name": "  "}, map[string]Rule{
		"name":     {Required: true},
		"location": {Required: true, Message: "where is it?"},
		"notes":    {MaxLength: 5},
	})
	assert.Equal(t, Errors{
		"name":     "name is required",
		"location": "where is it?",
	}, errs)
}

func TestFormFirstFailingRuleWins(t *testing.T) {
	rules := map[string]Rule{
		"code": {MinLength: 3, MaxLength: 5, Pattern: regexp.MustCompile(`^[A-Z]+$`)},
	}
	assert.Equal(t, "code must be at least 3 characters", Form(map[string]string{"code": "ab"}, rules)["code"])
	assert.Equal(t, "code must not exceed 5 characters", Form(map[string]string{"code": "ABCDEFG"}, rules)["code"])
	assert.Equal(t, "code has an invalid format", Form(map[string]string{"code": "abcd"}, rules)["code"])
	assert.Empty(t, Form(map[string]string{"code": "ABCD"}, rules))
}

func TestOneOf(t *testing.T) {
	rules := map[string]Rule{"status": {Required: true, Check: OneOf("Active", "Inactive")}}
	assert.Empty(t, Form(map[string]string{"status": "Active"}, rules))
	assert.Equal(t, "must be one of: Active, Inactive", Form(map[string]string{"status": "Broken"}, rules)["status"])
}

func TestErrorsAsError(t *testing.T) {
	assert.NoError(t, Errors{}.Err())

	err := Errors{"b": "bad", "a": "worse"}.Err()
	require.Error(t, err)
	assert.Equal(t, "validation failed: a: worse; b: bad", err.Error())

	var verr Errors
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr, 2)
}

func TestPatterns(t *testing.T) {
	assert.True(t, Email.MatchString("admin@company.com"))
	assert.False(t, Email.MatchString("admin@"))
	assert.True(t, URL.MatchString("https://github.com/org"))
	assert.True(t, URL.MatchString("aws.amazon.com"))
	assert.False(t, URL.MatchString("not a url"))
}

func TestDate(t *testing.T) {
	rules := map[string]Rule{"warranty": {Check: Date}}
	assert.Empty(t, Form(map[string]string{"warranty": ""}, rules))
	assert.Empty(t, Form(map[string]string{"warranty": "2025-05-15"}, rules))
	assert.Empty(t, Form(map[string]string{"warranty": "2025-05-15T00:00:00Z"}, rules))
	assert.Equal(t, "must be a date (YYYY-MM-DD)", Form(map[string]string{"warranty": "05/15/2025"}, rules)["warranty"])
}
