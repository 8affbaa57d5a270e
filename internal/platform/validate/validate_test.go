// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houzifahabbo/book-store/internal/platform/apperr"
	"github.com/houzifahabbo/book-store/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "The Go Programming Language", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Password checks the account password strength policy:
minimum 8 characters, at least one lowercase, one uppercase, one digit.
*/
func TestValidator_Password(t *testing.T) {
	tests := []struct {
		name     string
		password string
		isValid  bool
	}{
		{"strong", "Str0ngPass", true},
		{"exactly_eight", "Abcdefg1", true},
		{"too_short", "short1", false},
		{"no_uppercase", "nouppercase1", false},
		{"no_lowercase", "NOLOWERCASE1", false},
		{"no_digit", "NoDigitsHere", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Password("password", tt.password)

			assert.Equal(t, tt.isValid, !v.HasErrors())
			assert.Equal(t, tt.isValid, validate.PasswordIsStrong(tt.password))
		})
	}
}

/*
TestValidator_Date checks the YYYY-MM-DD calendar date rule.
*/
func TestValidator_Date(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid_date", "2020-01-01", true},
		{"not_a_date", "first of january", false},
		{"wrong_format", "01/01/2020", false},
		{"impossible_day", "2020-02-31", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Date("published", tt.value)
			assert.Equal(t, tt.isValid, !v.HasErrors())
		})
	}
}

/*
TestValidator_Positive checks the strictly-positive numeric rules.
*/
func TestValidator_Positive(t *testing.T) {
	v := &validate.Validator{}
	v.Positive("pages", 100).PositiveNumber("price", 9.99)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Positive("pages", 0).PositiveNumber("price", -1)
	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}

/*
TestValidator_Chaining verifies that a single chain accumulates every failure.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").
		Required("author", "").
		Date("published", "nope").
		Positive("pages", -3)

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 400, ae.HTTPStatus)
	assert.Len(t, ae.Details, 4)
}
