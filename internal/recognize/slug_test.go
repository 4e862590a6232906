package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "Submit Form", expected: "submit-form"},
		{in: "  Multiple   Spaces  ", expected: "multiple-spaces"},
		{in: "", expected: ""},
		{in: "Login", expected: "login"},
		{in: "E-Mail Address!", expected: "e-mail-address"},
		{in: "---", expected: ""},
		{in: "Caffè Latte", expected: "caff-latte"},
		{in: "a1 b2", expected: "a1-b2"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Slugify(tc.in), "slugify(%q)", tc.in)
	}
}
