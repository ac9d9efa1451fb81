package flags

import (
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
)

func TestArg(t *testing.T) {
	for _, tc := range []struct {
		description string
		arg         Arg
		expected    string
	}{
		{
			description: "should print only name when value is nil",
			arg:         Arg{Name: "email"},
			expected:    " --email",
		},
		{
			description: "should print name and value when set",
			arg:         Arg{"email", "ayse@example.com"},
			expected:    " --email ayse@example.com",
		},
		{
			description: "should print only name for a true bool",
			arg:         Arg{"yes", true},
			expected:    " --yes",
		},
		{
			description: "should print an explicit false bool",
			arg:         Arg{"check-server", false},
			expected:    " --check-server=false",
		},
		{
			description: "should print a number as it is",
			arg:         Arg{"rows", 5},
			expected:    " --rows 5",
		},
		{
			description: "should quote a value with spaces",
			arg:         Arg{"name", "Sezen Aksu"},
			expected:    " --name 'Sezen Aksu'",
		},
		{
			description: "should escape single quotes of a quoted value",
			arg:         Arg{"name", "Guns N' Roses"},
			expected:    ` --name 'Guns N'\'' Roses'`,
		},
		{
			description: "should quote an empty value",
			arg:         Arg{"name", ""},
			expected:    " --name ''",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.arg.String())
		})
	}
}

func TestCommand(t *testing.T) {
	t.Run("should append every arg to the command", func(t *testing.T) {
		assert.Equal(t,
			"biletbudur register --email ayse@example.com --first-name 'Ayşe Nur'",
			Command("biletbudur register", Arg{"email", "ayse@example.com"}, Arg{"first-name", "Ayşe Nur"}),
		)
	})

	t.Run("should return the command alone without args", func(t *testing.T) {
		assert.Equal(t, "biletbudur events list", Command("biletbudur events list"))
	})
}
