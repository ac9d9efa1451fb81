package login

import (
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"

	"github.com/Netflix/go-expect"
)

func TestLoginInputs(t *testing.T) {
	for _, tc := range []struct {
		description    string
		inputs         inputs
		prepareProfile func(t *testing.T, p *cli.Profile)
		procedure      func(c *expect.Console)
		expected       inputs
	}{
		{
			description: "should prompt for the email when not provided",
			inputs:      inputs{Password: "password"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("ayse@example.com")
				c.ExpectEOF()
			},
			expected: inputs{Email: "ayse@example.com", Password: "password"},
		},
		{
			description: "should prompt for the password when not provided",
			inputs:      inputs{Email: "ayse@example.com"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Password")
				c.SendLine("password")
				c.ExpectEOF()
			},
			expected: inputs{Email: "ayse@example.com", Password: "password"},
		},
		{
			description: "should prompt for both the email and password when not provided",
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("  ayse@example.com ")
				c.ExpectString("Password")
				c.SendLine("password")
				c.ExpectEOF()
			},
			expected: inputs{Email: "ayse@example.com", Password: "password"},
		},
		{
			description: "should default the email to the last logged in user",
			prepareProfile: func(t *testing.T, p *cli.Profile) {
				assert.Nil(t, p.CacheIdentity(auth.Identity{Email: "mehmet@example.com"}))
			},
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("")
				c.ExpectString("Password")
				c.SendLine("password")
				c.ExpectEOF()
			},
			expected: inputs{Email: "mehmet@example.com", Password: "password"},
		},
		{
			description: "should not prompt for inputs when flags provide the data",
			inputs:      inputs{Email: "ayse@example.com", Password: "password"},
			procedure:   func(c *expect.Console) {},
			expected:    inputs{Email: "ayse@example.com", Password: "password"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			profile := mock.NewProfile(t)
			if tc.prepareProfile != nil {
				tc.prepareProfile(t, profile)
			}

			_, console, _, ui, err := mock.NewVT10XConsole()
			assert.Nil(t, err)
			defer console.Close()

			doneCh := make(chan struct{})
			go func() {
				defer close(doneCh)
				tc.procedure(console)
			}()

			assert.Nil(t, tc.inputs.Resolve(profile, ui))

			console.Tty().Close() // flush the writers
			<-doneCh

			assert.Equal(t, tc.expected, tc.inputs)
		})
	}
}
