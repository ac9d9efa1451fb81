package register

import (
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"

	"github.com/Netflix/go-expect"
)

func TestRegisterInputs(t *testing.T) {
	for _, tc := range []struct {
		description string
		inputs      inputs
		procedure   func(c *expect.Console)
		expected    inputs
	}{
		{
			description: "should prompt for every missing input",
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("ayse@example.com")
				c.ExpectString("Full Name")
				c.SendLine("Ayşe Nur Yılmaz")
				c.ExpectString("Password")
				c.SendLine("correct horse")
				c.ExpectString("Confirm Password")
				c.SendLine("correct horse")
				c.ExpectEOF()
			},
			expected: inputs{
				Email:           "ayse@example.com",
				Name:            "Ayşe Nur Yılmaz",
				Password:        "correct horse",
				ConfirmPassword: "correct horse",
			},
		},
		{
			description: "should not prompt for the name when the first name is provided",
			inputs:      inputs{Email: "ayse@example.com", FirstName: "Ayşe"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Password")
				c.SendLine("correct horse")
				c.ExpectString("Confirm Password")
				c.SendLine("correct horse")
				c.ExpectEOF()
			},
			expected: inputs{
				Email:           "ayse@example.com",
				FirstName:       "Ayşe",
				Password:        "correct horse",
				ConfirmPassword: "correct horse",
			},
		},
		{
			description: "should not prompt for inputs when flags provide the data",
			inputs: inputs{
				Email:           "ayse@example.com",
				Name:            "Ayşe Yılmaz",
				Password:        "correct horse",
				ConfirmPassword: "correct horse",
			},
			procedure: func(c *expect.Console) {},
			expected: inputs{
				Email:           "ayse@example.com",
				Name:            "Ayşe Yılmaz",
				Password:        "correct horse",
				ConfirmPassword: "correct horse",
			},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			profile := mock.NewProfile(t)

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
