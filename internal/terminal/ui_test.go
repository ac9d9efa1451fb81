package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"
)

func TestUIPrint(t *testing.T) {
	t.Run("Should select the correct writer to print with", func(t *testing.T) {
		for _, tc := range []struct {
			description string
			log         terminal.Log
			expectedOut string
			expectedErr string
		}{
			{
				description: "Should use the default writer while printing an INFO log",
				log:         terminal.NewTextLog("Logged in"),
				expectedOut: "01:23:45 UTC INFO  Logged in\n",
			},
			{
				description: "Should use the default writer while printing a WARN log",
				log:         terminal.NewWarningLog("Session expired"),
				expectedOut: "01:23:45 UTC WARN  Session expired\n",
			},
			{
				description: "Should use the error writer while printing an ERROR log",
				log:         terminal.NewErrorLog(errors.New("something bad happened")),
				expectedErr: "01:23:45 UTC ERROR something bad happened\n",
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				out, err := new(bytes.Buffer), new(bytes.Buffer)
				ui := terminal.NewUI(terminal.UIConfig{DisableColors: true}, nil, out, err)

				tc.log.Time = mock.StaticTime
				assert.Nil(t, ui.Print(tc.log))

				assert.Equal(t, tc.expectedOut, out.String())
				assert.Equal(t, tc.expectedErr, err.String())
			})
		}
	})

	t.Run("Should print JSON lines with the json output format", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{UseJSON: true}, out)

		assert.Nil(t, ui.Print(terminal.NewTextLog("Logged in")))

		assert.Equal(t, `{"time":"1989-06-22T01:23:45Z","level":"info","message":"Logged in"}`+"\n", out.String())
	})
}

func TestUIConfirm(t *testing.T) {
	t.Run("Should proceed without prompting when auto confirm is set", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		proceed, err := ui.Confirm("Log out %s?", "ayse@example.com")
		assert.Nil(t, err)
		assert.True(t, proceed, "should proceed")
		assert.Equal(t, "", out.String())
	})

	t.Run("Should prompt the user otherwise", func(t *testing.T) {
		_, console, _, ui, err := mock.NewVT10XConsole()
		assert.Nil(t, err)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Log out ayse@example.com?")
			console.SendLine("y")
			console.ExpectEOF()
		}()

		proceed, err := ui.Confirm("Log out %s?", "ayse@example.com")
		assert.Nil(t, err)

		console.Tty().Close()
		<-doneCh

		assert.True(t, proceed, "should proceed")
	})
}

func TestUISpinner(t *testing.T) {
	t.Run("Should not draw a spinner on a writer other than stderr", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{}, out)

		s := ui.Spinner("Loading favorites", terminal.SpinnerOptions{})
		s.Start()
		s.SetMessage("Still loading")
		s.Stop()

		assert.Equal(t, "", out.String())
	})
}
