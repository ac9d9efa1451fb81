package login

import (
	"strings"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

type inputs struct {
	Email    string
	Password string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Email == "" {
		var defaultEmail string
		if identity, ok := profile.CachedIdentity(); ok {
			defaultEmail = identity.Email
		}
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email", Default: defaultEmail},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if err := ui.Ask(i, questions...); err != nil {
		return err
	}

	i.Email = strings.TrimSpace(i.Email)
	return nil
}
