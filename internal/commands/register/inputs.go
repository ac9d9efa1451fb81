package register

import (
	"strings"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail           = "email"
	inputFieldName            = "name"
	inputFieldPassword        = "password"
	inputFieldConfirmPassword = "confirmPassword"
)

type inputs struct {
	Email           string
	Name            string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email"},
			Validate: survey.Required,
		})
	}

	if i.Name == "" && i.FirstName == "" && i.LastName == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldName,
			Prompt: &survey.Input{Message: "Full Name"},
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if i.ConfirmPassword == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldConfirmPassword,
			Prompt:   &survey.Password{Message: "Confirm Password"},
			Validate: survey.Required,
		})
	}

	if err := ui.Ask(i, questions...); err != nil {
		return err
	}

	i.Email = strings.TrimSpace(i.Email)
	return nil
}

func (i inputs) request() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:           i.Email,
		Password:        i.Password,
		ConfirmPassword: i.ConfirmPassword,
		FirstName:       strings.TrimSpace(i.FirstName),
		LastName:        strings.TrimSpace(i.LastName),
		Name:            i.Name,
	}
}
