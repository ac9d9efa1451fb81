package register

import (
	"context"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/flags"
)

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags() []flags.Flag {
	return []flags.Flag{
		flags.StringFlag{
			Value: &cmd.inputs.Email,
			Meta: flags.Meta{
				Name:      flagEmail,
				Shorthand: flagEmailShort,
				Usage:     flags.Usage{Description: flagEmailUsage},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.FirstName,
			Meta: flags.Meta{
				Name:  flagFirstName,
				Usage: flags.Usage{Description: flagFirstNameUsage},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.LastName,
			Meta: flags.Meta{
				Name:  flagLastName,
				Usage: flags.Usage{Description: flagLastNameUsage},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.Name,
			Meta: flags.Meta{
				Name: flagName,
				Usage: flags.Usage{
					Description: flagNameUsage,
					Note:        "the first word is used as the first name",
				},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.Password,
			Meta: flags.Meta{
				Name:      flagPassword,
				Shorthand: flagPasswordShort,
				Usage:     flags.Usage{Description: flagPasswordUsage},
			},
		},
		flags.StringFlag{
			Value: &cmd.inputs.ConfirmPassword,
			Meta: flags.Meta{
				Name:  flagConfirmPassword,
				Usage: flags.Usage{Description: flagConfirmPasswordUsage},
			},
		},
	}
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	s := ui.Spinner("Creating account...", terminal.SpinnerOptions{})
	s.Start()
	result := clients.Session.Register(ctx, cmd.inputs.request())
	s.Stop()

	if err := result.Err(); err != nil {
		return err
	}

	return ui.Print(
		terminal.NewTextLog("Successfully created an account for %s", cmd.inputs.Email),
		terminal.NewFollowupLog("Log in to start using your account", flags.Command(cli.Name+" login", flags.Arg{Name: flagEmail, Value: cmd.inputs.Email})),
	)
}
