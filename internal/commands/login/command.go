package login

import (
	"context"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/flags"
)

// Command is the `login` command
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
			Value: &cmd.inputs.Password,
			Meta: flags.Meta{
				Name:      flagPassword,
				Shorthand: flagPasswordShort,
				Usage: flags.Usage{
					Description: flagPasswordUsage,
					Note:        "you will be prompted for the password when it is omitted",
				},
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
	s := ui.Spinner("Logging in...", terminal.SpinnerOptions{})
	s.Start()
	result := clients.Session.Login(ctx, cmd.inputs.Email, cmd.inputs.Password)
	s.Stop()

	if err := result.Err(); err != nil {
		return err
	}

	user := clients.Session.State().Snapshot().User
	return ui.Print(terminal.NewTextLog("Successfully logged in as %s", user.DisplayName()))
}
