package performers

import (
	"context"
	"errors"
	"strings"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

var errTooManyArgs = errors.New("expected at most one performer name, wrap names with spaces in quotes")

type addInputs struct {
	Name string
}

func (i *addInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.Name == "" {
		if err := ui.Ask(i, &survey.Question{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Performer Name"},
			Validate: survey.Required,
		}); err != nil {
			return err
		}
	}
	i.Name = strings.TrimSpace(i.Name)
	return nil
}

// CommandAdd is the `performers add` command
type CommandAdd struct {
	inputs addInputs
}

// Args reads the performer name
func (cmd *CommandAdd) Args(args []string) error {
	switch len(args) {
	case 0:
	case 1:
		cmd.inputs.Name = args[0]
	default:
		return errTooManyArgs
	}
	return nil
}

// Inputs is the command inputs
func (cmd *CommandAdd) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandAdd) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := clients.Session.Do(ctx, func(ctx context.Context) error {
		return clients.Biletbudur.AddFavoritePerformer(ctx, cmd.inputs.Name)
	}).Err(); err != nil {
		return err
	}

	return ui.Print(
		terminal.NewTextLog("Added %s to your favorite performers", cmd.inputs.Name),
		terminal.NewFollowupLog("See all of your favorite performers with", cli.Name+" performers list"),
	)
}
