package logout

import (
	"context"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	state := clients.Session.State().Snapshot()

	if state.Authenticated() {
		proceed, err := ui.Confirm("Log out %s?", state.User.DisplayName())
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	if err := clients.Session.Logout(ctx).Err(); err != nil {
		return err
	}

	if !state.Authenticated() {
		return ui.Print(terminal.NewTextLog("No user is currently logged in"))
	}
	return ui.Print(terminal.NewTextLog("Successfully logged out"))
}
