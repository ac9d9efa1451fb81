package favorites

import (
	"context"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
)

// CommandList is the `favorites list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	return fetchEvents(ctx, ui, clients, "upcoming favorite events", clients.Biletbudur.Favorites)
}

// CommandPast is the `favorites past` command
type CommandPast struct{}

// Handler is the command handler
func (cmd *CommandPast) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	return fetchEvents(ctx, ui, clients, "past favorite events", clients.Biletbudur.PastFavorites)
}
