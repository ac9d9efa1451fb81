package performers

import (
	"context"
	"fmt"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
)

const (
	headerName  = "Name"
	headerImage = "Image"
)

// CommandList is the `performers list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var performers []biletbudur.Performer
	if err := clients.Session.Do(ctx, func(ctx context.Context) error {
		var err error
		performers, err = clients.Biletbudur.FavoritePerformers(ctx)
		return err
	}).Err(); err != nil {
		return err
	}

	if len(performers) == 0 {
		return ui.Print(terminal.NewTextLog("No favorite performers found"))
	}

	rows := make([]map[string]interface{}, 0, len(performers))
	for _, performer := range performers {
		rows = append(rows, map[string]interface{}{
			headerName:  performer.DisplayName(),
			headerImage: performer.ImageURL,
		})
	}

	return ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d favorite performers", len(performers)),
		[]string{headerName, headerImage},
		rows...,
	))
}
