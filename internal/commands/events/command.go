// Package events holds the commands that read the public event feed
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/flags"
)

const (
	flagRows = "rows"

	headerEvent = "Event"
	headerDate  = "Date"
	headerVenue = "Venue"
	headerImage = "Image"
)

var errInvalidRows = errors.New("rows must be a positive number")

type listInputs struct {
	rows int
}

func (i *listInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.rows <= 0 {
		return errInvalidRows
	}
	return nil
}

// CommandList is the `events list` command
type CommandList struct {
	inputs listInputs
}

// Flags is the command flags
func (cmd *CommandList) Flags() []flags.Flag {
	return []flags.Flag{
		flags.IntFlag{
			Value:        &cmd.inputs.rows,
			DefaultValue: biletbudur.DefaultEventRows,
			Meta: flags.Meta{
				Name:      flagRows,
				Shorthand: "n",
				Usage: flags.Usage{
					Description:  "Specify the number of events to list",
					DefaultValue: fmt.Sprint(biletbudur.DefaultEventRows),
				},
			},
		},
	}
}

// Inputs is the command inputs
func (cmd *CommandList) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	s := ui.Spinner("Loading events...", terminal.SpinnerOptions{})
	s.Start()

	events, err := clients.Events.Events(ctx, cmd.inputs.rows)
	s.Stop()
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	if len(events) == 0 {
		return ui.Print(terminal.NewTextLog("No events found"))
	}

	rows := make([]map[string]interface{}, 0, len(events))
	for _, event := range events {
		rows = append(rows, map[string]interface{}{
			headerEvent: string(event.Name),
			headerDate:  event.DisplayDate(),
			headerVenue: string(event.VenueName),
			headerImage: string(event.ImageURL),
		})
	}

	return ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d events", len(events)),
		[]string{headerEvent, headerDate, headerVenue, headerImage},
		rows...,
	))
}
