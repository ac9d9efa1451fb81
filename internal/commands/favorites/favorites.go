// Package favorites holds the commands that read the favorites of the current user
package favorites

import (
	"context"
	"fmt"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
)

const (
	headerEvent = "Event"
	headerDate  = "Date"
	headerVenue = "Venue"
	headerURL   = "URL"
)

var eventHeaders = []string{headerEvent, headerDate, headerVenue, headerURL}

func eventRows(events []biletbudur.Event) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(events))
	for _, event := range events {
		rows = append(rows, map[string]interface{}{
			headerEvent: string(event.Name),
			headerDate:  event.DisplayDate(),
			headerVenue: string(event.VenueName),
			headerURL:   event.URL,
		})
	}
	return rows
}

// fetchEvents loads one list of events through the session
// and prints it as a table, or a note when the list is empty
func fetchEvents(
	ctx context.Context,
	ui terminal.UI,
	clients cli.Clients,
	title string,
	load func(ctx context.Context) ([]biletbudur.Event, error),
) error {
	s := ui.Spinner(fmt.Sprintf("Loading %s...", title), terminal.SpinnerOptions{})
	s.Start()

	var events []biletbudur.Event
	result := clients.Session.Do(ctx, func(ctx context.Context) error {
		var err error
		events, err = load(ctx)
		return err
	})
	s.Stop()

	if err := result.Err(); err != nil {
		return err
	}

	if len(events) == 0 {
		return ui.Print(terminal.NewTextLog("No %s found", title))
	}

	return ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d %s", len(events), title),
		eventHeaders,
		eventRows(events)...,
	))
}
