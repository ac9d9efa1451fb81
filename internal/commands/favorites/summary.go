package favorites

import (
	"context"

	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"

	"golang.org/x/sync/errgroup"
)

const (
	headerCategory = "Category"
	headerCount    = "Count"
	headerNext     = "Next"
)

// CommandSummary is the `favorites summary` command
type CommandSummary struct{}

type summary struct {
	upcoming   []biletbudur.Event
	past       []biletbudur.Event
	performers []biletbudur.Performer
}

// Handler is the command handler
func (cmd *CommandSummary) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	s := ui.Spinner("Loading favorites...", terminal.SpinnerOptions{})
	s.Start()

	var sum summary
	result := clients.Session.Do(ctx, func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			sum.upcoming, err = clients.Biletbudur.Favorites(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			sum.past, err = clients.Biletbudur.PastFavorites(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			sum.performers, err = clients.Biletbudur.FavoritePerformers(ctx)
			return err
		})
		return g.Wait()
	})
	s.Stop()

	if err := result.Err(); err != nil {
		return err
	}

	var next string
	if len(sum.upcoming) > 0 {
		next = string(sum.upcoming[0].Name)
	}

	return ui.Print(terminal.NewTableLog(
		"Favorites summary",
		[]string{headerCategory, headerCount, headerNext},
		map[string]interface{}{headerCategory: "Upcoming events", headerCount: len(sum.upcoming), headerNext: next},
		map[string]interface{}{headerCategory: "Past events", headerCount: len(sum.past)},
		map[string]interface{}{headerCategory: "Performers", headerCount: len(sum.performers)},
	))
}
