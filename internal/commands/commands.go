package commands

import (
	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/events"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/favorites"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/login"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/logout"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/performers"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/register"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/version"
	"github.com/emreeozkull/biletbudur-cli/internal/commands/whoami"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Group:       auth.GroupAuth,
		Description: "Log in to your biletbudur account",
		Help: `Exchanges the email and password of your biletbudur account for a session.

The session is stored in your CLI profile and reused by the following commands
until it expires or you log out. If you are already logged in, nothing happens.`,
	}

	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Aliases:     []string{"signup"},
		Group:       auth.GroupAuth,
		Description: "Create a new biletbudur account",
		Help: `Creates a new biletbudur account.

Registering does not log you in, run "biletbudur login" once the account is created.`,
	}

	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Unguarded:   true,
		Description: "Terminate the current user's session",
		Help:        "Removes the session of the current user from your CLI profile.",
	}

	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Unguarded:   true,
		Description: "Display the current user's details",
		Help: `Displays the current user along with the redacted session tokens
(e.g. ************F0dXJl) and their expiry. No session data will be surfaced
if you are not logged in.`,
	}

	Favorites = cli.CommandDefinition{
		Use:         "favorites",
		Aliases:     []string{"favorite", "favs"},
		Description: "View the favorites of the current user",
		Help:        "View the events and performers you follow on biletbudur.",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "favorites list",
				Description: "List your upcoming favorite events",
				Help:        "Lists the upcoming events you added to your favorites.",
				Command:     &favorites.CommandList{},
			},
			{
				Use:         "past",
				Display:     "favorites past",
				Description: "List your past favorite events",
				Help:        "Lists the favorite events that already took place.",
				Command:     &favorites.CommandPast{},
			},
			{
				Use:         "summary",
				Display:     "favorites summary",
				Description: "Summarize your favorites",
				Help:        "Counts your upcoming and past favorite events along with your favorite performers.",
				Command:     &favorites.CommandSummary{},
			},
		},
	}

	Performers = cli.CommandDefinition{
		Use:         "performers",
		Aliases:     []string{"performer"},
		Description: "Manage your favorite performers",
		Help:        "View and follow the performers whose events you want to hear about.",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "performers list",
				Description: "List your favorite performers",
				Help:        "Lists the performers you follow.",
				Command:     &performers.CommandList{},
			},
			{
				Use:         "add [name]",
				Display:     "performers add",
				Description: "Add a performer to your favorites",
				Help: `Adds a performer to your favorites. You will be prompted for the name
of the performer when it is omitted.`,
				Command: &performers.CommandAdd{},
			},
		},
	}

	Events = cli.CommandDefinition{
		Use:         "events",
		Aliases:     []string{"event"},
		Unguarded:   true,
		Description: "Browse the public biletbudur events",
		Help:        "Browse the events listed on biletbudur, no account is needed.",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "events list",
				Unguarded:   true,
				Description: "List the latest public events",
				Help: `Lists the latest events of the public biletbudur feed.

The feed is read without your session, so it works whether you are logged in or not.`,
				Command: &events.CommandList{},
			},
		},
	}

	Version = cli.CommandDefinition{
		Command:     &version.Command{},
		Use:         "version",
		Unguarded:   true,
		Description: "Display the CLI version",
		Help:        "Displays the version of the CLI along with the Go version and platform it was built for.",
	}
)
