package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli/feedback"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/telemetry"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         io.Reader
	outWriter        io.Writer
	errWriter        io.Writer
	outFile          *os.File
	errLogger        *log.Logger
	verbose          bool
	httpClient       *http.Client
	telemetryService *telemetry.Service
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := NewDefaultProfile()
	if profileErr != nil {
		return nil, profileErr
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: errLogger,
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {
		if command, ok := command.Command.(CommandFlagger); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			for _, flag := range command.Flags() {
				flag.Register(fs)
			}
		}

		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			factory.ensureUI()

			if err := factory.profile.ResolveFlags(); err != nil {
				return err
			}

			var userID string
			if identity, ok := factory.profile.CachedIdentity(); ok {
				userID = identity.Email
			}

			factory.telemetryService = telemetry.NewService(
				factory.profile.TelemetryMode(),
				userID,
				display,
				Version,
				factory.profile.TelemetryLogPath(),
			)
			return nil
		}

		if command, ok := command.Command.(CommandArguments); ok {
			cmd.Args = func(c *cobra.Command, a []string) error {
				return command.Args(a)
			}
		} else {
			cmd.Args = cobra.NoArgs
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

			if err := factory.run(c.Context(), command, display); err != nil {
				factory.telemetryService.TrackEvent(
					telemetry.EventTypeCommandError,
					telemetry.EventData{Key: telemetry.EventDataKeyError, Value: err},
				)
				return feedback.WrapErr(fmt.Sprintf("%s failed: %%w", display), err, feedback.ErrNoUsage{})
			}

			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
			return nil
		}
	}

	return &cmd
}

// run restores the session, lets the session guard decide whether the command
// may run for the current route and then runs the command handler
func (factory *CommandFactory) run(ctx context.Context, command CommandDefinition, display string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	clients := factory.newClients()
	state := clients.Session.State()

	var navigator routeNavigator
	if !command.Unguarded {
		guard := auth.NewGuard(state, &navigator)
		defer guard.Close()

		guard.Navigate(auth.Route{Name: display, Group: command.Group})
	}

	if err := clients.Session.Restore(ctx).Err(); err != nil {
		return err
	}

	if route, ok := navigator.last(); ok {
		switch route {
		case auth.RouteLogin:
			return errLoginRequired()
		case auth.RouteHome:
			return factory.ui.Print(
				terminal.NewTextLog("Already logged in as %s", state.Snapshot().User.DisplayName()),
				terminal.NewFollowupLog(terminal.MsgSuggestedCommands, Name+" logout"),
			)
		}
	}
	navigator.reset()

	if command, ok := command.Command.(CommandInputs); ok {
		if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
			return fmt.Errorf("%s setup failed: %w", display, err)
		}
	}

	err := command.Command.Handler(ctx, factory.profile, factory.ui, clients)
	if route, ok := navigator.last(); ok && route == auth.RouteLogin {
		return errSessionExpired(err)
	}
	return err
}

func (factory *CommandFactory) newClients() Clients {
	state := auth.NewState()

	opts := []biletbudur.Option{
		biletbudur.WithLogger(factory.logger()),
		biletbudur.WithSessionExpiredHook(state.Expire),
	}
	if factory.httpClient != nil {
		opts = append(opts, biletbudur.WithHTTPClient(factory.httpClient))
	}

	client := biletbudur.NewAuthClient(factory.profile.BaseURL(), factory.profile, opts...)

	feedOpts := []biletbudur.Option{biletbudur.WithLogger(factory.logger())}
	if factory.httpClient != nil {
		feedOpts = append(feedOpts, biletbudur.WithHTTPClient(factory.httpClient))
	}

	return Clients{
		Biletbudur: client,
		Session:    auth.NewService(factory.profile, state, client),
		Events:     biletbudur.NewClient(factory.profile.EventsURL(), feedOpts...),
	}
}

func (factory *CommandFactory) logger() zerolog.Logger {
	if !factory.verbose {
		return zerolog.Nop()
	}

	w := factory.errWriter
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Str("profile", factory.profile.Name).
		Logger()
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if factory.outFile != nil {
		factory.outFile.Close()
	}
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(ctx context.Context, cmd *cobra.Command) int {
	defer factory.Close()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	handleUsage(cmd, err)

	if factory.ui == nil {
		factory.errLogger.Print(err)
		return 1
	}

	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester feedback.ErrSuggester
	if errors.As(err, &suggester) && len(suggester.Suggestions()) > 0 {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggester.Suggestions()...))
	}

	var linkReferrer feedback.ErrLinkReferrer
	if errors.As(err, &linkReferrer) && len(linkReferrer.ReferenceLinks()) > 0 {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgReferenceLinks, linkReferrer.ReferenceLinks()...))
	}

	if printErr := factory.ui.Print(logs...); printErr != nil {
		factory.errLogger.Print(err)
	}
	return 1
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	for _, flag := range factory.globalFlags() {
		flag.Register(fs)
	}
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outFile = f
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	var usageHider feedback.ErrUsageHider
	if errors.As(err, &usageHider) && usageHider.HideUsage() {
		return
	}
	fmt.Println(cmd.UsageString())
}
