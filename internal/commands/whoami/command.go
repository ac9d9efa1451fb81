package whoami

import (
	"context"
	"time"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/flags"
)

const (
	headerToken   = "Token"
	headerValue   = "Value"
	headerExpires = "Expires"

	expiresUnknown = "unknown"
	expiresPassed  = "expired"
)

type inputs struct {
	checkServer bool
	showClaims  bool
}

// Command is the `whoami` command
type Command struct {
	inputs inputs

	// now is replaced in tests
	now func() time.Time
}

// Flags is the command flags
func (cmd *Command) Flags() []flags.Flag {
	return []flags.Flag{
		flags.BoolFlag{
			Value: &cmd.inputs.checkServer,
			Meta: flags.Meta{
				Name: "check-server",
				Usage: flags.Usage{
					Description: "Check whether the biletbudur server can be reached",
				},
			},
		},
		flags.BoolFlag{
			Value: &cmd.inputs.showClaims,
			Meta: flags.Meta{
				Name: "show-claims",
				Usage: flags.Usage{
					Description: "Show the claims of the access token",
					Note:        "the claims are decoded without verifying the token signature",
				},
			},
		},
	}
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	state := clients.Session.State().Snapshot()

	if !state.Authenticated() {
		if err := ui.Print(terminal.NewTextLog("No user is currently logged in")); err != nil {
			return err
		}
		return cmd.checkServer(ctx, profile, ui, clients)
	}

	logs := []terminal.Log{
		terminal.NewTextLog("Currently logged in user: %s (%s)", state.User.DisplayName(), state.User.Email),
	}

	access, _, err := profile.Get(auth.KeyAccessToken)
	if err != nil {
		return err
	}
	refresh, _, err := profile.Get(auth.KeyRefreshToken)
	if err != nil {
		return err
	}

	logs = append(logs, terminal.NewTableLog(
		"Session",
		[]string{headerToken, headerValue, headerExpires},
		map[string]interface{}{
			headerToken:   "access",
			headerValue:   auth.RedactToken(access),
			headerExpires: cmd.expires(access),
		},
		map[string]interface{}{
			headerToken:   "refresh",
			headerValue:   auth.RedactToken(refresh),
			headerExpires: cmd.expires(refresh),
		},
	))

	if cmd.inputs.showClaims {
		logs = append(logs, claimsLog(access))
	}

	if err := ui.Print(logs...); err != nil {
		return err
	}
	return cmd.checkServer(ctx, profile, ui, clients)
}

func (cmd *Command) checkServer(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if !cmd.inputs.checkServer {
		return nil
	}

	if err := clients.Biletbudur.Status(ctx); err != nil {
		return ui.Print(terminal.NewWarningLog("The server at %s is not reachable", profile.BaseURL()))
	}
	return ui.Print(terminal.NewTextLog("The server at %s is reachable", profile.BaseURL()))
}

func claimsLog(access string) terminal.Log {
	claims, err := auth.ParseClaims(access)
	if err != nil {
		return terminal.NewWarningLog("Unable to read the access token claims: %s", err)
	}

	doc := map[string]interface{}{
		"user_id":    claims.UserID,
		"email":      claims.Email,
		"first_name": claims.FirstName,
		"last_name":  claims.LastName,
	}
	if !claims.ExpiresAt.IsZero() {
		doc["expires_at"] = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return terminal.NewTitledJSONLog("Access token claims", doc)
}

func (cmd *Command) expires(token string) string {
	if token == "" {
		return expiresUnknown
	}

	claims, err := auth.ParseClaims(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return expiresUnknown
	}

	now := time.Now
	if cmd.now != nil {
		now = cmd.now
	}

	if claims.Expired(now()) {
		return expiresPassed
	}
	return claims.ExpiresAt.UTC().Format(time.RFC3339)
}
