package cli

import (
	"github.com/emreeozkull/biletbudur-cli/internal/telemetry"
	"github.com/emreeozkull/biletbudur-cli/internal/terminal"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/flags"
)

// set of global flag names, shorthands and usages
const (
	flagProfile      = "profile"
	flagProfileShort = "i"
	flagProfileUsage = "Specify your profile"

	flagBaseURL      = "base-url"
	flagBaseURLUsage = "Specify the base biletbudur server URL"

	flagVerbose      = "verbose"
	flagVerboseUsage = "Trace the requests sent to the biletbudur server on stderr"
)

func (factory *CommandFactory) globalFlags() []flags.Flag {
	return []flags.Flag{
		flags.StringFlag{
			Value:        &factory.profile.Name,
			DefaultValue: DefaultProfile,
			Meta: flags.Meta{
				Name:      flagProfile,
				Shorthand: flagProfileShort,
				Usage:     flags.Usage{Description: flagProfileUsage},
			},
		},
		flags.CustomFlag{
			Value: &factory.profile.telemetryMode,
			Meta: flags.Meta{
				Name:  telemetry.FlagMode,
				Usage: flags.Usage{Description: telemetry.FlagModeUsage},
			},
		},
		flags.StringFlag{
			Value: &factory.uiConfig.OutputTarget,
			Meta: flags.Meta{
				Name:      terminal.FlagOutputTarget,
				Shorthand: terminal.FlagOutputTargetShort,
				Usage:     flags.Usage{Description: terminal.FlagOutputTargetUsage},
			},
		},
		flags.CustomFlag{
			Value: &factory.uiConfig.OutputFormat,
			Meta: flags.Meta{
				Name:      terminal.FlagOutputFormat,
				Shorthand: terminal.FlagOutputFormatShort,
				Usage:     flags.Usage{Description: terminal.FlagOutputFormatUsage},
			},
		},
		flags.BoolFlag{
			Value: &factory.uiConfig.DisableColors,
			Meta: flags.Meta{
				Name:  terminal.FlagDisableColors,
				Usage: flags.Usage{Description: terminal.FlagDisableColorsUsage},
			},
		},
		flags.BoolFlag{
			Value: &factory.uiConfig.AutoConfirm,
			Meta: flags.Meta{
				Name:      terminal.FlagAutoConfirm,
				Shorthand: terminal.FlagAutoConfirmShort,
				Usage:     flags.Usage{Description: terminal.FlagAutoConfirmUsage},
			},
		},
		flags.BoolFlag{
			Value: &factory.verbose,
			Meta: flags.Meta{
				Name:  flagVerbose,
				Usage: flags.Usage{Description: flagVerboseUsage},
			},
		},
		flags.StringFlag{
			Value: &factory.profile.baseURL,
			Meta: flags.Meta{
				Name:   flagBaseURL,
				Usage:  flags.Usage{Description: flagBaseURLUsage},
				Hidden: true,
			},
		},
	}
}
