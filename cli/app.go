// Package cli contains the springbounce command line tool. It acts as a one-shot host: it builds a
// responder from configuration and flags, feeds it a single collision and reports the outcome.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/springbounce/logging"
)

const (
	// Global flags.
	generalFlagConfig            = "config"
	generalFlagDebug             = "debug"
	generalFlagLogLevel          = "log-level"
	generalFlagSpringConstant    = "spring-constant"
	generalFlagDampingFactor     = "damping-factor"
	generalFlagMaxForceMagnitude = "max-force-magnitude"

	// Evaluate flags.
	evaluateFlagAnchor    = "anchor"
	evaluateFlagContact   = "contact"
	evaluateFlagVelocity  = "velocity"
	evaluateFlagMass      = "mass"
	evaluateFlagKinematic = "kinematic"
	evaluateFlagStatic    = "static"

	loggerMetadataKey = "logger"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "springbounce",
		Usage:           "evaluate spring-damper collision responses",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load responder configuration from JSON `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging, overriding --log-level",
			},
			&cli.StringFlag{
				Name:  generalFlagLogLevel,
				Usage: "minimum log `LEVEL` written to the error output: debug, info, warn or error",
				Value: "info",
			},
			&cli.Float64Flag{
				Name:  generalFlagSpringConstant,
				Usage: "override the spring constant k",
			},
			&cli.Float64Flag{
				Name:  generalFlagDampingFactor,
				Usage: "override the damping factor d",
			},
			&cli.Float64Flag{
				Name:  generalFlagMaxForceMagnitude,
				Usage: "override the maximum force magnitude m",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logging.LevelFromString(c.String(generalFlagLogLevel))
			if err != nil {
				return errors.Wrapf(err, "invalid --%s", generalFlagLogLevel)
			}
			if c.Bool(generalFlagDebug) {
				level = logging.DEBUG
			}
			logger := logging.NewBlankLogger("springbounce")
			logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
			logger.SetLevel(level)
			if c.App.Metadata == nil {
				c.App.Metadata = map[string]interface{}{}
			}
			c.App.Metadata[loggerMetadataKey] = logger
			return nil
		},
		After: func(c *cli.Context) error {
			return loggerFromContext(c).Sync()
		},
		Commands: []*cli.Command{
			{
				Name:      "evaluate",
				Usage:     "apply the responder to a single collision and print the result",
				UsageText: "springbounce [global options] evaluate --anchor x,y,z --contact x,y,z [other options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     evaluateFlagAnchor,
						Usage:    "world position of the responder owner, as x,y,z",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     evaluateFlagContact,
						Usage:    "contact point as x,y,z; repeat for more contacts, only the first is used",
						Required: true,
					},
					&cli.StringFlag{
						Name:  evaluateFlagVelocity,
						Usage: "velocity of the colliding body, as x,y,z",
						Value: "0,0,0",
					},
					&cli.Float64Flag{
						Name:  evaluateFlagMass,
						Usage: "mass of the colliding body",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  evaluateFlagKinematic,
						Usage: "make the colliding body kinematic",
					},
					&cli.BoolFlag{
						Name:  evaluateFlagStatic,
						Usage: "collide with static scenery that has no body",
					},
				},
				Action: EvaluateAction,
			},
			{
				Name:   "validate",
				Usage:  "validate the configuration and print the resolved parameters",
				Action: ValidateAction,
			},
		},
	}
}

func loggerFromContext(c *cli.Context) logging.Logger {
	if logger, ok := c.App.Metadata[loggerMetadataKey].(logging.Logger); ok {
		return logger
	}
	return logging.NewBlankLogger("springbounce")
}
