// ABOUTME: Command-line surface for pcbeep
// ABOUTME: Parses flags with urfave/cli and runs the beep with bell fallback
package command

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Resonate-Protocol/pcbeep/internal/config"
	"github.com/Resonate-Protocol/pcbeep/internal/version"
	"github.com/Resonate-Protocol/pcbeep/pkg/beep"
	"github.com/Resonate-Protocol/pcbeep/pkg/tone"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func init() {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// Deps holds the process boundary used by the command
type Deps struct {
	// OpenDevice opens the console; an empty path means standard output
	OpenDevice func(path string) (tone.Device, error)

	Stdout io.Writer
	Stderr io.Writer

	// Sleep blocks for the beep duration (default time.Sleep)
	Sleep func(time.Duration)
}

// OpenConsole is the production OpenDevice
func OpenConsole(path string) (tone.Device, error) {
	return tone.OpenConsole(path)
}

// Run parses args and beeps. A *config.ConfigurationError is returned when
// the arguments or environment are invalid; nothing is emitted in that case.
func Run(args []string, deps Deps) error {
	if deps.OpenDevice == nil {
		deps.OpenDevice = OpenConsole
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	defaults, err := config.Load()
	if err != nil {
		fmt.Fprintf(deps.Stdout, "ERROR %v\n", err)
		return err
	}

	return New(deps, defaults).Run(args)
}

// New builds the cli application with flag defaults taken from defaults
func New(deps Deps, defaults *config.Config) *cli.App {
	return &cli.App{
		Name:            version.Product,
		Usage:           "beep the PC speaker, or ring the terminal bell",
		UsageText:       version.Product + " [options]",
		Version:         version.Version,
		HideHelpCommand: true,
		Writer:          deps.Stdout,
		ErrWriter:       deps.Stderr,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "frequency",
				Aliases: []string{"f"},
				Usage:   "sets desired frequency in Hz (0 is silence)",
				Value:   defaults.Frequency,
			},
			&cli.Uint64Flag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "sets duration of a beep in ms",
				Value:   defaults.Duration,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print more info",
				Value:   defaults.Verbose,
			},
			&cli.StringFlag{
				Name:    "device",
				Aliases: []string{"e"},
				Usage:   "console device to drive (default: standard output)",
				Value:   defaults.Device,
			},
		},
		OnUsageError: usageError,
		Action: func(cCtx *cli.Context) error {
			return run(cCtx, deps)
		},
	}
}

func usageError(cCtx *cli.Context, err error, _ bool) error {
	fmt.Fprintf(cCtx.App.Writer, "ERROR parsing arguments failed\n %v\n\n", err)
	_ = cli.ShowAppHelp(cCtx)
	return &config.ConfigurationError{Field: "arguments", Err: err}
}

func run(cCtx *cli.Context, deps Deps) error {
	cfg := &config.Config{
		Frequency: cCtx.Uint64("frequency"),
		Duration:  cCtx.Uint64("duration"),
		Verbose:   cCtx.Bool("verbose"),
		Device:    cCtx.String("device"),
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cCtx.App.Writer, "ERROR %v\n\n", err)
		_ = cli.ShowAppHelp(cCtx)
		return err
	}

	logger := newLogger(deps.Stderr, cfg.Verbose)
	if cfg.Verbose {
		logger.Debug().
			Str("device", cfg.Device).
			Bool("stdout_tty", isTerminal(deps.Stdout)).
			Msg("opening console")
	}

	var emitter beep.Emitter
	dev, err := deps.OpenDevice(cfg.Device)
	if err != nil {
		logger.Debug().Err(err).Msg("console unavailable")
		emitter = unavailable{err: err}
	} else {
		defer func() {
			if err := dev.Close(); err != nil {
				logger.Debug().Err(err).Msg("console close failed")
			}
		}()
		emitter = tone.NewEmitter(dev)
	}

	orch := beep.New(beep.Config{
		Emitter: emitter,
		Stdout:  deps.Stdout,
		Sleep:   deps.Sleep,
		Logger:  logger,
	})

	outcome := orch.Alert(cfg.Request(), cfg.Verbose)
	logger.Debug().
		Uint32("divisor", tone.Divisor(uint32(cfg.Frequency))).
		Stringer("outcome", outcome).
		Msg("beep finished")
	return nil
}

// unavailable stands in for a console that could not be opened
type unavailable struct {
	err error
}

func (u unavailable) Start(uint32) error { return u.err }
func (u unavailable) Stop() error        { return u.err }

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
