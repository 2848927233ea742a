// ABOUTME: Emission orchestrator for timed beeps
// ABOUTME: Runs start, wait, stop and falls back to the terminal bell
package beep

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// BellByte is the ASCII bell control character
const BellByte = 0x07

// FallbackNotice is printed before the bell when verbose output is enabled
const FallbackNotice = "failed. fallback to 'BELL'"

// Emitter starts and stops a tone
type Emitter interface {
	Start(frequencyHz uint32) error
	Stop() error
}

// Config holds orchestrator dependencies
type Config struct {
	Emitter Emitter

	// Stdout receives the verbose notice and the bell (default os.Stdout)
	Stdout io.Writer

	// Sleep blocks for the beep duration (default time.Sleep)
	Sleep func(time.Duration)

	Logger zerolog.Logger

	// Callbacks
	OnStateChange func(State)
}

// Orchestrator sequences timed beeps
type Orchestrator struct {
	config Config
	state  State
}

// New creates an orchestrator
func New(config Config) *Orchestrator {
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Sleep == nil {
		config.Sleep = time.Sleep
	}

	return &Orchestrator{
		config: config,
		state:  StateIdle,
	}
}

// State returns the current emission state
func (o *Orchestrator) State() State {
	return o.state
}

// Emit plays one beep. Stop is never issued unless start succeeded, and
// always issued once it has.
func (o *Orchestrator) Emit(req Request) Outcome {
	log := o.config.Logger.With().
		Uint32("frequency_hz", req.FrequencyHz).
		Uint32("duration_ms", req.DurationMs).
		Logger()

	o.setState(StateStarting)
	if err := o.config.Emitter.Start(req.FrequencyHz); err != nil {
		log.Debug().Err(err).Msg("tone start failed")
		o.setState(StateFailed)
		return Failed
	}

	o.setState(StatePlaying)
	defer o.stop(log)

	o.config.Sleep(req.Duration())
	return Succeeded
}

// stop silences the tone; its error never changes the outcome
func (o *Orchestrator) stop(log zerolog.Logger) {
	o.setState(StateStopping)
	if err := o.config.Emitter.Stop(); err != nil {
		log.Debug().Err(err).Msg("tone stop failed, ignoring")
	}
	o.setState(StateDone)
}

// Alert emits the beep and writes the bell if emission failed
func (o *Orchestrator) Alert(req Request, verbose bool) Outcome {
	outcome := o.Emit(req)
	if outcome == Succeeded {
		return outcome
	}

	if verbose {
		fmt.Fprintln(o.config.Stdout, FallbackNotice)
	}
	if err := Bell(o.config.Stdout); err != nil {
		o.config.Logger.Warn().Err(err).Msg("bell fallback failed")
	}
	return outcome
}

func (o *Orchestrator) setState(s State) {
	o.state = s
	o.config.Logger.Debug().Stringer("state", s).Msg("emission state")
	if o.config.OnStateChange != nil {
		o.config.OnStateChange(s)
	}
}

// Bell writes a single ASCII bell byte to w
func Bell(w io.Writer) error {
	if _, err := w.Write([]byte{BellByte}); err != nil {
		return fmt.Errorf("write bell: %w", err)
	}
	return nil
}
