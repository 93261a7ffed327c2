package session

import (
	"errors"

	"github.com/pickwave/pickwave/analytic"
	"github.com/pickwave/pickwave/dtw"
	"github.com/pickwave/pickwave/picks"
	"github.com/pickwave/pickwave/signal"
	"github.com/pickwave/pickwave/uncertain"
)

var (
	// ErrNilSeries indicates a session configured without both waveforms.
	ErrNilSeries = errors.New("session: template and query series must be non-nil")
	// ErrUnknownSignal indicates a command addressing neither Template nor Query.
	ErrUnknownSignal = errors.New("session: unknown signal id")
	// ErrUnknownCommand indicates a command outside the closed command set.
	ErrUnknownCommand = errors.New("session: unknown command")
)

// SignalID addresses one of the two signals of a session.
type SignalID int

const (
	// Template is the dry-state reference recording.
	Template SignalID = iota
	// Query is the saturated-state recording compared against the template.
	Query
)

// String returns the signal name for error and display text.
func (id SignalID) String() string {
	switch id {
	case Template:
		return "template"
	case Query:
		return "query"
	default:
		return "unknown"
	}
}

// Kind selects one of the three representation pairs an alignment is
// computed for.
type Kind int

const (
	// Raw aligns the normalized signal segments themselves.
	Raw Kind = iota
	// Envelope aligns the analytic-signal magnitudes.
	Envelope
	// Phase aligns the normalized instantaneous phases. The phase path
	// is supplementary diagnostic information; raw and envelope are the
	// primary outputs consumed downstream.
	Phase
)

// Command is one of the closed set of typed commands the UI layer may
// send: AdjustWindow, AddPick or Recompute.
type Command interface{ isCommand() }

// AdjustWindow moves the window bound of one signal that is closer to
// Time, then re-runs the alignment pipeline for the session.
type AdjustWindow struct {
	Signal SignalID
	Time   float64
}

// AddPick appends one arrival-time pick to one signal, then re-runs
// that signal's statistics and moduli propagation.
type AddPick struct {
	Signal SignalID
	Value  float64
}

// Recompute re-runs both pipelines (alignment and propagation for both
// signals) without changing any state.
type Recompute struct{}

func (AdjustWindow) isCommand() {}
func (AddPick) isCommand()      {}
func (Recompute) isCommand()    {}

// State is the per-signal mutable state plus the last valid computed
// artifacts. The TimeSeries is immutable; Window and the pick set are
// the only mutation points, and only Apply mutates them.
type State struct {
	series  *signal.TimeSeries
	window  signal.Window
	picks   picks.Set
	density uncertain.Scalar
	shear   uncertain.Scalar

	segment    signal.Segment
	rep        analytic.Representation
	hasSegment bool

	moduli    uncertain.Moduli
	hasModuli bool
}

// Series returns the immutable waveform.
func (st *State) Series() *signal.TimeSeries { return st.series }

// Window returns the current window bounds.
func (st *State) Window() signal.Window { return st.window }

// Density returns the configured density distribution.
func (st *State) Density() uncertain.Scalar { return st.density }

// Shear returns the configured shear-modulus distribution.
func (st *State) Shear() uncertain.Scalar { return st.shear }

// Segment returns the last valid normalized segment, if any.
func (st *State) Segment() (signal.Segment, bool) { return st.segment, st.hasSegment }

// Representation returns the last valid envelope/phase representation,
// if any.
func (st *State) Representation() (analytic.Representation, bool) {
	return st.rep, st.hasSegment
}

// PickCount returns the number of arrival picks recorded so far.
func (st *State) PickCount() int { return st.picks.Len() }

// PickValues returns a copy of the recorded picks.
func (st *State) PickValues() []float64 { return st.picks.Values() }

// PickStats returns the pick summary statistics (or the neutral prior
// when no pick exists).
func (st *State) PickStats() picks.Summary { return st.picks.Stats() }

// Moduli returns the last valid propagated moduli, if any.
func (st *State) Moduli() (uncertain.Moduli, bool) { return st.moduli, st.hasModuli }

// Config assembles everything a session needs from the external
// loading layer: the two waveforms, the shared length measurement and
// the per-state density and shear distributions.
type Config struct {
	TemplateSeries *signal.TimeSeries
	QuerySeries    *signal.TimeSeries

	// Length is shared between both signal states (one physical sample).
	Length uncertain.Scalar

	TemplateDensity uncertain.Scalar
	TemplateShear   uncertain.Scalar
	QueryDensity    uncertain.Scalar
	QueryShear      uncertain.Scalar

	// Align overrides the DTW options; nil means dtw.DefaultOptions.
	Align *dtw.Options
	// Propagation overrides the Monte Carlo options; nil means
	// uncertain.DefaultOptions.
	Propagation *uncertain.Options
}
