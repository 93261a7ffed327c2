package session

import (
	"fmt"

	"github.com/pickwave/pickwave/analytic"
	"github.com/pickwave/pickwave/dtw"
	"github.com/pickwave/pickwave/signal"
	"github.com/pickwave/pickwave/uncertain"
)

// Session holds one template/query comparison: two independent signal
// states, the shared length distribution, and the computed alignment
// paths. All methods are single-threaded; the caller sequences
// commands.
type Session struct {
	template State
	query    State
	length   uncertain.Scalar

	alignOpts dtw.Options
	propOpts  uncertain.Options

	alignments    [3]dtw.Path
	hasAlignments bool
}

// New builds a session from externally loaded inputs. Windows start at
// each series' default (the two samples nearest the midpoint), pick
// sets start empty, and an initial Recompute is attempted; a degenerate
// initial window is not an error — artifacts simply stay absent until
// the operator widens the window.
func New(cfg Config) (*Session, error) {
	if cfg.TemplateSeries == nil || cfg.QuerySeries == nil {
		return nil, ErrNilSeries
	}
	alignOpts := dtw.DefaultOptions()
	if cfg.Align != nil {
		if cfg.Align.Window < -1 {
			return nil, dtw.ErrBadWindow
		}
		alignOpts = *cfg.Align
	}
	propOpts := uncertain.DefaultOptions()
	if cfg.Propagation != nil {
		if cfg.Propagation.Draws <= 0 {
			return nil, uncertain.ErrBadDraws
		}
		propOpts = *cfg.Propagation
	}

	s := &Session{
		template: State{
			series:  cfg.TemplateSeries,
			window:  signal.DefaultWindow(cfg.TemplateSeries),
			density: cfg.TemplateDensity,
			shear:   cfg.TemplateShear,
		},
		query: State{
			series:  cfg.QuerySeries,
			window:  signal.DefaultWindow(cfg.QuerySeries),
			density: cfg.QueryDensity,
			shear:   cfg.QueryShear,
		},
		length:    cfg.Length,
		alignOpts: alignOpts,
		propOpts:  propOpts,
	}

	// Initial artifacts are best-effort: the default two-sample window
	// may be degenerate (all-zero amplitudes) and that is recoverable.
	_ = s.realign()
	_ = s.repropagate(&s.template, Template)
	_ = s.repropagate(&s.query, Query)
	return s, nil
}

// Template returns the template (dry) signal state.
func (s *Session) Template() *State { return &s.template }

// Query returns the query (saturated) signal state.
func (s *Session) Query() *State { return &s.query }

// Length returns the shared sample-length distribution.
func (s *Session) Length() uncertain.Scalar { return s.length }

// Alignment returns the computed path for one representation pair, if
// a valid alignment exists.
func (s *Session) Alignment(k Kind) (dtw.Path, bool) {
	if !s.hasAlignments || k < Raw || k > Phase {
		return dtw.Path{}, false
	}
	return s.alignments[k], true
}

// Apply executes one typed command and runs the pipeline it triggers:
//
//	AdjustWindow → segment extraction → analytic transform → 3×Align
//	AddPick      → pick statistics → Monte Carlo propagation
//	Recompute    → both of the above, for both signals
//
// On error the previous valid artifacts are retained and the error is
// returned; the session stays usable.
func (s *Session) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case AdjustWindow:
		st, err := s.state(c.Signal)
		if err != nil {
			return err
		}
		st.window.AdjustBound(c.Time)
		return s.realign()
	case AddPick:
		st, err := s.state(c.Signal)
		if err != nil {
			return err
		}
		st.picks.Add(c.Value)
		return s.repropagate(st, c.Signal)
	case Recompute:
		err := s.realign()
		if e := s.repropagate(&s.template, Template); err == nil {
			err = e
		}
		if e := s.repropagate(&s.query, Query); err == nil {
			err = e
		}
		return err
	default:
		return ErrUnknownCommand
	}
}

// state resolves a SignalID to its State.
func (s *Session) state(id SignalID) (*State, error) {
	switch id {
	case Template:
		return &s.template, nil
	case Query:
		return &s.query, nil
	default:
		return nil, ErrUnknownSignal
	}
}

// realign re-runs the window pipeline: extract and normalize both
// segments, derive their analytic representations, then align the
// three representation pairs with the query as reference A. Artifacts
// are committed only after every step succeeded, so a degenerate
// window leaves the previous valid state untouched.
func (s *Session) realign() error {
	segT, err := signal.ExtractNormalized(s.template.series, s.template.window)
	if err != nil {
		return fmt.Errorf("session: template: %w", err)
	}
	segQ, err := signal.ExtractNormalized(s.query.series, s.query.window)
	if err != nil {
		return fmt.Errorf("session: query: %w", err)
	}

	repT, err := analytic.Transform(segT.Amplitudes)
	if err != nil {
		return fmt.Errorf("session: template: %w", err)
	}
	repQ, err := analytic.Transform(segQ.Amplitudes)
	if err != nil {
		return fmt.Errorf("session: query: %w", err)
	}

	var paths [3]dtw.Path
	pairs := [3][2][]float64{
		Raw:      {segQ.Amplitudes, segT.Amplitudes},
		Envelope: {repQ.Envelope, repT.Envelope},
		Phase:    {repQ.Phase, repT.Phase},
	}
	for k, pair := range pairs {
		if paths[k], err = dtw.Align(pair[0], pair[1], &s.alignOpts); err != nil {
			return fmt.Errorf("session: align: %w", err)
		}
	}

	s.template.segment, s.template.rep, s.template.hasSegment = segT, repT, true
	s.query.segment, s.query.rep, s.query.hasSegment = segQ, repQ, true
	s.alignments, s.hasAlignments = paths, true
	return nil
}

// repropagate re-runs the pick pipeline for one signal: transit time
// from the pick statistics (Gaussian, degenerating to deterministic at
// zero spread), then Monte Carlo propagation to the four moduli. A
// failed propagation keeps the previous valid moduli.
func (s *Session) repropagate(st *State, id SignalID) error {
	sum := st.picks.Stats()
	transit := uncertain.Gaussian(sum.Mean, sum.Std)

	m, err := uncertain.PropagateModuli(s.length, st.density, st.shear, transit, &s.propOpts)
	if err != nil {
		return fmt.Errorf("session: %s: %w", id, err)
	}
	st.moduli, st.hasModuli = m, true
	return nil
}
