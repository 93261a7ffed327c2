package session_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pickwave/pickwave/session"
	"github.com/pickwave/pickwave/signal"
	"github.com/pickwave/pickwave/uncertain"
)

// waveform builds a 100-sample synthetic recording with no zero
// amplitudes, so any non-empty window normalizes cleanly.
func waveform(t *testing.T, phase float64) *signal.TimeSeries {
	t.Helper()
	times := make([]float64, 100)
	amps := make([]float64, 100)
	for i := range times {
		times[i] = float64(i)
		amps[i] = math.Sin(0.3*float64(i)+phase) + 1.5
	}
	ts, err := signal.NewTimeSeries(times, amps)
	require.NoError(t, err)
	return ts
}

// newSession builds a deterministic session with a small draw count.
func newSession(t *testing.T) *session.Session {
	t.Helper()
	prop := uncertain.DefaultOptions()
	prop.Draws = 200
	s, err := session.New(session.Config{
		TemplateSeries:  waveform(t, 0),
		QuerySeries:     waveform(t, 0.4),
		Length:          uncertain.Deterministic(30),
		TemplateDensity: uncertain.Deterministic(2.5),
		TemplateShear:   uncertain.Deterministic(10),
		QueryDensity:    uncertain.Deterministic(2.6),
		QueryShear:      uncertain.Deterministic(9),
		Propagation:     &prop,
	})
	require.NoError(t, err)
	return s
}

// TestNew_Validation verifies config sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := session.New(session.Config{})
	assert.ErrorIs(t, err, session.ErrNilSeries)

	bad := uncertain.Options{Draws: -1}
	_, err = session.New(session.Config{
		TemplateSeries: waveform(t, 0),
		QuerySeries:    waveform(t, 0),
		Propagation:    &bad,
	})
	assert.ErrorIs(t, err, uncertain.ErrBadDraws)
}

// TestNew_InitialState verifies the default windows and that the
// initial recompute produced artifacts for the benign waveforms.
func TestNew_InitialState(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, signal.Window{Start: 50, Finish: 51}, s.Template().Window())
	assert.Equal(t, signal.Window{Start: 50, Finish: 51}, s.Query().Window())

	seg, ok := s.Template().Segment()
	require.True(t, ok, "initial segment must exist for non-degenerate data")
	assert.Equal(t, 2, seg.Len())

	_, ok = s.Alignment(session.Raw)
	assert.True(t, ok)
	_, ok = s.Alignment(session.Envelope)
	assert.True(t, ok)
	_, ok = s.Alignment(session.Phase)
	assert.True(t, ok)

	m, ok := s.Template().Moduli()
	require.True(t, ok, "neutral-prior propagation runs at startup")
	assert.Len(t, m.Velocity.Samples, 200)
}

// TestApply_AdjustWindow verifies the nearer-bound rule through the
// command interface and that realignment follows.
func TestApply_AdjustWindow(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.Apply(session.AdjustWindow{Signal: session.Template, Time: 20}))
	assert.Equal(t, signal.Window{Start: 20, Finish: 51}, s.Template().Window(),
		"20 is nearer the start bound")

	seg, ok := s.Template().Segment()
	require.True(t, ok)
	assert.Equal(t, 32, seg.Len(), "samples 20..51 inclusive")

	// Alignment is recomputed with the query as reference A.
	qseg, _ := s.Query().Segment()
	path, ok := s.Alignment(session.Raw)
	require.True(t, ok)
	last := path.Len() - 1
	assert.Equal(t, qseg.Len(), path.IndexA[last], "reference A is the query")
	assert.Equal(t, seg.Len(), path.IndexB[last], "target B is the template")
}

// TestApply_DegenerateWindowRetainsState verifies the error policy: a
// window that selects no samples fails the recompute and leaves every
// previous artifact in place.
func TestApply_DegenerateWindowRetainsState(t *testing.T) {
	s := newSession(t)

	// Narrow the template window to the single sample t=51.
	require.NoError(t, s.Apply(session.AdjustWindow{Signal: session.Template, Time: 50.2}))
	segBefore, ok := s.Template().Segment()
	require.True(t, ok)
	require.Equal(t, []float64{51}, segBefore.Times)
	pathBefore, ok := s.Alignment(session.Raw)
	require.True(t, ok)

	// Now close the window entirely: (50.2, 50.8) holds no sample.
	err := s.Apply(session.AdjustWindow{Signal: session.Template, Time: 50.8})
	assert.ErrorIs(t, err, signal.ErrDegenerateWindow)

	segAfter, ok := s.Template().Segment()
	require.True(t, ok, "previous valid segment is retained")
	assert.Equal(t, segBefore, segAfter)
	pathAfter, ok := s.Alignment(session.Raw)
	require.True(t, ok, "previous valid alignment is retained")
	assert.Equal(t, pathBefore, pathAfter)

	// The window itself did move; a later valid adjust recovers.
	assert.Equal(t, signal.Window{Start: 50.2, Finish: 50.8}, s.Template().Window())
	require.NoError(t, s.Apply(session.AdjustWindow{Signal: session.Template, Time: 80}))
	segAfter, ok = s.Template().Segment()
	require.True(t, ok)
	assert.Greater(t, segAfter.Len(), 1)
}

// TestApply_AddPick verifies the pick pipeline: statistics update and
// the moduli re-propagate from the new transit distribution. Two
// identical picks give zero spread, so the velocity is closed-form.
func TestApply_AddPick(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.Apply(session.AddPick{Signal: session.Template, Value: 100}))
	require.NoError(t, s.Apply(session.AddPick{Signal: session.Template, Value: 100}))

	sum := s.Template().PickStats()
	assert.Equal(t, 100.0, sum.Mean)
	assert.Equal(t, 0.0, sum.Std)
	assert.Equal(t, 2, s.Template().PickCount())

	m, ok := s.Template().Moduli()
	require.True(t, ok)
	require.Len(t, m.Velocity.Samples, 1, "deterministic transit collapses the draw")
	assert.InDelta(t, 3000.0, m.Velocity.Mean, 1e-9, "(30/100)·1e4")
	assert.InDelta(t, 9.1667, m.Bulk.Mean, 1e-3)

	// The query's moduli are untouched by template picks.
	q, ok := s.Query().Moduli()
	require.True(t, ok)
	assert.Len(t, q.Velocity.Samples, 200)
}

// TestApply_PicksAreAppendOnly verifies picks accumulate across
// commands in insertion order.
func TestApply_PicksAreAppendOnly(t *testing.T) {
	s := newSession(t)
	for _, v := range []float64{5, 3, 4} {
		require.NoError(t, s.Apply(session.AddPick{Signal: session.Query, Value: v}))
	}
	assert.Equal(t, []float64{5, 3, 4}, s.Query().PickValues())
	sum := s.Query().PickStats()
	assert.Equal(t, 3.0, sum.Min)
	assert.Equal(t, 5.0, sum.Max)
	assert.Equal(t, 4.0, sum.Mean)
}

// TestApply_Recompute verifies the full re-run succeeds and is
// idempotent on unchanged state.
func TestApply_Recompute(t *testing.T) {
	s := newSession(t)
	p1, ok := s.Alignment(session.Raw)
	require.True(t, ok)

	require.NoError(t, s.Apply(session.Recompute{}))
	p2, ok := s.Alignment(session.Raw)
	require.True(t, ok)
	assert.Equal(t, p1, p2, "recompute on unchanged state reproduces the path")
}

// TestApply_UnknownInputs verifies command and signal validation.
func TestApply_UnknownInputs(t *testing.T) {
	s := newSession(t)
	assert.ErrorIs(t, s.Apply(nil), session.ErrUnknownCommand)
	err := s.Apply(session.AddPick{Signal: session.SignalID(7), Value: 1})
	assert.ErrorIs(t, err, session.ErrUnknownSignal)
	err = s.Apply(session.AdjustWindow{Signal: session.SignalID(-1), Time: 1})
	assert.ErrorIs(t, err, session.ErrUnknownSignal)
}
