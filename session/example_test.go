package session_test

import (
	"fmt"
	"math"

	"github.com/pickwave/pickwave/session"
	"github.com/pickwave/pickwave/signal"
	"github.com/pickwave/pickwave/uncertain"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSession
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A dry (template) and a saturated (query) recording of the same
//	core plug. The operator widens both windows around the arrival,
//	then picks the transit time twice on the template — identical
//	picks, so the transit collapses to a deterministic 100 µs and the
//	velocity is closed-form: (30 / 100) · 1e4 = 3000 m/s.
//
// Use case:
//
//	The exact command sequence an interactive front end would send.
func ExampleSession() {
	times := make([]float64, 100)
	tAmps := make([]float64, 100)
	qAmps := make([]float64, 100)
	for i := range times {
		times[i] = float64(i)
		tAmps[i] = math.Sin(0.3*float64(i)) + 1.5
		qAmps[i] = math.Sin(0.3*float64(i)+0.4) + 1.5
	}
	tSeries, _ := signal.NewTimeSeries(times, tAmps)
	qSeries, _ := signal.NewTimeSeries(times, qAmps)

	s, err := session.New(session.Config{
		TemplateSeries:  tSeries,
		QuerySeries:     qSeries,
		Length:          uncertain.Deterministic(30),
		TemplateDensity: uncertain.Deterministic(2.5),
		TemplateShear:   uncertain.Deterministic(10),
		QueryDensity:    uncertain.Deterministic(2.6),
		QueryShear:      uncertain.Deterministic(9),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cmds := []session.Command{
		session.AdjustWindow{Signal: session.Template, Time: 30},
		session.AdjustWindow{Signal: session.Query, Time: 30},
		session.AddPick{Signal: session.Template, Value: 100},
		session.AddPick{Signal: session.Template, Value: 100},
	}
	for _, cmd := range cmds {
		if err = s.Apply(cmd); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	raw, _ := s.Alignment(session.Raw)
	last := raw.Len() - 1
	fmt.Printf("raw alignment covers (1,1)..(%d,%d)\n", raw.IndexA[last], raw.IndexB[last])

	m, _ := s.Template().Moduli()
	fmt.Printf("template velocity: %.0f m/s\n", m.Velocity.Mean)
	fmt.Printf("template bulk:     %.4f GPa\n", m.Bulk.Mean)
	// Output:
	// raw alignment covers (1,1)..(22,22)
	// template velocity: 3000 m/s
	// template bulk:     9.1667 GPa
}
