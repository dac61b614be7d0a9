package harness

import (
	"time"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/engine"
	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/suite"
)

// Outcome is the comparison for one case.
type Outcome struct {
	Case         suite.Case
	Expected     uint64
	ExpectedTime time.Duration
	Actual       engine.Result
}

// Pass is true only when the engine's count equals the reference count exactly.
func (o Outcome) Pass() bool {
	return o.Actual.OK() && o.Actual.Nodes == o.Expected
}

// Difference is actual minus expected, using -1 for a failed engine.
func (o Outcome) Difference() int64 {
	return o.Actual.Reported() - int64(o.Expected)
}

// Speedup is reference time over engine time, or 0 when the engine took no
// measurable time.
func (o Outcome) Speedup() float64 {
	if o.Actual.Elapsed <= 0 {
		return 0
	}
	return o.ExpectedTime.Seconds() / o.Actual.Elapsed.Seconds()
}

// Summary collects the outcomes of a whole run.
type Summary struct {
	ID        string
	StartedAt time.Time
	Engine    string
	Reference string
	Outcomes  []Outcome
	Passed    int
	Failed    int
}

func (s *Summary) add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	if o.Pass() {
		s.Passed++
	} else {
		s.Failed++
	}
}

// OK reports whether every case passed.
func (s Summary) OK() bool { return s.Failed == 0 }
