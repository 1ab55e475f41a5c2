package workflow

import (
	"time"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
)

// SiteSummary reports the outcome of one site for one person.
type SiteSummary struct {
	Site      string
	Collected int
	Ignored   int
	Accepted  int
	Rejected  int
	Prompted  int
	// Skipped holds the event type when the site produced nothing usable.
	Skipped string
	// Err holds the failure message when collection failed outright.
	Err         string
	ResultsPath string
}

// PersonSummary reports the outcome of every site for one person.
type PersonSummary struct {
	PersonID          int64
	Name              string
	Sites             []SiteSummary
	RelativesAdded    []identity.RelativeStub
	RelativesDeclined int
}

// Accepted totals accepted records across sites.
func (p PersonSummary) Accepted() int {
	n := 0
	for _, site := range p.Sites {
		n += site.Accepted
	}
	return n
}

// Rejected totals rejected records across sites.
func (p PersonSummary) Rejected() int {
	n := 0
	for _, site := range p.Sites {
		n += site.Rejected
	}
	return n
}

// Summary reports a whole collection run.
type Summary struct {
	RunID    string
	Started  time.Time
	Finished time.Time
	People   []PersonSummary
}

// Duration returns the wall time of the run.
func (s Summary) Duration() time.Duration {
	if s.Finished.IsZero() {
		return 0
	}
	return s.Finished.Sub(s.Started)
}

// RelativesAdded totals relatives appended to the roster during the run.
func (s Summary) RelativesAdded() int {
	n := 0
	for _, person := range s.People {
		n += len(person.RelativesAdded)
	}
	return n
}
