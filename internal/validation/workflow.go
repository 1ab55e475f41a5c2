package validation

import (
	"context"
	"log/slog"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/matching"
)

// RecordPrompt describes one record that needs a human or policy decision.
type RecordPrompt struct {
	// Index is 1-based within the records that were not skipped.
	Index          int
	Total          int
	Site           string
	Person         identity.Identity
	Record         identity.CandidateRecord
	Classification matching.Classification
}

// Decider confirms ambiguous records. Returning false rejects the record;
// providers without a usable answer must return false.
type Decider interface {
	ConfirmRecord(ctx context.Context, p RecordPrompt) bool
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, p RecordPrompt) bool

// ConfirmRecord calls f.
func (f DeciderFunc) ConfirmRecord(ctx context.Context, p RecordPrompt) bool {
	return f(ctx, p)
}

// Outcome records how a single record was resolved.
type Outcome struct {
	Record         identity.CandidateRecord
	Classification matching.Classification
	Accepted       bool
	Prompted       bool
}

// Result summarizes one Validate call.
type Result struct {
	// Accepted preserves input order.
	Accepted []identity.CandidateRecord
	Outcomes []Outcome
	// Skipped counts records already present in the ignore list.
	Skipped int
}

// Rejected returns the number of records added to the ignore list.
func (r Result) Rejected() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Accepted {
			n++
		}
	}
	return n
}

// Prompted returns the number of records that were sent to the decider.
func (r Result) Prompted() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Prompted {
			n++
		}
	}
	return n
}

// Workflow validates broker records against a person.
type Workflow struct {
	decider Decider
	logger  *slog.Logger
}

// New constructs a Workflow. A nil decider rejects every ambiguous record.
func New(decider Decider, logger *slog.Logger) *Workflow {
	if decider == nil {
		decider = DeciderFunc(func(context.Context, RecordPrompt) bool { return false })
	}
	return &Workflow{
		decider: decider,
		logger:  logging.NewComponentLogger(logger, "validation"),
	}
}

// Validate classifies records in input order and updates person.IgnoreList
// with every rejection. Records already in the ignore list for site are
// skipped before classification.
func (w *Workflow) Validate(ctx context.Context, person *identity.Identity, site string, records []identity.CandidateRecord) Result {
	var result Result
	if person == nil || len(records) == 0 {
		return result
	}
	site = identity.SiteKey(site)
	logger := logging.WithContext(ctx, w.logger)

	pending := make([]identity.CandidateRecord, 0, len(records))
	for _, record := range records {
		if person.IgnoreList.HasSearchResult(site, record.ID) {
			result.Skipped++
			continue
		}
		pending = append(pending, record)
	}
	if result.Skipped > 0 {
		logger.Debug("skipped previously rejected records",
			logging.String(logging.FieldSite, site),
			logging.Int("skipped", result.Skipped),
		)
	}

	for idx, record := range pending {
		classification := matching.Classify(*person, record)
		outcome := Outcome{Record: record, Classification: classification}

		switch {
		case classification == matching.MatchPerson:
			outcome.Accepted = true
		case classification.NeedsConfirmation():
			outcome.Prompted = true
			outcome.Accepted = w.decider.ConfirmRecord(ctx, RecordPrompt{
				Index:          idx + 1,
				Total:          len(pending),
				Site:           site,
				Person:         *person,
				Record:         record,
				Classification: classification,
			})
		}

		if outcome.Accepted {
			result.Accepted = append(result.Accepted, record)
		} else {
			person.IgnoreList.AddSearchResult(site, record.ID)
		}
		result.Outcomes = append(result.Outcomes, outcome)
		w.logDecision(logger, site, outcome)
	}

	logger.Info("site validation complete",
		logging.String(logging.FieldSite, site),
		logging.Int("accepted", len(result.Accepted)),
		logging.Int("rejected", result.Rejected()),
		logging.Int("prompted", result.Prompted()),
		logging.Int("skipped", result.Skipped),
	)
	return result
}

func (w *Workflow) logDecision(logger *slog.Logger, site string, outcome Outcome) {
	verdict := "rejected"
	if outcome.Accepted {
		verdict = "accepted"
	}
	reason := "automatic"
	if outcome.Prompted {
		reason = "confirmed"
	}
	attrs := append(logging.DecisionAttrs("search_result", verdict, reason),
		logging.String(logging.FieldSite, site),
		logging.String(logging.FieldRecordID, outcome.Record.ID),
		logging.String("record_name", outcome.Record.Name),
		logging.String("classification", outcome.Classification.String()),
	)
	logger.Debug("search result decision", logging.Args(attrs...)...)
}
