package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/collector"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/prompt"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/relatives"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/results"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/services"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/validation"
)

// ErrLocked indicates another collection run holds the roster lock.
var ErrLocked = errors.New("another collection run is already in progress")

// Runner executes collection runs against a roster store.
type Runner struct {
	cfg        *config.Config
	store      *roster.Store
	collectors []collector.Collector
	validator  *validation.Workflow
	extractor  *relatives.Extractor
	results    *results.Writer
	lock       *flock.Flock
	logger     *slog.Logger
	now        func() time.Time
}

// NewRunner wires a Runner from its dependencies. Results are written only
// when the configuration enables them.
func NewRunner(cfg *config.Config, store *roster.Store, collectors []collector.Collector, providers prompt.Providers, logger *slog.Logger) (*Runner, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("workflow requires config and roster store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:        cfg,
		store:      store,
		collectors: collectors,
		validator:  validation.New(providers.Records, logger),
		extractor:  relatives.NewExtractor(providers.Relatives, providers.Fields, logger),
		lock:       flock.New(cfg.LockPath()),
		logger:     logging.NewComponentLogger(logger, "workflow"),
		now:        time.Now,
	}
	if cfg.Collection.WriteResults {
		r.results = results.NewWriter(cfg.Paths.OutputDir)
	}
	return r, nil
}

// Run processes every roster person against every collector. People added
// as relatives during the run are processed before it returns.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	release, err := r.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, summary := r.begin(ctx)
	logger := logging.WithContext(ctx, r.logger)

	people, err := r.store.List(ctx)
	if err != nil {
		return r.finish(summary), fmt.Errorf("list roster: %w", err)
	}
	logger.Info("collection run started",
		logging.Args(
			logging.Int("people", len(people)),
			logging.Int("sites", len(r.collectors)),
		)...,
	)

	// The slice grows while iterating; relatives appended here are visited
	// later in this loop.
	for idx := 0; idx < len(people); idx++ {
		if err := ctx.Err(); err != nil {
			return r.finish(summary), err
		}
		personSummary, added, err := r.processPerson(ctx, people[idx], true)
		summary.People = append(summary.People, personSummary)
		if err != nil {
			return r.finish(summary), err
		}
		people = append(people, added...)
	}

	r.finish(summary)
	logger.Info("collection run finished",
		logging.Args(
			logging.Group("totals",
				logging.Int("people", len(summary.People)),
				logging.Int("relatives_added", summary.RelativesAdded()),
			),
			logging.Duration("duration", summary.Duration()),
		)...,
	)
	return summary, nil
}

// Check runs the pipeline for one ad-hoc identity. With save the identity is
// added to the roster first, its ignore list is persisted, and accepted
// relatives join the roster; without it nothing is written to the store.
func (r *Runner) Check(ctx context.Context, person identity.Identity, save bool) (*Summary, error) {
	person.Normalize()
	if person.GivenName == "" && person.FamilyName == "" {
		return nil, services.Wrap(services.ErrValidation, "", "check", "given or family name required", nil)
	}

	if save {
		release, err := r.acquire()
		if err != nil {
			return nil, err
		}
		defer release()
	}

	ctx, summary := r.begin(ctx)
	target := &roster.Person{Identity: person}
	if save {
		stored, err := r.store.Add(ctx, person)
		if err != nil {
			return r.finish(summary), fmt.Errorf("save person: %w", err)
		}
		target = stored
	}

	personSummary, _, err := r.processPerson(ctx, target, save)
	summary.People = append(summary.People, personSummary)
	return r.finish(summary), err
}

func (r *Runner) acquire() (func(), error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	ok, err := r.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() {
		if err := r.lock.Unlock(); err != nil {
			logging.WarnWithContext(r.logger, "failed to release collection lock", "lock_release_failed",
				logging.Error(err),
				logging.String("lock", r.cfg.LockPath()),
				logging.String(logging.FieldErrorHint, "remove the lock file if no run is active"),
			)
		}
	}, nil
}

func (r *Runner) begin(ctx context.Context) (context.Context, *Summary) {
	runID := uuid.NewString()
	return services.WithRunID(ctx, runID), &Summary{RunID: runID, Started: r.now()}
}

func (r *Runner) finish(summary *Summary) *Summary {
	summary.Finished = r.now()
	return summary
}

func (r *Runner) processPerson(ctx context.Context, person *roster.Person, persist bool) (PersonSummary, []*roster.Person, error) {
	ctx = services.WithPerson(ctx, person.ID, person.Identity.FullName())
	logger := logging.WithContext(ctx, r.logger)
	summary := PersonSummary{PersonID: person.ID, Name: person.Identity.FullName()}
	var added []*roster.Person

	logger.Info("processing person", logging.Args(logging.String("location", person.Identity.Location()))...)

	for _, c := range r.collectors {
		if err := ctx.Err(); err != nil {
			return summary, added, err
		}
		siteCtx := services.WithSite(ctx, c.Site())
		siteSummary, accepted := r.processSite(siteCtx, &person.Identity, c)
		summary.Sites = append(summary.Sites, siteSummary)

		if person.Identity.CheckRelatives && len(accepted) > 0 {
			stubs, declined, stored, err := r.processRelatives(siteCtx, person, accepted, persist)
			summary.RelativesAdded = append(summary.RelativesAdded, stubs...)
			summary.RelativesDeclined += declined
			added = append(added, stored...)
			if err != nil {
				return summary, added, err
			}
		}

		if persist && person.ID > 0 {
			if err := r.store.SaveIgnoreList(ctx, person.ID, person.Identity.IgnoreList); err != nil {
				return summary, added, fmt.Errorf("persist ignore list: %w", err)
			}
		}
	}
	return summary, added, nil
}

func (r *Runner) processSite(ctx context.Context, person *identity.Identity, c collector.Collector) (SiteSummary, []identity.CandidateRecord) {
	logger := logging.WithContext(ctx, r.logger)
	summary := SiteSummary{Site: c.Site()}

	records, err := c.Collect(ctx, *person)
	if err != nil {
		eventType := services.EventType(err)
		if services.Skippable(err) {
			summary.Skipped = eventType
			logging.WarnWithContext(logger, "site skipped", eventType,
				logging.Error(err),
				logging.String(logging.FieldErrorHint, skipHint(err)),
				logging.String(logging.FieldImpact, "no records from this site for this person"),
			)
			return summary, nil
		}
		summary.Err = err.Error()
		logging.ErrorWithContext(logger, "site collection failed", eventType,
			logging.Error(err),
			logging.Alert("site_failed"),
			logging.String(logging.FieldErrorHint, "check the captured results directory permissions"),
		)
		return summary, nil
	}

	result := r.validator.Validate(ctx, person, c.Site(), records)
	summary.Collected = len(records)
	summary.Ignored = result.Skipped
	summary.Accepted = len(result.Accepted)
	summary.Rejected = result.Rejected()
	summary.Prompted = result.Prompted()

	if r.results != nil && len(result.Accepted) > 0 {
		path, err := r.results.Write(*person, c.Site(), result.Accepted)
		if err != nil {
			logging.WarnWithContext(logger, "results not written", "results_write_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check output_dir permissions"),
				logging.String(logging.FieldImpact, "accepted records are not exported for this site"),
			)
		} else {
			summary.ResultsPath = path
		}
	}

	logger.Info("site processed",
		logging.Args(
			logging.Int("collected", summary.Collected),
			logging.Int("ignored", summary.Ignored),
			logging.Int("accepted", summary.Accepted),
			logging.Int("rejected", summary.Rejected),
		)...,
	)
	return summary, result.Accepted
}

func (r *Runner) processRelatives(ctx context.Context, person *roster.Person, accepted []identity.CandidateRecord, persist bool) ([]identity.RelativeStub, int, []*roster.Person, error) {
	logger := logging.WithContext(ctx, r.logger)

	known, err := r.store.Roster(ctx)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("load roster: %w", err)
	}
	known = append(known, person.Identity)

	result := r.extractor.Extract(ctx, &person.Identity, accepted, known)
	if !persist {
		return result.Relatives, len(result.Declined), nil, nil
	}

	var (
		stubs  []identity.RelativeStub
		stored []*roster.Person
	)
	for _, stub := range result.Relatives {
		added, err := r.store.Add(ctx, stub.Identity())
		if err != nil {
			if errors.Is(err, roster.ErrDuplicate) {
				logger.Debug("relative already on roster", logging.Args(logging.String("relative", stub.FullName()))...)
				continue
			}
			return stubs, len(result.Declined), stored, fmt.Errorf("add relative %s: %w", stub.FullName(), err)
		}
		logger.Info("relative added to roster",
			logging.Args(
				logging.String("relative", added.Identity.FullName()),
				logging.Int64("relative_id", added.ID),
			)...,
		)
		stubs = append(stubs, stub)
		stored = append(stored, added)
	}
	return stubs, len(result.Declined), stored, nil
}

func skipHint(err error) string {
	switch {
	case errors.Is(err, services.ErrSiteSchemaChange):
		return "the captured file no longer matches the expected shape; recapture it"
	case errors.Is(err, services.ErrNoRecords):
		return "capture results for this person to include the site"
	default:
		return "check the site configuration"
	}
}
