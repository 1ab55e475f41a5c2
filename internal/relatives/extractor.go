package relatives

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/names"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// RelativePrompt describes one candidate relative awaiting a decision.
type RelativePrompt struct {
	// Index is 1-based within the candidates that survived filtering.
	Index  int
	Total  int
	Person identity.Identity
	Stub   identity.RelativeStub
}

// Decider confirms whether a candidate should be added to the roster.
type Decider interface {
	ConfirmRelative(ctx context.Context, p RelativePrompt) bool
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, p RelativePrompt) bool

// ConfirmRelative calls f.
func (f DeciderFunc) ConfirmRelative(ctx context.Context, p RelativePrompt) bool {
	return f(ctx, p)
}

// FieldPrompter supplies a value for a field the broker did not provide. An
// empty answer leaves the field empty.
type FieldPrompter interface {
	PromptField(ctx context.Context, field Field, stub identity.RelativeStub) string
}

// FieldPrompterFunc adapts a function to the FieldPrompter interface.
type FieldPrompterFunc func(ctx context.Context, field Field, stub identity.RelativeStub) string

// PromptField calls f.
func (f FieldPrompterFunc) PromptField(ctx context.Context, field Field, stub identity.RelativeStub) string {
	return f(ctx, field, stub)
}

// Result summarizes one Extract call.
type Result struct {
	Relatives []identity.RelativeStub
	// Declined holds raw names appended to the ignore list by this call.
	Declined []string
	// KnownSkipped counts candidates already on the roster.
	KnownSkipped int
	// IgnoredSkipped counts mentions declined on an earlier run.
	IgnoredSkipped int
}

// Extractor turns relative mentions into new roster candidates.
type Extractor struct {
	decider  Decider
	prompter FieldPrompter
	logger   *slog.Logger
}

// NewExtractor constructs an Extractor. A nil decider declines every
// candidate; a nil prompter leaves missing fields empty.
func NewExtractor(decider Decider, prompter FieldPrompter, logger *slog.Logger) *Extractor {
	if decider == nil {
		decider = DeciderFunc(func(context.Context, RelativePrompt) bool { return false })
	}
	if prompter == nil {
		prompter = FieldPrompterFunc(func(context.Context, Field, identity.RelativeStub) string { return "" })
	}
	return &Extractor{
		decider:  decider,
		prompter: prompter,
		logger:   logging.NewComponentLogger(logger, "relatives"),
	}
}

type candidate struct {
	stub       identity.RelativeStub
	checkKnown bool
}

// Extract offers every new relative mentioned on the accepted records.
// Declined mentions are appended to person.IgnoreList.Relatives.
func (e *Extractor) Extract(ctx context.Context, person *identity.Identity, accepted []identity.CandidateRecord, roster identity.Roster) Result {
	var result Result
	if person == nil {
		return result
	}
	logger := logging.WithContext(ctx, e.logger)

	var candidates []candidate
	for _, mention := range flatten(accepted) {
		raw := mention.RawName()
		if person.IgnoreList.HasRelative(raw) {
			result.IgnoredSkipped++
			continue
		}
		c := toCandidate(mention)
		if c.stub.GivenName == "" && c.stub.FamilyName == "" {
			continue
		}
		if roster.Contains(c.stub.GivenName, c.stub.FamilyName) {
			result.KnownSkipped++
			continue
		}
		candidates = append(candidates, c)
	}

	// Accepted candidates join the roster view so a later mention of the same
	// person in this call is not offered twice.
	working := append(identity.Roster(nil), roster...)
	for idx, c := range candidates {
		if working.Contains(c.stub.GivenName, c.stub.FamilyName) {
			result.KnownSkipped++
			continue
		}
		ok := e.decider.ConfirmRelative(ctx, RelativePrompt{
			Index:  idx + 1,
			Total:  len(candidates),
			Person: *person,
			Stub:   c.stub,
		})
		if !ok {
			person.IgnoreList.AddRelative(c.stub.RawName)
			result.Declined = append(result.Declined, c.stub.RawName)
			attrs := append(logging.DecisionAttrs("relative", "declined", "confirmed"),
				logging.String("relative", c.stub.RawName),
			)
			logger.Debug("relative decision", logging.Args(attrs...)...)
			continue
		}
		stub := e.complete(ctx, c)
		working = append(working, stub.Identity())
		result.Relatives = append(result.Relatives, stub)
		attrs := append(logging.DecisionAttrs("relative", "accepted", "confirmed"),
			logging.String("relative", stub.FullName()),
			logging.Bool("check_relatives", stub.CheckRelatives),
		)
		logger.Debug("relative decision", logging.Args(attrs...)...)
	}

	if len(candidates) > 0 || result.KnownSkipped > 0 || result.IgnoredSkipped > 0 {
		logger.Info("relative extraction complete",
			logging.Int("accepted", len(result.Relatives)),
			logging.Int("declined", len(result.Declined)),
			logging.Int("known_skipped", result.KnownSkipped),
			logging.Int("ignored_skipped", result.IgnoredSkipped),
		)
	}
	return result
}

func (e *Extractor) complete(ctx context.Context, c candidate) identity.RelativeStub {
	stub := c.stub
	for _, field := range Fields {
		switch field {
		case FieldAddressRegion:
			if stub.AddressRegion == "" {
				stub.AddressRegion = textutil.UpperCase(e.prompter.PromptField(ctx, field, stub))
			}
		case FieldAddressLocality:
			if stub.AddressLocality == "" {
				stub.AddressLocality = textutil.TitleCase(e.prompter.PromptField(ctx, field, stub))
			}
		case FieldMiddleName:
			if stub.MiddleName == "" {
				stub.MiddleName = textutil.TitleCase(e.prompter.PromptField(ctx, field, stub))
			}
		case FieldCheckRelatives:
			if !c.checkKnown {
				stub.CheckRelatives = ParseYes(e.prompter.PromptField(ctx, field, stub))
			}
		}
	}
	return stub
}

// ParseYes reports whether an answer starts with "y" (case-insensitive).
func ParseYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

func flatten(records []identity.CandidateRecord) []identity.RelativeMention {
	seen := make(map[string]struct{})
	var out []identity.RelativeMention
	for _, record := range records {
		for _, mention := range record.RelatedTo {
			raw := mention.RawName()
			if raw == "" {
				continue
			}
			if _, dup := seen[raw]; dup {
				continue
			}
			seen[raw] = struct{}{}
			out = append(out, mention)
		}
	}
	return out
}

func toCandidate(mention identity.RelativeMention) candidate {
	raw := mention.RawName()
	given, middle, family := names.SplitRelativeName(raw)
	if middle == "" {
		middle = textutil.TitleCase(mention.MiddleName)
	}
	c := candidate{
		stub: identity.RelativeStub{
			RawName:         raw,
			GivenName:       given,
			MiddleName:      middle,
			FamilyName:      family,
			AddressLocality: textutil.TitleCase(mention.AddressLocality),
			AddressRegion:   textutil.UpperCase(mention.AddressRegion),
		},
	}
	if mention.CheckRelatives != nil {
		c.stub.CheckRelatives = *mention.CheckRelatives
		c.checkKnown = true
	}
	return c
}
