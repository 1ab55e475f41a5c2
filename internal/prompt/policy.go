package prompt

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/relatives"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/validation"
)

// Policy answers every question the same way without asking.
type Policy struct {
	AcceptAmbiguous bool
	AcceptRelatives bool
}

// ConfirmRecord returns AcceptAmbiguous.
func (p Policy) ConfirmRecord(context.Context, validation.RecordPrompt) bool {
	return p.AcceptAmbiguous
}

// ConfirmRelative returns AcceptRelatives.
func (p Policy) ConfirmRelative(context.Context, relatives.RelativePrompt) bool {
	return p.AcceptRelatives
}

// PromptField leaves every missing field empty.
func (p Policy) PromptField(context.Context, relatives.Field, identity.RelativeStub) string {
	return ""
}

// Providers bundles the decision providers for one run.
type Providers struct {
	Records   validation.Decider
	Relatives relatives.Decider
	Fields    relatives.FieldPrompter
	// Interactive reports whether any provider reads from the terminal.
	Interactive bool
}

// FromConfig selects providers for the configured policies. An interactive
// policy without a terminal on in falls back to rejecting.
func FromConfig(cfg *config.Config, in *os.File, out io.Writer, logger *slog.Logger) Providers {
	decisionPolicy := config.PolicyInteractive
	relativePolicy := config.PolicyInteractive
	maxAliases := 3
	if cfg != nil {
		decisionPolicy = cfg.Collection.DecisionPolicy
		relativePolicy = cfg.Collection.RelativePolicy
		maxAliases = cfg.Collection.MaxAliasesShown
	}

	wantsTerminal := decisionPolicy == config.PolicyInteractive || relativePolicy == config.PolicyInteractive
	if wantsTerminal && !IsTerminal(in) {
		logging.WarnWithContext(logging.NewComponentLogger(logger, "prompt"),
			"interactive policy requested without a terminal; rejecting undecided records", "prompt_no_tty",
			logging.String(logging.FieldErrorHint, "set collection.decision_policy and collection.relative_policy, or run from a terminal"),
			logging.String(logging.FieldImpact, "ambiguous records and new relatives are rejected and remembered"),
		)
		if decisionPolicy == config.PolicyInteractive {
			decisionPolicy = config.PolicyReject
		}
		if relativePolicy == config.PolicyInteractive {
			relativePolicy = config.PolicyReject
		}
	}

	fixed := Policy{AcceptAmbiguous: decisionPolicy == config.PolicyAccept}
	providers := Providers{Records: fixed, Relatives: fixed, Fields: fixed}
	if decisionPolicy != config.PolicyInteractive && relativePolicy != config.PolicyInteractive {
		return providers
	}

	terminal := NewTerminal(in, out, maxAliases)
	providers.Interactive = true
	if decisionPolicy == config.PolicyInteractive {
		providers.Records = terminal
	}
	if relativePolicy == config.PolicyInteractive {
		providers.Relatives = terminal
		providers.Fields = terminal
	}
	return providers
}
