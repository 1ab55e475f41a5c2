// Package relatives turns the "related to" mentions on accepted broker records
// into new roster candidates.
//
// Mentions are flattened across records and deduplicated by raw name. Names
// the person already declined, and people already on the roster, are dropped
// before anyone is asked. Each remaining candidate is offered to an injected
// Decider; declines are remembered in the person's IgnoreList and accepted
// candidates have their missing fields filled through a FieldPrompter.
package relatives
