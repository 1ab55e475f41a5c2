// Package prompt provides the decision providers used by the collection
// workflow: an interactive terminal that asks the operator, and a fixed
// policy for unattended runs.
//
// Both satisfy validation.Decider, relatives.Decider, and
// relatives.FieldPrompter. Unusable input (blank lines, EOF, a cancelled
// context) is always a "no" or an empty value.
package prompt
