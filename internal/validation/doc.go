// Package validation applies the record classifier across one site's search
// results for one person.
//
// Strong matches are kept and clear mismatches are dropped without asking.
// Everything in between goes to an injected Decider, which may be a terminal
// prompt, a fixed policy, or a scripted test double. Every rejection is
// remembered in the person's IgnoreList so the same record is never
// classified or offered again on later runs.
package validation
