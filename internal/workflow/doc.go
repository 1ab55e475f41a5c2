// Package workflow drives collection runs over the roster.
//
// A Runner holds the collection lock for the duration of a run, walks the
// roster in insertion order, and for every configured site collects candidate
// records, resolves them through the validation workflow, writes accepted
// results, and offers relatives for inclusion. Relatives accepted during a run
// are appended to the roster and processed later in the same run. Each
// person's ignore list is persisted after every site so an interrupted run
// never asks the same question twice.
package workflow
