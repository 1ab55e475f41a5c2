// Package main hosts the databroker CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, opens the roster
// store, and hands work to the internal packages: collection runs and
// ad-hoc checks go through the workflow runner, roster maintenance goes
// straight to the store. Output meant for people is rendered as tables;
// logs go to stderr and the log file.
package main
