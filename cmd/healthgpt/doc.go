// Package main hosts the healthgpt CLI entrypoint and command graph.
//
// Running healthgpt without a subcommand opens the interactive dashboard. The
// prompts and transcribe subcommands run a single dashboard interaction
// non-interactively, and config scaffolds or checks the configuration file.
// Configuration, logging and the backend client are resolved once per
// invocation in commandContext so subcommands only deal with rendering.
package main
