// Package cmd implements the enigma command line interface.
//
// Commands are thin: they parse flags, call a workflow and format the
// result. Register attaches every command and the persistent --verbose,
// --debug and --config flags to a root command.
package cmd
