// Package app wires configuration, logging and the parsing pipeline into
// the application lifecycle behind the CLI.
package app
