// Package cli turns command-line arguments (and an optional HCL config file)
// into a validated app.Config. Flags always win over file values; file
// values win over built-in defaults.
package cli
