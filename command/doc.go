// Package command holds single-call log commands: the caller chooses a
// Command and every message it prints goes to that command's target.
package command
