// Package orchestrator wires page transformers, theme resolution and the
// renderer registry behind a single Generate call.
package orchestrator
