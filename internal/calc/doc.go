// Package calc holds the calculator state machine: the State value, the
// Action variants that drive it, the pure Reduce transition, and the
// Evaluate/FormatOperand helpers used to compute and display results.
package calc
