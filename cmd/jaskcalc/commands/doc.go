// Package commands wires the jaskcalc CLI: the interactive calculator,
// the headless press replay and config management.
package commands
