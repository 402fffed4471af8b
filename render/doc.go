// Package render turns a partitioning Result into human-facing output: a
// colorized terminal summary (print.go) and a timeline plot of block
// boundaries against the critical path (plot.go).
package render
