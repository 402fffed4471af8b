// Package telemetry wraps zerolog logging and a small set of Prometheus
// collectors shared by cmd/svcpart and simulate. Never imported by the
// algorithmic core packages (block, chaindp, treemtp, treebtp, oracle),
// which stay free of I/O.
package telemetry
