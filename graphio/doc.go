// Package graphio serializes and parses service graphs as YAML documents,
// the interchange format used by the svcpart CLI to load fixtures and save
// generated graphs.
package graphio
