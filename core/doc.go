// Package core defines the ServiceGraph data model shared by the
// partitioning engine: a rooted directed tree of serverless functions fed by
// a synthetic PLATFORM node, annotated with per-invocation runtime, memory,
// and edge invocation rates.
//
// A ServiceGraph is built once (AddNode/AddEdge), validated and frozen by
// Finalize, and treated as read-only by every algorithm in chaindp,
// treemtp, treebtp, and oracle. There is no mutation API once Finalize has
// run: the partitioning engine's single-threaded, deterministic contract
// depends on graphs never changing shape mid-call.
package core
