// Package benchmark times the four solver variants on a root state and
// reports the outcomes.
//
// Variants are selected with an Algorithm bitmask (BFSSeq | IDDFSPar, ...).
// Each solve is timed with a monotonic wall clock; a running solve is never
// aborted by the harness itself — bound runaway searches (IDDFS on a
// goal-free space) through the context passed to Run.
package benchmark
