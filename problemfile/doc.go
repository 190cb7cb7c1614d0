// Package problemfile persists a problem's generation parameters as a small
// flat YAML document and rebuilds the root state from it.
//
// The format names the problem kind and its parameters:
//
//	problem: maze
//	parameters:
//	  width: 69
//	  height: 69
//	  seed: 8
//
// Only generation parameters are stored, never the expanded instance; the
// generators are deterministic for a given seed, so a file round-trips to a
// structurally identical root state.
package problemfile
