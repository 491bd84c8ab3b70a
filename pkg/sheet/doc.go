// Package sheet evaluates worksheets: batches of chord, scale, transpose
// and interval questions loaded from YAML or JSON.
//
// A worksheet looks like:
//
//	items:
//	  - op: chord
//	    root: Eb
//	    quality: minor
//	  - op: scale
//	    root: G
//	    kind: melodic_minor
//	    direction: up_down
//	    octave: 4
//	  - op: transpose
//	    root: C
//	    interval: m3
//	    down: true
//
// Each item is answered independently; one bad item does not stop the
// others.
package sheet
