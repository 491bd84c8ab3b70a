// Package oscquery answers music theory questions sent as OSC messages.
//
// Requests and their reply addresses:
//
//	/solfa/chord     root [quality]            -> /solfa/chord/reply     root third fifth
//	/solfa/scale     root kind [direction]     -> /solfa/scale/reply     note...
//	/solfa/transpose note interval [down]      -> /solfa/transpose/reply note
//
// All arguments are strings except the transpose direction, which may also
// be an OSC boolean or integer. A request that cannot be answered produces
// /solfa/error with the request address and the error text.
package oscquery
