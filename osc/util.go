package osc

import (
	"sync"
)

// //
// Utility and helper functions
// //
var (
	// bPool holds scratch buffers for Encode. Buffers grow as needed and are
	// returned to the pool with their capacity intact.
	bPool = sync.Pool{
		New: func() interface{} {
			b := make([]byte, 0, 1024)
			return &b
		},
	}
)
