package pq

import "github.com/couchbase/tools-common/containers/log"

// DefaultCapacity is the number of elements a priority queue can hold before it first has to grow.
const DefaultCapacity = 10

// Options encapsulates the available options which can be used when creating a priority queue.
type Options struct {
	// Capacity is the number of elements which can be inserted before the backing storage has to grow. Defaults to
	// 'DefaultCapacity'.
	Capacity int

	// LogPrefix is the prefix used when logging. Defaults to '(pq)'.
	LogPrefix string

	// Logger is the passed Logger struct that implements the Log method for logger the user wants to use.
	Logger log.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	if o.Capacity <= 0 {
		o.Capacity = DefaultCapacity
	}

	if o.LogPrefix == "" {
		o.LogPrefix = "(pq)"
	}
}
