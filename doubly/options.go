package doubly

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Options contains the configuration options of a List.
type Options struct {
	// InitialCapacity is the number of slots that are preallocated by the arena.
	InitialCapacity int

	// ShrinkingThresholdRatio is the ratio between the amount of free slots and the current length of the List
	// before the arena is compacted (set to 0.0 to disable).
	ShrinkingThresholdRatio float32

	// ShrinkingThresholdCount is the amount of free slots that triggers a compaction of the arena (set to 0 to
	// disable).
	ShrinkingThresholdCount int

	// Logger is used to trace the arena's memory management (nil disables logging).
	Logger log.Logger
}

// defaultOptions returns the Options that are used if no other values are provided.
func defaultOptions() *Options {
	return &Options{
		ShrinkingThresholdRatio: 10.0,
		ShrinkingThresholdCount: 100,
	}
}

// WithInitialCapacity is an option to preallocate the given amount of slots.
func WithInitialCapacity(capacity int) options.Option[Options] {
	return func(opts *Options) {
		opts.InitialCapacity = capacity
	}
}

// WithShrinkingThresholdRatio defines the ratio between the amount of free slots and the current length of the List
// before the arena is compacted.
func WithShrinkingThresholdRatio(ratio float32) options.Option[Options] {
	return func(opts *Options) {
		opts.ShrinkingThresholdRatio = ratio
	}
}

// WithShrinkingThresholdCount defines the count of free slots that triggers a compaction of the arena.
func WithShrinkingThresholdCount(count int) options.Option[Options] {
	return func(opts *Options) {
		opts.ShrinkingThresholdCount = count
	}
}

// WithLogger is an option to set the Logger that traces the arena's memory management.
func WithLogger(logger log.Logger) options.Option[Options] {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
