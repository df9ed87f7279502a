// Package walker handles directory traversal and tree rendering
package walker

import (
	"github.com/bethropolis/projct/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger utils.Logger
	// MaxDepth limits how deep entries are listed; root children are depth 1.
	// A negative value means no limit.
	MaxDepth       int
	ShowIgnored    bool
	ShowBinary     bool
	OutputFileName string
	IsText         Classifier
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:         &utils.NoopLogger{},
		MaxDepth:       -1, // No limit
		ShowIgnored:    false,
		ShowBinary:     false,
		OutputFileName: "",
		IsText:         IsTextFile,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithMaxDepth limits the listing depth; negative disables the limit
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		opts.MaxDepth = depth
	}
}

// WithShowIgnored lists entries excluded by ignore rules instead of dropping them
func WithShowIgnored(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.ShowIgnored = enabled
	}
}

// WithShowBinary lists files that fail the text check
func WithShowBinary(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.ShowBinary = enabled
	}
}

// WithOutputFileName skips every entry with this name, at any level
func WithOutputFileName(name string) Option {
	return func(opts *WalkOptions) {
		opts.OutputFileName = name
	}
}

// WithClassifier replaces the text/binary check
func WithClassifier(fn Classifier) Option {
	return func(opts *WalkOptions) {
		if fn != nil {
			opts.IsText = fn
		}
	}
}
