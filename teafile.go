// Package teafile is the top-level entry point for reading and writing
// TeaFiles: a self-describing flat binary container of fixed-size,
// time-ordered records (§1). It re-exports the tea package's File type and
// constructors so callers depend on a single import path.
package teafile

import (
	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/tea"
)

// File is an open TeaFile.
type File = tea.File

// CreateOption configures a Create call.
type CreateOption = tea.CreateOption

// WithFormat supplies an explicit per-field type format string.
func WithFormat(format string) CreateOption { return tea.WithFormat(format) }

// WithItemName overrides the generated item name.
func WithItemName(name string) CreateOption { return tea.WithItemName(name) }

// WithContent attaches free-form descriptive text.
func WithContent(content string) CreateOption { return tea.WithContent(content) }

// WithNameValue stashes one key/value pair into the file's NameValue
// section.
func WithNameValue(key string, value any) CreateOption { return tea.WithNameValue(key, value) }

// WithTimeScale overrides the default time scale.
func WithTimeScale(scale desc.TimeScale) CreateOption { return tea.WithTimeScale(scale) }

// WithOverwrite permits Create to truncate an existing file.
func WithOverwrite(overwrite bool) CreateOption { return tea.WithOverwrite(overwrite) }

// WithPreallocate reserves room for n items up front.
func WithPreallocate(n int64) CreateOption { return tea.WithPreallocate(n) }

// WithTimeDecoration controls whether time-flagged fields are surfaced as
// time.Time on Read and accepted as time.Time on Write. On by default.
func WithTimeDecoration(decorate bool) CreateOption { return tea.WithTimeDecoration(decorate) }

// Create makes a new TeaFile at path with one field per entry in
// fieldNames.
func Create(path string, fieldNames []string, opts ...CreateOption) (*File, error) {
	return tea.Create(path, fieldNames, opts...)
}

// OpenRead opens an existing TeaFile read-only.
func OpenRead(path string) (*File, error) {
	return tea.OpenRead(path)
}

// OpenWrite opens an existing TeaFile for reading and appending.
func OpenWrite(path string) (*File, error) {
	return tea.OpenWrite(path)
}
