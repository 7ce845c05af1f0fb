package tea

import "github.com/teafile-go/teafile/desc"

// createConfig collects the optional pieces of a Create call. Callers
// assemble it via the With* options below rather than constructing it
// directly.
type createConfig struct {
	format       string
	itemName     string
	content      string
	nameValues   *desc.NameValues
	timeScale    *desc.TimeScale
	overwrite    bool
	preallocate  int64
	decorateTime bool
}

// CreateOption configures a Create call.
type CreateOption func(*createConfig)

// WithFormat supplies an explicit per-field type format string (§4.4). When
// omitted, every field defaults to Int64.
func WithFormat(format string) CreateOption {
	return func(c *createConfig) { c.format = format }
}

// WithItemName overrides the generated item name.
func WithItemName(name string) CreateOption {
	return func(c *createConfig) { c.itemName = name }
}

// WithContent attaches free-form descriptive text, persisted in the
// Content section.
func WithContent(content string) CreateOption {
	return func(c *createConfig) { c.content = content }
}

// WithNameValue stashes one key/value pair into the file's NameValue
// section. value must be int32, float64, string, or [16]byte. Calling this
// more than once accumulates entries.
func WithNameValue(key string, value any) CreateOption {
	return func(c *createConfig) {
		if c.nameValues == nil {
			c.nameValues = desc.NewNameValues()
		}
		c.nameValues.Set(key, value)
	}
}

// WithTimeScale overrides the default JavaScale epoch/ticks-per-day pair
// used to interpret this file's time fields.
func WithTimeScale(scale desc.TimeScale) CreateOption {
	return func(c *createConfig) { c.timeScale = &scale }
}

// WithOverwrite permits Create to truncate an existing file at path rather
// than failing with errs.ErrFileExists.
func WithOverwrite(overwrite bool) CreateOption {
	return func(c *createConfig) { c.overwrite = overwrite }
}

// WithPreallocate reserves room for n items beyond the header before any
// Write call, so the item area is laid out contiguously on disk up front.
func WithPreallocate(n int64) CreateOption {
	return func(c *createConfig) { c.preallocate = n }
}

// WithTimeDecoration controls whether time-flagged fields are surfaced as
// time.Time on Read and accepted as time.Time on Write (§4.9). Decoration
// is on by default, matching the reference's USE_TIME_DECORATION default.
func WithTimeDecoration(decorate bool) CreateOption {
	return func(c *createConfig) { c.decorateTime = decorate }
}

func newCreateConfig(opts []CreateOption) *createConfig {
	cfg := &createConfig{decorateTime: true}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
