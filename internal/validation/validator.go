package validation

import (
	"os"
	"runtime"

	clog "github.com/charmbracelet/log"

	"xtaskctl/internal/install"
	"xtaskctl/internal/system"
	"xtaskctl/internal/xtask"
)

// Validator resolves and validates tools against a loaded config. The
// ambient environment, platform and fetcher are injected so tests can
// substitute them; the zero-argument defaults read the real process state.
// Validators hold no mutable state, so one instance may be used from
// multiple goroutines.
type Validator struct {
	cfg          *xtask.Config
	logger       *clog.Logger
	lookupEnv    func(string) (string, bool)
	goos         string
	brewPrefixes []string
	fetch        func(url, dest string) error
}

// Option customizes a Validator.
type Option func(*Validator)

// WithLookupEnv substitutes the ambient environment reader.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(v *Validator) { v.lookupEnv = fn }
}

// WithGOOS overrides the platform used for search-path augmentation.
func WithGOOS(goos string) Option {
	return func(v *Validator) { v.goos = goos }
}

// WithBrewPrefixes overrides the homebrew install prefixes probed on darwin.
func WithBrewPrefixes(prefixes []string) Option {
	return func(v *Validator) { v.brewPrefixes = prefixes }
}

// WithFetcher substitutes the helper-script fetcher.
func WithFetcher(fn func(url, dest string) error) Option {
	return func(v *Validator) { v.fetch = fn }
}

// WithLogger substitutes the debug logger.
func WithLogger(l *clog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// NewValidator builds a Validator over cfg with real-process defaults.
func NewValidator(cfg *xtask.Config, opts ...Option) *Validator {
	v := &Validator{
		cfg:          cfg,
		logger:       system.Logger,
		lookupEnv:    os.LookupEnv,
		goos:         runtime.GOOS,
		brewPrefixes: []string{"/opt/homebrew", "/usr/local"},
		fetch:        install.Fetch,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}
