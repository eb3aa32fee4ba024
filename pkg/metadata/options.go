package metadata

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/metapatch/pkg/acl"
	"github.com/oneconcern/metapatch/pkg/config"
	"github.com/oneconcern/metapatch/pkg/dlogger"
	"github.com/oneconcern/metapatch/pkg/docs"
)

// Updater applies patch requests to bucket and object metadata
type Updater struct {
	l       *zap.Logger
	loader  *docs.Loader
	matcher acl.Matcher
}

// Option is a functor to pass optional parameters to the updater
type Option func(*Updater)

// Logger specifies a logger for this updater
func Logger(logger *zap.Logger) Option {
	return func(u *Updater) {
		if logger != nil {
			u.l = logger
		}
	}
}

// WithFS specifies the filesystem override documents are read from
func WithFS(fs afero.Fs) Option {
	return func(u *Updater) {
		u.loader = docs.NewLoader(fs)
	}
}

// WithLoader specifies a shared document loader
func WithLoader(loader *docs.Loader) Option {
	return func(u *Updater) {
		if loader != nil {
			u.loader = loader
		}
	}
}

// WithMatcher specifies the ACL matching strategy
func WithMatcher(matcher acl.Matcher) Option {
	return func(u *Updater) {
		if matcher != nil {
			u.matcher = matcher
		}
	}
}

// WithSettings applies explicit configuration: the ACL matching mode
// and the log verbosity
func WithSettings(settings config.Settings) Option {
	return func(u *Updater) {
		u.matcher = settings.Matcher()
		if settings.LogLevel != "" {
			u.l = dlogger.MustGetLogger(settings.LogLevel)
		}
	}
}

// New returns an updater with exact ACL matching, OS filesystem
// document loading and no logging
func New(opts ...Option) *Updater {
	u := &Updater{
		l:       zap.NewNop(),
		loader:  docs.NewLoader(nil),
		matcher: acl.ExactMatcher{},
	}
	for _, apply := range opts {
		apply(u)
	}
	return u
}
