// Package config declares the explicit settings consumed by the
// metadata reconciliation core.
//
// Settings are plain values passed into the updater, never read from
// ambient process-wide state: the caller decides where they come from
// (flags, files, environment) and hands them over once.
package config

import (
	"github.com/spf13/viper"

	"github.com/oneconcern/metapatch/pkg/acl"
)

// Settings holds reconciliation behavior toggles
type Settings struct {
	// RunByShim enables the legacy case-insensitive ACL matching of the
	// predecessor tool
	RunByShim bool `json:"run_by_shim" yaml:"run_by_shim" mapstructure:"run_by_shim"`

	// LogLevel selects the updater's log verbosity (none, info, debug)
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// FromViper decodes settings from a viper instance owned by the caller
func FromViper(v *viper.Viper) (Settings, error) {
	var settings Settings
	if v == nil {
		return settings, nil
	}
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Matcher returns the ACL matching strategy selected by these settings
func (s Settings) Matcher() acl.Matcher {
	return acl.MatcherFor(s.RunByShim)
}
