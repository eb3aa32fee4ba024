package metadata

import (
	"strings"
	"time"

	"github.com/oneconcern/metapatch/pkg/field"
	"github.com/oneconcern/metapatch/pkg/model"
)

// Converters building nested bucket and object configs from patch
// inputs. All of them are total functions: validation happened on the
// patch, and a nil result means "drop the whole config".

func processAutoclass(enabled *bool, terminalStorageClass *string) *model.Autoclass {
	autoclass := &model.Autoclass{}
	if enabled != nil {
		autoclass.Enabled = *enabled
	}
	if terminalStorageClass != nil {
		autoclass.TerminalStorageClass = strings.ToUpper(*terminalStorageClass)
	}
	return autoclass
}

func processDefaultStorageClass(storageClass string) string {
	return strings.ToUpper(storageClass)
}

func processDefaultEncryptionKey(key string) *model.Encryption {
	return &model.Encryption{DefaultKMSKeyName: key}
}

func processHierarchicalNamespace(enabled bool) *model.HierarchicalNamespace {
	return &model.HierarchicalNamespace{Enabled: enabled}
}

// processLogConfig merges usage-log routing changes into the existing
// config. The object prefix defaults to the target bucket's name when a
// log bucket is set without one. Returns nil when nothing remains.
func processLogConfig(existing *model.Logging, bucketName string, logBucket, logObjectPrefix field.Field[string]) *model.Logging {
	if logBucket.IsClear() && logObjectPrefix.IsClear() {
		return nil
	}
	logging := &model.Logging{}
	if existing != nil {
		*logging = *existing
	}
	if value, ok := logBucket.Value(); ok {
		logging.LogBucket = value
	} else if logBucket.IsClear() {
		logging.LogBucket = ""
	}
	if value, ok := logObjectPrefix.Value(); ok {
		logging.LogObjectPrefix = value
	} else if logObjectPrefix.IsClear() {
		logging.LogObjectPrefix = ""
	}
	if logging.LogBucket != "" && logging.LogObjectPrefix == "" {
		logging.LogObjectPrefix = bucketName
	}
	if logging.LogBucket == "" && logging.LogObjectPrefix == "" {
		return nil
	}
	return logging
}

func processPlacement(locations []string) *model.CustomPlacementConfig {
	return &model.CustomPlacementConfig{DataLocations: locations}
}

// processIamConfiguration merges access policy changes into the
// existing configuration. A cleared public access prevention empties
// the field; the cleared-path collector makes the empty value visible
// on the wire.
func processIamConfiguration(existing *model.IamConfiguration, publicAccessPrevention field.Field[string], uniformAccess *bool) *model.IamConfiguration {
	iam := &model.IamConfiguration{}
	if existing != nil {
		*iam = *existing
	}
	if value, ok := publicAccessPrevention.Value(); ok {
		iam.PublicAccessPrevention = value
	} else if publicAccessPrevention.IsClear() {
		iam.PublicAccessPrevention = ""
	}
	if uniformAccess != nil {
		iam.UniformBucketLevelAccess = &model.UniformBucketLevelAccess{Enabled: *uniformAccess}
	}
	return iam
}

func processRequesterPays(existing *model.Billing, requesterPays bool) *model.Billing {
	billing := &model.Billing{}
	if existing != nil {
		*billing = *existing
	}
	billing.RequesterPays = requesterPays
	return billing
}

func processRetentionPeriod(seconds int64) *model.RetentionPolicy {
	return &model.RetentionPolicy{RetentionPeriod: seconds}
}

func processSoftDeleteDuration(seconds int64) *model.SoftDeletePolicy {
	return &model.SoftDeletePolicy{RetentionDurationSeconds: seconds}
}

func processVersioning(enabled bool) *model.Versioning {
	return &model.Versioning{Enabled: enabled}
}

// processWebsite merges static-website changes into the existing
// config. Both aspects cleared at once drop the whole config; a single
// cleared aspect empties just that field.
func processWebsite(existing *model.Website, errorPage, mainPageSuffix field.Field[string]) *model.Website {
	if errorPage.IsClear() && mainPageSuffix.IsClear() {
		return nil
	}
	website := &model.Website{}
	if existing != nil {
		*website = *existing
	}
	if value, ok := errorPage.Value(); ok {
		website.NotFoundPage = value
	} else if errorPage.IsClear() {
		website.NotFoundPage = ""
	}
	if value, ok := mainPageSuffix.Value(); ok {
		website.MainPageSuffix = value
	} else if mainPageSuffix.IsClear() {
		website.MainPageSuffix = ""
	}
	return website
}

// processObjectRetention merges per-object retention changes into the
// existing settings. Untouched inputs leave the settings as they are;
// both aspects cleared at once drop them entirely.
func processObjectRetention(existing *model.ObjectRetention, mode field.Field[string], retainUntil field.Field[time.Time]) *model.ObjectRetention {
	if mode.IsUnset() && retainUntil.IsUnset() {
		return existing
	}
	if mode.IsClear() && retainUntil.IsClear() {
		return nil
	}
	retention := &model.ObjectRetention{}
	if existing != nil {
		*retention = *existing
	}
	if value, ok := mode.Value(); ok {
		retention.Mode = value
	} else if mode.IsClear() {
		retention.Mode = ""
	}
	if value, ok := retainUntil.Value(); ok {
		retention.RetainUntilTime = value
	} else if retainUntil.IsClear() {
		retention.RetainUntilTime = time.Time{}
	}
	return retention
}
