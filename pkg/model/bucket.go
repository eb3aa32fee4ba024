package model

import "time"

// Bucket is the mutable metadata record for a storage bucket
type Bucket struct {
	Name             string    `json:"name,omitempty"`
	Etag             string    `json:"etag,omitempty"`
	ID               string    `json:"id,omitempty"`
	ProjectNumber    int64     `json:"projectNumber,omitempty,string"`
	Metageneration   int64     `json:"metageneration,omitempty,string"`
	Location         *string   `json:"location,omitempty"`
	LocationType     string    `json:"locationType,omitempty"`
	StorageClass     *string   `json:"storageClass,omitempty"`
	RPO              *string   `json:"rpo,omitempty"`
	TimeCreated      time.Time `json:"timeCreated,omitempty"`
	Updated          time.Time `json:"updated,omitempty"`
	SatisfiesPZS     bool      `json:"satisfiesPZS,omitempty"`

	ACL              []*Grant           `json:"acl,omitempty"`
	DefaultObjectACL []*Grant           `json:"defaultObjectAcl,omitempty"`
	Labels           map[string]*string `json:"labels,omitempty"`

	Autoclass             *Autoclass             `json:"autoclass,omitempty"`
	Billing               *Billing               `json:"billing,omitempty"`
	CORS                  []CORSEntry            `json:"cors,omitempty"`
	CustomPlacementConfig *CustomPlacementConfig `json:"customPlacementConfig,omitempty"`
	DefaultEventBasedHold *bool                  `json:"defaultEventBasedHold,omitempty"`
	Encryption            *Encryption            `json:"encryption,omitempty"`
	HierarchicalNamespace *HierarchicalNamespace `json:"hierarchicalNamespace,omitempty"`
	IamConfiguration      *IamConfiguration      `json:"iamConfiguration,omitempty"`
	Lifecycle             *Lifecycle             `json:"lifecycle,omitempty"`
	Logging               *Logging               `json:"logging,omitempty"`
	RetentionPolicy       *RetentionPolicy       `json:"retentionPolicy,omitempty"`
	SoftDeletePolicy      *SoftDeletePolicy      `json:"softDeletePolicy,omitempty"`
	Versioning            *Versioning            `json:"versioning,omitempty"`
	Website               *Website               `json:"website,omitempty"`
}

// NewBucket returns a fresh metadata record addressing a bucket by name
func NewBucket(name string) *Bucket {
	return &Bucket{Name: name}
}

// Autoclass holds automatic storage class management settings
type Autoclass struct {
	Enabled              bool      `json:"enabled"`
	TerminalStorageClass string    `json:"terminalStorageClass,omitempty"`
	ToggleTime           time.Time `json:"toggleTime,omitempty"`
}

// Billing holds bucket billing settings
type Billing struct {
	RequesterPays bool `json:"requesterPays"`
}

// CORSEntry is one cross-origin resource sharing rule
type CORSEntry struct {
	MaxAgeSeconds  int64    `json:"maxAgeSeconds,omitempty"`
	Method         []string `json:"method,omitempty"`
	Origin         []string `json:"origin,omitempty"`
	ResponseHeader []string `json:"responseHeader,omitempty"`
}

// CustomPlacementConfig holds the dual-region placement of a bucket
type CustomPlacementConfig struct {
	DataLocations []string `json:"dataLocations,omitempty"`
}

// Encryption holds the default encryption key for a bucket
type Encryption struct {
	DefaultKMSKeyName string `json:"defaultKmsKeyName,omitempty"`
}

// HierarchicalNamespace holds the folder-support toggle for a bucket
type HierarchicalNamespace struct {
	Enabled bool `json:"enabled"`
}

// IamConfiguration holds bucket-wide access policy settings
type IamConfiguration struct {
	PublicAccessPrevention   string                    `json:"publicAccessPrevention,omitempty"`
	UniformBucketLevelAccess *UniformBucketLevelAccess `json:"uniformBucketLevelAccess,omitempty"`
}

// UniformBucketLevelAccess disables per-object ACLs when enabled
type UniformBucketLevelAccess struct {
	Enabled    bool      `json:"enabled"`
	LockedTime time.Time `json:"lockedTime,omitempty"`
}

// Lifecycle holds the object lifecycle rules of a bucket
type Lifecycle struct {
	Rule []LifecycleRule `json:"rule,omitempty"`
}

// LifecycleRule pairs a lifecycle action with its firing condition
type LifecycleRule struct {
	Action    LifecycleAction    `json:"action"`
	Condition LifecycleCondition `json:"condition"`
}

// LifecycleAction is what happens when a lifecycle condition is met
type LifecycleAction struct {
	Type         string `json:"type,omitempty"`
	StorageClass string `json:"storageClass,omitempty"`
}

// LifecycleCondition gates a lifecycle action
type LifecycleCondition struct {
	Age                 *int64   `json:"age,omitempty"`
	CreatedBefore       string   `json:"createdBefore,omitempty"`
	IsLive              *bool    `json:"isLive,omitempty"`
	MatchesStorageClass []string `json:"matchesStorageClass,omitempty"`
	NumNewerVersions    *int64   `json:"numNewerVersions,omitempty"`
}

// Logging holds usage-log routing for a bucket
type Logging struct {
	LogBucket       string `json:"logBucket,omitempty"`
	LogObjectPrefix string `json:"logObjectPrefix,omitempty"`
}

// RetentionPolicy holds the minimum retention period for objects in a bucket
type RetentionPolicy struct {
	RetentionPeriod int64     `json:"retentionPeriod,omitempty,string"`
	EffectiveTime   time.Time `json:"effectiveTime,omitempty"`
	IsLocked        bool      `json:"isLocked,omitempty"`
}

// SoftDeletePolicy holds the soft-delete retention settings of a bucket
type SoftDeletePolicy struct {
	RetentionDurationSeconds int64     `json:"retentionDurationSeconds,omitempty,string"`
	EffectiveTime            time.Time `json:"effectiveTime,omitempty"`
}

// Versioning holds the object versioning toggle of a bucket
type Versioning struct {
	Enabled bool `json:"enabled"`
}

// Website holds static-website serving settings for a bucket
type Website struct {
	MainPageSuffix string `json:"mainPageSuffix,omitempty"`
	NotFoundPage   string `json:"notFoundPage,omitempty"`
}
