// Package request describes sparse user intent against a storage
// resource's metadata: for every scalar, either leave it untouched,
// set it, or explicitly clear it; for ACLs and labels, sets of
// identifiers to remove plus entries to add.
package request

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/oneconcern/metapatch/pkg/acl"
	"github.com/oneconcern/metapatch/pkg/field"
	"github.com/oneconcern/metapatch/pkg/status"
)

// KeyType discriminates encryption key intent
type KeyType string

const (
	// CMEK is a customer-managed key held by the cloud KMS
	CMEK KeyType = "CMEK"

	// CSEK is a customer-supplied key sent with each request
	CSEK KeyType = "CSEK"
)

// EncryptionKey carries the requested encryption key for an object
type EncryptionKey struct {
	Type KeyType
	Key  string
}

// BucketPatch is the sparse update intent for a bucket.
//
// A remove set and its matching add set are processed together against
// one snapshot of the existing list: added entries are not candidates
// for removal in the same call.
type BucketPatch struct {
	CORSFilePath                  field.Field[string]
	DefaultEncryptionKey          field.Field[string]
	DefaultEventBasedHold         *bool
	DefaultStorageClass           field.Field[string]
	EnableAutoclass               *bool
	AutoclassTerminalStorageClass *string
	EnableHierarchicalNamespace   *bool
	LabelsFilePath                field.Field[string]
	LifecycleFilePath             field.Field[string]
	Location                      *string
	LogBucket                     field.Field[string]
	LogObjectPrefix               field.Field[string]
	Placement                     []string
	PublicAccessPrevention        field.Field[string]
	RecoveryPointObjective        *string
	RequesterPays                 *bool
	RetentionPeriod               field.Field[int64]
	SoftDeleteDuration            field.Field[int64]
	UniformBucketLevelAccess      *bool
	Versioning                    *bool
	WebErrorPage                  field.Field[string]
	WebMainPageSuffix             field.Field[string]

	ACLFilePath       *string
	ACLGrantsToAdd    []acl.Change
	ACLGrantsToRemove []string

	DefaultObjectACLFilePath       *string
	DefaultObjectACLGrantsToAdd    []acl.Change
	DefaultObjectACLGrantsToRemove []string

	LabelsToAppend map[string]string
	LabelsToRemove []string
}

// Validate reports every problem with the patch, aggregated
func (p *BucketPatch) Validate() error {
	if p == nil {
		return nil
	}
	var err error
	err = multierr.Append(err, validateChanges("acl", p.ACLGrantsToAdd))
	err = multierr.Append(err, validateChanges("default object acl", p.DefaultObjectACLGrantsToAdd))
	if period, ok := p.RetentionPeriod.Value(); ok && period < 0 {
		err = multierr.Append(err, fmt.Errorf("retention period must not be negative: %d", period))
	}
	if duration, ok := p.SoftDeleteDuration.Value(); ok && duration < 0 {
		err = multierr.Append(err, fmt.Errorf("soft delete duration must not be negative: %d", duration))
	}
	if err != nil {
		return status.ErrInvalidPatch.Wrap(err)
	}
	return nil
}

// ObjectPatch is the sparse update intent for an object
type ObjectPatch struct {
	CacheControl       field.Field[string]
	ContentDisposition field.Field[string]
	ContentEncoding    field.Field[string]
	ContentLanguage    field.Field[string]
	ContentType        field.Field[string]
	CustomTime         field.Field[string]
	MD5Hash            field.Field[string]
	StorageClass       field.Field[string]

	EventBasedHold *bool
	TemporaryHold  *bool

	RetainUntil   field.Field[time.Time]
	RetentionMode field.Field[string]

	EncryptionKey field.Field[EncryptionKey]

	ACLFilePath       *string
	ACLGrantsToAdd    []acl.Change
	ACLGrantsToRemove []string

	// PreserveACL requests source ACLs to be carried over on copy
	PreserveACL *bool

	CustomFieldsToSet    map[string]string
	CustomFieldsToRemove []string
}

// Validate reports every problem with the patch, aggregated
func (p *ObjectPatch) Validate() error {
	if p == nil {
		return nil
	}
	var err error
	err = multierr.Append(err, validateChanges("acl", p.ACLGrantsToAdd))
	if key, ok := p.EncryptionKey.Value(); ok {
		if key.Type != CMEK && key.Type != CSEK {
			err = multierr.Append(err, fmt.Errorf("unknown encryption key type: %q", key.Type))
		}
	}
	if err != nil {
		return status.ErrInvalidPatch.Wrap(err)
	}
	return nil
}

func validateChanges(kind string, changes []acl.Change) error {
	var err error
	for _, change := range changes {
		if change.Entity == "" {
			err = multierr.Append(err, fmt.Errorf("%s grant to add is missing an entity", kind))
		}
		if change.Role == "" {
			err = multierr.Append(err, fmt.Errorf("%s grant to add for %q is missing a role", kind, change.Entity))
		}
	}
	return err
}
