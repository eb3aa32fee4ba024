package metadata

import (
	"go.uber.org/zap"

	"github.com/oneconcern/metapatch/pkg/acl"
	"github.com/oneconcern/metapatch/pkg/model"
	"github.com/oneconcern/metapatch/pkg/request"
)

// UpdateBucket resolves a sparse patch against bucket metadata,
// mutating the working copy in place. The bucket is left untouched for
// every field the patch does not mention. Override documents are read
// through the updater's loader; ACL and label changes reconcile against
// one snapshot of the existing lists.
func (u *Updater) UpdateBucket(bucket *model.Bucket, patch *request.BucketPatch) error {
	if patch == nil {
		return nil
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	u.l.Debug("updating bucket metadata", zap.String("bucket", bucket.Name))

	if patch.EnableAutoclass != nil || patch.AutoclassTerminalStorageClass != nil {
		bucket.Autoclass = processAutoclass(patch.EnableAutoclass, patch.AutoclassTerminalStorageClass)
	}
	if patch.EnableHierarchicalNamespace != nil {
		bucket.HierarchicalNamespace = processHierarchicalNamespace(*patch.EnableHierarchicalNamespace)
	}

	if path, ok := patch.CORSFilePath.Value(); ok {
		entries, err := u.loader.CORS(path)
		if err != nil {
			return err
		}
		bucket.CORS = entries
	} else if patch.CORSFilePath.IsClear() {
		bucket.CORS = nil
	}

	if key, ok := patch.DefaultEncryptionKey.Value(); ok {
		bucket.Encryption = processDefaultEncryptionKey(key)
	} else if patch.DefaultEncryptionKey.IsClear() {
		bucket.Encryption = nil
	}

	if patch.DefaultEventBasedHold != nil {
		hold := *patch.DefaultEventBasedHold
		bucket.DefaultEventBasedHold = &hold
	}

	if class, ok := patch.DefaultStorageClass.Value(); ok {
		canonical := processDefaultStorageClass(class)
		bucket.StorageClass = &canonical
	} else if patch.DefaultStorageClass.IsClear() {
		bucket.StorageClass = nil
	}

	if path, ok := patch.LifecycleFilePath.Value(); ok {
		lifecycle, err := u.loader.Lifecycle(path)
		if err != nil {
			return err
		}
		bucket.Lifecycle = lifecycle
	} else if patch.LifecycleFilePath.IsClear() {
		bucket.Lifecycle = nil
	}

	if patch.Location != nil {
		location := *patch.Location
		bucket.Location = &location
	}

	if !patch.LogBucket.IsUnset() || !patch.LogObjectPrefix.IsUnset() {
		bucket.Logging = processLogConfig(bucket.Logging, bucket.Name, patch.LogBucket, patch.LogObjectPrefix)
	}

	if patch.Placement != nil {
		bucket.CustomPlacementConfig = processPlacement(patch.Placement)
	}

	if !patch.PublicAccessPrevention.IsUnset() || patch.UniformBucketLevelAccess != nil {
		// the IAM policy with role grants is stored separately and has its own API
		bucket.IamConfiguration = processIamConfiguration(bucket.IamConfiguration,
			patch.PublicAccessPrevention, patch.UniformBucketLevelAccess)
	}

	if patch.RecoveryPointObjective != nil {
		rpo := *patch.RecoveryPointObjective
		bucket.RPO = &rpo
	}
	if patch.RequesterPays != nil {
		bucket.Billing = processRequesterPays(bucket.Billing, *patch.RequesterPays)
	}

	if period, ok := patch.RetentionPeriod.Value(); ok {
		bucket.RetentionPolicy = processRetentionPeriod(period)
	} else if patch.RetentionPeriod.IsClear() {
		bucket.RetentionPolicy = nil
	}
	if duration, ok := patch.SoftDeleteDuration.Value(); ok {
		bucket.SoftDeletePolicy = processSoftDeleteDuration(duration)
	} else if patch.SoftDeleteDuration.IsClear() {
		bucket.SoftDeletePolicy = nil
	}

	if patch.Versioning != nil {
		bucket.Versioning = processVersioning(*patch.Versioning)
	}
	if !patch.WebErrorPage.IsUnset() || !patch.WebMainPageSuffix.IsUnset() {
		bucket.Website = processWebsite(bucket.Website, patch.WebErrorPage, patch.WebMainPageSuffix)
	}

	if patch.ACLFilePath != nil {
		grants, err := u.loader.Grants(*patch.ACLFilePath)
		if err != nil {
			return err
		}
		bucket.ACL = grants
	}
	reconciled, err := acl.Reconcile(bucket.ACL, patch.ACLGrantsToRemove, patch.ACLGrantsToAdd, u.matcher)
	if err != nil {
		return err
	}
	bucket.ACL = reconciled

	if patch.DefaultObjectACLFilePath != nil {
		grants, err := u.loader.Grants(*patch.DefaultObjectACLFilePath)
		if err != nil {
			return err
		}
		if len(grants) == 0 {
			// an empty override asks for a private default object ACL; an
			// empty list on the wire would read as "don't modify"
			grants = []*model.Grant{model.PrivateDefaultObjectACL()}
		}
		bucket.DefaultObjectACL = grants
	}
	reconciled, err = acl.Reconcile(bucket.DefaultObjectACL,
		patch.DefaultObjectACLGrantsToRemove, patch.DefaultObjectACLGrantsToAdd, u.matcher)
	if err != nil {
		return err
	}
	bucket.DefaultObjectACL = reconciled

	if path, ok := patch.LabelsFilePath.Value(); ok {
		labels, err := u.loader.Labels(path)
		if err != nil {
			return err
		}
		bucket.Labels = asTombstoneMap(labels)
	} else if patch.LabelsFilePath.IsClear() {
		bucket.Labels = nil
	}
	// labels can still be added after a clear
	bucket.Labels = reconcileLabels(bucket.Labels, patch.LabelsToRemove, patch.LabelsToAppend)

	return nil
}
