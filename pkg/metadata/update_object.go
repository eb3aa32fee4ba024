package metadata

import (
	"go.uber.org/zap"

	"github.com/oneconcern/metapatch/pkg/acl"
	"github.com/oneconcern/metapatch/pkg/field"
	"github.com/oneconcern/metapatch/pkg/model"
	"github.com/oneconcern/metapatch/pkg/request"
)

// UpdateObject resolves a sparse patch against object metadata,
// mutating the working copy in place. gzipLocally reports that the
// payload is compressed by this client before upload: derived
// cache-control and content-encoding values then take precedence over
// user-supplied ones.
func (u *Updater) UpdateObject(object *model.Object, patch *request.ObjectPatch, gzipLocally bool) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	u.l.Debug("updating object metadata",
		zap.String("bucket", object.Bucket),
		zap.String("object", object.Name),
		zap.Bool("gzip_locally", gzipLocally))

	// derived fields resolve even without a patch: local compression
	// alone forces cache-control and content-encoding onto the object
	var userCacheControl, userContentEncoding field.Field[string]
	if patch != nil {
		userCacheControl = patch.CacheControl
		userContentEncoding = patch.ContentEncoding
	}
	CacheControl(gzipLocally, userCacheControl).Apply(&object.CacheControl)
	ContentEncoding(gzipLocally, userContentEncoding).Apply(&object.ContentEncoding)

	if patch == nil {
		return nil
	}

	object.Metadata = reconcileLabels(object.Metadata, patch.CustomFieldsToRemove, patch.CustomFieldsToSet)

	if key, ok := patch.EncryptionKey.Value(); ok {
		switch key.Type {
		case request.CSEK:
			// the customer-supplied key travels in request headers, not metadata
			object.KMSKeyName = nil
			object.CustomerEncryption = nil
		case request.CMEK:
			kmsKey := key.Key
			object.KMSKeyName = &kmsKey
		}
	} else if patch.EncryptionKey.IsClear() {
		object.KMSKeyName = nil
		object.CustomerEncryption = nil
	}

	patch.ContentDisposition.Apply(&object.ContentDisposition)
	patch.ContentLanguage.Apply(&object.ContentLanguage)
	patch.CustomTime.Apply(&object.CustomTime)
	patch.ContentType.Apply(&object.ContentType)
	patch.MD5Hash.Apply(&object.MD5Hash)
	patch.StorageClass.Apply(&object.StorageClass)

	if patch.ACLFilePath != nil {
		grants, err := u.loader.Grants(*patch.ACLFilePath)
		if err != nil {
			return err
		}
		object.ACL = grants
	}
	reconciled, err := acl.Reconcile(object.ACL, patch.ACLGrantsToRemove, patch.ACLGrantsToAdd, u.matcher)
	if err != nil {
		return err
	}
	object.ACL = reconciled

	if patch.EventBasedHold != nil {
		hold := *patch.EventBasedHold
		object.EventBasedHold = &hold
	}
	if patch.TemporaryHold != nil {
		hold := *patch.TemporaryHold
		object.TemporaryHold = &hold
	}

	object.Retention = processObjectRetention(object.Retention, patch.RetentionMode, patch.RetainUntil)

	return nil
}
