package metadata

import (
	"github.com/oneconcern/metapatch/pkg/field"
	"github.com/oneconcern/metapatch/pkg/request"
)

// ClearedBucketFields returns the wire field paths that must be
// force-included in a bucket patch despite null or empty values. The
// default serialization omits null fields, which is indistinguishable
// from "not in this request": an explicit clear must stay visible on
// the wire. The result is unioned with the normal field list by the
// serializer; this call performs no mutation.
//
// A structured sub-document (CORS, lifecycle) counts as cleared either
// on an explicit clear or when its replacement document parses to an
// empty structure, both collapsing to "send an empty object". Website
// sub-paths collapse to the parent path when both aspects clear at
// once.
func (u *Updater) ClearedBucketFields(patch *request.BucketPatch) ([]string, error) {
	if patch == nil {
		return nil, nil
	}
	var cleared []string

	emptyDocument, err := u.clearsDocument(patch.CORSFilePath)
	if err != nil {
		return nil, err
	}
	if emptyDocument {
		cleared = append(cleared, "cors")
	}

	if patch.DefaultEncryptionKey.IsClear() {
		cleared = append(cleared, "encryption")
	}
	if patch.DefaultStorageClass.IsClear() {
		cleared = append(cleared, "storageClass")
	}
	if patch.LabelsFilePath.IsClear() {
		cleared = append(cleared, "labels")
	}

	emptyDocument, err = u.clearsDocument(patch.LifecycleFilePath)
	if err != nil {
		return nil, err
	}
	if emptyDocument {
		cleared = append(cleared, "lifecycle")
	}

	if patch.LogBucket.IsClear() {
		cleared = append(cleared, "logging")
	} else if patch.LogObjectPrefix.IsClear() {
		cleared = append(cleared, "logging.logObjectPrefix")
	}

	if patch.PublicAccessPrevention.IsClear() {
		cleared = append(cleared, "iamConfiguration.publicAccessPrevention")
	}
	if patch.RetentionPeriod.IsClear() {
		cleared = append(cleared, "retentionPolicy")
	}

	switch {
	case patch.WebErrorPage.IsClear() && patch.WebMainPageSuffix.IsClear():
		// one parent path covers both children on the wire
		cleared = append(cleared, "website")
	case patch.WebErrorPage.IsClear():
		cleared = append(cleared, "website.notFoundPage")
	case patch.WebMainPageSuffix.IsClear():
		cleared = append(cleared, "website.mainPageSuffix")
	}

	return cleared, nil
}

// clearsDocument reports whether a document-backed field group ends up
// cleared: explicitly, or through a supplied document that parses to an
// empty structure
func (u *Updater) clearsDocument(path field.Field[string]) (bool, error) {
	if path.IsClear() {
		return true, nil
	}
	if value, ok := path.Value(); ok {
		return u.loader.IsEmpty(value)
	}
	return false, nil
}

// ClearedObjectFields returns the wire field paths that must be
// force-included in an object patch despite null values. Flat scalars
// count as cleared only on an explicit clear; the two retention aspects
// collapse to their parent path when either clears.
func (u *Updater) ClearedObjectFields(patch *request.ObjectPatch) []string {
	if patch == nil {
		return nil
	}
	var cleared []string

	if patch.CacheControl.IsClear() {
		cleared = append(cleared, "cacheControl")
	}
	if patch.ContentType.IsClear() {
		cleared = append(cleared, "contentType")
	}
	if patch.ContentDisposition.IsClear() {
		cleared = append(cleared, "contentDisposition")
	}
	if patch.ContentEncoding.IsClear() {
		cleared = append(cleared, "contentEncoding")
	}
	if patch.ContentLanguage.IsClear() {
		cleared = append(cleared, "contentLanguage")
	}
	if patch.CustomTime.IsClear() {
		cleared = append(cleared, "customTime")
	}
	if patch.RetainUntil.IsClear() || patch.RetentionMode.IsClear() {
		cleared = append(cleared, "retention")
	}

	return cleared
}
