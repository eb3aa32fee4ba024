package metadata

import (
	"github.com/oneconcern/metapatch/pkg/model"
	"github.com/oneconcern/metapatch/pkg/request"
	"github.com/oneconcern/metapatch/pkg/status"
)

// CopyObject carries metadata from a source object onto a destination
// and returns the destination. The backend generates most destination
// metadata itself; this fills in the fields it does not.
//
// In shallow mode the content fields (cache-control, content type and
// friends, hashes, custom metadata) are copied, and ACLs only when the
// patch explicitly asks to preserve them; preserving fails with
// status.ErrPreserveACL when the source has none. In deep mode the
// whole source is cloned, the destination address is kept, and fields
// the backend must regenerate (generation, id) are reset; an explicit
// preserve-ACL refusal empties the copied ACL.
func CopyObject(source, destination *model.Object, patch *request.ObjectPatch, deepCopy bool) (*model.Object, error) {
	var preserveACL *bool
	if patch != nil {
		preserveACL = patch.PreserveACL
	}

	if deepCopy {
		bucket, name := destination.Bucket, destination.Name
		destination = source.Clone()
		destination.Bucket = bucket
		destination.Name = name
		destination.Generation = 0
		destination.ID = ""
		if preserveACL != nil && !*preserveACL {
			destination.ACL = nil
		}
		return destination, nil
	}

	if preserveACL != nil && *preserveACL {
		if len(source.ACL) == 0 {
			return nil, status.ErrPreserveACL
		}
		destination.ACL = model.CloneGrants(source.ACL)
	}
	destination.CacheControl = source.CacheControl
	destination.ContentDisposition = source.ContentDisposition
	destination.ContentEncoding = source.ContentEncoding
	destination.ContentLanguage = source.ContentLanguage
	destination.ContentType = source.ContentType
	destination.CRC32C = source.CRC32C
	destination.CustomTime = source.CustomTime
	destination.MD5Hash = source.MD5Hash
	destination.Metadata = cloneMetadata(source.Metadata)

	return destination, nil
}

func cloneMetadata(metadata map[string]*string) map[string]*string {
	if metadata == nil {
		return nil
	}
	clone := make(map[string]*string, len(metadata))
	for key, value := range metadata {
		if value == nil {
			clone[key] = nil
			continue
		}
		v := *value
		clone[key] = &v
	}
	return clone
}
