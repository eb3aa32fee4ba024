package model

import "time"

// Object is the mutable metadata record for a storage object
type Object struct {
	Name           string    `json:"name,omitempty"`
	Bucket         string    `json:"bucket,omitempty"`
	ID             string    `json:"id,omitempty"`
	Etag           string    `json:"etag,omitempty"`
	Generation     int64     `json:"generation,omitempty,string"`
	Metageneration int64     `json:"metageneration,omitempty,string"`
	Size           int64     `json:"size,omitempty,string"`
	TimeCreated    time.Time `json:"timeCreated,omitempty"`
	Updated        time.Time `json:"updated,omitempty"`

	CacheControl       *string `json:"cacheControl,omitempty"`
	ContentDisposition *string `json:"contentDisposition,omitempty"`
	ContentEncoding    *string `json:"contentEncoding,omitempty"`
	ContentLanguage    *string `json:"contentLanguage,omitempty"`
	ContentType        *string `json:"contentType,omitempty"`
	CustomTime         *string `json:"customTime,omitempty"`
	StorageClass       *string `json:"storageClass,omitempty"`
	CRC32C             *string `json:"crc32c,omitempty"`
	MD5Hash            *string `json:"md5Hash,omitempty"`

	ACL      []*Grant           `json:"acl,omitempty"`
	Metadata map[string]*string `json:"metadata,omitempty"`

	KMSKeyName         *string             `json:"kmsKeyName,omitempty"`
	CustomerEncryption *CustomerEncryption `json:"customerEncryption,omitempty"`

	EventBasedHold *bool            `json:"eventBasedHold,omitempty"`
	TemporaryHold  *bool            `json:"temporaryHold,omitempty"`
	Retention      *ObjectRetention `json:"retention,omitempty"`
}

// NewObject returns a fresh metadata record addressing an object,
// optionally pinned to a generation (0 means unversioned addressing)
func NewObject(bucket, name string, generation int64) *Object {
	return &Object{Bucket: bucket, Name: name, Generation: generation}
}

// CustomerEncryption describes the customer-supplied key an object is encrypted with
type CustomerEncryption struct {
	EncryptionAlgorithm string `json:"encryptionAlgorithm,omitempty"`
	KeySha256           string `json:"keySha256,omitempty"`
}

// ObjectRetention holds per-object retention settings
type ObjectRetention struct {
	Mode            string    `json:"mode,omitempty"`
	RetainUntilTime time.Time `json:"retainUntilTime,omitempty"`
}

// Clone returns a deep copy of the object metadata
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	clone := *o
	clone.ACL = CloneGrants(o.ACL)
	clone.Metadata = cloneStringPtrMap(o.Metadata)
	clone.CacheControl = clonePtr(o.CacheControl)
	clone.ContentDisposition = clonePtr(o.ContentDisposition)
	clone.ContentEncoding = clonePtr(o.ContentEncoding)
	clone.ContentLanguage = clonePtr(o.ContentLanguage)
	clone.ContentType = clonePtr(o.ContentType)
	clone.CustomTime = clonePtr(o.CustomTime)
	clone.StorageClass = clonePtr(o.StorageClass)
	clone.CRC32C = clonePtr(o.CRC32C)
	clone.MD5Hash = clonePtr(o.MD5Hash)
	clone.KMSKeyName = clonePtr(o.KMSKeyName)
	clone.EventBasedHold = clonePtr(o.EventBasedHold)
	clone.TemporaryHold = clonePtr(o.TemporaryHold)
	if o.CustomerEncryption != nil {
		enc := *o.CustomerEncryption
		clone.CustomerEncryption = &enc
	}
	if o.Retention != nil {
		ret := *o.Retention
		clone.Retention = &ret
	}
	return &clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtrMap(m map[string]*string) map[string]*string {
	if m == nil {
		return nil
	}
	clone := make(map[string]*string, len(m))
	for k, v := range m {
		clone[k] = clonePtr(v)
	}
	return clone
}
