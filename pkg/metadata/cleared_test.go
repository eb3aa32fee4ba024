package metadata

import (
	"testing"
	"time"

	"github.com/oneconcern/metapatch/pkg/errors"
	"github.com/oneconcern/metapatch/pkg/field"
	"github.com/oneconcern/metapatch/pkg/request"
	"github.com/oneconcern/metapatch/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearedBucketFields(t *testing.T) {
	fs := memFS(t, map[string]string{
		"empty.json":  `[]`,
		"cors.json":   `[{"maxAgeSeconds": 60}]`,
		"broken.json": `{oops`,
	})
	u := New(WithFS(fs))

	t.Run("nil patch clears nothing", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(nil)
		require.NoError(t, err)
		assert.Empty(t, cleared)
	})

	t.Run("explicit clears", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{
			CORSFilePath:           field.Clear[string](),
			DefaultEncryptionKey:   field.Clear[string](),
			DefaultStorageClass:    field.Clear[string](),
			LabelsFilePath:         field.Clear[string](),
			LifecycleFilePath:      field.Clear[string](),
			PublicAccessPrevention: field.Clear[string](),
			RetentionPeriod:        field.Clear[int64](),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"cors", "encryption", "storageClass", "labels", "lifecycle",
			"iamConfiguration.publicAccessPrevention", "retentionPolicy",
		}, cleared)
	})

	t.Run("document parsing to empty counts as cleared", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{
			CORSFilePath: field.Of("empty.json"),
		})
		require.NoError(t, err)
		assert.Contains(t, cleared, "cors")
	})

	t.Run("document with content does not clear", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{
			CORSFilePath: field.Of("cors.json"),
		})
		require.NoError(t, err)
		assert.NotContains(t, cleared, "cors")
	})

	t.Run("no document input at all does not clear", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{})
		require.NoError(t, err)
		assert.NotContains(t, cleared, "cors")
	})

	t.Run("malformed document surfaces the document error", func(t *testing.T) {
		_, err := u.ClearedBucketFields(&request.BucketPatch{
			CORSFilePath: field.Of("broken.json"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrMalformedDocument))
	})

	t.Run("logging prefers the parent path", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{
			LogBucket:       field.Clear[string](),
			LogObjectPrefix: field.Clear[string](),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"logging"}, cleared)

		cleared, err = u.ClearedBucketFields(&request.BucketPatch{
			LogObjectPrefix: field.Clear[string](),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"logging.logObjectPrefix"}, cleared)
	})

	t.Run("website emits the parent path only when both aspects clear", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{
			WebErrorPage:      field.Clear[string](),
			WebMainPageSuffix: field.Clear[string](),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"website"}, cleared)

		cleared, err = u.ClearedBucketFields(&request.BucketPatch{
			WebErrorPage: field.Clear[string](),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"website.notFoundPage"}, cleared)

		cleared, err = u.ClearedBucketFields(&request.BucketPatch{
			WebMainPageSuffix: field.Clear[string](),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"website.mainPageSuffix"}, cleared)
	})

	t.Run("set values do not clear", func(t *testing.T) {
		cleared, err := u.ClearedBucketFields(&request.BucketPatch{
			DefaultStorageClass: field.Of("NEARLINE"),
			WebErrorPage:        field.Of("404.html"),
		})
		require.NoError(t, err)
		assert.Empty(t, cleared)
	})
}

func TestClearedObjectFields(t *testing.T) {
	u := New()

	assert.Empty(t, u.ClearedObjectFields(nil))
	assert.Empty(t, u.ClearedObjectFields(&request.ObjectPatch{
		ContentType: field.Of("text/plain"),
	}))

	cleared := u.ClearedObjectFields(&request.ObjectPatch{
		CacheControl:       field.Clear[string](),
		ContentType:        field.Clear[string](),
		ContentDisposition: field.Clear[string](),
		ContentEncoding:    field.Clear[string](),
		ContentLanguage:    field.Clear[string](),
		CustomTime:         field.Clear[string](),
	})
	assert.Equal(t, []string{
		"cacheControl", "contentType", "contentDisposition",
		"contentEncoding", "contentLanguage", "customTime",
	}, cleared)

	// either retention aspect clearing collapses to the parent path
	cleared = u.ClearedObjectFields(&request.ObjectPatch{
		RetainUntil: field.Clear[time.Time](),
	})
	assert.Equal(t, []string{"retention"}, cleared)

	cleared = u.ClearedObjectFields(&request.ObjectPatch{
		RetentionMode: field.Clear[string](),
	})
	assert.Equal(t, []string{"retention"}, cleared)
}
