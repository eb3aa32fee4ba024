package metadata

import "github.com/oneconcern/metapatch/pkg/field"

const (
	noTransform  = "no-transform"
	gzipEncoding = "gzip"
)

// CacheControl returns the effective cache-control patch field.
//
// When the payload is gzipped locally, no-transform must reach the wire
// so intermediate proxies never re-transform the already-compressed
// payload: it is appended to a user-supplied value, or stands alone
// when the user supplied none. Without local compression the user field
// passes through untouched.
func CacheControl(gzipLocally bool, user field.Field[string]) field.Field[string] {
	if !gzipLocally {
		return user
	}
	if value, ok := user.Value(); ok {
		return field.Of(value + ", " + noTransform)
	}
	return field.Of(noTransform)
}

// ContentEncoding returns the effective content-encoding patch field.
//
// Local compression is applied transparently, so it unconditionally
// overrides any user-supplied encoding with gzip. Without local
// compression the user field passes through untouched.
func ContentEncoding(gzipLocally bool, user field.Field[string]) field.Field[string] {
	if gzipLocally {
		return field.Of(gzipEncoding)
	}
	return user
}
