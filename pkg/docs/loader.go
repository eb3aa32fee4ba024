// Package docs loads metadata override documents (ACL, CORS, lifecycle
// and labels files) supplied alongside an update request.
//
// Documents may be JSON or YAML. Reads are cached per path: the same
// document is consulted both while resolving metadata and while
// collecting cleared field paths, and must parse identically in both
// places.
package docs

import (
	"sync"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cast"

	"github.com/oneconcern/metapatch/pkg/model"
	"github.com/oneconcern/metapatch/pkg/status"
)

// Loader reads and parses override documents from a filesystem
type Loader struct {
	fs    afero.Fs
	mu    sync.Mutex
	cache map[string][]byte
}

// NewLoader returns a loader reading from fs (the OS filesystem when nil)
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, cache: make(map[string][]byte)}
}

func (l *Loader) read(path string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if data, ok := l.cache[path]; ok {
		return data, nil
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, status.ErrMalformedDocument.Wrap(err)
	}
	l.cache[path] = data
	return data, nil
}

func (l *Loader) unmarshal(path string, target interface{}) error {
	data, err := l.read(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return status.ErrMalformedDocument.Wrap(err)
	}
	return nil
}

// Grants parses an ACL override document: a list of grants
func (l *Loader) Grants(path string) ([]*model.Grant, error) {
	var grants []*model.Grant
	if err := l.unmarshal(path, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

// CORS parses a CORS override document: a list of CORS rules
func (l *Loader) CORS(path string) ([]model.CORSEntry, error) {
	var entries []model.CORSEntry
	if err := l.unmarshal(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Lifecycle parses a lifecycle override document. Both a bare rule list
// and a full {"rule": [...]} document are accepted.
func (l *Loader) Lifecycle(path string) (*model.Lifecycle, error) {
	var rules []model.LifecycleRule
	if err := l.unmarshal(path, &rules); err == nil {
		return &model.Lifecycle{Rule: rules}, nil
	}
	var lifecycle model.Lifecycle
	if err := l.unmarshal(path, &lifecycle); err != nil {
		return nil, err
	}
	return &lifecycle, nil
}

// Labels parses a labels override document: a flat string-to-string map
func (l *Loader) Labels(path string) (map[string]string, error) {
	var doc interface{}
	if err := l.unmarshal(path, &doc); err != nil {
		return nil, err
	}
	labels, err := cast.ToStringMapStringE(doc)
	if err != nil {
		return nil, status.ErrMalformedDocument.Wrap(err)
	}
	return labels, nil
}

// IsEmpty reports whether the document parses to an empty structure
// (empty list or object, or null). An explicitly empty document has the
// same wire meaning as a clear request.
func (l *Loader) IsEmpty(path string) (bool, error) {
	var doc interface{}
	if err := l.unmarshal(path, &doc); err != nil {
		return false, err
	}
	switch v := doc.(type) {
	case nil:
		return true, nil
	case []interface{}:
		return len(v) == 0, nil
	case map[string]interface{}:
		return len(v) == 0, nil
	default:
		return false, nil
	}
}
