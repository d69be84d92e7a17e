package bookkeeping

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirLoader loads grouping sources as files resolved relative to a
// directory, typically the directory of the document that references them.
type DirLoader struct {
	Dir string
}

// Load opens and decodes the referenced grouping file. A reference may
// itself be another reference; the resolver follows the chain.
func (l DirLoader) Load(ref string) (Grouping, error) {
	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, ref)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeGrouping(f)
}

// LoadDocument opens and decodes a document file.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open document %q: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode document %q: %w", path, err)
	}
	if doc.Name == "" {
		// use the file name as a default
		doc.Name = filepath.Base(path)
	}
	return doc, nil
}

// DocumentLoader returns the loader resolving a document's external
// grouping references relative to the document's own directory.
func DocumentLoader(path string) Loader {
	return DirLoader{Dir: filepath.Dir(path)}
}
