package bookkeeping

import "fmt"

// A year is described as a list of groupings (periods). A grouping is
// either written inline in the document or referenced as an external
// source that, once loaded, yields another grouping. References may chain;
// the resolver follows them depth-first and rejects cycles.

// Grouping is a node of the period tree: either Inlined or SourceRef.
type Grouping interface {
	grouping()
}

// Inlined is a named list of transfers declared in place.
type Inlined struct {
	Name      string
	Transfers []Transfer
}

// SourceRef references an external source (typically a file path relative
// to the document) that resolves to another grouping.
type SourceRef struct {
	Ref string
}

func (Inlined) grouping()   {}
func (SourceRef) grouping() {}

// Loader is the injected capability that turns a source reference into a
// grouping. Implementations live outside the core; its failures are
// wrapped as UnresolvableSourceError and never retried.
type Loader interface {
	Load(ref string) (Grouping, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ref string) (Grouping, error)

func (f LoaderFunc) Load(ref string) (Grouping, error) { return f(ref) }

// Resolve flattens a list of grouping nodes into resolved inline groupings,
// in declaration order, depth-first. Each transfer is tagged with the name
// of the grouping it came from, for error reporting.
//
// Cycles are detected on the active resolution path only, never with a
// global cache: two sibling references to the same source are legitimate
// reuse, a reference revisited while still being resolved is a cycle.
// Resolved grouping names must be unique across the whole document.
func Resolve(nodes []Grouping, loader Loader) ([]Inlined, error) {
	seen := make(map[string]bool)
	resolved := make([]Inlined, 0, len(nodes))
	for _, node := range nodes {
		grouping, err := resolve(node, loader, nil)
		if err != nil {
			return nil, err
		}
		if seen[grouping.Name] {
			return nil, &DuplicateGroupingError{Name: grouping.Name}
		}
		seen[grouping.Name] = true
		resolved = append(resolved, grouping)
	}
	return resolved, nil
}

// resolve follows one node down to its inline grouping. path holds the
// source references currently being resolved, outermost first.
func resolve(node Grouping, loader Loader, path []string) (Inlined, error) {
	switch v := node.(type) {
	case Inlined:
		// Tag transfers with their provenance.
		for i := range v.Transfers {
			v.Transfers[i].source = v.Name
		}
		return v, nil
	case SourceRef:
		for _, ref := range path {
			if ref == v.Ref {
				return Inlined{}, &CyclicReferenceError{Chain: append(append([]string{}, path...), v.Ref)}
			}
		}
		loaded, err := loader.Load(v.Ref)
		if err != nil {
			return Inlined{}, &UnresolvableSourceError{Ref: v.Ref, Err: err}
		}
		return resolve(loaded, loader, append(path, v.Ref))
	default:
		return Inlined{}, fmt.Errorf("unsupported grouping node type %T", node)
	}
}
