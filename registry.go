package tiffcore

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vadz/gotiffcore/tifferr"
)

// AnyType is the wildcard Type passed to registry lookups that don't care
// which of a tag's permitted on-disk types is present.
const AnyType Type = 0

// CountKind is the read/write-count vocabulary: fixed, per-sample,
// variable, variable-large, or "any".
type CountKind uint8

const (
	// CountFixed requires exactly N elements (N carried in FieldCount.N).
	CountFixed CountKind = iota
	// CountPerSample requires exactly SamplesPerPixel elements.
	CountPerSample
	// CountVariable permits any count up to the ordinary per-tag size
	// cap.
	CountVariable
	// CountVariableLarge permits any count; used for tags like
	// StripOffsets whose legitimate size routinely exceeds the ordinary
	// cap.
	CountVariableLarge
	// CountAny imposes no count constraint at all (anonymous tags).
	CountAny
)

// FieldCount describes one of the read-count/write-count vocabularies
// attached to a Descriptor.
type FieldCount struct {
	Kind CountKind
	N    uint32 // meaningful only when Kind == CountFixed
}

// Fixed builds a CountFixed FieldCount.
func Fixed(n uint32) FieldCount { return FieldCount{Kind: CountFixed, N: n} }

// PerSample builds a CountPerSample FieldCount.
func PerSample() FieldCount { return FieldCount{Kind: CountPerSample} }

// Variable builds a CountVariable FieldCount.
func Variable() FieldCount { return FieldCount{Kind: CountVariable} }

// VariableLarge builds a CountVariableLarge FieldCount.
func VariableLarge() FieldCount { return FieldCount{Kind: CountVariableLarge} }

// Any builds a CountAny FieldCount.
func Any() FieldCount { return FieldCount{Kind: CountAny} }

// Check reports whether count satisfies fc, given the image's current
// SamplesPerPixel (needed only for CountPerSample).
func (fc FieldCount) Check(count uint64, samplesPerPixel uint16) bool {
	switch fc.Kind {
	case CountFixed:
		return count == uint64(fc.N)
	case CountPerSample:
		return count == uint64(samplesPerPixel)
	case CountVariable, CountVariableLarge, CountAny:
		return true
	default:
		return false
	}
}

// CustomBit is the sentinel Descriptor.Bit value for tags that are not one
// of the directory model's well-known struct fields — they are stored in
// the custom-tag list instead.
const CustomBit = -1

// Descriptor is one field descriptor: a tag's id, name, permitted
// primitive type, read/write count vocabulary, "set" bit position (or
// CustomBit), mutability, and whether the caller supplies an explicit
// count.
type Descriptor struct {
	Tag           Tag
	Name          string
	Type          Type
	ReadCount     FieldCount
	WriteCount    FieldCount
	Bit           int
	OkToChange    bool
	ExplicitCount bool
	anonymous     bool
}

// IsAnonymous reports whether d was synthesized by FindOrRegisterAnon
// rather than supplied through Register.
func (d *Descriptor) IsAnonymous() bool {
	return d.anonymous
}

// Registry is a per-handle sorted table of field descriptors. It is
// never process-global: each file handle owns one, and codec extension
// tables are merged into it only for the handle they were bound to.
type Registry struct {
	mu      sync.Mutex
	entries []Descriptor
	lastHit *Descriptor
}

// NewRegistry returns an empty registry. Callers typically call
// Register(BuiltinTIFFFields) immediately afterwards.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewTIFFRegistry returns a registry pre-populated with the built-in TIFF
// 6.0 + Supplement field table (BuiltinTIFFFields).
func NewTIFFRegistry() *Registry {
	r := NewRegistry()
	r.Register(BuiltinTIFFFields)
	return r
}

// Register merges a table of descriptors into the registry, then re-sorts
// the whole registry by tag id. Used both for the initial built-in table
// and for per-codec extension tables bound at runtime.
func (r *Registry) Register(table []Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, table...)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Tag < r.entries[j].Tag
	})
	r.lastHit = nil
}

// FindByTag looks up a descriptor by tag id and on-disk type. When
// typ == AnyType it returns the first (canonical) descriptor for id. When
// several descriptors share id, the one whose Type exactly matches typ
// wins; otherwise the first (canonical) descriptor wins. A single-slot
// cache of the last hit is consulted first.
func (r *Registry) FindByTag(id Tag, typ Type) (*Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastHit != nil && r.lastHit.Tag == id && (typ == AnyType || r.lastHit.Type == typ) {
		return r.lastHit, true
	}
	lo, hi := 0, len(r.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if r.entries[mid].Tag < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(r.entries) || r.entries[lo].Tag != id {
		return nil, false
	}
	var canonical *Descriptor
	for i := lo; i < len(r.entries) && r.entries[i].Tag == id; i++ {
		d := &r.entries[i]
		if canonical == nil {
			canonical = d
		}
		if typ != AnyType && d.Type == typ {
			r.lastHit = d
			return d, true
		}
	}
	if typ == AnyType {
		r.lastHit = canonical
		return canonical, true
	}
	// No exact type match: the canonical (first) descriptor still wins
	// per the tie-break rule, leaving the caller to decide whether the
	// type mismatch is fatal.
	r.lastHit = canonical
	return canonical, true
}

// FindByName performs a linear search by tag name; the registry is small
// enough that names are not separately indexed. typ == AnyType matches
// any type.
func (r *Registry) FindByName(name string, typ Type) (*Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		d := &r.entries[i]
		if d.Name == name && (typ == AnyType || d.Type == typ) {
			return d, true
		}
	}
	return nil, false
}

// FindOrRegisterAnon returns the descriptor for (id, typ), dynamically
// registering a freshly constructed custom descriptor if none exists: a
// synthesized name "Tag <id>", Any read/write counts, ExplicitCount (the
// count comes from the caller, not the descriptor), and CustomBit. The
// count argument is not stored on the descriptor.
func (r *Registry) FindOrRegisterAnon(id Tag, typ Type, count uint64) *Descriptor {
	if d, ok := r.FindByTag(id, typ); ok && (typ == AnyType || d.Type == typ) {
		return d
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	d := Descriptor{
		Tag:           id,
		Name:          fmt.Sprintf("Tag %d", id),
		Type:          typ,
		ReadCount:     Any(),
		WriteCount:    Any(),
		Bit:           CustomBit,
		OkToChange:    true,
		ExplicitCount: true,
		anonymous:     true,
	}
	r.entries = append(r.entries, d)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Tag < r.entries[j].Tag
	})
	r.lastHit = nil
	for i := range r.entries {
		if r.entries[i].Tag == id && r.entries[i].anonymous {
			return &r.entries[i]
		}
	}
	return &d
}

// PruneAnonymous removes every descriptor synthesized by
// FindOrRegisterAnon, identified by the "Tag " name prefix. Codecs and
// callers that want a clean slate between files without discarding the
// built-in/extension tables call this instead of allocating a new
// Registry.
func (r *Registry) PruneAnonymous() {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, d := range r.entries {
		if d.anonymous && strings.HasPrefix(d.Name, "Tag ") {
			continue
		}
		kept = append(kept, d)
	}
	r.entries = kept
	r.lastHit = nil
}

// Len reports the number of descriptors currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func newUnknownTagError(op string, tag Tag) *tifferr.Error {
	return tifferr.New(op, tifferr.Unknown).WithTag(uint16(tag), tag.Name())
}
