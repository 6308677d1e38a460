package quadview

import (
	"fmt"
	"strings"
)

// pathSeparator joins quadrant indices in the canonical string form and in
// derived resource keys.
const pathSeparator = "_"

// Path is a navigation route from the root tile: an ordered sequence of
// quadrant indices, one per zoom level. The zero value is the root path.
//
// Paths are value-like: Append and Pop return new paths and never alias the
// receiver's backing array.
type Path []Quadrant

// IsRoot reports whether the path is empty (the root tile).
func (p Path) IsRoot() bool { return len(p) == 0 }

// String returns the canonical form, quadrant indices joined with "_"
// ("0_2_1"). The root path renders as the empty string.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, q := range p {
		if i > 0 {
			sb.WriteString(pathSeparator)
		}
		sb.WriteByte(byte('0' + q))
	}
	return sb.String()
}

// Append returns a new path with q added as the deepest level. The receiver
// is not modified.
func (p Path) Append(q Quadrant) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = clampQuadrant(q)
	return out
}

// Pop returns the path shortened by one level along with the removed
// quadrant. At the root it returns the root path and ok=false; zoom-out at
// the root is a defined no-op, not an error.
func (p Path) Pop() (parent Path, removed Quadrant, ok bool) {
	if len(p) == 0 {
		return nil, 0, false
	}
	parent = make(Path, len(p)-1)
	copy(parent, p[:len(p)-1])
	return parent, p[len(p)-1], true
}

// ParsePath parses the canonical string form back into a Path. The empty
// string parses to the root path. Elements outside 0..3 are rejected.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, pathSeparator)
	p := make(Path, len(parts))
	for i, part := range parts {
		if len(part) != 1 || part[0] < '0' || part[0] > '3' {
			return nil, fmt.Errorf("quadview: invalid path element %q in %q", part, s)
		}
		p[i] = Quadrant(part[0] - '0')
	}
	return p, nil
}

// ResourceKey derives the resource key for the tile at path p under the
// given base name. The root path maps to the base name unchanged; any other
// path splices its canonical form between the base's stem and extension:
//
//	ResourceKey("root.jpg", Path{0, 2}) == "root_0_2.jpg"
//
// A base name without an extension is treated as all stem. The derivation
// is deterministic, so keys can be compared and cached by value.
func ResourceKey(base string, p Path) string {
	if p.IsRoot() {
		return base
	}
	stem, ext := base, ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		stem, ext = base[:i], base[i:]
	}
	return stem + pathSeparator + p.String() + ext
}
