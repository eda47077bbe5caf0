package ast

import "strings"

// ExprList is an ordered sequence of (optional name, Expr) pairs,
// preserving insertion order. Push keeps non-empty names unique;
// NewExprList takes the names exactly as given.
// It backs call argument lists, function formals, and `list(...)`
// literals alike, mirroring the original interpreter's RExprList (a
// parallel keys/values pair over the call/formals/list surface).
type ExprList struct {
	names  []string
	values []Node
}

// NewExprList builds an ExprList from paired names ("" for unnamed) and
// values of equal length.
func NewExprList(names []string, values []Node) ExprList {
	return ExprList{names: append([]string(nil), names...), values: append([]Node(nil), values...)}
}

// Len returns the number of entries.
func (l ExprList) Len() int { return len(l.values) }

// At returns the name ("" if unnamed) and value at position i.
func (l ExprList) At(i int) (string, Node) { return l.names[i], l.values[i] }

// Name returns the name at position i.
func (l ExprList) Name(i int) string { return l.names[i] }

// Value returns the expression at position i.
func (l ExprList) Value(i int) Node { return l.values[i] }

// IndexOfName returns the position of name, or -1 if absent.
func (l ExprList) IndexOfName(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Push appends an entry. A non-empty name that already exists replaces
// the existing entry's value in place, matching the uniqueness invariant
// on names within a list.
func (l ExprList) Push(name string, v Node) ExprList {
	if name != "" {
		if i := l.IndexOfName(name); i != -1 {
			l.values[i] = v
			return l
		}
	}
	l.names = append(l.names, name)
	l.values = append(l.values, v)
	return l
}

// RemoveAt removes the entry at position i.
func (l ExprList) RemoveAt(i int) ExprList {
	l.names = append(l.names[:i:i], l.names[i+1:]...)
	l.values = append(l.values[:i:i], l.values[i+1:]...)
	return l
}

// RemoveByName removes the entry with the given name, if present.
func (l ExprList) RemoveByName(name string) ExprList {
	if i := l.IndexOfName(name); i != -1 {
		return l.RemoveAt(i)
	}
	return l
}

// PopTrailing strips unnamed entries off the tail, returning the
// shortened list and the popped values in original order. A named
// entry stops the stripping.
func (l ExprList) PopTrailing() (ExprList, []Node) {
	end := len(l.values)
	for end > 0 && l.names[end-1] == "" {
		end--
	}
	popped := append([]Node(nil), l.values[end:]...)
	l.names = l.names[:end]
	l.values = l.values[:end]
	return l, popped
}

// Named reports whether any entry carries a name.
func (l ExprList) Named() bool {
	for _, n := range l.names {
		if n != "" {
			return true
		}
	}
	return false
}

func (l ExprList) String() string {
	parts := make([]string, l.Len())
	for i := 0; i < l.Len(); i++ {
		// A nil value marks a required formal with no default — print
		// just its name.
		if l.values[i] == nil {
			parts[i] = l.names[i]
			continue
		}
		if l.names[i] != "" {
			parts[i] = l.names[i] + " = " + l.values[i].String()
		} else {
			parts[i] = l.values[i].String()
		}
	}
	return strings.Join(parts, ", ")
}
