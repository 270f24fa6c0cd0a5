package htmlnode

// Equal reports whether two trees match structurally: tag, value, attributes
// and children, recursively. An absent value or children list only equals
// another absent one.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		return x.Tag == y.Tag && equalValue(x.Value, y.Value) && equalAttrs(x.Attrs, y.Attrs)
	case *Parent:
		y, ok := b.(*Parent)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		if x.Tag != y.Tag || !equalAttrs(x.Attrs, y.Attrs) {
			return false
		}
		if (x.Children == nil) != (y.Children == nil) || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return false
	}
}

func equalValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalAttrs(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
