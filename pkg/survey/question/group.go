package question

// Group is a base question id plus every column key sharing it, in
// encounter order, with the inferred archetype attached after
// classification. Every header passed to GroupColumns lands in exactly
// one group; nothing is dropped.
type Group struct {
	Base      string
	Keys      []ColumnKey
	Archetype Archetype

	// RowKeys/ColKeys are the distinct sub-index values of two-level
	// keys, sorted numerically; ItemKeys the distinct values of
	// one-level keys. Populated during grouping, consumed by the
	// classifier and the matrix renderer.
	RowKeys  []string
	ColKeys  []string
	ItemKeys []string
}

// GroupColumns partitions headers into question groups by shared base
// id. Encounter order is preserved both across groups and within a
// group. Headers with no index structure form singleton groups.
func GroupColumns(headers []string) []*Group {
	byBase := make(map[string]*Group)
	var order []*Group

	for _, h := range headers {
		key := ParseColumnKey(h)
		g, ok := byBase[key.Base]
		if !ok {
			g = &Group{Base: key.Base}
			byBase[key.Base] = g
			order = append(order, g)
		}
		g.Keys = append(g.Keys, key)
	}

	for _, g := range order {
		g.indexDimensions()
	}
	return order
}

// indexDimensions collects the distinct sub-index values per dimension.
// _TEXT keys are carried in the group but do not contribute to the
// dimensions, so an "other, specify" column cannot distort a matrix
// shape.
func (g *Group) indexDimensions() {
	seenRow := make(map[string]bool)
	seenCol := make(map[string]bool)
	seenItem := make(map[string]bool)

	for _, k := range g.Keys {
		if k.TextField {
			continue
		}
		switch len(k.Sub) {
		case 2:
			if !seenRow[k.Sub[0]] {
				seenRow[k.Sub[0]] = true
				g.RowKeys = append(g.RowKeys, k.Sub[0])
			}
			if !seenCol[k.Sub[1]] {
				seenCol[k.Sub[1]] = true
				g.ColKeys = append(g.ColKeys, k.Sub[1])
			}
		case 1:
			if !seenItem[k.Sub[0]] {
				seenItem[k.Sub[0]] = true
				g.ItemKeys = append(g.ItemKeys, k.Sub[0])
			}
		}
	}

	SortSubKeys(g.RowKeys)
	SortSubKeys(g.ColKeys)
	SortSubKeys(g.ItemKeys)
}

// AnswerKeys returns the group's non-_TEXT keys in encounter order.
func (g *Group) AnswerKeys() []ColumnKey {
	out := make([]ColumnKey, 0, len(g.Keys))
	for _, k := range g.Keys {
		if !k.TextField {
			out = append(out, k)
		}
	}
	return out
}

// TextKeys returns the group's _TEXT keys in encounter order.
func (g *Group) TextKeys() []ColumnKey {
	var out []ColumnKey
	for _, k := range g.Keys {
		if k.TextField {
			out = append(out, k)
		}
	}
	return out
}

// MatrixCell returns the column key addressing (row, col), if present.
// A missing cell is a legitimate sparse spot in the rectangle.
func (g *Group) MatrixCell(row, col string) (ColumnKey, bool) {
	for _, k := range g.Keys {
		if !k.TextField && len(k.Sub) == 2 && k.Sub[0] == row && k.Sub[1] == col {
			return k, true
		}
	}
	return ColumnKey{}, false
}

// ItemKey returns the column key for a one-level item sub-index.
func (g *Group) ItemKey(item string) (ColumnKey, bool) {
	for _, k := range g.Keys {
		if !k.TextField && len(k.Sub) == 1 && k.Sub[0] == item {
			return k, true
		}
	}
	return ColumnKey{}, false
}
