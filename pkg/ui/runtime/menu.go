package runtime

import "github.com/mattn/go-runewidth"

// MenuItem is an entry of a MenuTree: a leaf, a subtree or a delimiter.
type MenuItem struct {
	Label    string
	Callback Callback
	Subtree  *MenuTree

	delimiter bool
}

// IsDelimiter reports whether the item is a separator.
func (i MenuItem) IsDelimiter() bool { return i.delimiter }

// IsSubtree reports whether the item opens a nested menu.
func (i MenuItem) IsSubtree() bool { return i.Subtree != nil }

// IsLeaf reports whether the item runs a callback.
func (i MenuItem) IsLeaf() bool { return !i.delimiter && i.Subtree == nil }

// MenuTree is an ordered list of menu entries.
type MenuTree struct {
	Items []MenuItem
}

// NewMenuTree creates an empty tree.
func NewMenuTree() *MenuTree {
	return &MenuTree{}
}

// Leaf appends an entry running cb.
func (t *MenuTree) Leaf(label string, cb Callback) *MenuTree {
	t.Items = append(t.Items, MenuItem{Label: label, Callback: cb})
	return t
}

// Subtree appends a nested menu.
func (t *MenuTree) Subtree(label string, sub *MenuTree) *MenuTree {
	if sub == nil {
		sub = NewMenuTree()
	}
	t.Items = append(t.Items, MenuItem{Label: label, Subtree: sub})
	return t
}

// Delimiter appends a separator.
func (t *MenuTree) Delimiter() *MenuTree {
	t.Items = append(t.Items, MenuItem{delimiter: true})
	return t
}

// Len returns the number of entries.
func (t *MenuTree) Len() int {
	return len(t.Items)
}

// Clear removes every entry.
func (t *MenuTree) Clear() {
	t.Items = nil
}

// width returns the cell width of the widest label.
func (t *MenuTree) width() int {
	w := 0
	for _, item := range t.Items {
		if lw := runewidth.StringWidth(item.Label); lw > w {
			w = lw
		}
	}
	return w
}
