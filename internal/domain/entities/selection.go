package entities

// SelectionSet is the ordered set of offering ids a requester has checked in
// one submission. Order is preserved for display; membership is unique.
type SelectionSet []string

// SelectionKind classifies a selection set. A valid set is always exactly
// one of these; mixed sets can only be produced by bypassing ApplySelection.
type SelectionKind string

const (
	SelectionEmpty      SelectionKind = "empty"
	SelectionPriced     SelectionKind = "priced"
	SelectionSelectable SelectionKind = "selectable"
	SelectionPlain      SelectionKind = "plain"
	SelectionMixed      SelectionKind = "mixed"
)

func (s SelectionSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// ApplySelection applies one checkbox click to the current selection.
//
// Rules, in order:
//  1. Checking a priced offering discards everything else; a priced
//     selection is always singular.
//  2. While a priced offering is selected, every other check is ignored;
//     the only ways out are unchecking it or checking another priced one.
//  3. Checking a selectable offering purges any plain members and adds the
//     clicked id.
//  4. Checking a plain offering is ignored while any selectable member is
//     present; otherwise the id is added.
//  5. Unchecking removes the id.
//
// Disallowed clicks are silently ignored rather than erroring: the UI
// disables those controls, so a no-op here is the intended behavior.
// Callers must not assume every click mutates the set.
func ApplySelection(current SelectionSet, clicked ServiceOffering, checked bool, catalog []ServiceOffering) SelectionSet {
	if !checked {
		out := make(SelectionSet, 0, len(current))
		for _, id := range current {
			if id != clicked.ID {
				out = append(out, id)
			}
		}
		return out
	}

	if clicked.Priced {
		return SelectionSet{clicked.ID}
	}

	byID := make(map[string]ServiceOffering, len(catalog))
	for _, o := range catalog {
		byID[o.ID] = o
	}

	// A priced selection is exclusive: nothing else can join it.
	for _, id := range current {
		if o, ok := byID[id]; ok && o.Priced {
			return current
		}
	}

	if clicked.Selectable {
		out := make(SelectionSet, 0, len(current)+1)
		for _, id := range current {
			if o, ok := byID[id]; ok && o.Selectable {
				out = append(out, id)
			}
		}
		if !out.Contains(clicked.ID) {
			out = append(out, clicked.ID)
		}
		return out
	}

	// Plain click: blocked while a selectable member is present.
	for _, id := range current {
		if o, ok := byID[id]; ok && o.Selectable {
			return current
		}
	}
	if current.Contains(clicked.ID) {
		return current
	}
	out := make(SelectionSet, len(current), len(current)+1)
	copy(out, current)
	return append(out, clicked.ID)
}

// ClassifySelection reports the kind of a selection set against the catalog.
// Unknown ids classify the set as mixed so the submission path rejects them.
func ClassifySelection(sel SelectionSet, catalog []ServiceOffering) SelectionKind {
	if len(sel) == 0 {
		return SelectionEmpty
	}

	byID := make(map[string]ServiceOffering, len(catalog))
	for _, o := range catalog {
		byID[o.ID] = o
	}

	priced, selectable, plain := 0, 0, 0
	for _, id := range sel {
		o, ok := byID[id]
		switch {
		case !ok:
			return SelectionMixed
		case o.Priced:
			priced++
		case o.Selectable:
			selectable++
		default:
			plain++
		}
	}

	switch {
	case priced == 1 && selectable == 0 && plain == 0:
		return SelectionPriced
	case priced == 0 && selectable == len(sel):
		return SelectionSelectable
	case priced == 0 && plain == len(sel):
		return SelectionPlain
	default:
		return SelectionMixed
	}
}

// SelectionAmount returns the fixed price of a single-priced selection,
// and 0 for every other kind.
func SelectionAmount(sel SelectionSet, catalog []ServiceOffering) float64 {
	if ClassifySelection(sel, catalog) != SelectionPriced {
		return 0
	}
	for _, o := range catalog {
		if o.ID == sel[0] {
			return o.PriceValue()
		}
	}
	return 0
}
