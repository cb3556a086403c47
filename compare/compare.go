package compare

import "github.com/oticaisis/storefront/catalog"

// MaxItems caps how many products fit in one comparison.
const MaxItems = 3

// Shopper-facing notices, in the store's language.
const (
	NoticeFull      = "Você pode comparar no máximo 3 produtos"
	NoticeDuplicate = "Este produto já está na comparação"
)

// List is one session's comparison set. It lives inside the session record;
// the session's lock covers it.
type List struct {
	Items []catalog.Product `json:"items"`
	Open  bool              `json:"open"`
}

// Add puts a product in the comparison. It refuses duplicates and overflow
// past MaxItems, returning a notice instead of an error in both cases.
func (l *List) Add(p catalog.Product) (string, bool) {
	if l.Contains(p.ID) {
		return NoticeDuplicate, false
	}
	if len(l.Items) >= MaxItems {
		return NoticeFull, false
	}
	l.Items = append(l.Items, p)
	l.Open = true
	return "", true
}

// Remove drops a product; absent products are a no-op. The tray closes when
// the last product leaves.
func (l *List) Remove(productID string) {
	kept := l.Items[:0]
	for _, p := range l.Items {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	l.Items = kept
	if len(l.Items) == 0 {
		l.Open = false
	}
}

// Contains reports whether the product is being compared.
func (l *List) Contains(productID string) bool {
	for _, p := range l.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the comparison and closes the tray.
func (l *List) Clear() {
	l.Items = nil
	l.Open = false
}
