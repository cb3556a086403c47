package catalog

import (
	"sort"
	"strings"
)

// SortField selects the sort key for listings.
type SortField string

const (
	SortName  SortField = "name"
	SortPrice SortField = "price" // effective price
	SortBrand SortField = "brand"
)

// Filters describes a client-side predicate set over an already-fetched
// product list. Every field is applied locally, ANDed together.
type Filters struct {
	Search     string   `json:"search,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	Shapes     []string `json:"shapes,omitempty"`
	Materials  []string `json:"materials,omitempty"`
	LensTypes  []string `json:"lens_types,omitempty"`
	Genders    []string `json:"genders,omitempty"`
	PriceMin   float64  `json:"price_min,omitempty"`
	PriceMax   float64  `json:"price_max,omitempty"` // 0 means unbounded
	InStock    bool     `json:"in_stock,omitempty"`
	OnSale     bool     `json:"on_sale,omitempty"`
}

// IsZero reports whether no predicate is active.
func (f Filters) IsZero() bool {
	return f.Search == "" && len(f.Categories) == 0 && len(f.Brands) == 0 &&
		len(f.Shapes) == 0 && len(f.Materials) == 0 && len(f.LensTypes) == 0 &&
		len(f.Genders) == 0 && f.PriceMin == 0 && f.PriceMax == 0 &&
		!f.InStock && !f.OnSale
}

// Apply returns the products matching every active predicate. Pure function:
// the input slice is never mutated.
func (f Filters) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filters) matches(p Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if !memberOf(f.Categories, p.Category) {
		return false
	}
	if !memberOf(f.Brands, p.Brand) {
		return false
	}
	if !memberOf(f.Shapes, p.FrameShape) {
		return false
	}
	if !memberOf(f.Materials, p.FrameMaterial) {
		return false
	}
	if !memberOf(f.LensTypes, p.LensType) {
		return false
	}
	if !memberOf(f.Genders, p.Gender) {
		return false
	}
	price := p.EffectivePrice()
	if price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && price > f.PriceMax {
		return false
	}
	if f.InStock && !p.InStock() {
		return false
	}
	if f.OnSale && !p.OnSale() {
		return false
	}
	return true
}

// memberOf is true when the set is empty (predicate inactive) or contains v.
func memberOf(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// Sort orders products by field. Stable, so equal keys keep their incoming
// order; ties are not otherwise broken.
func Sort(products []Product, field SortField, desc bool) {
	less := func(a, b Product) bool { return a.Name < b.Name }
	switch field {
	case SortPrice:
		less = func(a, b Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case SortBrand:
		less = func(a, b Product) bool { return a.Brand < b.Brand }
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

// Page is one slice of a filtered+sorted listing.
type Page struct {
	Items       []Product `json:"items"`
	TotalCount  int       `json:"total_count"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
	PageSize    int       `json:"page_size"`
}

// DefaultPageSize matches the storefront grid.
const DefaultPageSize = 12

// Paginate slices products into the requested fixed-size page. Pages are
// 1-based; out-of-range pages clamp to the nearest valid page.
func Paginate(products []Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(products) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}
	return Page{
		Items:       products[start:end],
		TotalCount:  len(products),
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
	}
}
