package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// FiltersFromQuery decodes the listing filter parameters shared by the JSON
// API and the HTML pages. Malformed values leave the predicate inactive.
func FiltersFromQuery(q url.Values) Filters {
	f := Filters{
		Search:     q.Get("q"),
		Categories: splitCSV(q.Get("category")),
		Brands:     splitCSV(q.Get("brand")),
		Shapes:     splitCSV(q.Get("shape")),
		Materials:  splitCSV(q.Get("material")),
		LensTypes:  splitCSV(q.Get("lens")),
		Genders:    splitCSV(q.Get("gender")),
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		f.PriceMin = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		f.PriceMax = v
	}
	f.InStock = q.Get("in_stock") == "true"
	f.OnSale = q.Get("on_sale") == "true"
	return f
}

// SortFromQuery decodes sort= and desc=. Unknown sort fields fall back to
// name order.
func SortFromQuery(q url.Values) (SortField, bool) {
	field := SortName
	switch q.Get("sort") {
	case "price":
		field = SortPrice
	case "brand":
		field = SortBrand
	}
	return field, q.Get("desc") == "true"
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
