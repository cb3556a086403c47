package catalog

import (
	"strconv"
	"strings"

	"github.com/oticaisis/storefront/commerce"
)

// Product is the display record the storefront renders. It is rebuilt from
// the remote representation on every fetch and never persisted on its own
// (the wishlist keeps snapshots, see model/entity).
type Product struct {
	ID          string  `json:"id"`
	Handle      string  `json:"handle"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SalePrice   float64 `json:"sale_price,omitempty"` // 0 means no sale price
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	StockCount  int     `json:"stock_count"`
	Featured    bool    `json:"featured"`

	// Frame attributes, extracted from vendor tags at translation time.
	FrameMaterial string `json:"frame_material"`
	LensType      string `json:"lens_type"`
	FrameShape    string `json:"frame_shape"`
	Gender        string `json:"gender"`

	// First available variant, the purchasable identity. Empty when the
	// product has no sellable variant.
	VariantID string `json:"variant_id,omitempty"`
}

// EffectivePrice is the canonical price rule: sale price when present and
// lower than the list price, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice > 0 && p.SalePrice < p.Price {
		return p.SalePrice
	}
	return p.Price
}

func (p Product) OnSale() bool {
	return p.SalePrice > 0 && p.SalePrice < p.Price
}

func (p Product) InStock() bool {
	return p.StockCount > 0
}

// Attribute defaults when the vendor tags carry no value.
const (
	defaultMaterial = "Acetato"
	defaultLensType = "Antirreflexo"
	defaultShape    = "Retangular"
	defaultGender   = "Unissex"
	defaultCategory = "eyewear"
	defaultBrand    = "Ótica Isis"
)

// The vendor does not expose exact counts through the storefront API, only
// availability. Displayed stock is a fixed bucket per state.
const availableStockCount = 10

// Translate builds a display record from the vendor shape. All raw-tag
// parsing lives here; nothing downstream inspects tag strings.
func Translate(remote commerce.Product, fallbackImage string) Product {
	var variant *commerce.Variant
	for i := range remote.Variants {
		if remote.Variants[i].Available {
			variant = &remote.Variants[i]
			break
		}
	}

	price, salePrice := 0.0, 0.0
	variantID, stock := "", 0
	if variant != nil {
		variantID = variant.ID
		stock = availableStockCount
		price = parseAmount(variant.Price.Amount)
		if variant.CompareAtPrice != nil {
			// compare-at is the list price; the current price is the sale
			if compare := parseAmount(variant.CompareAtPrice.Amount); compare > 0 {
				salePrice = price
				price = compare
			}
		}
	} else if len(remote.Variants) > 0 {
		price = parseAmount(remote.Variants[0].Price.Amount)
	}

	image := fallbackImage
	if len(remote.Images) > 0 && remote.Images[0].Src != "" {
		image = remote.Images[0].Src
	}

	category := remote.ProductType
	if category == "" {
		category = defaultCategory
	}
	brand := remote.Vendor
	if brand == "" {
		brand = defaultBrand
	}

	return Product{
		ID:            remote.ID,
		Handle:        remote.Handle,
		Name:          remote.Title,
		Description:   remote.Description,
		Price:         price,
		SalePrice:     salePrice,
		ImageURL:      image,
		Category:      category,
		Brand:         brand,
		StockCount:    stock,
		Featured:      hasTag(remote.Tags, "featured"),
		FrameMaterial: tagValue(remote.Tags, "material:", defaultMaterial),
		LensType:      tagValue(remote.Tags, "lens:", defaultLensType),
		FrameShape:    tagValue(remote.Tags, "shape:", defaultShape),
		Gender:        tagValue(remote.Tags, "gender:", defaultGender),
		VariantID:     variantID,
	}
}

// TranslateAll maps a remote product list into display records.
func TranslateAll(remote []commerce.Product, fallbackImage string) []Product {
	products := make([]Product, 0, len(remote))
	for _, r := range remote {
		products = append(products, Translate(r, fallbackImage))
	}
	return products
}

func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func tagValue(tags []string, prefix, def string) string {
	for _, tag := range tags {
		if strings.HasPrefix(tag, prefix) {
			if v := strings.TrimPrefix(tag, prefix); v != "" {
				return v
			}
		}
	}
	return def
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
