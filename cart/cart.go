package cart

import (
	"strconv"

	"github.com/oticaisis/storefront/commerce"
)

// Line is one cart entry shaped for display. Amounts are numeric here; the
// remote snapshot keeps them as strings.
type Line struct {
	ID        string  `json:"id"`
	VariantID string  `json:"variantId"`
	ProductID string  `json:"productId"`
	Handle    string  `json:"handle"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Summary is the cart as shown to the shopper. Totals are recomputed from
// line prices on every read rather than trusted from a stored figure.
type Summary struct {
	CartID                string  `json:"cartId"`
	Lines                 []Line  `json:"lines"`
	ItemCount             int     `json:"itemCount"`
	Subtotal              float64 `json:"subtotal"`
	ShippingRate          float64 `json:"shippingRate"`
	FreeShippingRemaining float64 `json:"freeShippingRemaining"`
	Total                 float64 `json:"total"`
	CheckoutURL           string  `json:"checkoutUrl"`
}

func summarize(c *commerce.Cart, threshold, flatRate float64) Summary {
	s := Summary{CheckoutURL: ""}
	if c == nil {
		return s
	}
	s.CartID = c.ID
	s.CheckoutURL = c.WebURL
	for _, li := range c.LineItems {
		price := parseAmount(li.Variant.Price.Amount)
		line := Line{
			ID:        li.ID,
			VariantID: li.Variant.ID,
			ProductID: li.Variant.Product.ID,
			Handle:    li.Variant.Product.Handle,
			Name:      li.Variant.Product.Title,
			Price:     price,
			Quantity:  li.Quantity,
			LineTotal: price * float64(li.Quantity),
		}
		if len(li.Variant.Product.Images) > 0 {
			line.ImageURL = li.Variant.Product.Images[0].Src
		}
		s.Lines = append(s.Lines, line)
		s.ItemCount += li.Quantity
		s.Subtotal += line.LineTotal
	}
	if s.ItemCount > 0 && s.Subtotal < threshold {
		s.ShippingRate = flatRate
		s.FreeShippingRemaining = threshold - s.Subtotal
	}
	s.Total = s.Subtotal + s.ShippingRate
	return s
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
