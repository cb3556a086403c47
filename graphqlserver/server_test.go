package graphqlserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/oticaisis/storefront/cart"
	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/commerce"
)

type fakeLister struct {
	products []commerce.Product
}

func (f *fakeLister) Products(ctx context.Context, first int) ([]commerce.Product, error) {
	return f.products, nil
}

func (f *fakeLister) SearchProducts(ctx context.Context, query string) ([]commerce.Product, error) {
	return f.products, nil
}

func (f *fakeLister) ProductByHandle(ctx context.Context, handle string) (*commerce.Product, error) {
	for i := range f.products {
		if f.products[i].Handle == handle {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

type noopCommerce struct{}

func (noopCommerce) CreateCart(ctx context.Context) (*commerce.Cart, error) { return &commerce.Cart{ID: "c"}, nil }
func (noopCommerce) Cart(ctx context.Context, id string) (*commerce.Cart, error) {
	return &commerce.Cart{ID: id}, nil
}
func (noopCommerce) AddLine(ctx context.Context, cartID, variantID string, quantity int) (*commerce.Cart, error) {
	return &commerce.Cart{ID: cartID}, nil
}
func (noopCommerce) UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*commerce.Cart, error) {
	return &commerce.Cart{ID: cartID}, nil
}
func (noopCommerce) RemoveLine(ctx context.Context, cartID, lineID string) (*commerce.Cart, error) {
	return &commerce.Cart{ID: cartID}, nil
}

type noopPrefs struct{}

func (noopPrefs) Get(key string) (string, bool) { return "", false }
func (noopPrefs) Set(key, value string) error   { return nil }

func testFixture() commerce.Product {
	return commerce.Product{
		ID:          "gid://product/1",
		Title:       "Aviador",
		Handle:      "aviador",
		Description: "Armação metálica",
		Tags:        []string{"material:Metal", "featured"},
		Variants: []commerce.Variant{{
			ID:             "var-1",
			Price:          commerce.Money{Amount: "199.90"},
			CompareAtPrice: &commerce.Money{Amount: "299.90"},
			Available:      true,
		}},
	}
}

func TestSchema_ParsesAgainstResolvers(t *testing.T) {
	view := catalog.NewView(&fakeLister{}, nil, nil, nil, "", time.Minute)
	if _, err := NewSchema(view, cart.NewService(noopCommerce{}, noopPrefs{}, 200, 15)); err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
}

func TestQuery_ProductPricing(t *testing.T) {
	view := catalog.NewView(&fakeLister{products: []commerce.Product{testFixture()}}, nil, nil, nil, "", time.Minute)
	schema, err := NewSchema(view, cart.NewService(noopCommerce{}, noopPrefs{}, 200, 15))
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}

	res := schema.Exec(context.Background(),
		`{ product(handle: "aviador") { name price salePrice effectivePrice onSale frameMaterial } }`, "", nil)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Errors)
	}

	var data struct {
		Product struct {
			Name           string   `json:"name"`
			Price          float64  `json:"price"`
			SalePrice      *float64 `json:"salePrice"`
			EffectivePrice float64  `json:"effectivePrice"`
			OnSale         bool     `json:"onSale"`
			FrameMaterial  string   `json:"frameMaterial"`
		} `json:"product"`
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := data.Product
	if p.Price != 299.9 || p.SalePrice == nil || *p.SalePrice != 199.9 {
		t.Errorf("price = %v, salePrice = %v; want 299.9 and 199.9", p.Price, p.SalePrice)
	}
	if !p.OnSale || p.EffectivePrice != 199.9 {
		t.Errorf("onSale = %v, effectivePrice = %v", p.OnSale, p.EffectivePrice)
	}
	if p.FrameMaterial != "Metal" {
		t.Errorf("frameMaterial = %q, want Metal", p.FrameMaterial)
	}
}

func TestQuery_EmptyCart(t *testing.T) {
	view := catalog.NewView(&fakeLister{}, nil, nil, nil, "", time.Minute)
	schema, err := NewSchema(view, cart.NewService(noopCommerce{}, noopPrefs{}, 200, 15))
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}

	res := schema.Exec(context.Background(), `{ cart { itemCount subtotal total lines { id } } }`, "", nil)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	var data struct {
		Cart struct {
			ItemCount int     `json:"itemCount"`
			Total     float64 `json:"total"`
		} `json:"cart"`
	}
	json.Unmarshal(res.Data, &data)
	if data.Cart.ItemCount != 0 || data.Cart.Total != 0 {
		t.Errorf("cart = %+v, want empty", data.Cart)
	}
}
