package cartapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/api"
	"github.com/oticaisis/storefront/cart"
	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/commerce"
)

type fakeCommerce struct {
	carts  map[string]*commerce.Cart
	nextID int
}

func newFakeCommerce() *fakeCommerce {
	return &fakeCommerce{carts: map[string]*commerce.Cart{}}
}

func (f *fakeCommerce) snapshot(id string) *commerce.Cart {
	c := *f.carts[id]
	c.LineItems = append([]commerce.LineItem(nil), f.carts[id].LineItems...)
	return &c
}

func (f *fakeCommerce) CreateCart(ctx context.Context) (*commerce.Cart, error) {
	f.nextID++
	id := fmt.Sprintf("cart-%d", f.nextID)
	f.carts[id] = &commerce.Cart{ID: id, WebURL: "https://checkout.example/" + id}
	return f.snapshot(id), nil
}

func (f *fakeCommerce) Cart(ctx context.Context, id string) (*commerce.Cart, error) {
	if _, ok := f.carts[id]; !ok {
		return nil, nil
	}
	return f.snapshot(id), nil
}

func (f *fakeCommerce) AddLine(ctx context.Context, cartID, variantID string, quantity int) (*commerce.Cart, error) {
	c := f.carts[cartID]
	li := commerce.LineItem{ID: fmt.Sprintf("line-%d", len(c.LineItems)+1), Quantity: quantity}
	li.Variant.ID = variantID
	li.Variant.Price = commerce.Money{Amount: "100.00", CurrencyCode: "BRL"}
	li.Variant.Product.ID = "prod-" + variantID
	c.LineItems = append(c.LineItems, li)
	return f.snapshot(cartID), nil
}

func (f *fakeCommerce) UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*commerce.Cart, error) {
	c := f.carts[cartID]
	for i := range c.LineItems {
		if c.LineItems[i].ID == lineID {
			c.LineItems[i].Quantity = quantity
		}
	}
	return f.snapshot(cartID), nil
}

func (f *fakeCommerce) RemoveLine(ctx context.Context, cartID, lineID string) (*commerce.Cart, error) {
	c := f.carts[cartID]
	kept := c.LineItems[:0]
	for _, li := range c.LineItems {
		if li.ID != lineID {
			kept = append(kept, li)
		}
	}
	c.LineItems = kept
	return f.snapshot(cartID), nil
}

type memPrefs struct{ values map[string]string }

func (p *memPrefs) Get(key string) (string, bool) { v, ok := p.values[key]; return v, ok }
func (p *memPrefs) Set(key, value string) error   { p.values[key] = value; return nil }

// fakeLister backs the catalog view with a fixed remote product list.
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

func testServer(products ...commerce.Product) *echo.Echo {
	svc := cart.NewService(newFakeCommerce(), &memPrefs{values: map[string]string{}}, 200, 15)
	view := catalog.NewView(&fakeLister{products: products}, nil, nil,
		catalog.NewSearchService("", ""), "", time.Minute)
	e := echo.New()
	RegisterCartRoutes(e.Group("/api"), &api.Deps{Cart: svc, Catalog: view})
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartAPI_AddAndGet(t *testing.T) {
	e := testServer()

	rec := doJSON(e, http.MethodPost, "/api/cart/items", `{"variantId":"v-1","quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/api/cart", "")
	var sum cart.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.ItemCount != 2 || len(sum.Lines) != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Subtotal != 200 || sum.ShippingRate != 0 {
		t.Errorf("subtotal = %v, shipping = %v; want 200 and free shipping", sum.Subtotal, sum.ShippingRate)
	}
}

func TestCartAPI_AddRequiresVariant(t *testing.T) {
	e := testServer()
	rec := doJSON(e, http.MethodPost, "/api/cart/items", `{"quantity":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCartAPI_AddByHandleResolvesVariant(t *testing.T) {
	p := commerce.Product{
		ID:     "p-1",
		Title:  "Aviador",
		Handle: "aviador",
		Variants: []commerce.Variant{
			{ID: "v-av", Price: commerce.Money{Amount: "100.00", CurrencyCode: "BRL"}, Available: true},
		},
	}
	e := testServer(p)

	rec := doJSON(e, http.MethodPost, "/api/cart/items", `{"handle":"aviador","quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var sum cart.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sum.Lines) != 1 || sum.Lines[0].VariantID != "v-av" {
		t.Errorf("lines = %+v, want one line for v-av", sum.Lines)
	}
	if sum.ItemCount != 2 {
		t.Errorf("item count = %d, want 2", sum.ItemCount)
	}
}

func TestCartAPI_AddSoldOutProductConflicts(t *testing.T) {
	p := commerce.Product{
		ID:     "p-2",
		Title:  "Esgotado",
		Handle: "esgotado",
		Variants: []commerce.Variant{
			{ID: "v-out", Price: commerce.Money{Amount: "100.00", CurrencyCode: "BRL"}, Available: false},
		},
	}
	e := testServer(p)

	rec := doJSON(e, http.MethodPost, "/api/cart/items", `{"handle":"esgotado"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (body %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Error string `json:"error"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "product not purchasable" {
		t.Errorf("error = %q, want product not purchasable", body.Error)
	}

	rec = doJSON(e, http.MethodGet, "/api/cart", "")
	var sum cart.Summary
	json.Unmarshal(rec.Body.Bytes(), &sum)
	if len(sum.Lines) != 0 {
		t.Errorf("lines = %d after rejected add, want 0", len(sum.Lines))
	}
}

func TestCartAPI_AddUnknownHandle(t *testing.T) {
	e := testServer()
	rec := doJSON(e, http.MethodPost, "/api/cart/items", `{"handle":"nope"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCartAPI_UpdateToZeroRemoves(t *testing.T) {
	e := testServer()
	doJSON(e, http.MethodPost, "/api/cart/items", `{"variantId":"v-1","quantity":1}`)

	rec := doJSON(e, http.MethodPut, "/api/cart/items/line-1", `{"quantity":0}`)
	var sum cart.Summary
	json.Unmarshal(rec.Body.Bytes(), &sum)
	if len(sum.Lines) != 0 {
		t.Errorf("lines = %d, want 0", len(sum.Lines))
	}
}

func TestCartAPI_CheckoutValidation(t *testing.T) {
	e := testServer()
	doJSON(e, http.MethodPost, "/api/cart/items", `{"variantId":"v-1","quantity":1}`)

	rec := doJSON(e, http.MethodPost, "/api/cart/checkout", `{"address":{},"payment":{}}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body struct {
		Problems map[string]string `json:"problems"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Problems["email"] == "" || body.Problems["method"] == "" {
		t.Errorf("problems = %v", body.Problems)
	}
}

func TestCartAPI_CheckoutHandoff(t *testing.T) {
	e := testServer()
	doJSON(e, http.MethodPost, "/api/cart/items", `{"variantId":"v-1","quantity":1}`)

	payload := `{
		"address":{"fullName":"Maria Silva","email":"maria@example.com","street":"Rua das Flores","number":"123","city":"São Paulo","state":"SP","postalCode":"01310-100"},
		"payment":{"method":"pix"}
	}`
	rec := doJSON(e, http.MethodPost, "/api/cart/checkout", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		CheckoutURL string `json:"checkoutUrl"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if !strings.HasPrefix(body.CheckoutURL, "https://checkout.example/") {
		t.Errorf("checkoutUrl = %q", body.CheckoutURL)
	}
}

func TestCartAPI_CheckoutEmptyCartConflicts(t *testing.T) {
	e := testServer()
	payload := `{
		"address":{"fullName":"Maria Silva","email":"maria@example.com","street":"Rua das Flores","number":"123","city":"São Paulo","state":"SP","postalCode":"01310-100"},
		"payment":{"method":"pix"}
	}`
	rec := doJSON(e, http.MethodPost, "/api/cart/checkout", payload)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}
