package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Client talks to the vendor commerce platform's storefront GraphQL API.
// It is constructed once in main and injected into the layers that need it.
type Client struct {
	Endpoint string
	Token    string
	HTTP     *http.Client
}

func NewClient(domain, token string) *Client {
	endpoint := domain
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "https://" + domain + "/api/graphql"
	}
	return &Client{
		Endpoint: endpoint,
		Token:    token,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []graphQLError         `json:"errors"`
}

// do posts a GraphQL document and decodes data[field] into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, field string, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("X-Storefront-Access-Token", c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("commerce API: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("commerce API: status %d", res.StatusCode)
	}

	var gqlRes graphQLResponse
	if err := json.NewDecoder(res.Body).Decode(&gqlRes); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(gqlRes.Errors) > 0 {
		return fmt.Errorf("commerce API: %s", gqlRes.Errors[0].Message)
	}

	raw, ok := gqlRes.Data[field]
	if !ok || raw == nil {
		return errNotFound
	}
	// Mutation payloads nest the cart one level deeper: {"cart": {...}}.
	if m, isMap := raw.(map[string]interface{}); isMap {
		if inner, hasCart := m["cart"]; hasCart {
			raw = inner
		}
	}
	return decode(raw, out)
}

var errNotFound = fmt.Errorf("commerce API: not found")

// IsNotFound reports whether err marks a missing remote record.
func IsNotFound(err error) bool {
	return err == errNotFound
}

// decode maps a GraphQL JSON value onto a typed struct. Vendors are not
// consistent about amounts (some send numbers, some strings), so a hook
// normalizes every numeric amount to its string form.
func decode(in, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: numberToStringHook(),
		Result:     out,
		TagName:    "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("map response: %w", err)
	}
	return nil
}

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fmt.Sprint(data), nil
		}
		return data, nil
	}
}

// Products fetches the first n products of the remote catalog.
func (c *Client) Products(ctx context.Context, first int) ([]Product, error) {
	if first <= 0 {
		first = 20
	}
	var products []Product
	err := c.do(ctx, queryProducts, map[string]interface{}{"first": first}, "products", &products)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return products, nil
}

// ProductByHandle fetches one product. Returns (nil, nil) when absent.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var product Product
	err := c.do(ctx, queryProductByHandle, map[string]interface{}{"handle": handle}, "productByHandle", &product)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// SearchProducts runs a remote full-text query over title, tags and type.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	q := fmt.Sprintf("title:*%s* OR tag:*%s* OR product_type:*%s*", query, query, query)
	var products []Product
	err := c.do(ctx, querySearchProducts, map[string]interface{}{"query": q, "first": 20}, "products", &products)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return products, nil
}

// CreateCart creates a fresh remote cart.
func (c *Client) CreateCart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.do(ctx, mutationCartCreate, nil, "cartCreate", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Cart fetches a cart by ID. Returns (nil, nil) when the ID is stale.
func (c *Client) Cart(ctx context.Context, id string) (*Cart, error) {
	var cart Cart
	err := c.do(ctx, queryCart, map[string]interface{}{"id": id}, "cart", &cart)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddLine adds a variant to the cart and returns the updated cart.
func (c *Client) AddLine(ctx context.Context, cartID, variantID string, quantity int) (*Cart, error) {
	vars := map[string]interface{}{"cartId": cartID, "variantId": variantID, "quantity": quantity}
	var cart Cart
	if err := c.do(ctx, mutationCartLinesAdd, vars, "cartLinesAdd", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateLine changes a line's quantity and returns the updated cart.
func (c *Client) UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*Cart, error) {
	vars := map[string]interface{}{"cartId": cartID, "lineId": lineID, "quantity": quantity}
	var cart Cart
	if err := c.do(ctx, mutationCartLinesUpdate, vars, "cartLinesUpdate", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveLine deletes a line and returns the updated cart.
func (c *Client) RemoveLine(ctx context.Context, cartID, lineID string) (*Cart, error) {
	vars := map[string]interface{}{"cartId": cartID, "lineId": lineID}
	var cart Cart
	if err := c.do(ctx, mutationCartLinesRemove, vars, "cartLinesRemove", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
