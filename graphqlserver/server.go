package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/oticaisis/storefront/cart"
	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/graphql"
)

// RootResolver is the root for graphql-go. It reads through the same catalog
// view and cart service the REST surface uses.
type RootResolver struct {
	catalog *catalog.View
	cart    *cart.Service
}

func NewRootResolver(view *catalog.View, cartSvc *cart.Service) *RootResolver {
	return &RootResolver{catalog: view, cart: cartSvc}
}

func (r *RootResolver) Products(ctx context.Context) []*ProductResolver {
	products, _ := r.catalog.Products(ctx)
	return wrapProducts(products)
}

type productArgs struct {
	Handle string
}

func (r *RootResolver) Product(ctx context.Context, args productArgs) (*ProductResolver, error) {
	p, err := r.catalog.ProductByHandle(ctx, args.Handle)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &ProductResolver{p: *p}, nil
}

type searchArgs struct {
	Query string
}

func (r *RootResolver) Search(ctx context.Context, args searchArgs) []*ProductResolver {
	products, _ := r.catalog.Search(ctx, args.Query)
	return wrapProducts(products)
}

func (r *RootResolver) Cart() *CartResolver {
	return &CartResolver{sum: r.cart.Summary()}
}

func wrapProducts(products []catalog.Product) []*ProductResolver {
	out := make([]*ProductResolver, 0, len(products))
	for _, p := range products {
		p := p
		out = append(out, &ProductResolver{p: p})
	}
	return out
}

// ProductResolver exposes one display record.
type ProductResolver struct {
	p catalog.Product
}

func (r *ProductResolver) ID() gql.ID          { return gql.ID(r.p.ID) }
func (r *ProductResolver) Handle() string      { return r.p.Handle }
func (r *ProductResolver) Name() string        { return r.p.Name }
func (r *ProductResolver) Description() string { return r.p.Description }
func (r *ProductResolver) Price() float64      { return r.p.Price }

func (r *ProductResolver) SalePrice() *float64 {
	if r.p.SalePrice <= 0 {
		return nil
	}
	v := r.p.SalePrice
	return &v
}

func (r *ProductResolver) EffectivePrice() float64 { return r.p.EffectivePrice() }
func (r *ProductResolver) OnSale() bool            { return r.p.OnSale() }
func (r *ProductResolver) InStock() bool           { return r.p.InStock() }
func (r *ProductResolver) StockCount() int32       { return int32(r.p.StockCount) }
func (r *ProductResolver) ImageURL() string        { return r.p.ImageURL }
func (r *ProductResolver) Category() string        { return r.p.Category }
func (r *ProductResolver) Brand() string           { return r.p.Brand }
func (r *ProductResolver) Featured() bool          { return r.p.Featured }
func (r *ProductResolver) FrameMaterial() string   { return r.p.FrameMaterial }
func (r *ProductResolver) LensType() string        { return r.p.LensType }
func (r *ProductResolver) FrameShape() string      { return r.p.FrameShape }
func (r *ProductResolver) Gender() string          { return r.p.Gender }
func (r *ProductResolver) VariantID() string       { return r.p.VariantID }

// CartResolver exposes the shopper's cart summary.
type CartResolver struct {
	sum cart.Summary
}

func (r *CartResolver) ID() gql.ID { return gql.ID(r.sum.CartID) }

func (r *CartResolver) Lines() []*LineResolver {
	out := make([]*LineResolver, 0, len(r.sum.Lines))
	for _, l := range r.sum.Lines {
		l := l
		out = append(out, &LineResolver{l: l})
	}
	return out
}

func (r *CartResolver) ItemCount() int32               { return int32(r.sum.ItemCount) }
func (r *CartResolver) Subtotal() float64              { return r.sum.Subtotal }
func (r *CartResolver) ShippingRate() float64          { return r.sum.ShippingRate }
func (r *CartResolver) FreeShippingRemaining() float64 { return r.sum.FreeShippingRemaining }
func (r *CartResolver) Total() float64                 { return r.sum.Total }
func (r *CartResolver) CheckoutURL() string            { return r.sum.CheckoutURL }

// LineResolver exposes one cart line.
type LineResolver struct {
	l cart.Line
}

func (r *LineResolver) ID() gql.ID         { return gql.ID(r.l.ID) }
func (r *LineResolver) VariantID() string  { return r.l.VariantID }
func (r *LineResolver) ProductID() string  { return r.l.ProductID }
func (r *LineResolver) Handle() string     { return r.l.Handle }
func (r *LineResolver) Name() string       { return r.l.Name }
func (r *LineResolver) ImageURL() string   { return r.l.ImageURL }
func (r *LineResolver) Price() float64     { return r.l.Price }
func (r *LineResolver) Quantity() int32    { return int32(r.l.Quantity) }
func (r *LineResolver) LineTotal() float64 { return r.l.LineTotal }

// NewSchema parses the schema against the root resolver.
func NewSchema(view *catalog.View, cartSvc *cart.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), NewRootResolver(view, cartSvc))
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
