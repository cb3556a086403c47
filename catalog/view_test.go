package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/oticaisis/storefront/commerce"
)

// fakeLister serves canned remote products or fails every call.
type fakeLister struct {
	products []commerce.Product
	fail     bool
	calls    int
}

func (f *fakeLister) Products(ctx context.Context, first int) ([]commerce.Product, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("connection refused")
	}
	return f.products, nil
}

func (f *fakeLister) SearchProducts(ctx context.Context, query string) ([]commerce.Product, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	return f.products, nil
}

func (f *fakeLister) ProductByHandle(ctx context.Context, handle string) (*commerce.Product, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	for i := range f.products {
		if f.products[i].Handle == handle {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func newTestView(lister *fakeLister) *View {
	return NewView(lister, nil, nil, nil, "/media/fallback.jpg", time.Minute)
}

func TestView_FallbackIsExactlyTheSampleCatalog(t *testing.T) {
	v := newTestView(&fakeLister{fail: true})

	products, degraded := v.Products(context.Background())
	if !degraded {
		t.Fatal("degraded = false, want true on remote failure")
	}
	if !reflect.DeepEqual(products, SampleProducts()) {
		t.Error("fallback must be exactly the built-in sample catalog")
	}
	if len(products) == 0 {
		t.Error("fallback page must not be empty")
	}
}

func TestView_CachesTranslatedList(t *testing.T) {
	lister := &fakeLister{products: []commerce.Product{remoteFixture()}}
	v := newTestView(lister)

	first, _ := v.Products(context.Background())
	second, _ := v.Products(context.Background())

	if lister.calls != 1 {
		t.Errorf("remote calls = %d, want 1 (second read from cache)", lister.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached list differs from fetched list")
	}
}

func TestView_ListFiltersSortsAndPaginates(t *testing.T) {
	lister := &fakeLister{products: []commerce.Product{remoteFixture()}}
	v := newTestView(lister)

	page, degraded := v.List(context.Background(), Filters{Search: "aviador"}, SortName, false, 1)
	if degraded {
		t.Fatal("unexpected degraded state")
	}
	if page.TotalCount != 1 || page.Items[0].Handle != "aviador-classico" {
		t.Errorf("page = %+v", page)
	}
}

func TestView_SearchDegradesToLocalFilter(t *testing.T) {
	v := newTestView(&fakeLister{fail: true})

	products, degraded := v.Search(context.Background(), "aviador")
	if !degraded {
		t.Fatal("degraded = false, want true")
	}
	// the sample catalog has exactly one aviador
	if len(products) != 1 || products[0].Name != "Óculos de Sol Aviador Clássico" {
		t.Errorf("search results = %+v", products)
	}
}

func TestView_ProductByHandleSampleFallback(t *testing.T) {
	v := newTestView(&fakeLister{fail: true})

	p, err := v.ProductByHandle(context.Background(), "oculos-esportivo-masculino")
	if err != nil {
		t.Fatalf("ProductByHandle: %v", err)
	}
	if p == nil || p.ID != "sample-3" {
		t.Errorf("got %+v, want sample-3", p)
	}
}
