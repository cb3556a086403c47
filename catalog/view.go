package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oticaisis/storefront/commerce"
	"github.com/oticaisis/storefront/core/cache"
)

// Lister is the slice of the commerce client the catalog needs.
type Lister interface {
	Products(ctx context.Context, first int) ([]commerce.Product, error)
	SearchProducts(ctx context.Context, query string) ([]commerce.Product, error)
	ProductByHandle(ctx context.Context, handle string) (*commerce.Product, error)
}

const (
	fetchSize       = 50
	productsKey     = "catalog:products"
	catalogCacheTag = "catalog"
)

// View produces the filtered, sorted, paginated listings the storefront
// renders. Purely derived state: translated lists are cached (in-memory,
// plus Redis when configured) but never owned.
type View struct {
	client        Lister
	memory        *cache.Cache
	redis         *redis.Client
	search        *SearchService
	fallbackImage string
	cacheTTL      time.Duration
}

func NewView(client Lister, memory *cache.Cache, rdb *redis.Client, search *SearchService, fallbackImage string, ttl time.Duration) *View {
	if memory == nil {
		memory = cache.New()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &View{
		client:        client,
		memory:        memory,
		redis:         rdb,
		search:        search,
		fallbackImage: fallbackImage,
		cacheTTL:      ttl,
	}
}

// Products returns the translated catalog. degraded is true when the remote
// API failed and the built-in sample catalog was substituted.
func (v *View) Products(ctx context.Context) (products []Product, degraded bool) {
	if cached, ok := v.memory.Get(productsKey); ok {
		return cached.([]Product), false
	}
	if products := v.redisGet(ctx); products != nil {
		v.memory.Set(productsKey, products, v.cacheTTL, []string{catalogCacheTag})
		return products, false
	}

	remote, err := v.client.Products(ctx, fetchSize)
	if err != nil {
		log.Println("catalog fetch failed, serving sample catalog:", err)
		return SampleProducts(), true
	}

	products = TranslateAll(remote, v.fallbackImage)
	v.memory.Set(productsKey, products, v.cacheTTL, []string{catalogCacheTag})
	v.redisSet(ctx, products)

	if v.search.Enabled() {
		if err := v.search.IndexProducts(ctx, products); err != nil {
			log.Println("search index update failed:", err)
		}
	}
	return products, false
}

// ProductByHandle resolves one product for the detail page. Falls back to
// the sample catalog when the remote call fails, (nil, nil) when the handle
// simply does not exist.
func (v *View) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	remote, err := v.client.ProductByHandle(ctx, handle)
	if err != nil {
		for _, p := range SampleProducts() {
			if p.Handle == handle {
				sample := p
				return &sample, nil
			}
		}
		return nil, err
	}
	if remote == nil {
		return nil, nil
	}
	p := Translate(*remote, v.fallbackImage)
	return &p, nil
}

// Search runs a remote (or indexed) search. degraded is true when every
// remote path failed and a local substring filter was substituted.
func (v *View) Search(ctx context.Context, query string) (products []Product, degraded bool) {
	if v.search.Enabled() {
		handles, err := v.search.Search(ctx, query)
		if err == nil && handles != nil {
			all, deg := v.Products(ctx)
			byHandle := make(map[string]Product, len(all))
			for _, p := range all {
				byHandle[p.Handle] = p
			}
			out := make([]Product, 0, len(handles))
			for _, h := range handles {
				if p, ok := byHandle[h]; ok {
					out = append(out, p)
				}
			}
			return out, deg
		}
		if err != nil {
			log.Println("indexed search failed, trying remote search:", err)
		}
	}

	remote, err := v.client.SearchProducts(ctx, query)
	if err != nil {
		log.Println("remote search failed, filtering locally:", err)
		all, _ := v.Products(ctx)
		return Filters{Search: query}.Apply(all), true
	}
	return TranslateAll(remote, v.fallbackImage), false
}

// List applies filters, sort and pagination over the catalog. A changed
// filter set implies page 1; callers pass page explicitly only for
// navigation within an unchanged filter set.
func (v *View) List(ctx context.Context, f Filters, field SortField, desc bool, page int) (Page, bool) {
	products, degraded := v.Products(ctx)
	filtered := f.Apply(products)
	Sort(filtered, field, desc)
	return Paginate(filtered, page, DefaultPageSize), degraded
}

// Warm drops the caches and refetches. Used by the cron warm job.
func (v *View) Warm(ctx context.Context) error {
	v.memory.DeleteByTag(catalogCacheTag)
	if v.redis != nil {
		v.redis.Del(ctx, productsKey)
	}
	_, degraded := v.Products(ctx)
	if degraded {
		return fmt.Errorf("catalog warm: remote fetch failed, sample catalog active")
	}
	return nil
}

func (v *View) redisGet(ctx context.Context) []Product {
	if v.redis == nil {
		return nil
	}
	raw, err := v.redis.Get(ctx, productsKey).Bytes()
	if err != nil {
		return nil
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil
	}
	return products
}

func (v *View) redisSet(ctx context.Context, products []Product) {
	if v.redis == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := v.redis.Set(ctx, productsKey, raw, v.cacheTTL).Err(); err != nil {
		log.Println("redis cache write failed:", err)
	}
}
