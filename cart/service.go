package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/commerce"
	entity "github.com/oticaisis/storefront/model/entity"
)

// ErrNotPurchasable reports a product with no sellable variant.
var ErrNotPurchasable = errors.New("product not purchasable")

// Commerce is the slice of the platform client the cart needs.
type Commerce interface {
	CreateCart(ctx context.Context) (*commerce.Cart, error)
	Cart(ctx context.Context, id string) (*commerce.Cart, error)
	AddLine(ctx context.Context, cartID, variantID string, quantity int) (*commerce.Cart, error)
	UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*commerce.Cart, error)
	RemoveLine(ctx context.Context, cartID, lineID string) (*commerce.Cart, error)
}

// Prefs is the durable key-value store holding the cart identity.
type Prefs interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Service keeps a local snapshot of the remote cart and serializes every
// mutation through one mutex, so concurrent add/update/remove calls cannot
// interleave their read-modify-write cycles. A failed remote call leaves the
// last known-good snapshot untouched.
type Service struct {
	client    Commerce
	prefs     Prefs
	threshold float64
	flatRate  float64

	mu      sync.Mutex
	current *commerce.Cart
}

func NewService(client Commerce, prefs Prefs, freeShippingThreshold, flatRate float64) *Service {
	return &Service{
		client:    client,
		prefs:     prefs,
		threshold: freeShippingThreshold,
		flatRate:  flatRate,
	}
}

// Initialize restores the persisted cart or creates a fresh one. A stale
// persisted ID (remote no longer knows it) or a failed restore fetch rolls
// over to a new cart.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.prefs.Get(entity.PrefCartID); ok && id != "" {
		c, err := s.client.Cart(ctx, id)
		if err == nil && c != nil {
			s.current = c
			return nil
		}
		if err != nil {
			log.Printf("restore of cart %s failed, creating a new one: %v", id, err)
		} else {
			log.Printf("cart %s is stale, creating a new one", id)
		}
	}
	return s.createLocked(ctx)
}

// createLocked provisions a new remote cart and persists its identity.
// Callers hold s.mu.
func (s *Service) createLocked(ctx context.Context) error {
	c, err := s.client.CreateCart(ctx)
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}
	s.current = c
	if err := s.prefs.Set(entity.PrefCartID, c.ID); err != nil {
		log.Printf("persist cart id: %v", err)
	}
	return nil
}

// ensureLocked lazily initializes the cart for callers that mutate before
// Initialize ran. Callers hold s.mu.
func (s *Service) ensureLocked(ctx context.Context) error {
	if s.current != nil {
		return nil
	}
	return s.createLocked(ctx)
}

// Add puts a variant in the cart. Adding a variant that is already present
// merges into the existing line with the quantities summed.
func (s *Service) Add(ctx context.Context, variantID string, quantity int) error {
	if variantID == "" {
		return fmt.Errorf("add to cart: empty variant id")
	}
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(ctx); err != nil {
		return err
	}

	for _, li := range s.current.LineItems {
		if li.Variant.ID == variantID {
			c, err := s.client.UpdateLine(ctx, s.current.ID, li.ID, li.Quantity+quantity)
			if err != nil {
				return fmt.Errorf("add to cart: %w", err)
			}
			s.current = c
			return nil
		}
	}

	c, err := s.client.AddLine(ctx, s.current.ID, variantID, quantity)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	s.current = c
	return nil
}

// AddProduct puts a product's purchasable variant in the cart. Translation
// resolves the first available variant into VariantID; a product whose
// variants are all sold out carries none and cannot be added.
func (s *Service) AddProduct(ctx context.Context, p catalog.Product, quantity int) error {
	if p.VariantID == "" {
		return fmt.Errorf("add %s to cart: %w", p.Handle, ErrNotPurchasable)
	}
	return s.Add(ctx, p.VariantID, quantity)
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, lineID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(ctx); err != nil {
		return err
	}

	c, err := s.client.UpdateLine(ctx, s.current.ID, lineID, quantity)
	if err != nil {
		return fmt.Errorf("update cart line: %w", err)
	}
	s.current = c
	return nil
}

// Remove deletes a line from the cart. Removing a line the cart does not
// hold is an error, not a silent no-op.
func (s *Service) Remove(ctx context.Context, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(ctx); err != nil {
		return err
	}

	found := false
	for _, li := range s.current.LineItems {
		if li.ID == lineID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("remove cart line: line %s not in cart", lineID)
	}

	c, err := s.client.RemoveLine(ctx, s.current.ID, lineID)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	s.current = c
	return nil
}

// Clear abandons the current cart by provisioning a fresh empty one. The
// remote keeps the old cart; only the persisted identity moves on.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(ctx)
}

// Refresh re-fetches the remote cart, rolling over to a new one when the
// remote dropped it.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(ctx); err != nil {
		return err
	}

	c, err := s.client.Cart(ctx, s.current.ID)
	if err != nil {
		return fmt.Errorf("refresh cart: %w", err)
	}
	if c == nil {
		return s.createLocked(ctx)
	}
	s.current = c
	return nil
}

// Summary returns the display cart with totals and free-shipping progress
// computed from the current snapshot.
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.current, s.threshold, s.flatRate)
}

// CheckoutURL is the handoff address of the hosted checkout, empty until a
// cart exists.
func (s *Service) CheckoutURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.WebURL
}
