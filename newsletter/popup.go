package newsletter

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	entity "github.com/oticaisis/storefront/model/entity"
)

// Store is the durable preference store the popup reads its suppression
// state from.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Subscriber forwards a confirmed email to the remote subscriber table.
type Subscriber interface {
	SubscribeNewsletter(ctx context.Context, email string) error
}

// Signal is one of the triggers that can surface the popup.
type Signal struct {
	Elapsed    time.Duration
	ScrollPct  int
	ExitIntent bool
}

// Popup decides when the newsletter prompt may appear. The rules, in order:
// never for subscribers, never within the dismissal cooldown, at most once
// per session, and only after a trigger fires (dwell time, deep scroll, or
// exit intent).
type Popup struct {
	store      Store
	subscriber Subscriber
	delay      time.Duration
	scrollPct  int
	cooldown   time.Duration
	now        func() time.Time
}

func NewPopup(store Store, subscriber Subscriber, delay time.Duration, scrollPct, cooldownDays int) *Popup {
	return &Popup{
		store:      store,
		subscriber: subscriber,
		delay:      delay,
		scrollPct:  scrollPct,
		cooldown:   time.Duration(cooldownDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// ShouldShow evaluates the trigger signal against the suppression state.
// shownThisSession comes from the caller's session record.
func (p *Popup) ShouldShow(shownThisSession bool, sig Signal) bool {
	if shownThisSession {
		return false
	}
	if p.suppressed() {
		return false
	}
	if sig.ExitIntent {
		return true
	}
	if p.scrollPct > 0 && sig.ScrollPct >= p.scrollPct {
		return true
	}
	return sig.Elapsed >= p.delay
}

func (p *Popup) suppressed() bool {
	if v, ok := p.store.Get(entity.PrefNewsletterSubscribed); ok && v == "true" {
		return true
	}
	if v, ok := p.store.Get(entity.PrefNewsletterDismissed); ok {
		unix, err := strconv.ParseInt(v, 10, 64)
		if err == nil && p.now().Sub(time.Unix(unix, 0)) < p.cooldown {
			return true
		}
	}
	return false
}

// Dismiss records a dismissal, starting the cooldown.
func (p *Popup) Dismiss() {
	v := strconv.FormatInt(p.now().Unix(), 10)
	if err := p.store.Set(entity.PrefNewsletterDismissed, v); err != nil {
		log.Printf("newsletter: persist dismissal: %v", err)
	}
}

// Subscribe validates the email, forwards it to the remote list and
// permanently suppresses the popup. The local flag is set even when the
// remote call fails, so the shopper is not prompted again over a transient
// outage.
func (p *Popup) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return fmt.Errorf("newsletter: invalid email %q", email)
	}

	if err := p.store.Set(entity.PrefNewsletterSubscribed, "true"); err != nil {
		log.Printf("newsletter: persist subscription: %v", err)
	}
	if err := p.store.Set(entity.PrefNewsletterEmail, email); err != nil {
		log.Printf("newsletter: persist email: %v", err)
	}

	if p.subscriber != nil {
		if err := p.subscriber.SubscribeNewsletter(ctx, email); err != nil {
			return fmt.Errorf("newsletter: %w", err)
		}
	}
	return nil
}

// Subscribed reports whether this shopper already joined the list.
func (p *Popup) Subscribed() bool {
	v, ok := p.store.Get(entity.PrefNewsletterSubscribed)
	return ok && v == "true"
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}
