package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
)

// Delay between the add-to-cart confirmation and the automatic close.
const quickViewCloseDelay = 1500 * time.Millisecond

// Sessions untouched for this long are reclaimed on the next Open.
const quickViewIdleTTL = 15 * time.Minute

var (
	ErrQuickViewNotFound = errors.New("quick view session not found")
	ErrInvalidSize       = errors.New("invalid size")
	ErrSizeRequired      = errors.New("select a size first")
)

// QuickViewService manages the per-product quick-view sessions. Each
// session walks closed → open → open(size selected) → confirming → closed;
// add-to-cart is gated on a selected size, and the confirming state closes
// itself after a fixed delay unless the session is dismissed first.
type QuickViewService struct {
	mu         sync.Mutex
	sessions   map[string]*quickViewSession
	closeDelay time.Duration
	idleTTL    time.Duration
}

type quickViewSession struct {
	id           string
	product      models.Product
	selectedSize string
	confirming   bool
	closeTimer   *time.Timer
	touchedAt    time.Time
}

func NewQuickViewService() *QuickViewService {
	return &QuickViewService{
		sessions:   make(map[string]*quickViewSession),
		closeDelay: quickViewCloseDelay,
		idleTTL:    quickViewIdleTTL,
	}
}

// Open starts a quick-view session for the product with no size selected.
// Sessions abandoned past the idle TTL are swept here, so a client that
// never dismisses cannot grow the map without bound.
func (s *QuickViewService) Open(product models.Product) models.QuickViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepIdle(time.Now())

	session := &quickViewSession{
		id:        newSessionID(),
		product:   product,
		touchedAt: time.Now(),
	}
	s.sessions[session.id] = session
	return session.snapshot()
}

// SelectSize records the chosen size. Only open sessions accept a size;
// a confirming session is already on its way out.
func (s *QuickViewService) SelectSize(id, size string) (models.QuickViewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.QuickViewSnapshot{}, ErrQuickViewNotFound
	}
	if session.confirming {
		return session.snapshot(), nil
	}
	if !validSize(size) {
		return models.QuickViewSnapshot{}, ErrInvalidSize
	}
	session.selectedSize = size
	session.touchedAt = time.Now()
	return session.snapshot(), nil
}

// AddToCart moves a session with a selected size into confirming and
// schedules the auto-close. Without a size the call is a no-op and the
// state is unchanged.
func (s *QuickViewService) AddToCart(id string) (models.QuickViewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.QuickViewSnapshot{}, ErrQuickViewNotFound
	}
	if session.selectedSize == "" {
		return session.snapshot(), ErrSizeRequired
	}
	if session.confirming {
		return session.snapshot(), nil
	}

	session.confirming = true
	session.touchedAt = time.Now()
	session.closeTimer = time.AfterFunc(s.closeDelay, func() {
		s.autoClose(id, session)
	})
	log.Printf("[quickview] session %s confirmed %s (%s)", session.id, session.product.Name, session.selectedSize)
	return session.snapshot(), nil
}

// Dismiss closes the session from any state and cancels a pending
// auto-close, so a stale timer can never fire against a session reopened
// for a different product.
func (s *QuickViewService) Dismiss(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrQuickViewNotFound
	}
	if session.closeTimer != nil {
		session.closeTimer.Stop()
	}
	delete(s.sessions, id)
	return nil
}

// Get returns the current snapshot of a session.
func (s *QuickViewService) Get(id string) (models.QuickViewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.QuickViewSnapshot{}, ErrQuickViewNotFound
	}
	session.touchedAt = time.Now()
	return session.snapshot(), nil
}

// sweepIdle drops sessions whose last activity is older than the idle TTL.
// Caller holds s.mu.
func (s *QuickViewService) sweepIdle(now time.Time) {
	for id, session := range s.sessions {
		if now.Sub(session.touchedAt) < s.idleTTL {
			continue
		}
		if session.closeTimer != nil {
			session.closeTimer.Stop()
		}
		delete(s.sessions, id)
		log.Printf("[quickview] session %s reclaimed after idling", id)
	}
}

func (s *QuickViewService) autoClose(id string, scheduled *quickViewSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The id may have been dismissed and reissued between the schedule and
	// the fire; only close the exact session the timer was armed for.
	current, ok := s.sessions[id]
	if !ok || current != scheduled || !current.confirming {
		return
	}
	delete(s.sessions, id)
}

func (qs *quickViewSession) snapshot() models.QuickViewSnapshot {
	state := models.QuickViewOpen
	if qs.confirming {
		state = models.QuickViewConfirming
	}
	return models.QuickViewSnapshot{
		ID:           qs.id,
		Product:      qs.product,
		Sizes:        models.QuickViewSizes,
		SelectedSize: qs.selectedSize,
		State:        state,
		CanAddToCart: qs.selectedSize != "" && !qs.confirming,
	}
}

func validSize(size string) bool {
	for _, s := range models.QuickViewSizes {
		if s == size {
			return true
		}
	}
	return false
}
