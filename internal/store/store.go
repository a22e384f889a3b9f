package store

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/pawhootz/storefront-backend/internal/models"
)

type sessionState struct {
	Cart []models.CartItem `json:"cart"`
	User *models.User      `json:"user,omitempty"`
}

// Store holds per-session storefront state: the cart and the signed-in
// user. It is the server-side analog of the storefront's browser-local
// storage, including its persistence contract: snapshots are best-effort,
// and a corrupt or missing snapshot file loads as empty state.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
	path     string
	logger   *log.Logger
}

// New creates a Store, loading the snapshot at path if one is readable.
// An empty path disables persistence.
func New(path string, logger *log.Logger) *Store {
	s := &Store{
		sessions: make(map[string]*sessionState),
		path:     path,
		logger:   logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var sessions map[string]*sessionState
	if err := json.Unmarshal(data, &sessions); err != nil || sessions == nil {
		s.logger.Printf("Ignoring corrupt state file %s: %v", s.path, err)
		return
	}
	s.sessions = sessions
}

// persistLocked writes a best-effort snapshot; failures are logged and
// otherwise ignored. Must be called with the mutex held.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}

	data, err := json.Marshal(s.sessions)
	if err == nil {
		err = os.WriteFile(s.path, data, 0o644)
	}
	if err != nil {
		s.logger.Printf("Could not persist session state: %v", err)
	}
}

// session must be called with the mutex held.
func (s *Store) session(id string) *sessionState {
	st, ok := s.sessions[id]
	if !ok {
		st = &sessionState{}
		s.sessions[id] = st
	}
	return st
}

// Cart returns a copy of the session's cart.
func (s *Store) Cart(sid string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyCart(s.session(sid).Cart)
}

// AddToCart adds one unit of the product, merging with an existing line.
func (s *Store) AddToCart(sid string, p models.Product) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	merged := false
	for i := range st.Cart {
		if st.Cart[i].ID == p.ID {
			st.Cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		st.Cart = append(st.Cart, models.CartItem{Product: p, Quantity: 1})
	}

	s.persistLocked()
	return copyCart(st.Cart)
}

// UpdateQuantity adjusts a cart line by delta, clamping at zero. A line
// at zero quantity is removed rather than retained.
func (s *Store) UpdateQuantity(sid, productID string, delta int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	kept := st.Cart[:0]
	for _, item := range st.Cart {
		if item.ID == productID {
			item.Quantity += delta
			if item.Quantity < 0 {
				item.Quantity = 0
			}
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	st.Cart = kept

	s.persistLocked()
	return copyCart(st.Cart)
}

// RemoveItem drops a cart line entirely, whatever its quantity.
func (s *Store) RemoveItem(sid, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	kept := st.Cart[:0]
	for _, item := range st.Cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	st.Cart = kept

	s.persistLocked()
	return copyCart(st.Cart)
}

// Checkout clears the cart, including its persisted snapshot, and returns
// the order summary. There is no payment integration; checkout is a
// cosmetic confirmation.
func (s *Store) Checkout(sid string) (items int, total float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	for _, item := range st.Cart {
		items += item.Quantity
		total += item.Price * float64(item.Quantity)
	}
	st.Cart = nil

	s.persistLocked()
	return items, total
}

// Login records the signed-in shopper. The flow is simulated: no
// credential is verified and the display name is derived from the email.
func (s *Store) Login(sid, email string) models.User {
	user := models.User{
		Name:  displayNameFromEmail(email),
		Email: email,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sid).User = &user
	s.persistLocked()
	return user
}

func (s *Store) Logout(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sid).User = nil
	s.persistLocked()
}

// User returns the session's signed-in shopper, if any.
func (s *Store) User(sid string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.session(sid).User
	if u == nil {
		return models.User{}, false
	}
	return *u, true
}

func copyCart(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}

func displayNameFromEmail(email string) string {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	if name == "" {
		return "Guest"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
