package gateway

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"sahasra-foods/storefront/internal/cart"

	"github.com/google/uuid"
)

const SessionCookie = "sahasra_session"

// ErrCheckoutInProgress rejects cart changes and second submissions while an
// order from the same session is being sent.
var ErrCheckoutInProgress = errors.New("an order from this session is already being submitted")

// Confirmation is the outcome of the last successful checkout of a session.
type Confirmation struct {
	OrderRef    string
	WhatsAppURL string
	PlacedAt    time.Time
}

// Session is one browser's cart plus its checkout state. Fields are guarded
// by mu.
type Session struct {
	mu           sync.Mutex
	cart         *cart.Cart
	submissionID string
	submitting   bool
	last         *Confirmation
	lastSeen     time.Time
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating an empty one on first use.
func (s *SessionStore) Get(id string, now time.Time) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{cart: cart.New()}
		s.sessions[id] = sess
	}
	sess.lastSeen = now
	return sess
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions not seen since cutoff unless they are mid-checkout.
func (s *SessionStore) Prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff) && !sess.submitting
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// mutate applies fn to the cart unless a checkout is running. Any change
// invalidates the pending submission id so the edited cart is a new order.
func (sess *Session) mutate(fn func(c *cart.Cart)) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitting {
		return ErrCheckoutInProgress
	}
	fn(sess.cart)
	sess.submissionID = ""
	return nil
}

func (sess *Session) view() cartView {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return newCartView(sess.cart, sess.submitting)
}

// beginCheckout moves the session into the submitting state and returns the
// payload to send. The submission id is kept across failed attempts.
func (sess *Session) beginCheckout(customer cart.Customer, refs *cart.RefGenerator, now time.Time) (cart.OrderPayload, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.submitting {
		return cart.OrderPayload{}, ErrCheckoutInProgress
	}
	payload, err := sess.cart.BuildOrderPayload(customer, refs, now)
	if err != nil {
		return cart.OrderPayload{}, err
	}
	if sess.submissionID == "" {
		sess.submissionID = uuid.NewString()
	}
	payload.SubmissionID = sess.submissionID
	sess.submitting = true
	return payload, nil
}

// finishCheckout leaves the submitting state. On success the cart is cleared
// and the confirmation recorded; on failure the cart is kept for a retry.
func (sess *Session) finishCheckout(confirmation *Confirmation) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.submitting = false
	if confirmation == nil {
		return
	}
	sess.cart.Clear()
	sess.submissionID = ""
	sess.last = confirmation
}

func (sess *Session) lastConfirmation() *Confirmation {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.last
}

// session resolves the caller's session from its cookie, issuing a new id
// when the cookie is missing or malformed.
func (g *Gateway) session(w http.ResponseWriter, r *http.Request) *Session {
	id := ""
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if parsed, err := uuid.Parse(cookie.Value); err == nil {
			id = parsed.String()
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return g.sessions.Get(id, g.now())
}
