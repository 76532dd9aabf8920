// Package services: services/identity_service.go
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"street-scan/logger"
	"street-scan/models"
	"street-scan/store"
)

// IdentityServiceInterface owns signup, login, logout and the per-browser
// session records. Every operation on an existing session takes the session ID
// issued at login; two browsers logged in at once never share state.
type IdentityServiceInterface interface {
	Signup(name, email, password string) error
	Login(email, password string) (string, models.Session, error)
	Logout(sid string) error
	CurrentSession(sid string) (*models.Session, error)
	AttachLocation(sid string, loc models.Location) error
}

// IdentityService validates credentials against the stored user collection or
// the fixed administrator pair, and keeps one session record per browsing
// context, keyed by a random session ID.
type IdentityService struct {
	mu            sync.Mutex
	store         store.Store
	adminEmail    string
	adminPassword string
	locator       Locator
}

// NewIdentityService wires the store, the configured administrator credential
// pair and an optional geolocation provider. A nil locator disables the
// post-login enrichment entirely.
func NewIdentityService(st store.Store, adminEmail, adminPassword string, locator Locator) *IdentityService {
	return &IdentityService{
		store:         st,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		locator:       locator,
	}
}

// Signup appends a new user to the users collection. It does not
// authenticate: the caller must log in separately afterwards.
func (s *IdentityService) Signup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return models.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	if _, err := s.store.Get(store.KeyUsers, &users); err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == email {
			logger.Warn.Printf("[Signup] duplicate email rejected: %s", email)
			return models.ErrDuplicateUser
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users = append(users, models.User{Name: name, Email: email, Password: string(hash)})
	if err := s.store.Set(store.KeyUsers, users); err != nil {
		return err
	}
	logger.Info.Printf("[Signup] user created: %s", email)
	return nil
}

// Login establishes a session record for one browsing context and returns the
// session ID the caller must present on subsequent requests. The fixed
// administrator pair is checked first and never consults the users collection;
// everything else is matched against stored users. The session carries name
// and email only; the password never leaves the users record.
func (s *IdentityService) Login(email, password string) (string, models.Session, error) {
	sid, sess, err := s.authenticate(email, password)
	if err != nil {
		return "", models.Session{}, err
	}

	// Best-effort geolocation enrichment: at most one request per login, only
	// for non-admin sessions. A failure leaves the session unchanged and never
	// surfaces to the caller.
	if s.locator != nil && !sess.IsAdmin && sess.Location == nil {
		go s.requestLocation(sid)
	}
	return sid, sess, nil
}

func (s *IdentityService) authenticate(email, password string) (string, models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adminPassword != "" &&
		subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1 {
		sess := models.Session{Email: s.adminEmail, Name: "Admin", IsAdmin: true}
		sid, err := s.establish(sess)
		if err != nil {
			return "", models.Session{}, err
		}
		logger.Info.Println("[Login] administrator session established")
		return sid, sess, nil
	}

	users := []models.User{}
	if _, err := s.store.Get(store.KeyUsers, &users); err != nil {
		return "", models.Session{}, err
	}
	for _, u := range users {
		if u.Email == email && bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			sess := models.Session{Email: u.Email, Name: u.Name}
			sid, err := s.establish(sess)
			if err != nil {
				return "", models.Session{}, err
			}
			logger.Info.Printf("[Login] session established for %s", u.Email)
			return sid, sess, nil
		}
	}

	logger.Warn.Printf("[Login] invalid credentials for %s", email)
	return "", models.Session{}, models.ErrInvalidCredentials
}

// establish issues a fresh random session ID and writes the session record
// under it. Caller holds the mutex.
func (s *IdentityService) establish(sess models.Session) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	sid := hex.EncodeToString(buf)
	if err := s.store.Set(store.SessionKey(sid), sess); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *IdentityService) requestLocation(sid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	loc, err := s.locator.Locate(ctx)
	if err != nil {
		logger.Debug.Printf("[Login] geolocation unavailable: %v", err)
		return
	}
	if err := s.AttachLocation(sid, loc); err != nil {
		logger.Warn.Printf("[Login] could not attach location: %v", err)
	}
}

// AttachLocation merge-updates one session record with a location. The rest
// of the session is left as is. A missing record makes this a no-op: the
// user logged out before the lookup resolved.
func (s *IdentityService) AttachLocation(sid string, loc models.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess models.Session
	found, err := s.store.Get(store.SessionKey(sid), &sess)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	sess.Location = &loc
	return s.store.Set(store.SessionKey(sid), sess)
}

// Logout clears one browsing context's session record. Other logged-in
// browsers are untouched.
func (s *IdentityService) Logout(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(store.SessionKey(sid))
}

// CurrentSession returns the session for one browsing context, or nil when
// that context is not logged in. Every other component uses this as the sole
// authorization check.
func (s *IdentityService) CurrentSession(sid string) (*models.Session, error) {
	if sid == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var sess models.Session
	found, err := s.store.Get(store.SessionKey(sid), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &sess, nil
}
