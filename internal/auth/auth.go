package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/GURROLAG/appAgenda/internal/store"
)

const (
	sessionKey = "session"
	secretKey  = "session_secret"

	minPasswordLen = 6
	sessionTTL     = 30 * 24 * time.Hour
)

// Service manages accounts and the current signed-in state. Sign-in
// survives restarts through a signed session token kept in the settings
// table; the signing secret is generated once per install.
type Service struct {
	store *store.Store

	mu      sync.Mutex
	current *store.Account
	subs    map[int]func(*store.Account)
	nextSub int
}

func New(s *store.Store) *Service {
	return &Service{store: s, subs: make(map[int]func(*store.Account))}
}

// Current returns the signed-in account, or nil.
func (a *Service) Current() *store.Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// OnStateChanged registers fn with the auth state stream. fn fires on
// every state resolution: Restore at startup, sign-in, sign-up, and
// sign-out. The returned unsubscribe is idempotent.
func (a *Service) OnStateChanged(fn func(*store.Account)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subs, id)
			a.mu.Unlock()
		})
	}
}

// Restore resolves the persisted session token into an account, if any.
// Any token problem (missing, expired, forged, orphaned account) clears
// the session and resolves to signed-out; it is never an error.
func (a *Service) Restore() *store.Account {
	token, err := a.store.GetSetting(sessionKey)
	if err != nil || token == "" {
		a.setCurrent(nil)
		return nil
	}

	secret, err := a.secret()
	if err != nil {
		a.setCurrent(nil)
		return nil
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		a.store.DeleteSetting(sessionKey)
		a.setCurrent(nil)
		return nil
	}

	id, _ := claims["sub"].(string)
	acct, err := a.store.GetAccount(id)
	if err != nil {
		a.store.DeleteSetting(sessionKey)
		a.setCurrent(nil)
		return nil
	}

	a.setCurrent(acct)
	return acct
}

// SignUp registers a new account and signs it in.
func (a *Service) SignUp(email, password string) (*store.Account, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	existing, err := a.store.GetAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct, err := a.store.CreateAccount(email, string(hash))
	if err != nil {
		return nil, err
	}

	if err := a.persistSession(acct); err != nil {
		return nil, err
	}
	a.setCurrent(acct)
	return acct, nil
}

// SignIn authenticates an existing account. A missing account and a bad
// password are indistinguishable to the caller.
func (a *Service) SignIn(email, password string) (*store.Account, error) {
	email = strings.TrimSpace(email)
	acct, err := a.store.GetAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrWrongCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ErrWrongCredentials
	}

	if err := a.persistSession(acct); err != nil {
		return nil, err
	}
	a.setCurrent(acct)
	return acct, nil
}

// SignOut clears the persisted session and the current account.
func (a *Service) SignOut() {
	a.store.DeleteSetting(sessionKey)
	a.setCurrent(nil)
}

func (a *Service) persistSession(acct *store.Account) error {
	secret, err := a.secret()
	if err != nil {
		return err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acct.ID,
		"email": acct.Email,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	return a.store.SetSetting(sessionKey, signed)
}

// secret returns the per-install signing secret, generating it on first
// use.
func (a *Service) secret() ([]byte, error) {
	v, err := a.store.GetSetting(secretKey)
	if err != nil {
		return nil, err
	}
	if v != "" {
		return []byte(v), nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	v = hex.EncodeToString(buf)
	if err := a.store.SetSetting(secretKey, v); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (a *Service) setCurrent(acct *store.Account) {
	a.mu.Lock()
	a.current = acct
	fns := make([]func(*store.Account), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(acct)
	}
}
