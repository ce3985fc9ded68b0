// Package session persists the operator's session (token + user) in a local
// bbolt file. The session is read once at startup, written at login, and
// cleared on logout or on any 401 from the upstream API.
package session

import (
	"encoding/json"
	"sync"
	"time"

	"backoffice-service/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
	keyUser       = []byte("user")
)

// Store is the durable session store. It caches the session in memory so
// every outgoing request can read the token without touching disk.
type Store struct {
	db     *bbolt.DB
	logger *zap.Logger

	mu    sync.RWMutex
	token string
	user  *model.User
}

// Open opens (or creates) the store at path and loads any persisted session.
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, logger: logger}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSession)
		if err != nil {
			return err
		}

		if token := bucket.Get(keyToken); token != nil {
			s.token = string(token)
		}
		if raw := bucket.Get(keyUser); raw != nil {
			var user model.User
			if err := json.Unmarshal(raw, &user); err != nil {
				// A corrupt user blob is not worth failing startup over;
				// the operator just has to log in again.
				s.logger.Warn("Discarding unreadable stored session", zap.Error(err))
				s.token = ""
				if err := bucket.Delete(keyToken); err != nil {
					return err
				}
				return bucket.Delete(keyUser)
			}
			s.user = &user
		}
		return nil
	})
}

// Save persists a fresh session after a successful login.
func (s *Store) Save(token string, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if err := bucket.Put(keyToken, []byte(token)); err != nil {
			return err
		}
		return bucket.Put(keyUser, raw)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	s.logger.Info("Session saved", zap.String("user_id", user.ID))
	return nil
}

// Clear drops the session from memory and disk.
func (s *Store) Clear() {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if err := bucket.Delete(keyToken); err != nil {
			return err
		}
		return bucket.Delete(keyUser)
	})
	if err != nil {
		s.logger.Error("Failed to clear persisted session", zap.Error(err))
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Token returns the current bearer token, empty when signed out. This
// satisfies the upstream client's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in operator, nil when signed out.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Active reports whether a usable session exists: a token is present and,
// when the token carries an expiry claim, it has not passed.
func (s *Store) Active() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return false
	}
	return !tokenExpired(token, time.Now())
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// tokenExpired peeks at the token's exp claim without verifying the
// signature; verification is the upstream API's job, this only lets the UI
// prompt for a re-login before a request is wasted. Tokens that do not parse
// or carry no expiry are treated as not expired.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
