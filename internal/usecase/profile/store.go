package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/infrastructure/kv"
	"tradeaskill/internal/pkg/metrics"
)

const (
	currentUserKey = "currentUser"
	loggedInKey    = "isLoggedIn"
)

var (
	ErrUnknownList  = errors.New("unknown skill list")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type SkillList string

const (
	ListTeach SkillList = "teach"
	ListLearn SkillList = "learn"
)

func ParseSkillList(raw string) (SkillList, error) {
	switch SkillList(strings.ToLower(strings.TrimSpace(raw))) {
	case ListTeach:
		return ListTeach, nil
	case ListLearn:
		return ListLearn, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownList, raw)
}

// Notifier is told about every persisted change, e.g. to refresh other tabs
// of the same session.
type Notifier interface {
	ProfileChanged(sessionID string, p user.Profile)
}

// Edit carries the editable profile fields. Blank values keep the current one.
type Edit struct {
	FirstName string
	LastName  string
	Email     string
	Bio       string
}

// Store persists the current user of each session into a kv.Store and keeps
// a bounded in-memory copy that always mirrors what was last written.
type Store struct {
	kv       kv.Store
	notifier Notifier
	logger   *log.Logger

	mu    sync.Mutex
	cache *profileCache
}

type Option func(*Store)

// WithCache bounds the in-memory copy to size sessions, each kept for at
// most ttl after its last write. Zero values keep the defaults.
func WithCache(size int, ttl time.Duration) Option {
	return func(s *Store) { s.cache = newProfileCache(size, ttl) }
}

func NewStore(store kv.Store, notifier Notifier, logger *log.Logger, opts ...Option) *Store {
	s := &Store{kv: store, notifier: notifier, logger: logger, cache: newProfileCache(0, 0)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sessionKey(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}

// Load returns the session's profile, or the guest profile when nothing (or
// nothing readable) is persisted. The guest is not written back.
func (s *Store) Load(ctx context.Context, sessionID string) (user.Profile, error) {
	if sessionID == "" {
		return user.Profile{}, ErrInvalidInput
	}

	s.mu.Lock()
	cached, ok := s.cache.get(sessionID)
	s.mu.Unlock()
	if ok {
		return cached.Clone(), nil
	}

	raw, found, err := s.kv.Get(ctx, sessionKey(sessionID, currentUserKey))
	if err != nil {
		s.logf("[Profile] Load failed session=%s err=%v", sessionID, err)
		return user.Profile{}, ErrInternal
	}
	if !found {
		return user.GuestProfile(), nil
	}

	var p user.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		metrics.StorageParseErrors.Inc()
		s.logf("[Profile] Stored profile unreadable, using guest session=%s err=%v", sessionID, err)
		return user.GuestProfile(), nil
	}
	p = p.Clone()

	// A Save may have landed while the read was in flight; its value wins.
	s.mu.Lock()
	if cur, ok := s.cache.get(sessionID); ok {
		p = cur
	} else {
		s.cache.put(sessionID, p)
	}
	s.mu.Unlock()
	return p.Clone(), nil
}

// Save overwrites the persisted profile with p.
func (s *Store) Save(ctx context.Context, sessionID string, p user.Profile) error {
	if sessionID == "" {
		return ErrInvalidInput
	}
	p = p.Clone()

	b, err := json.Marshal(p)
	if err != nil {
		return ErrInternal
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID, currentUserKey), string(b)); err != nil {
		s.logf("[Profile] Save failed session=%s err=%v", sessionID, err)
		// The persisted copy may be stale now; drop ours so the next Load rereads it.
		s.evict(sessionID)
		return ErrInternal
	}

	s.mu.Lock()
	s.cache.put(sessionID, p)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.ProfileChanged(sessionID, p.Clone())
	}
	return nil
}

// AddSkill appends the trimmed text to the list and persists. Blank text is
// ignored and p is returned unchanged.
func (s *Store) AddSkill(ctx context.Context, sessionID string, p user.Profile, list SkillList, text string) (user.Profile, error) {
	if list != ListTeach && list != ListLearn {
		return p, ErrUnknownList
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return p, nil
	}

	next := p.Clone()
	switch list {
	case ListTeach:
		next.SkillsToTeach = append(next.SkillsToTeach, text)
	case ListLearn:
		next.SkillsToLearn = append(next.SkillsToLearn, text)
	}
	if err := s.Save(ctx, sessionID, next); err != nil {
		return p, err
	}
	return next, nil
}

// RemoveSkill drops the first entry equal to text and persists. When text is
// not in the list nothing is written.
func (s *Store) RemoveSkill(ctx context.Context, sessionID string, p user.Profile, list SkillList, text string) (user.Profile, error) {
	next := p.Clone()

	var items *[]string
	switch list {
	case ListTeach:
		items = &next.SkillsToTeach
	case ListLearn:
		items = &next.SkillsToLearn
	default:
		return p, ErrUnknownList
	}

	idx := -1
	for i, it := range *items {
		if it == text {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p, nil
	}
	*items = append((*items)[:idx], (*items)[idx+1:]...)

	if err := s.Save(ctx, sessionID, next); err != nil {
		return p, err
	}
	return next, nil
}

// Update applies an edit and persists.
func (s *Store) Update(ctx context.Context, sessionID string, p user.Profile, e Edit) (user.Profile, error) {
	next := p.Clone()
	next.FirstName = keepIfBlank(e.FirstName, next.FirstName)
	next.LastName = keepIfBlank(e.LastName, next.LastName)
	next.Email = keepIfBlank(e.Email, next.Email)
	next.Bio = keepIfBlank(e.Bio, next.Bio)

	if err := s.Save(ctx, sessionID, next); err != nil {
		return p, err
	}
	return next, nil
}

// SignIn persists p as the session's current user and raises the logged-in flag.
func (s *Store) SignIn(ctx context.Context, sessionID string, p user.Profile) error {
	if err := s.Save(ctx, sessionID, p); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID, loggedInKey), "true"); err != nil {
		s.logf("[Profile] SignIn flag failed session=%s err=%v", sessionID, err)
		return ErrInternal
	}
	return nil
}

func (s *Store) IsLoggedIn(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, ErrInvalidInput
	}
	v, ok, err := s.kv.Get(ctx, sessionKey(sessionID, loggedInKey))
	if err != nil {
		return false, ErrInternal
	}
	return ok && v == "true", nil
}

// SignOut removes the persisted profile and lowers the logged-in flag; the
// next Load yields the guest profile.
func (s *Store) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidInput
	}
	s.evict(sessionID)

	if err := s.kv.Delete(ctx, sessionKey(sessionID, currentUserKey)); err != nil {
		s.logf("[Profile] SignOut failed session=%s err=%v", sessionID, err)
		return ErrInternal
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID, loggedInKey), "false"); err != nil {
		s.logf("[Profile] SignOut flag failed session=%s err=%v", sessionID, err)
		return ErrInternal
	}
	if s.notifier != nil {
		s.notifier.ProfileChanged(sessionID, user.GuestProfile())
	}
	return nil
}

func (s *Store) evict(sessionID string) {
	s.mu.Lock()
	s.cache.remove(sessionID)
	s.mu.Unlock()
}

func keepIfBlank(v, current string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return current
	}
	return v
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
