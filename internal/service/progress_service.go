package service

import (
	"math"
	"sync"
	"time"

	"lechemin_backend/internal/model"

	"go.uber.org/zap"
)

// ProgressStore is the persistence boundary for completion flags.
// *repository.ProgressRepository satisfies it.
type ProgressStore interface {
	Upsert(record *model.ProgressRecord) error
	ListByUser(userID uint) ([]model.ProgressRecord, error)
}

// noticeTTL is how long a failure notice stays visible.
const noticeTTL = 2 * time.Second

type recordKey struct {
	ModuleID string
	Type     model.ProgressType
	Key      string
}

type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ToggleResult is what the caller observes after a toggle settles:
// the effective completion value, whether the optimistic value had to be
// reverted, and the notice recorded on failure.
type ToggleResult struct {
	Completed bool   `json:"completed"`
	Reverted  bool   `json:"reverted"`
	Notice    string `json:"notice,omitempty"`
}

// ProgressService keeps an optimistic in-memory view of completion flags in
// front of the store. A toggle applies locally first, then upserts; on store
// failure the local value reverts to its exact prior state and a short-lived
// notice is recorded. Public operations never return an error for toggles.
type ProgressService struct {
	store ProgressStore
	log   *zap.Logger

	mu      sync.Mutex
	state   map[uint]map[recordKey]bool
	loaded  map[uint]bool
	notices map[uint][]Notice
	now     func() time.Time
}

func NewProgressService(store ProgressStore, log *zap.Logger) *ProgressService {
	return &ProgressService{
		store:   store,
		log:     log,
		state:   make(map[uint]map[recordKey]bool),
		loaded:  make(map[uint]bool),
		notices: make(map[uint][]Notice),
		now:     time.Now,
	}
}

func (s *ProgressService) userState(userID uint) map[recordKey]bool {
	st, ok := s.state[userID]
	if !ok {
		st = make(map[recordKey]bool)
		s.state[userID] = st
	}
	return st
}

// Toggle sets one completion flag. Called without a user it refuses
// silently rather than corrupting state.
func (s *ProgressService) Toggle(userID uint, moduleID string, ptype model.ProgressType, key string, next bool) ToggleResult {
	if userID == 0 {
		return ToggleResult{}
	}

	rk := recordKey{ModuleID: moduleID, Type: ptype, Key: key}

	s.mu.Lock()
	st := s.userState(userID)
	prev, had := st[rk]
	st[rk] = next
	s.mu.Unlock()

	err := s.store.Upsert(&model.ProgressRecord{
		UserID:    userID,
		ModuleID:  moduleID,
		Type:      ptype,
		Key:       key,
		Completed: next,
	})
	if err == nil {
		return ToggleResult{Completed: next}
	}

	s.mu.Lock()
	if had {
		st[rk] = prev
	} else {
		delete(st, rk)
	}
	notice := s.pushNoticeLocked(userID)
	s.mu.Unlock()

	s.log.Warn("progress upsert failed, reverted",
		zap.Uint("user_id", userID),
		zap.String("module_id", moduleID),
		zap.String("key", key),
		zap.Error(err),
	)
	return ToggleResult{Completed: had && prev, Reverted: true, Notice: notice}
}

// ToggleAll sets a batch of keys of one module/type. Upserts run
// sequentially; the first failure reverts the whole batch to its prior
// values and records a single notice.
func (s *ProgressService) ToggleAll(userID uint, moduleID string, ptype model.ProgressType, keys []string, next bool) ToggleResult {
	if userID == 0 || len(keys) == 0 {
		return ToggleResult{}
	}

	s.mu.Lock()
	st := s.userState(userID)
	type prior struct {
		value bool
		had   bool
	}
	snapshot := make(map[recordKey]prior, len(keys))
	for _, key := range keys {
		rk := recordKey{ModuleID: moduleID, Type: ptype, Key: key}
		// Only the first occurrence of a key holds its true prior value;
		// later duplicates would snapshot the already-applied next.
		if _, seen := snapshot[rk]; !seen {
			v, had := st[rk]
			snapshot[rk] = prior{value: v, had: had}
		}
		st[rk] = next
	}
	s.mu.Unlock()

	for _, key := range keys {
		err := s.store.Upsert(&model.ProgressRecord{
			UserID:    userID,
			ModuleID:  moduleID,
			Type:      ptype,
			Key:       key,
			Completed: next,
		})
		if err == nil {
			continue
		}

		s.mu.Lock()
		for rk, p := range snapshot {
			if p.had {
				st[rk] = p.value
			} else {
				delete(st, rk)
			}
		}
		notice := s.pushNoticeLocked(userID)
		s.mu.Unlock()

		s.log.Warn("batch progress upsert failed, batch reverted",
			zap.Uint("user_id", userID),
			zap.String("module_id", moduleID),
			zap.Error(err),
		)
		return ToggleResult{Reverted: true, Notice: notice}
	}

	return ToggleResult{Completed: next}
}

// List returns the user's completion records, seeding the local view from
// the store on first access so later toggles revert against real values.
func (s *ProgressService) List(userID uint) ([]model.ProgressRecord, error) {
	records, err := s.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if !s.loaded[userID] {
		st := s.userState(userID)
		for _, r := range records {
			rk := recordKey{ModuleID: r.ModuleID, Type: r.Type, Key: r.Key}
			if _, ok := st[rk]; !ok {
				st[rk] = r.Completed
			}
		}
		s.loaded[userID] = true
	}
	s.mu.Unlock()

	return records, nil
}

// Completed reports the locally observed value for one key.
func (s *ProgressService) Completed(userID uint, moduleID string, ptype model.ProgressType, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userState(userID)[recordKey{ModuleID: moduleID, Type: ptype, Key: key}]
}

// Notices returns the user's still-active failure notices.
func (s *ProgressService) Notices(userID uint) []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	active := s.notices[userID][:0]
	for _, n := range s.notices[userID] {
		if n.ExpiresAt.After(now) {
			active = append(active, n)
		}
	}
	s.notices[userID] = active

	out := make([]Notice, len(active))
	copy(out, active)
	return out
}

func (s *ProgressService) pushNoticeLocked(userID uint) string {
	const msg = "Une erreur est survenue, réessayez."
	s.notices[userID] = append(s.notices[userID], Notice{
		Message:   msg,
		ExpiresAt: s.now().Add(noticeTTL),
	})
	return msg
}

// ModuleProgress computes a completion percentage, defined as 0 when the
// module has no trackable items.
func ModuleProgress(total, done int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
