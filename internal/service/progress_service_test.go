package service

import (
	"errors"
	"testing"
	"time"

	"lechemin_backend/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProgressStore struct {
	upserts []model.ProgressRecord
	records []model.ProgressRecord
	failing bool
	// failAfter fails every upsert once this many calls have succeeded.
	failAfter int
}

func (f *fakeProgressStore) Upsert(record *model.ProgressRecord) error {
	if f.failing || (f.failAfter > 0 && len(f.upserts) >= f.failAfter) {
		return errors.New("store down")
	}
	f.upserts = append(f.upserts, *record)
	return nil
}

func (f *fakeProgressStore) ListByUser(userID uint) ([]model.ProgressRecord, error) {
	return f.records, nil
}

func TestToggle_SetsAndPersists(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	res := s.Toggle(1, "linux-basics", model.ProgressSkill, "k1", true)
	require.True(t, res.Completed)
	require.False(t, res.Reverted)
	require.Empty(t, res.Notice)
	require.True(t, s.Completed(1, "linux-basics", model.ProgressSkill, "k1"))
	require.Len(t, store.upserts, 1)
	require.True(t, store.upserts[0].Completed)
}

func TestToggle_SameValueTwiceIsIdempotent(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	s.Toggle(1, "m", model.ProgressSkill, "k", true)
	res := s.Toggle(1, "m", model.ProgressSkill, "k", true)
	require.True(t, res.Completed)
	require.True(t, s.Completed(1, "m", model.ProgressSkill, "k"))
}

func TestToggle_AnonymousUserIsNoOp(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	res := s.Toggle(0, "m", model.ProgressSkill, "k", true)
	require.Equal(t, ToggleResult{}, res)
	require.Empty(t, store.upserts)
}

func TestToggle_RevertsOnStoreFailure(t *testing.T) {
	store := &fakeProgressStore{failing: true}
	s := NewProgressService(store, zap.NewNop())

	res := s.Toggle(1, "m", model.ProgressSkill, "k", true)
	require.True(t, res.Reverted)
	require.False(t, res.Completed)
	require.Equal(t, "Une erreur est survenue, réessayez.", res.Notice)
	// The optimistic value is gone, not merely set to false.
	require.False(t, s.Completed(1, "m", model.ProgressSkill, "k"))

	notices := s.Notices(1)
	require.Len(t, notices, 1)
}

func TestToggle_RevertRestoresPriorTrue(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	s.Toggle(1, "m", model.ProgressSkill, "k", true)

	store.failing = true
	res := s.Toggle(1, "m", model.ProgressSkill, "k", false)
	require.True(t, res.Reverted)
	require.True(t, res.Completed, "revert restores the prior true value")
	require.True(t, s.Completed(1, "m", model.ProgressSkill, "k"))
}

func TestNotices_Expire(t *testing.T) {
	store := &fakeProgressStore{failing: true}
	s := NewProgressService(store, zap.NewNop())

	base := time.Now()
	s.now = func() time.Time { return base }

	s.Toggle(1, "m", model.ProgressSkill, "k", true)
	require.Len(t, s.Notices(1), 1)

	s.now = func() time.Time { return base.Add(noticeTTL + time.Millisecond) }
	require.Empty(t, s.Notices(1))
}

func TestToggleAll_AppliesBatch(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	keys := []string{"k1", "k2", "k3"}
	res := s.ToggleAll(1, "m", model.ProgressResource, keys, true)
	require.True(t, res.Completed)
	require.False(t, res.Reverted)
	require.Len(t, store.upserts, 3)
	for _, k := range keys {
		require.True(t, s.Completed(1, "m", model.ProgressResource, k))
	}
}

func TestToggleAll_RevertsWholeBatchOnFirstFailure(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	s.Toggle(1, "m", model.ProgressSkill, "k1", true)
	store.failAfter = 3 // the batch's third upsert will fail

	res := s.ToggleAll(1, "m", model.ProgressSkill, []string{"k1", "k2", "k3"}, false)
	require.True(t, res.Reverted)
	require.Equal(t, "Une erreur est survenue, réessayez.", res.Notice)

	// k1 back to its prior true, the never-set keys gone again.
	require.True(t, s.Completed(1, "m", model.ProgressSkill, "k1"))
	require.False(t, s.Completed(1, "m", model.ProgressSkill, "k2"))
	require.False(t, s.Completed(1, "m", model.ProgressSkill, "k3"))
	require.Len(t, s.Notices(1), 1)
}

func TestToggleAll_DuplicateKeysRevertToTruePrior(t *testing.T) {
	store := &fakeProgressStore{}
	s := NewProgressService(store, zap.NewNop())

	s.Toggle(1, "m", model.ProgressSkill, "k1", true)

	store.failing = true
	res := s.ToggleAll(1, "m", model.ProgressSkill, []string{"k1", "k1"}, false)
	require.True(t, res.Reverted)

	// The second occurrence must not clobber the snapshot with the
	// already-applied false.
	require.True(t, s.Completed(1, "m", model.ProgressSkill, "k1"),
		"k1 should revert to its prior true value")
}

func TestList_SeedsLocalViewOnce(t *testing.T) {
	store := &fakeProgressStore{records: []model.ProgressRecord{
		{UserID: 1, ModuleID: "m", Type: model.ProgressSkill, Key: "k", Completed: true},
	}}
	s := NewProgressService(store, zap.NewNop())

	_, err := s.List(1)
	require.NoError(t, err)
	require.True(t, s.Completed(1, "m", model.ProgressSkill, "k"))

	// A later local toggle is not clobbered by re-listing.
	s.Toggle(1, "m", model.ProgressSkill, "k", false)
	_, err = s.List(1)
	require.NoError(t, err)
	require.False(t, s.Completed(1, "m", model.ProgressSkill, "k"))
}

func TestModuleProgress(t *testing.T) {
	require.Equal(t, 0, ModuleProgress(0, 0))
	require.Equal(t, 0, ModuleProgress(-1, 5))
	require.Equal(t, 0, ModuleProgress(3, 0))
	require.Equal(t, 33, ModuleProgress(3, 1))
	require.Equal(t, 67, ModuleProgress(3, 2))
	require.Equal(t, 100, ModuleProgress(3, 3))
	require.Equal(t, 17, ModuleProgress(6, 1))
}
