package service

import (
	"errors"
	"regexp"
	"strings"

	"lechemin_backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WaitlistResultKind is the tagged outcome of a waitlist submission.
// Callers branch on the kind, never on error message text.
type WaitlistResultKind string

const (
	WaitlistOK           WaitlistResultKind = "ok"
	WaitlistInvalidEmail WaitlistResultKind = "invalid_email"
	WaitlistInvalidTopic WaitlistResultKind = "invalid_topic"
	WaitlistDuplicate    WaitlistResultKind = "duplicate"
	WaitlistUnknown      WaitlistResultKind = "unknown"
)

type WaitlistStore interface {
	Add(entry *model.WaitlistEntry) error
}

var emailRe = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

var waitlistTopics = map[string]bool{
	"cyber": true,
}

type WaitlistService struct {
	store WaitlistStore
	log   *zap.Logger
}

func NewWaitlistService(store WaitlistStore, log *zap.Logger) *WaitlistService {
	return &WaitlistService{store: store, log: log}
}

// Join validates and registers a waitlist submission. A duplicate
// (email, topic) pair is reported as its own kind so the caller can treat
// it as success: resubmitting is idempotent, not an error.
func (s *WaitlistService) Join(email, topic string) WaitlistResultKind {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if len(normalized) < 6 || len(normalized) > 254 {
		return WaitlistInvalidEmail
	}
	if !emailRe.MatchString(normalized) {
		return WaitlistInvalidEmail
	}

	if topic == "" {
		topic = "cyber"
	}
	if !waitlistTopics[topic] {
		return WaitlistInvalidTopic
	}

	err := s.store.Add(&model.WaitlistEntry{Email: normalized, Topic: topic})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return WaitlistDuplicate
	}
	if err != nil {
		s.log.Error("waitlist insert failed", zap.Error(err))
		return WaitlistUnknown
	}
	return WaitlistOK
}
