package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/goserg/volunteerhub/internal/cache/mem"
	"github.com/goserg/volunteerhub/internal/config"
	"github.com/goserg/volunteerhub/internal/events"
	"github.com/goserg/volunteerhub/internal/match"
	"github.com/goserg/volunteerhub/internal/storage"
)

var (
	ErrForbidden      = errors.New("access denied")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyApplied = errors.New("already applied to this opportunity")
	ErrUserExists     = errors.New("user already exists")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrClosed         = errors.New("opportunity is closed")
)

// ValidationError carries every problem found in an input, joined.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

type Service struct {
	storage   storage.Storage
	cache     *mem.Cache
	scorer    match.Scorer
	events    events.Publisher
	sanitizer *bluemonday.Policy
	cfg       config.Matching
	log       *logrus.Entry
	now       func() time.Time
}

func New(l *logrus.Logger, st storage.Storage, publisher events.Publisher, cfg config.Matching) *Service {
	mode := match.Exact
	if cfg.NormalizeCase {
		mode = match.Folded
	}
	if cfg.KeywordLimit <= 0 {
		cfg.KeywordLimit = config.Default().Matching.KeywordLimit
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	s := &Service{
		storage:   st,
		scorer:    match.NewScorer(mode),
		events:    publisher,
		sanitizer: bluemonday.StrictPolicy(),
		cfg:       cfg,
		log:       l.WithField("from", "service"),
		now:       func() time.Time { return time.Now().UTC() },
	}
	if cfg.CacheOpenOpportunities {
		s.cache = mem.New()
	}
	return s
}

// sanitize strips markup from user supplied free text.
func (s *Service) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(text)))
}

func (s *Service) sanitizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, s.sanitize(item))
	}
	return out
}

func (s *Service) publish(ctx context.Context, eventType string, entityID, actorID uuid.UUID, data any) {
	err := s.events.Publish(ctx, events.Event{
		Type:     eventType,
		EntityID: entityID,
		ActorID:  actorID,
		At:       s.now(),
		Data:     data,
	})
	if err != nil {
		s.log.WithError(err).WithField("event", eventType).Warn("publish failed")
	}
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

// storageErr maps storage sentinels and wraps the rest.
func storageErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
