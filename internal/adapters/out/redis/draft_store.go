package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/ports"

	goredis "github.com/go-redis/redis/v8"
)

// draftSession is the stored form of an editor.
type draftSession struct {
	Snapshot deliveryfee.Config `json:"snapshot"`
	Draft    deliveryfee.Config `json:"draft"`
	SavedAt  time.Time          `json:"savedAt"`
}

// DraftStore implements ports.DeliveryFeeDraftStore. Every Save refreshes the TTL,
// so a session expires after ttl of inactivity.
type DraftStore struct {
	rdb *goredis.Client
	ttl time.Duration
	now func() time.Time
}

func NewDraftStore(rdb *goredis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{rdb: rdb, ttl: ttl, now: time.Now}
}

func draftKey(key ports.DraftKey) string {
	return draftKeyPrefix + key.EstablishmentID.String() + ":" + key.ActorID.String()
}

func (s *DraftStore) Load(ctx context.Context, key ports.DraftKey) (*deliveryfee.Editor, bool, error) {
	raw, err := s.rdb.Get(ctx, draftKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load draft session: %w", err)
	}

	var session draftSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, false, fmt.Errorf("failed to decode draft session: %w", err)
	}

	return deliveryfee.RestoreEditor(session.Snapshot, session.Draft), true, nil
}

func (s *DraftStore) Save(ctx context.Context, key ports.DraftKey, editor *deliveryfee.Editor) error {
	if err := editor.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(draftSession{
		Snapshot: editor.Snapshot(),
		Draft:    editor.Draft(),
		SavedAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode draft session: %w", err)
	}

	return s.rdb.Set(ctx, draftKey(key), raw, s.ttl).Err()
}

func (s *DraftStore) Delete(ctx context.Context, key ports.DraftKey) error {
	return s.rdb.Del(ctx, draftKey(key)).Err()
}
