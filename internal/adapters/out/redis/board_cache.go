package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/report"

	goredis "github.com/go-redis/redis/v8"
)

// BoardCache implements ports.OrderBoardCache.
type BoardCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewBoardCache(rdb *goredis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

func boardKey(establishmentID kernel.UUID) string {
	return boardKeyPrefix + establishmentID.String()
}

func (c *BoardCache) Get(ctx context.Context, establishmentID kernel.UUID) (report.Board, bool, error) {
	raw, err := c.rdb.Get(ctx, boardKey(establishmentID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return report.Board{}, false, nil
		}
		return report.Board{}, false, fmt.Errorf("failed to get order board: %w", err)
	}

	var board report.Board
	if err := json.Unmarshal(raw, &board); err != nil {
		return report.Board{}, false, fmt.Errorf("failed to decode order board: %w", err)
	}
	return board, true, nil
}

func (c *BoardCache) Set(ctx context.Context, board report.Board) error {
	raw, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to encode order board: %w", err)
	}
	return c.rdb.Set(ctx, boardKey(board.EstablishmentID), raw, c.ttl).Err()
}
