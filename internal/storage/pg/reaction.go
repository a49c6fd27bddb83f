package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
)

// GetReaction reports the single vote this device has cast on the news
// item, if any.
func (s *Storage) GetReaction(deviceId domain.DeviceId, newsId domain.NewsId) (domain.Reaction, bool, error) {
	reaction := domain.Reaction{Device: deviceId, News: newsId}
	err := s.db.QueryRow(`
	SELECT tipo, fecha
	FROM reacciones
	WHERE device_id = $1 AND noticia_id = $2`, deviceId, newsId).Scan(&reaction.Kind, &reaction.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reaction{}, false, nil
		}
		return domain.Reaction{}, false, err
	}
	return reaction, true, nil
}

// CastReaction records the vote and bumps the matching counter in one
// transaction, so a failed increment never leaves a recorded vote. If the
// device already voted on this news item, nothing is written and the
// existing reaction is returned with created=false.
func (s *Storage) CastReaction(deviceId domain.DeviceId, newsId domain.NewsId, kind string) (domain.Reaction, bool, error) {
	var counter string
	switch kind {
	case domain.ReactionLike:
		counter = "likes"
	case domain.ReactionDislike:
		counter = "dislikes"
	default:
		return domain.Reaction{}, false, fmt.Errorf("unknown reaction kind %q", kind)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return domain.Reaction{}, false, err
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	reaction := domain.Reaction{Device: deviceId, News: newsId, Kind: kind}
	createdTs := time.Now().UTC().Round(time.Microsecond)
	err = tx.QueryRow(`
	INSERT INTO reacciones(device_id, noticia_id, tipo, fecha)
	VALUES($1, $2, $3, $4)
	ON CONFLICT (device_id, noticia_id) DO NOTHING
	RETURNING fecha`, deviceId, newsId, kind, createdTs).Scan(&reaction.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Already voted. No counter change, surface the recorded vote.
		existing, ok, err := s.GetReaction(deviceId, newsId)
		if err != nil {
			return domain.Reaction{}, false, err
		}
		if !ok {
			// Concurrent delete of the news item swept the vote away.
			return domain.Reaction{}, false, newsNotFound()
		}
		return existing, false, nil
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return domain.Reaction{}, false, newsNotFound()
		}
		return domain.Reaction{}, false, err
	}

	// counter is one of two fixed identifiers, never user input
	result, err := tx.Exec(`UPDATE noticias SET `+counter+` = `+counter+` + 1 WHERE id = $1`, newsId)
	if err != nil {
		return domain.Reaction{}, false, err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return domain.Reaction{}, false, err
	}
	if updated == 0 {
		return domain.Reaction{}, false, newsNotFound()
	}

	if err := tx.Commit(); err != nil {
		return domain.Reaction{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reaction, true, nil
}
