package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"luxeroom/infras/otel"
	"luxeroom/infras/postgres"
	"luxeroom/shared/constant"
	"luxeroom/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	queryUpsert = `
		INSERT INTO snapshots (key, value, modified_at, modified_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    modified_at = EXCLUDED.modified_at,
		    modified_by = EXCLUDED.modified_by`

	queryLoad = `SELECT value FROM snapshots WHERE key = $1`

	queryRevisions = `SELECT key, modified_at, modified_by FROM snapshots`
)

type postgresStore struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, ot otel.Otel) Store {
	return &postgresStore{
		db:   db,
		otel: ot,
	}
}

func (s *postgresStore) Load(ctx context.Context, key string, target any) (found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("snapshot.key", key)

	var raw []byte
	err = s.db.Read.GetContext(ctx, &raw, queryLoad, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to load snapshot")

		return false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err = json.Unmarshal(raw, target); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode snapshot")

		return false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return true, nil
}

func (s *postgresStore) Save(ctx context.Context, key string, value any, origin string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("snapshot.key", key)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err = s.db.Write.ExecContext(ctx, queryUpsert, key, raw, timezone.Now(), origin); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (s *postgresStore) Revisions(ctx context.Context) (res map[string]Revision, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Revisions")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows := []struct {
		Key string `db:"key"`
		Revision
	}{}

	if err = s.db.Read.SelectContext(ctx, &rows, queryRevisions); err != nil {
		return nil, fmt.Errorf("failed to list snapshot revisions: %w", err)
	}

	res = make(map[string]Revision, len(rows))
	for _, row := range rows {
		res[row.Key] = row.Revision
	}

	return res, nil
}
