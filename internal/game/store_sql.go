package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists games in a relational database. Questions are stored as a
// JSON column; games are immutable after creation so there is no update path
// beyond the upsert.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutGame(g Game) error {
	qj, err := json.Marshal(g.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO games (id,name,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, questions_json=EXCLUDED.questions_json`,
		g.ID, g.Name, string(qj), g.CreatedAt.Unix())
	return err
}

func (s *SQLStore) GetGame(id string) (Game, error) {
	row := s.db.QueryRow(`SELECT id,name,questions_json,created_at FROM games WHERE id=$1`, id)
	var g Game
	var qjson string
	var created int64
	if err := row.Scan(&g.ID, &g.Name, &qjson, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &g.Questions); err != nil {
		return Game{}, err
	}
	g.CreatedAt = time.Unix(created, 0).UTC()
	return g, nil
}

func (s *SQLStore) ListGames(ctx context.Context, opts ListOpts) ([]GameSummary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,name,questions_json,created_at FROM games ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GameSummary{}
	for rows.Next() {
		var id, name, qjson string
		var created int64
		if err := rows.Scan(&id, &name, &qjson, &created); err != nil {
			return nil, err
		}
		var qs []Question
		if err := json.Unmarshal([]byte(qjson), &qs); err != nil {
			return nil, err
		}
		out = append(out, GameSummary{
			ID:            id,
			Name:          name,
			QuestionCount: len(qs),
			CreatedAt:     time.Unix(created, 0).UTC(),
		})
	}
	return out, rows.Err()
}
