package question

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Put(ctx context.Context, q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	q = q.withDefaults()
	kj, err := json.Marshal(q.Keywords)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO questions (id,level,topic,tr,en,keywords_json,word_count,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET level=EXCLUDED.level, topic=EXCLUDED.topic, tr=EXCLUDED.tr,
			en=EXCLUDED.en, keywords_json=EXCLUDED.keywords_json, word_count=EXCLUDED.word_count`,
		q.ID, q.Level, q.Topic, q.TR, q.EN, string(kj), q.WordCount, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("put question %d: %w", q.ID, err)
	}
	return nil
}

const selectCols = `SELECT id,level,topic,tr,en,keywords_json,word_count FROM questions`

func (s *SQLStore) Get(ctx context.Context, id int) (Question, error) {
	return scanOne(s.db.QueryRowContext(ctx, selectCols+` WHERE id=$1`, id))
}

func (s *SQLStore) Random(ctx context.Context) (Question, error) {
	return scanOne(s.db.QueryRowContext(ctx, selectCols+` ORDER BY RANDOM() LIMIT 1`))
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Question, error) {
	query := selectCols + ` WHERE 1=1`
	var args []any
	if opts.Level != "" {
		args = append(args, opts.Level)
		query += ` AND level=$` + strconv.Itoa(len(args))
	}
	if opts.Topic != "" {
		args = append(args, opts.Topic)
		query += ` AND topic=$` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY id`
	if opts.Limit > 0 {
		args = append(args, opts.Limit, opts.Offset)
		query += ` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	out := []Question{}
	for rows.Next() {
		q, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}

func (s *SQLStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(row scanner) (Question, error) {
	var q Question
	var kjson string
	if err := row.Scan(&q.ID, &q.Level, &q.Topic, &q.TR, &q.EN, &kjson, &q.WordCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Question{}, ErrNotFound
		}
		return Question{}, err
	}
	if err := json.Unmarshal([]byte(kjson), &q.Keywords); err != nil {
		return Question{}, fmt.Errorf("question %d keywords: %w", q.ID, err)
	}
	return q, nil
}
