package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// verdictRepo implements VerdictRepo with raw SQL.
type verdictRepo struct {
	db *sql.DB
}

func (r *verdictRepo) Append(ctx context.Context, v *Verdict) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO verdicts (id, interaction, rule, answer, inputs, matched, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Interaction, v.Rule, v.Answer, v.Inputs, v.Matched, v.Error,
		v.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append verdict: %w", err)
	}
	return nil
}

func (r *verdictRepo) Recent(ctx context.Context, opts QueryOpts) ([]Verdict, error) {
	var (
		where []string
		args  []any
	)
	if opts.Interaction != "" {
		where = append(where, "interaction = ?")
		args = append(args, opts.Interaction)
	}
	if opts.Rule != "" {
		where = append(where, "rule = ?")
		args = append(args, opts.Rule)
	}

	query := `SELECT id, interaction, rule, answer, inputs, matched, error, created_at FROM verdicts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query verdicts: %w", err)
	}
	defer rows.Close()

	var out []Verdict
	for rows.Next() {
		var (
			v       Verdict
			created string
		)
		if err := rows.Scan(&v.ID, &v.Interaction, &v.Rule, &v.Answer, &v.Inputs, &v.Matched, &v.Error, &created); err != nil {
			return nil, fmt.Errorf("scan verdict: %w", err)
		}
		v.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse verdict time %q: %w", created, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verdicts: %w", err)
	}
	return out, nil
}
