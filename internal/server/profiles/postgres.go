package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ykarpenko/sessionkeeper/internal/common"
	"github.com/ykarpenko/sessionkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, profile *Profile) (*Profile, error) {

	fields, err := json.Marshal(profile.Fields)
	if err != nil {
		return nil, fmt.Errorf("error marshalling profile fields: %v", err)
	}

	query :=
		`INSERT INTO profiles (id, email, username, fields)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		profile.ID, profile.Email, profile.Username, fields).Scan(&profile.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return profile, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Profile, error) {
	query :=
		`SELECT id, email, username, fields, created_at FROM profiles
		 WHERE id = $1
		 `

	profile := &Profile{}
	var fields []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID, &profile.Email, &profile.Username, &fields, &profile.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	if err := json.Unmarshal(fields, &profile.Fields); err != nil {
		return nil, fmt.Errorf("error unmarshalling profile fields: %v", err)
	}

	return profile, nil
}

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]*Profile, error) {
	query :=
		`SELECT id, email, username, fields, created_at FROM profiles
		 WHERE email = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []*Profile
	for rows.Next() {
		profile := &Profile{}
		var fields []byte
		if err := rows.Scan(&profile.ID, &profile.Email, &profile.Username, &fields, &profile.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		if err := json.Unmarshal(fields, &profile.Fields); err != nil {
			return nil, fmt.Errorf("error unmarshalling profile fields: %v", err)
		}
		result = append(result, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}
