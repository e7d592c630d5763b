package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"tolet-api/internal/domain"
)

// PostgresCollectionsRepository persists collections in a single Postgres
// table. amenities/rules map to text[], listings to a JSONB array.
type PostgresCollectionsRepository struct {
	db *sql.DB
}

func NewPostgresCollectionsRepository(db *sql.DB) *PostgresCollectionsRepository {
	return &PostgresCollectionsRepository{db: db}
}

var _ CollectionsRepository = (*PostgresCollectionsRepository)(nil)

const collectionColumns = `id, title, display_image_url, description, location, contact_information, amenities, listings, rules, created_at`

func (r *PostgresCollectionsRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	collections := make([]domain.Collection, 0)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

func (r *PostgresCollectionsRepository) GetCollection(ctx context.Context, id int) (*domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = $1`

	c, err := scanCollection(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresCollectionsRepository) InsertCollection(ctx context.Context, in domain.CreateCollection) (*domain.Collection, error) {
	// Insert and read back the stored row in one statement; id and
	// created_at come from the table defaults.
	query := `
		INSERT INTO collections (title, display_image_url, description, location, contact_information, amenities, listings, rules)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + collectionColumns

	listings, err := json.Marshal(in.Listings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode listings: %w", err)
	}

	c, err := scanCollection(r.db.QueryRowContext(ctx, query,
		in.Title,
		in.DisplayImageURL,
		in.Description,
		in.Location,
		in.ContactInformation,
		pq.Array(amenityLabels(in.Amenities)),
		listings,
		pq.Array(in.Rules),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert collection: %w", err)
	}
	return c, nil
}

func (r *PostgresCollectionsRepository) UpdateCollection(ctx context.Context, id int, in domain.UpdateCollection) (*domain.Collection, error) {
	// Single conditional statement: COALESCE keeps stored values for absent
	// fields, and the zero-row case distinguishes a missing id without a
	// separate existence check. created_at is refreshed on every update.
	query := `
		UPDATE collections SET
			title = COALESCE($1, title),
			display_image_url = $2,
			description = COALESCE($3, description),
			location = COALESCE($4, location),
			contact_information = COALESCE($5, contact_information),
			amenities = COALESCE($6, amenities),
			listings = COALESCE($7, listings),
			rules = COALESCE($8, rules),
			created_at = now()
		WHERE id = $9
		RETURNING ` + collectionColumns

	var amenities interface{}
	if in.Amenities != nil {
		amenities = pq.Array(amenityLabels(in.Amenities))
	}
	var listings interface{}
	if in.Listings != nil {
		b, err := json.Marshal(in.Listings)
		if err != nil {
			return nil, fmt.Errorf("failed to encode listings: %w", err)
		}
		listings = b
	}
	var rules interface{}
	if in.Rules != nil {
		rules = pq.Array(in.Rules)
	}

	c, err := scanCollection(r.db.QueryRowContext(ctx, query,
		in.Title,
		in.DisplayImageURL,
		in.Description,
		in.Location,
		in.ContactInformation,
		amenities,
		listings,
		rules,
		id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return c, nil
}

func (r *PostgresCollectionsRepository) DeleteCollection(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (*domain.Collection, error) {
	var (
		c           domain.Collection
		description sql.NullString
		amenities   pq.StringArray
		listings    []byte
		rules       pq.StringArray
	)

	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.DisplayImageURL,
		&description,
		&c.Location,
		&c.ContactInformation,
		&amenities,
		&listings,
		&rules,
		&c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan collection: %w", err)
	}

	if description.Valid {
		c.Description = &description.String
	}

	c.Amenities = make([]domain.Amenity, 0, len(amenities))
	for _, label := range amenities {
		a, err := domain.ParseAmenity(label)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		c.Amenities = append(c.Amenities, a)
	}

	c.Listings = make([]domain.Listing, 0)
	if len(listings) > 0 {
		if err := json.Unmarshal(listings, &c.Listings); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
	}

	c.Rules = rules
	if c.Rules == nil {
		c.Rules = []string{}
	}
	return &c, nil
}

func amenityLabels(amenities []domain.Amenity) []string {
	labels := make([]string, 0, len(amenities))
	for _, a := range amenities {
		labels = append(labels, string(a))
	}
	return labels
}
