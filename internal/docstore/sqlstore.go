package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hall-of-fame-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore keeps every collection in the documents table, one JSON body per row.
// Filtering and ordering happen in process after loading the collection.
type SQLStore struct {
	db  *gorm.DB
	now func() time.Time
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore wraps an initialized database; see database.Initialize.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *SQLStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	now := s.now()
	body := doc.Clone()
	body[FieldCreatedAt] = now
	body[FieldUpdatedAt] = now

	data, err := marshal(body)
	if err != nil {
		return "", err
	}

	row := models.StoredDocument{
		Collection: collection,
		ID:         uuid.NewString(),
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("create %s document: %w", collection, err)
	}
	return row.ID, nil
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (Document, error) {
	row, err := s.load(s.db.WithContext(ctx), collection, id)
	if err != nil {
		return nil, err
	}
	return decodeJSON(row.Data.JSON)
}

func (s *SQLStore) List(ctx context.Context, collection string, q Query) ([]Snapshot, error) {
	var rows []models.StoredDocument
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return []Snapshot{}, fmt.Errorf("list %s: %w", collection, err)
	}

	snaps := make([]Snapshot, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeJSON(row.Data.JSON)
		if err != nil {
			return []Snapshot{}, fmt.Errorf("list %s: document %s: %w", collection, row.ID, err)
		}
		snaps = append(snaps, Snapshot{ID: row.ID, Data: doc})
	}
	return ApplyQuery(snaps, q), nil
}

func (s *SQLStore) Update(ctx context.Context, collection, id string, patch Document) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.load(tx, collection, id)
		if err != nil {
			return err
		}
		current, err := decodeJSON(row.Data.JSON)
		if err != nil {
			return err
		}

		now := s.now()
		merged := current.Merge(patch)
		merged[FieldUpdatedAt] = now
		data, err := marshal(merged)
		if err != nil {
			return err
		}

		return tx.Model(&models.StoredDocument{}).
			Where("collection = ? AND id = ?", collection, id).
			Updates(map[string]interface{}{"data": data, "updated_at": now}).Error
	})
}

// Set replaces the document body. An existing document keeps its createdAt.
func (s *SQLStore) Set(ctx context.Context, collection, id string, doc Document) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := s.now()
		body := doc.Clone()
		body[FieldUpdatedAt] = now

		existing, err := s.load(tx, collection, id)
		switch {
		case errors.Is(err, ErrNotFound):
			if _, ok := body[FieldCreatedAt]; !ok {
				body[FieldCreatedAt] = now
			}
		case err != nil:
			return err
		default:
			current, err := decodeJSON(existing.Data.JSON)
			if err != nil {
				return err
			}
			if createdAt, ok := current[FieldCreatedAt]; ok {
				body[FieldCreatedAt] = createdAt
			} else {
				body[FieldCreatedAt] = existing.CreatedAt
			}
		}

		data, err := marshal(body)
		if err != nil {
			return err
		}

		row := models.StoredDocument{
			Collection: collection,
			ID:         id,
			Data:       data,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, collection, id string) error {
	res := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&models.StoredDocument{})
	if res.Error != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) load(tx *gorm.DB, collection, id string) (*models.StoredDocument, error) {
	var row models.StoredDocument
	err := tx.Where("collection = ? AND id = ?", collection, id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &row, nil
}

func marshal(doc Document) (models.JSON, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return models.JSON{}, fmt.Errorf("encode document: %w", err)
	}
	return models.JSON{JSON: datatypes.JSON(raw)}, nil
}
