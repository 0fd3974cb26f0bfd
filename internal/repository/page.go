package repository

import (
	"context"
	"errors"
	"fmt"

	"hall-of-fame-backend/internal/database/models"
	"hall-of-fame-backend/internal/docstore"
	apperrors "hall-of-fame-backend/internal/errors"
)

// PageRepository stores one singleton document per page, keyed by page id.
type PageRepository struct {
	store docstore.Store
}

func NewPageRepository(store docstore.Store) *PageRepository {
	return &PageRepository{store: store}
}

// Get loads the stored page. It returns ErrPageNotFound when the page was never saved.
func (r *PageRepository) Get(ctx context.Context, id models.PageID) (models.Page, error) {
	page, err := models.NewPage(id)
	if err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, models.CollectionPages, string(id))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, apperrors.ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", id, err)
	}

	body := doc.Clone()
	body["id"] = string(id)
	if err := docstore.Decode(body, page); err != nil {
		return nil, fmt.Errorf("page %s: %w", id, err)
	}
	return page, nil
}

// Save overwrites the whole page document. actor, when set, is recorded as updatedBy.
func (r *PageRepository) Save(ctx context.Context, page models.Page, actor string) error {
	doc, err := toDocument(page)
	if err != nil {
		return err
	}
	if actor != "" {
		doc["updatedBy"] = actor
	}
	if err := r.store.Set(ctx, models.CollectionPages, string(page.PageID()), doc); err != nil {
		return fmt.Errorf("failed to save page %s: %w", page.PageID(), err)
	}
	return nil
}
