package service

import (
	"context"
	"fmt"

	"hall-of-fame-backend/internal/docstore"
	"hall-of-fame-backend/internal/logger"
)

// DeleteOutcome is the result of a cascading delete.
type DeleteOutcome string

const (
	DeleteSucceeded     DeleteOutcome = "deleted"
	DeletePhotoOrphaned DeleteOutcome = "deleted_photo_orphaned"
	DeleteFailed        DeleteOutcome = "failed"
)

// CascadeResult reports what a delete did. OrphanedURLs lists hosted photos that
// could not be removed from storage; the document is gone regardless.
type CascadeResult struct {
	Outcome      DeleteOutcome `json:"outcome" example:"deleted"`
	OrphanedURLs []string      `json:"orphanedUrls"`
	Err          error         `json:"-"`
}

// Cascade deletes a document after removing the photos it references.
// Photos go first: a failed photo delete never blocks the document delete,
// and a failed document delete may leave the photo already gone.
type Cascade struct {
	store  docstore.Store
	photos PhotoRemover
}

func NewCascade(store docstore.Store, photos PhotoRemover) *Cascade {
	return &Cascade{store: store, photos: photos}
}

// Delete removes every hosted photo in photoURLs, then the document collection/id.
// Empty and non-hosted URLs are skipped.
func (c *Cascade) Delete(ctx context.Context, collection, id string, photoURLs ...string) CascadeResult {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"collection": collection,
		"id":         id,
	})

	res := CascadeResult{Outcome: DeleteSucceeded, OrphanedURLs: []string{}}
	for _, u := range photoURLs {
		if u == "" || c.photos == nil || !c.photos.IsHosted(u) {
			continue
		}
		if err := c.photos.DeleteByURL(ctx, u); err != nil {
			log.WithError(err).Warnf("Photo could not be deleted, continuing with the document: %s", u)
			res.OrphanedURLs = append(res.OrphanedURLs, u)
		}
	}

	if err := c.store.Delete(ctx, collection, id); err != nil {
		log.WithError(err).Error("Document delete failed")
		res.Outcome = DeleteFailed
		res.Err = fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
		return res
	}

	if len(res.OrphanedURLs) > 0 {
		res.Outcome = DeletePhotoOrphaned
	}
	log.Infof("Deleted document (%s)", res.Outcome)
	return res
}
