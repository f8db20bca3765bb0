package database

import (
	"database/sql"
	"fmt"

	"maquete-admin-backend/internal/models"
)

func (s *Store) ListImages(maqueteID int64) ([]models.MaqueteImage, error) {
	rows, err := s.db.Query(`
		SELECT id, maquete_id, url, public_id, position, created_at
		FROM maquete_images
		WHERE maquete_id = $1
		ORDER BY position ASC NULLS LAST, id ASC
	`, maqueteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var images []models.MaqueteImage
	for rows.Next() {
		var img models.MaqueteImage
		err := rows.Scan(&img.ID, &img.MaqueteID, &img.URL, &img.PublicID, &img.Position, &img.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// CreateImage inserts an image for a maquete. When the payload carries
// no position the statement assigns max+1 within the owning maquete's
// image set in the same INSERT, so two concurrent creations cannot
// read the same maximum.
func (s *Store) CreateImage(maqueteID int64, f *models.ImageFields) (id int64, position int64, err error) {
	err = s.db.QueryRow(`
		INSERT INTO maquete_images (maquete_id, url, public_id, position)
		VALUES ($1, $2, $3, COALESCE(
			$4,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM maquete_images WHERE maquete_id = $1)
		))
		RETURNING id, position
	`, maqueteID, f.URL, f.PublicID, f.Position).Scan(&id, &position)
	if err != nil {
		return 0, 0, translateError(err)
	}

	return id, position, nil
}

// DeleteImage removes an image only when both its own id and the
// owning maquete id match, returning the hosted-object path of the
// removed row so the caller can clean up storage.
func (s *Store) DeleteImage(maqueteID, imageID int64) (sql.NullString, error) {
	var publicID sql.NullString
	err := s.db.QueryRow(`
		DELETE FROM maquete_images
		WHERE id = $1 AND maquete_id = $2
		RETURNING public_id
	`, imageID, maqueteID).Scan(&publicID)
	if err != nil {
		return sql.NullString{}, translateError(err)
	}

	return publicID, nil
}
