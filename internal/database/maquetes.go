package database

import (
	"fmt"

	"maquete-admin-backend/internal/models"
)

func (s *Store) ListMaquetes() ([]models.MaqueteSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, nome, escala, proprietario, imagem_principal_url, imagem_principal_public_id
		FROM maquetes
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list maquetes: %w", err)
	}
	defer rows.Close()

	var maquetes []models.MaqueteSummary
	for rows.Next() {
		var m models.MaqueteSummary
		err := rows.Scan(
			&m.ID, &m.Nome, &m.Escala, &m.Proprietario,
			&m.ImagemPrincipalURL, &m.ImagemPrincipalPublicID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maquete: %w", err)
		}
		maquetes = append(maquetes, m)
	}

	return maquetes, rows.Err()
}

func (s *Store) CreateMaquete(f *models.MaqueteFields) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO maquetes (
			nome, escala, peso, proprietario, projeto, cidade, estado,
			ano, mes, largura_cm, altura_cm, comprimento_cm,
			info, imagem_principal_url, imagem_principal_public_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13, ''), $14, $15)
		RETURNING id
	`,
		f.Nome, f.Escala, f.Peso, f.Proprietario, f.Projeto, f.Cidade, f.Estado,
		f.Ano, f.Mes, f.LarguraCm, f.AlturaCm, f.ComprimentoCm,
		f.Info, f.ImagemPrincipalURL, f.ImagemPrincipalPublicID,
	).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}

	return id, nil
}

func (s *Store) GetMaquete(id int64) (*models.Maquete, error) {
	var m models.Maquete
	err := s.db.QueryRow(`
		SELECT id, nome, escala, peso, proprietario, projeto, cidade, estado,
		       ano, mes, largura_cm, altura_cm, comprimento_cm,
		       info, imagem_principal_url, imagem_principal_public_id
		FROM maquetes
		WHERE id = $1
	`, id).Scan(
		&m.ID, &m.Nome, &m.Escala, &m.Peso, &m.Proprietario, &m.Projeto,
		&m.Cidade, &m.Estado, &m.Ano, &m.Mes, &m.LarguraCm, &m.AlturaCm,
		&m.ComprimentoCm, &m.Info, &m.ImagemPrincipalURL, &m.ImagemPrincipalPublicID,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &m, nil
}

// UpdateMaquete patches a row with a fixed SET clause: every column
// keeps its stored value unless the payload supplied a non-null one.
// The exception is info, which is never NULL in storage, so a
// present-but-empty payload value binds '' and overwrites while an
// absent field binds NULL and keeps the stored text.
func (s *Store) UpdateMaquete(id int64, f *models.MaqueteFields) error {
	res, err := s.db.Exec(`
		UPDATE maquetes SET
			nome = COALESCE($2, nome),
			escala = COALESCE($3, escala),
			peso = COALESCE($4, peso),
			proprietario = COALESCE($5, proprietario),
			projeto = COALESCE($6, projeto),
			cidade = COALESCE($7, cidade),
			estado = COALESCE($8, estado),
			ano = COALESCE($9, ano),
			mes = COALESCE($10, mes),
			largura_cm = COALESCE($11, largura_cm),
			altura_cm = COALESCE($12, altura_cm),
			comprimento_cm = COALESCE($13, comprimento_cm),
			info = COALESCE($14, info),
			imagem_principal_url = COALESCE($15, imagem_principal_url),
			imagem_principal_public_id = COALESCE($16, imagem_principal_public_id)
		WHERE id = $1
	`,
		id,
		f.Nome, f.Escala, f.Peso, f.Proprietario, f.Projeto, f.Cidade, f.Estado,
		f.Ano, f.Mes, f.LarguraCm, f.AlturaCm, f.ComprimentoCm,
		f.Info, f.ImagemPrincipalURL, f.ImagemPrincipalPublicID,
	)
	if err != nil {
		return translateError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMaquete removes a row by id. Deleting an id that does not
// exist is not an error; images go with the row via the FK cascade.
func (s *Store) DeleteMaquete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM maquetes WHERE id = $1`, id); err != nil {
		return translateError(err)
	}
	return nil
}

// MaquetePublicIDs collects every hosted-object path attached to a
// maquete (the primary image plus the image set) so the caller can
// clean up storage after a delete.
func (s *Store) MaquetePublicIDs(id int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT imagem_principal_public_id FROM maquetes WHERE id = $1 AND imagem_principal_public_id IS NOT NULL
		UNION ALL
		SELECT public_id FROM maquete_images WHERE maquete_id = $1 AND public_id IS NOT NULL
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to collect public ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var publicID string
		if err := rows.Scan(&publicID); err != nil {
			return nil, fmt.Errorf("failed to scan public id: %w", err)
		}
		ids = append(ids, publicID)
	}

	return ids, rows.Err()
}
