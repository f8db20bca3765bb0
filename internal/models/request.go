package models

import (
	"database/sql"
	"fmt"
	"strings"
)

// MaquetePayload is the fixed field whitelist accepted by create and
// update. Keys outside this set are dropped by the JSON decoder.
type MaquetePayload struct {
	Nome                    OptString `json:"nome"`
	Escala                  OptString `json:"escala"`
	Peso                    OptFloat  `json:"peso"`
	Proprietario            OptString `json:"proprietario"`
	Projeto                 OptString `json:"projeto"`
	Cidade                  OptString `json:"cidade"`
	Estado                  OptString `json:"estado"`
	Ano                     OptInt    `json:"ano"`
	Mes                     OptInt    `json:"mes"`
	LarguraCm               OptInt    `json:"largura_cm"`
	AlturaCm                OptInt    `json:"altura_cm"`
	ComprimentoCm           OptInt    `json:"comprimento_cm"`
	Info                    OptString `json:"info"`
	ImagemPrincipalURL      OptString `json:"imagem_principal_url"`
	ImagemPrincipalPublicID OptString `json:"imagem_principal_public_id"`
}

// MaqueteFields is the sanitized form of a payload, ready to bind as
// SQL parameters. Every field is NULL when absent (or blank) in the
// payload, except Info: Info.Valid means "info was present" and its
// string value (possibly empty) must overwrite the stored one.
type MaqueteFields struct {
	Nome                    sql.NullString
	Escala                  sql.NullString
	Peso                    sql.NullFloat64
	Proprietario            sql.NullString
	Projeto                 sql.NullString
	Cidade                  sql.NullString
	Estado                  sql.NullString
	Ano                     sql.NullInt64
	Mes                     sql.NullInt64
	LarguraCm               sql.NullInt64
	AlturaCm                sql.NullInt64
	ComprimentoCm           sql.NullInt64
	Info                    sql.NullString
	ImagemPrincipalURL      sql.NullString
	ImagemPrincipalPublicID sql.NullString
}

// HasFields reports whether the payload carries at least one
// whitelisted key, present with any value including null.
func (p *MaquetePayload) HasFields() bool {
	return p.Nome.Set || p.Escala.Set || p.Peso.Set || p.Proprietario.Set ||
		p.Projeto.Set || p.Cidade.Set || p.Estado.Set || p.Ano.Set ||
		p.Mes.Set || p.LarguraCm.Set || p.AlturaCm.Set || p.ComprimentoCm.Set ||
		p.Info.Set || p.ImagemPrincipalURL.Set || p.ImagemPrincipalPublicID.Set
}

// Normalize applies the per-field sanitation rules: strings are
// trimmed and blank strings become NULL, estado is uppercased and must
// be exactly two letters, ano/mes are range checked, dimensions must
// parse as integers, and backticks are stripped from the primary image
// URL. Info keeps its (possibly empty) value whenever present.
func (p *MaquetePayload) Normalize() (*MaqueteFields, error) {
	f := &MaqueteFields{
		Nome:                    trimString(p.Nome),
		Escala:                  trimString(p.Escala),
		Proprietario:            trimString(p.Proprietario),
		Projeto:                 trimString(p.Projeto),
		Cidade:                  trimString(p.Cidade),
		ImagemPrincipalPublicID: trimString(p.ImagemPrincipalPublicID),
	}

	if p.Estado.Set && p.Estado.Valid {
		estado := strings.ToUpper(strings.TrimSpace(p.Estado.Value))
		if estado != "" {
			if !isTwoLetters(estado) {
				return nil, fmt.Errorf("estado must be exactly 2 letters")
			}
			f.Estado = sql.NullString{String: estado, Valid: true}
		}
	}

	if p.Peso.Malformed {
		return nil, fmt.Errorf("peso must be a number")
	}
	if p.Peso.Valid {
		f.Peso = sql.NullFloat64{Float64: p.Peso.Value, Valid: true}
	}

	var err error
	if f.Ano, err = intField("ano", p.Ano); err != nil {
		return nil, err
	}
	if f.Ano.Valid && (f.Ano.Int64 < 1900 || f.Ano.Int64 > 2100) {
		return nil, fmt.Errorf("ano must be between 1900 and 2100")
	}
	if f.Mes, err = intField("mes", p.Mes); err != nil {
		return nil, err
	}
	if f.Mes.Valid && (f.Mes.Int64 < 1 || f.Mes.Int64 > 12) {
		return nil, fmt.Errorf("mes must be between 1 and 12")
	}
	if f.LarguraCm, err = intField("largura_cm", p.LarguraCm); err != nil {
		return nil, err
	}
	if f.AlturaCm, err = intField("altura_cm", p.AlturaCm); err != nil {
		return nil, err
	}
	if f.ComprimentoCm, err = intField("comprimento_cm", p.ComprimentoCm); err != nil {
		return nil, err
	}

	if p.Info.Set {
		info := ""
		if p.Info.Valid {
			info = strings.TrimSpace(p.Info.Value)
		}
		f.Info = sql.NullString{String: info, Valid: true}
	}

	if p.ImagemPrincipalURL.Set && p.ImagemPrincipalURL.Valid {
		// Backticks show up when URLs are pasted from chat clients.
		url := strings.TrimSpace(strings.ReplaceAll(p.ImagemPrincipalURL.Value, "`", ""))
		if url != "" {
			f.ImagemPrincipalURL = sql.NullString{String: url, Valid: true}
		}
	}

	return f, nil
}

// ImageCreatePayload is the body accepted when adding an image to a
// maquete.
type ImageCreatePayload struct {
	URL      OptString `json:"url"`
	PublicID OptString `json:"public_id"`
	Position OptInt    `json:"position"`
}

type ImageFields struct {
	URL      sql.NullString
	PublicID sql.NullString
	Position sql.NullInt64
}

func (p *ImageCreatePayload) Normalize() (*ImageFields, error) {
	f := &ImageFields{
		URL:      trimString(p.URL),
		PublicID: trimString(p.PublicID),
	}
	if !f.URL.Valid && !f.PublicID.Valid {
		return nil, fmt.Errorf("url or public_id is required")
	}

	if p.Position.Malformed {
		return nil, fmt.Errorf("position must be an integer")
	}
	if p.Position.Valid {
		f.Position = sql.NullInt64{Int64: p.Position.Value, Valid: true}
	}

	return f, nil
}

func trimString(o OptString) sql.NullString {
	if !o.Set || !o.Valid {
		return sql.NullString{}
	}
	v := strings.TrimSpace(o.Value)
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func intField(name string, o OptInt) (sql.NullInt64, error) {
	if o.Malformed {
		return sql.NullInt64{}, fmt.Errorf("%s must be an integer", name)
	}
	if !o.Valid {
		return sql.NullInt64{}, nil
	}
	return sql.NullInt64{Int64: o.Value, Valid: true}, nil
}

func isTwoLetters(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
