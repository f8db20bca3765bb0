package models

import (
	"database/sql"
	"time"
)

type Maquete struct {
	ID                      int64
	Nome                    string
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
	Info                    string
	ImagemPrincipalURL      sql.NullString
	ImagemPrincipalPublicID sql.NullString
}

// MaqueteSummary is the reduced projection served by the list endpoint.
type MaqueteSummary struct {
	ID                      int64
	Nome                    string
	Escala                  sql.NullString
	Proprietario            sql.NullString
	ImagemPrincipalURL      sql.NullString
	ImagemPrincipalPublicID sql.NullString
}

type MaqueteImage struct {
	ID        int64
	MaqueteID int64
	URL       sql.NullString
	PublicID  sql.NullString
	Position  sql.NullInt64
	CreatedAt time.Time
}
