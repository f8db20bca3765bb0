package models

import (
	"database/sql"
	"time"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type HealthResponse struct {
	App   string `json:"app"`
	DB    string `json:"db"`
	Error string `json:"error,omitempty"`
}

type MaqueteSummaryResponse struct {
	ID                      int64    `json:"id"`
	Nome                    string   `json:"nome"`
	Escala                  *string  `json:"escala"`
	Proprietario            *string  `json:"proprietario"`
	ImagemPrincipalURL      *string  `json:"imagem_principal_url"`
	ImagemPrincipalPublicID *string  `json:"imagem_principal_public_id"`
}

type MaquetesResponse struct {
	Maquetes []MaqueteSummaryResponse `json:"maquetes"`
}

type MaqueteResponse struct {
	ID                      int64    `json:"id"`
	Nome                    string   `json:"nome"`
	Escala                  *string  `json:"escala"`
	Peso                    *float64 `json:"peso"`
	Proprietario            *string  `json:"proprietario"`
	Projeto                 *string  `json:"projeto"`
	Cidade                  *string  `json:"cidade"`
	Estado                  *string  `json:"estado"`
	Ano                     *int64   `json:"ano"`
	Mes                     *int64   `json:"mes"`
	LarguraCm               *int64   `json:"largura_cm"`
	AlturaCm                *int64   `json:"altura_cm"`
	ComprimentoCm           *int64   `json:"comprimento_cm"`
	Info                    string   `json:"info"`
	ImagemPrincipalURL      *string  `json:"imagem_principal_url"`
	ImagemPrincipalPublicID *string  `json:"imagem_principal_public_id"`
}

type CreateMaqueteResponse struct {
	ID int64 `json:"id"`
}

type ImageResponse struct {
	ID        int64     `json:"id"`
	MaqueteID int64     `json:"maquete_id"`
	URL       *string   `json:"url"`
	PublicID  *string   `json:"public_id"`
	Position  *int64    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type ImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

type CreateImageResponse struct {
	ID       int64 `json:"id"`
	Position int64 `json:"position"`
}

type UploadConfigResponse struct {
	Bucket        string `json:"bucket"`
	PublicBaseURL string `json:"public_base_url"`
}

func NewMaqueteSummaryResponse(m *MaqueteSummary) MaqueteSummaryResponse {
	return MaqueteSummaryResponse{
		ID:                      m.ID,
		Nome:                    m.Nome,
		Escala:                  nullStringPtr(m.Escala),
		Proprietario:            nullStringPtr(m.Proprietario),
		ImagemPrincipalURL:      nullStringPtr(m.ImagemPrincipalURL),
		ImagemPrincipalPublicID: nullStringPtr(m.ImagemPrincipalPublicID),
	}
}

func NewMaqueteResponse(m *Maquete) MaqueteResponse {
	return MaqueteResponse{
		ID:                      m.ID,
		Nome:                    m.Nome,
		Escala:                  nullStringPtr(m.Escala),
		Peso:                    nullFloatPtr(m.Peso),
		Proprietario:            nullStringPtr(m.Proprietario),
		Projeto:                 nullStringPtr(m.Projeto),
		Cidade:                  nullStringPtr(m.Cidade),
		Estado:                  nullStringPtr(m.Estado),
		Ano:                     nullIntPtr(m.Ano),
		Mes:                     nullIntPtr(m.Mes),
		LarguraCm:               nullIntPtr(m.LarguraCm),
		AlturaCm:                nullIntPtr(m.AlturaCm),
		ComprimentoCm:           nullIntPtr(m.ComprimentoCm),
		Info:                    m.Info,
		ImagemPrincipalURL:      nullStringPtr(m.ImagemPrincipalURL),
		ImagemPrincipalPublicID: nullStringPtr(m.ImagemPrincipalPublicID),
	}
}

func NewImageResponse(img *MaqueteImage) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		MaqueteID: img.MaqueteID,
		URL:       nullStringPtr(img.URL),
		PublicID:  nullStringPtr(img.PublicID),
		Position:  nullIntPtr(img.Position),
		CreatedAt: img.CreatedAt,
	}
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullIntPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
