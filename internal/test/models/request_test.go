package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maquete-admin-backend/internal/models"
)

func decode(t *testing.T, body string) *models.MaquetePayload {
	t.Helper()
	var p models.MaquetePayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func TestNormalize_TrimAndEmptyToNull(t *testing.T) {
	p := decode(t, `{"nome":"  Estação Central  ","escala":"   ","cidade":"","proprietario":" Museu "}`)

	f, err := p.Normalize()
	require.NoError(t, err)

	assert.True(t, f.Nome.Valid)
	assert.Equal(t, "Estação Central", f.Nome.String)
	assert.False(t, f.Escala.Valid)
	assert.False(t, f.Cidade.Valid)
	assert.True(t, f.Proprietario.Valid)
	assert.Equal(t, "Museu", f.Proprietario.String)
}

func TestNormalize_Estado(t *testing.T) {
	for _, in := range []string{"sp", "SP", " sp "} {
		f, err := decode(t, `{"estado":"`+in+`"}`).Normalize()
		require.NoError(t, err, in)
		assert.True(t, f.Estado.Valid)
		assert.Equal(t, "SP", f.Estado.String)
	}

	for _, in := range []string{"S", "SPX", "S1", "1A"} {
		_, err := decode(t, `{"estado":"`+in+`"}`).Normalize()
		assert.Error(t, err, in)
	}

	// Blank estado is simply absent.
	f, err := decode(t, `{"estado":"  "}`).Normalize()
	require.NoError(t, err)
	assert.False(t, f.Estado.Valid)
}

func TestNormalize_AnoMesRanges(t *testing.T) {
	valid := []string{
		`{"ano":1900}`, `{"ano":2100}`, `{"ano":2024}`, `{"ano":"2024"}`,
		`{"mes":1}`, `{"mes":12}`, `{"mes":"12"}`,
	}
	for _, body := range valid {
		_, err := decode(t, body).Normalize()
		assert.NoError(t, err, body)
	}

	invalid := []string{
		`{"ano":1899}`, `{"ano":2101}`, `{"mes":0}`, `{"mes":13}`, `{"mes":"treze"}`,
	}
	for _, body := range invalid {
		_, err := decode(t, body).Normalize()
		assert.Error(t, err, body)
	}
}

func TestNormalize_Dimensions(t *testing.T) {
	f, err := decode(t, `{"largura_cm":"15","altura_cm":20,"comprimento_cm":null}`).Normalize()
	require.NoError(t, err)
	assert.Equal(t, int64(15), f.LarguraCm.Int64)
	assert.Equal(t, int64(20), f.AlturaCm.Int64)
	assert.False(t, f.ComprimentoCm.Valid)

	for _, body := range []string{`{"largura_cm":"abc"}`, `{"altura_cm":12.5}`, `{"comprimento_cm":"1.5"}`} {
		_, err := decode(t, body).Normalize()
		assert.Error(t, err, body)
	}

	// Empty form input means no value, not a parse failure.
	f, err = decode(t, `{"largura_cm":""}`).Normalize()
	require.NoError(t, err)
	assert.False(t, f.LarguraCm.Valid)
}

func TestNormalize_Peso(t *testing.T) {
	f, err := decode(t, `{"peso":"12.5"}`).Normalize()
	require.NoError(t, err)
	assert.Equal(t, 12.5, f.Peso.Float64)

	f, err = decode(t, `{"peso":3}`).Normalize()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f.Peso.Float64)

	_, err = decode(t, `{"peso":"pesado"}`).Normalize()
	assert.Error(t, err)
}

func TestNormalize_InfoSemantics(t *testing.T) {
	// Absent: binds NULL so the stored text is kept.
	f, err := decode(t, `{"nome":"x"}`).Normalize()
	require.NoError(t, err)
	assert.False(t, f.Info.Valid)

	// Present and empty: binds '' and overwrites.
	f, err = decode(t, `{"info":""}`).Normalize()
	require.NoError(t, err)
	assert.True(t, f.Info.Valid)
	assert.Equal(t, "", f.Info.String)

	// Present as null: cleared to empty string, never NULL.
	f, err = decode(t, `{"info":null}`).Normalize()
	require.NoError(t, err)
	assert.True(t, f.Info.Valid)
	assert.Equal(t, "", f.Info.String)

	f, err = decode(t, `{"info":"  restaurada em 2019  "}`).Normalize()
	require.NoError(t, err)
	assert.Equal(t, "restaurada em 2019", f.Info.String)
}

func TestNormalize_StripsBackticksFromPrimaryImageURL(t *testing.T) {
	f, err := decode(t, "{\"imagem_principal_url\":\"`https://img.example/frente.jpg`\"}").Normalize()
	require.NoError(t, err)
	assert.True(t, f.ImagemPrincipalURL.Valid)
	assert.Equal(t, "https://img.example/frente.jpg", f.ImagemPrincipalURL.String)
}

func TestHasFields(t *testing.T) {
	assert.False(t, decode(t, `{}`).HasFields())
	// Unknown keys are dropped by the decoder.
	assert.False(t, decode(t, `{"categoria":"diorama"}`).HasFields())
	assert.True(t, decode(t, `{"info":null}`).HasFields())
	assert.True(t, decode(t, `{"nome":"x"}`).HasFields())
}

func TestImagePayload_Normalize(t *testing.T) {
	var p models.ImageCreatePayload
	require.NoError(t, json.Unmarshal([]byte(`{"url":" https://img.example/m.jpg ","position":"3"}`), &p))

	f, err := p.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/m.jpg", f.URL.String)
	assert.False(t, f.PublicID.Valid)
	assert.True(t, f.Position.Valid)
	assert.Equal(t, int64(3), f.Position.Int64)

	var empty models.ImageCreatePayload
	require.NoError(t, json.Unmarshal([]byte(`{"url":"  ","public_id":""}`), &empty))
	_, err = empty.Normalize()
	assert.Error(t, err)
}
