package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBank(t *testing.T) {
	path := writeBank(t, `[
		{
			"id": "cpr_001",
			"icerik": "CPR kompresyon oranı 30:2'dir.",
			"kategori": "cpr",
			"alt_kategori": "temel_yasam_destegi",
			"guvenilirlik": 0.95,
			"acillik_seviyesi": "kritik",
			"metadata": {"kaynak": "AHA 2020"}
		},
		{
			"icerik": "Epinefrin dozu 1 mg IV uygulanır.",
			"kategori": "ilaç"
		}
	]`)

	docs, err := LoadBank(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	t.Run("full entry", func(t *testing.T) {
		doc := docs[0]
		assert.Equal(t, "cpr_001", doc.SourceID)
		assert.Equal(t, "CPR kompresyon oranı 30:2'dir.", doc.Content)
		assert.Equal(t, "cpr", doc.Category)
		assert.Equal(t, "temel_yasam_destegi", doc.Subcategory)
		assert.Equal(t, 0.95, doc.Reliability)
		assert.Equal(t, core.UrgencyCritical, doc.Urgency)
		assert.Equal(t, "AHA 2020", doc.Source)
	})

	t.Run("sparse entry gets defaults", func(t *testing.T) {
		doc := docs[1]
		assert.Empty(t, doc.SourceID)
		assert.Equal(t, "genel", doc.Subcategory)
		assert.Equal(t, 0.8, doc.Reliability)
		assert.Equal(t, core.UrgencyNormal, doc.Urgency)
		assert.Equal(t, "bilinmiyor", doc.Source)
	})
}

func TestLoadBank_MissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "yok.json"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBank_MalformedJSON(t *testing.T) {
	path := writeBank(t, `{"icerik": "dizi değil"}`)
	_, err := LoadBank(path)
	assert.ErrorIs(t, err, ErrBankMalformed)
}

func TestLoadBank_EmptyBank(t *testing.T) {
	path := writeBank(t, `[]`)
	_, err := LoadBank(path)
	assert.ErrorIs(t, err, ErrBankEmpty)
}

func TestLoadBank_InvalidEntryAbortsLoad(t *testing.T) {
	path := writeBank(t, `[
		{"icerik": "Geçerli içerik.", "kategori": "cpr"},
		{"icerik": "", "kategori": "cpr"}
	]`)

	_, err := LoadBank(path)
	assert.ErrorIs(t, err, core.ErrInvalidDocument)
	assert.ErrorContains(t, err, "bank entry 1")
}
