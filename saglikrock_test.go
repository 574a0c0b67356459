package saglikrock

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alihaydarkir/saglikrock/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBank = `[
	{
		"id": "cpr_001",
		"icerik": "CPR kompresyon oranı 30:2'dir. Derinlik 5-6 cm, hız dakikada 100-120 bası olmalıdır.",
		"kategori": "cpr",
		"alt_kategori": "temel_yasam_destegi",
		"guvenilirlik": 0.95,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "AHA 2020"}
	},
	{
		"id": "drug_001",
		"icerik": "Epinefrin dozu yetişkinlerde 1 mg IV/IO, 3-5 dakikada bir tekrarlanır.",
		"kategori": "ilaç",
		"alt_kategori": "doz_bilgisi",
		"guvenilirlik": 0.9,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "aed_001",
		"icerik": "AED elektrotları çıplak göğse yapıştırılır, analiz sırasında hastaya dokunulmaz.",
		"kategori": "aed",
		"alt_kategori": "kullanim",
		"guvenilirlik": 0.85,
		"acillik_seviyesi": "yuksek",
		"metadata": {"kaynak": "AHA 2020"}
	}
]`

// testEmbedder maps texts onto fixed unit vectors by topic keyword so the
// end-to-end flow behaves deterministically.
func testEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedText := func(text string) []float32 {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "kompresyon"):
			return []float32{1, 0, 0}
		case strings.Contains(lower, "epinefrin"):
			return []float32{0, 1, 0}
		case strings.Contains(lower, "aed"):
			return []float32{0, 0, 1}
		default:
			return []float32{0.5, 0.5, 0.5}
		}
	}
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return embedText(text), nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i, t := range texts {
			vectors[i] = embedText(t)
		}
		return vectors, nil
	}
	return embedder
}

func newTestSystem(t *testing.T) *System {
	t.Helper()

	system, err := NewSystem("", WithProvider(mock.NewMockProviderWithEmbedder(testEmbedder())))
	require.NoError(t, err)
	t.Cleanup(func() { system.Close() })
	return system
}

func buildTestIndex(t *testing.T, system *System) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(testBank), 0o644))

	count, err := system.BuildIndex(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestSystem_AnswerEndToEnd(t *testing.T) {
	system := newTestSystem(t)
	buildTestIndex(t, system)
	ctx := context.Background()

	result, err := system.SearchEngine().Search(ctx, "CPR kompresyon oranı nedir?")
	require.NoError(t, err)
	assert.Equal(t, "cpr", result.Analysis.Category)
	require.NotEmpty(t, result.Hits)
	assert.Greater(t, result.Hits[0].BaseSimilarity, 0.0)

	response, err := system.Answer(ctx, "CPR kompresyon oranı nedir?")
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, "tanım", response.ThresholdClass)
	assert.Greater(t, response.BestScore, response.Threshold)
	assert.Contains(t, response.Text, "30:2")
	assert.Contains(t, response.Text, "112")
}

func TestSystem_NoResultsOnEmptyIndex(t *testing.T) {
	system := newTestSystem(t)
	ctx := context.Background()

	question := "Uzun ve tamamen alakasız bir konu hakkında detaylı bilgi almak istiyorum lütfen bana yardımcı olun"
	response, err := system.Answer(ctx, question)
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Contains(t, response.Text, "Spesifik protokol bulunamadı")
	assert.Contains(t, response.Text, "Popüler CPR Soruları")
}

func TestSystem_AnswerCached(t *testing.T) {
	system := newTestSystem(t)
	buildTestIndex(t, system)
	ctx := context.Background()

	first, err := system.Answer(ctx, "Epinefrin dozu kaç mg?")
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := system.Answer(ctx, "Epinefrin dozu kaç mg?")
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Text, second.Text)

	stats := system.Stats()
	assert.Equal(t, 2, stats.TotalQueries)
	assert.Equal(t, 2, stats.SuccessfulQueries)
}

func TestSystem_BuildIndexIdempotent(t *testing.T) {
	system := newTestSystem(t)
	buildTestIndex(t, system)
	buildTestIndex(t, system)

	count, err := system.DocumentCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSystem_BuildIndexMissingBank(t *testing.T) {
	system := newTestSystem(t)

	_, err := system.BuildIndex(context.Background(), filepath.Join(t.TempDir(), "yok.json"))
	assert.Error(t, err)

	count, err := system.DocumentCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSystem_Reindex(t *testing.T) {
	system := newTestSystem(t)
	buildTestIndex(t, system)

	var buf strings.Builder
	require.NoError(t, system.Reindex(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Reindexing complete")
}
