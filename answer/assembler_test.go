package answer

import (
	"strings"
	"testing"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/stretchr/testify/assert"
)

func TestProtocol(t *testing.T) {
	assembler := NewAssembler()
	results := []*core.RankedResult{
		{
			Document: &core.Document{
				Content:     "Epinefrin dozu yetişkinlerde 1 mg IV/IO uygulanır.",
				Category:    "ilaç",
				Subcategory: "doz_bilgisi",
				Reliability: 0.95,
				Source:      "AHA 2020",
			},
			Score:       0.42,
			Appearances: 3,
		},
	}

	text := assembler.Protocol("Epinefrin dozu kaç mg?", results, false, false)

	assert.Contains(t, text, "## 📋 CPR REHBERİ")
	assert.Contains(t, text, "**Soru:** Epinefrin dozu kaç mg?")
	assert.Contains(t, text, "**Kategori:** Ilaç")
	assert.Contains(t, text, "**Alt Kategori:** Doz Bilgisi")
	assert.Contains(t, text, "1 mg IV/IO")
	assert.Contains(t, text, "**Güvenilirlik:** %95")
	assert.Contains(t, text, "**Kaynak:** AHA 2020")
	assert.Contains(t, text, "3 varyant eşleşti, bonus: +30%")
	assert.Contains(t, text, "112'yi derhal arayın")
	assert.NotContains(t, text, "YAŞAMSAL ACİL DURUM")
}

func TestProtocol_Emergency(t *testing.T) {
	assembler := NewAssembler()
	results := []*core.RankedResult{
		{
			Document: &core.Document{Content: "Derhal kompresyona başlayın.", Category: "cpr", Reliability: 0.9},
			Score:    0.5,
		},
	}

	text := assembler.Protocol("Kardiyak arrest", results, true, true)

	assert.Contains(t, text, "🚨 KRİTİK CPR PROTOKOLÜ")
	assert.Contains(t, text, "YAŞAMSAL ACİL DURUM")
	assert.Contains(t, text, "🔴 Protokol 1")
	assert.Contains(t, text, "parçalara bölünerek analiz edildi")
}

func TestProtocol_CapsAtThree(t *testing.T) {
	assembler := NewAssembler()
	var results []*core.RankedResult
	for i := 0; i < 5; i++ {
		results = append(results, &core.RankedResult{
			Document: &core.Document{Content: "İçerik", Category: "cpr", Reliability: 0.8},
			Score:    0.3,
		})
	}

	text := assembler.Protocol("soru", results, false, false)
	assert.Equal(t, 3, strings.Count(text, "Protokol "))
}

func TestSuggestions(t *testing.T) {
	assembler := NewAssembler()

	t.Run("dose question gets dose guide", func(t *testing.T) {
		text := assembler.Suggestions("İlaç dozu hakkında", nil, false)
		assert.Contains(t, text, "İlaç Dozu Rehberi")
		assert.Contains(t, text, "Epinefrin:")
	})

	t.Run("procedure question gets procedure guide", func(t *testing.T) {
		text := assembler.Suggestions("Nasıl yapılır", nil, false)
		assert.Contains(t, text, "Prosedür Rehberi")
		assert.Contains(t, text, "30:2")
	})

	t.Run("near topics listed", func(t *testing.T) {
		near := []*core.RankedResult{
			{Document: &core.Document{Content: "Yakın konu içeriği", Category: "hava_yolu"}, Score: 0.02},
		}
		text := assembler.Suggestions("Alakasız soru", near, false)
		assert.Contains(t, text, "Yakın Konular")
		assert.Contains(t, text, "Hava Yolu")
	})

	t.Run("always carries samples and emergency number", func(t *testing.T) {
		text := assembler.Suggestions("Alakasız soru", nil, false)
		assert.Contains(t, text, "Popüler CPR Soruları")
		assert.Contains(t, text, "Epinefrin dozu kaç mg ve nasıl uygulanır?")
		assert.Contains(t, text, "Acil Durumlar: 112")
	})
}

func TestTitleCategory(t *testing.T) {
	assert.Equal(t, "Hava Yolu", titleCategory("hava_yolu"))
	assert.Equal(t, "Cpr", titleCategory("cpr"))
	assert.Equal(t, "Çocuk", titleCategory("çocuk"))
}

func TestQualityStars(t *testing.T) {
	assert.Equal(t, "⭐", qualityStars(0.05))
	assert.Equal(t, "⭐⭐", qualityStars(0.4))
	assert.Equal(t, "⭐⭐⭐⭐⭐", qualityStars(2.0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kısa", truncate("kısa", 80))
	long := strings.Repeat("a", 100)
	assert.Equal(t, strings.Repeat("a", 80)+"...", truncate(long, 80))
}
