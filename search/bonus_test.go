package search

import (
	"strings"
	"testing"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/stretchr/testify/assert"
)

func bonusDoc() *core.Document {
	return &core.Document{
		Content:     "Epinefrin dozu yetişkinlerde 1 mg IV/IO uygulanır ve 3-5 dakikada bir tekrarlanır. Pediatrik hastalarda doz 0.01 mg/kg olarak hesaplanır. Uygulama sonrası kompresyonlara ara vermeden devam edilmelidir.",
		Category:    "ilaç",
		Reliability: 0.9,
		Urgency:     core.UrgencyCritical,
	}
}

func TestComputeBonuses(t *testing.T) {
	doc := bonusDoc()
	bonuses := computeBonuses("epinefrin dozu kaç mg", doc, "ilaç")

	t.Run("exact match rewards word overlap", func(t *testing.T) {
		assert.Greater(t, bonuses.ExactMatch, 1.0)
		assert.LessOrEqual(t, bonuses.ExactMatch, 1.4)
	})

	t.Run("matching category", func(t *testing.T) {
		assert.Equal(t, 1.3, bonuses.CategoryMatch)
	})

	t.Run("reliability maps into 0.8-1.0", func(t *testing.T) {
		assert.InDelta(t, 0.98, bonuses.Reliability, 1e-9)
	})

	t.Run("higher reliability scores higher", func(t *testing.T) {
		lower := bonusDoc()
		lower.Reliability = 0.5
		lowerBonuses := computeBonuses("epinefrin dozu kaç mg", lower, "ilaç")
		assert.Greater(t, bonuses.Total(), lowerBonuses.Total())
	})

	t.Run("critical urgency", func(t *testing.T) {
		assert.Equal(t, 1.2, bonuses.Emergency)
	})

	t.Run("shared high-value term", func(t *testing.T) {
		assert.InDelta(t, 1.1, bonuses.Semantic, 1e-9)
	})
}

func TestComputeBonuses_CategoryAdjacency(t *testing.T) {
	doc := bonusDoc()

	t.Run("adjacent category gets partial credit", func(t *testing.T) {
		// ilaç is adjacent to cpr
		bonuses := computeBonuses("epinefrin", doc, "cpr")
		assert.Equal(t, 1.1, bonuses.CategoryMatch)
	})

	t.Run("unrelated category is neutral", func(t *testing.T) {
		bonuses := computeBonuses("epinefrin", doc, "hava_yolu")
		assert.Equal(t, 1.0, bonuses.CategoryMatch)
	})
}

func TestComputeBonuses_NoQueryWords(t *testing.T) {
	doc := bonusDoc()
	bonuses := computeBonuses("ve de mi", doc, "ilaç")
	assert.Equal(t, 1.0, bonuses.ExactMatch)
}

func TestLengthBonus(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("kelime ", n))
	}

	assert.Equal(t, 1.15, lengthBonus(words(20)))
	assert.Equal(t, 1.15, lengthBonus(words(150)))
	assert.Equal(t, 1.05, lengthBonus(words(12)))
	assert.Equal(t, 1.05, lengthBonus(words(200)))
	assert.Equal(t, 0.95, lengthBonus(words(5)))
	assert.Equal(t, 0.95, lengthBonus(words(300)))
}

func TestEmergencyBonus(t *testing.T) {
	assert.Equal(t, 1.2, emergencyBonus(core.UrgencyCritical))
	assert.Equal(t, 1.1, emergencyBonus(core.UrgencyHigh))
	assert.Equal(t, 1.0, emergencyBonus(core.UrgencyNormal))
}

func TestSemanticBonus(t *testing.T) {
	t.Run("one shared term", func(t *testing.T) {
		bonus := semanticBonus("aed kullanımı", "AED elektrotları göğse yapıştırılır")
		assert.InDelta(t, 1.1, bonus, 1e-9)
	})

	t.Run("caps at 1.5", func(t *testing.T) {
		text := "epinefrin aed kompresyon defibrilasyon entübasyon"
		bonus := semanticBonus(text, text)
		assert.Equal(t, 1.5, bonus)
	})

	t.Run("no shared term", func(t *testing.T) {
		bonus := semanticBonus("hava yolu", "oksijen desteği")
		assert.Equal(t, 1.0, bonus)
	})
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("CPR, kompresyon! oranı nedir?")
	assert.Equal(t, []string{"cpr", "kompresyon", "oranı", "nedir"}, tokens)
}

func TestContentWordSet(t *testing.T) {
	set := contentWordSet("Epinefrin ve doz: 1 mg")
	assert.True(t, set["epinefrin"])
	assert.True(t, set["doz"])
	assert.False(t, set["ve"], "stop word filtered")
	assert.False(t, set["mg"], "too short")
}
