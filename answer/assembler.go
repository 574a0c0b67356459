package answer

import (
	"fmt"
	"strings"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/query"
)

const maxProtocols = 3

// Assembler renders ranked results into the Turkish Markdown answer protocol.
type Assembler struct{}

// NewAssembler creates an answer assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Protocol renders a successful answer: up to three protocol blocks with
// category, content, quality stars, reliability and source, followed by the
// standing warnings.
func (a *Assembler) Protocol(question string, results []*core.RankedResult, emergency, chunked bool) string {
	var b strings.Builder

	if emergency {
		b.WriteString("## 🚨 KRİTİK CPR PROTOKOLÜ\n\n")
		b.WriteString("⚠️ **YAŞAMSAL ACİL DURUM!** Bu protokolleri kesin takip edin.\n\n")
	} else {
		b.WriteString("## 📋 CPR REHBERİ\n\n")
	}
	fmt.Fprintf(&b, "**Soru:** %s\n\n", question)

	if chunked {
		b.WriteString("🧩 **Sorgu Analizi:** Uzun sorgunuz parçalara bölünerek analiz edildi.\n\n")
	}

	marker := "🔵"
	if emergency {
		marker = "🔴"
	}

	if len(results) > maxProtocols {
		results = results[:maxProtocols]
	}
	for i, result := range results {
		doc := result.Document

		fmt.Fprintf(&b, "### %s Protokol %d\n", marker, i+1)
		fmt.Fprintf(&b, "**Kategori:** %s\n", titleCategory(doc.Category))
		if doc.Subcategory != "" {
			fmt.Fprintf(&b, "**Alt Kategori:** %s\n", titleCategory(doc.Subcategory))
		}
		fmt.Fprintf(&b, "**İçerik:** %s\n\n", doc.Content)

		if result.Appearances > 1 {
			fmt.Fprintf(&b, "**🧩 Varyant Analizi:** %d varyant eşleşti, bonus: +%.0f%%\n",
				result.Appearances, 15*float64(result.Appearances-1))
		}

		fmt.Fprintf(&b, "**Kalite Puanı:** %s (%.3f) • ", qualityStars(result.Score), result.Score)
		fmt.Fprintf(&b, "**Güvenilirlik:** %%%.0f • ", doc.Reliability*100)
		source := doc.Source
		if source == "" {
			source = "bilinmiyor"
		}
		fmt.Fprintf(&b, "**Kaynak:** %s\n\n", source)
		b.WriteString("---\n\n")
	}

	b.WriteString("### ⚕️ UYARILAR\n")
	b.WriteString("• **AHA 2020 Guidelines** ve **ERC 2021** temelinde hazırlanmıştır\n")
	b.WriteString("• **Gerçek uygulamada** mutlaka takım koordinasyonu yapın\n")
	b.WriteString("• **Acil durumlarda** 112'yi derhal arayın\n")
	b.WriteString("• **Sürekli eğitim** ve **düzenli pratik** yapmayı unutmayın\n")

	return b.String()
}

// Suggestions renders the no-result answer: near misses when available,
// question-type specific pointers, search advice, and sample questions.
func (a *Assembler) Suggestions(question string, near []*core.RankedResult, chunked bool) string {
	var b strings.Builder

	b.WriteString("## 🎯 AKILLI CPR REHBERİ\n\n")
	fmt.Fprintf(&b, "**Soru:** %s\n\n", question)
	if chunked {
		b.WriteString("**Durum:** Spesifik protokol bulunamadı, sorgu parçalara bölündü ancak yeterli eşleşme yok.\n\n")
	} else {
		b.WriteString("**Durum:** Spesifik protokol bulunamadı.\n\n")
	}

	if len(near) > 2 {
		near = near[:2]
	}
	if len(near) > 0 {
		b.WriteString("### 📋 Yakın Konular:\n")
		for _, result := range near {
			fmt.Fprintf(&b, "• **%s:** %s (Skor: %.3f)\n",
				titleCategory(result.Document.Category),
				truncate(result.Document.Content, 80),
				result.Score)
		}
		b.WriteString("\n")
	}

	lower := strings.ToLower(question)
	if strings.Contains(lower, "doz") || strings.Contains(lower, "miktar") {
		b.WriteString("### 💊 İlaç Dozu Rehberi:\n")
		b.WriteString("• **Epinefrin:** 1mg IV/IO her 3-5 dakikada bir\n")
		b.WriteString("• **Amiodarone:** İlk doz 300mg IV, ikinci doz 150mg\n")
		b.WriteString("• **Atropin:** 1mg IV, maksimum 3mg (bradiasistol için)\n")
		b.WriteString("• **Lidokain:** 1-1.5mg/kg IV (amiodarone alternatifi)\n\n")
	}
	if strings.Contains(lower, "nasıl") || strings.Contains(lower, "adım") || strings.Contains(lower, "prosedür") {
		b.WriteString("### 📋 Prosedür Rehberi:\n")
		b.WriteString("• **CPR Adımları:** Yanıtsızlık kontrolü → Nabız kontrolü → 30:2 → AED\n")
		b.WriteString("• **AED Kullanımı:** Aç → Elektrot yerleştir → Analiz → Şok (gerekirse)\n")
		b.WriteString("• **Hava Yolu:** Head-tilt chin-lift → Bag-mask ventilasyon\n\n")
	}

	b.WriteString("### 🔍 Arama Önerileri:\n")
	b.WriteString("• **Spesifik terimler** kullanın (epinefrin, AED, kompresyon)\n")
	b.WriteString("• **Yaş grubu** belirtin (yetişkin/çocuk/bebek)\n")
	b.WriteString("• **Sayısal değerler** sorun (kaç mg, ne kadar, hangi oran)\n")
	b.WriteString("• **CPR kelimesi** ekleyin sorguya\n\n")

	b.WriteString("### 🎯 Popüler CPR Soruları:\n")
	for _, sample := range query.SampleQuestions[:4] {
		fmt.Fprintf(&b, "- %s\n", sample)
	}
	b.WriteString("\n### 📞 Acil Durumlar: 112\n")

	return b.String()
}

// titleCategory turns a bank category key like "hava_yolu" into "Hava Yolu".
func titleCategory(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, word := range words {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

func qualityStars(score float64) string {
	n := int(score * 6)
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("⭐", n)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
