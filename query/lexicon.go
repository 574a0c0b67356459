// Copyright 2026 Sağlık ROCK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package query

// The lexicon is the static Turkish-focused vocabulary the whole query
// pipeline works from: synonym expansion, category detection, chunking,
// and bonus scoring all read these tables.

// WordMap maps a trigger term to its synonyms, ordered by relevance.
var WordMap = map[string][]string{
	"epinefrin":  {"adrenalin", "vazopresor", "epinephrine", "vazopresör"},
	"cpr":        {"kalp masajı", "canlandırma", "resüsitasyon", "kardiyopulmoner", "temel yaşam desteği"},
	"aed":        {"defibrillatör", "şok cihazı", "otomatik defibrillatör", "elektrik şoku", "defibrilasyon"},
	"kompresyon": {"basınç", "göğüs basısı", "masaj", "basma", "kompresif", "sıkıştırma"},
	"çocuk":      {"pediatrik", "infant", "bebek", "küçük", "child", "yenidoğan"},
	"doz":        {"dozu", "miktar", "mg", "milligram", "amount", "dose", "dozaj"},
	"oran":       {"ratio", "rate", "hız", "frekans", "proporsiyon", "nisbet"},
	"derinlik":   {"depth", "cm", "santimetre", "mesafe", "uzunluk"},
	"amiodarone": {"amiodaron", "antiaritmik", "kordarone", "ritim düzenleyici"},
	"atropin":    {"atropine", "antikolinerjik", "bradikardi ilacı"},
	"nasıl":      {"how", "ne şekilde", "hangi yöntem", "prosedür", "adımlar"},
	"nedir":      {"what", "ne", "tanım", "definition", "açıklama"},
	"kaç":        {"how much", "how many", "ne kadar", "miktar", "quantity", "sayı"},
}

// CategoryKeywords defines the category taxonomy of the knowledge bank.
var CategoryKeywords = map[string][]string{
	"cpr":       {"cpr", "kalp masajı", "kompresyon", "canlandırma", "resüsitasyon", "temel yaşam desteği", "kardiyopulmoner"},
	"aed":       {"aed", "defibrillatör", "şok", "elektrot", "otomatik defibrillatör", "defibrilasyon", "elektrik şoku"},
	"ilaç":      {"epinefrin", "adrenalin", "amiodarone", "atropin", "lidokain", "vazopresor", "antiaritmik", "doz", "mg"},
	"hava_yolu": {"entübasyon", "oksijen", "solunum", "ventilasyon", "airway", "bag mask", "laryngoscope"},
	"çocuk":     {"bebek", "çocuk", "pediatrik", "infant", "yenidoğan", "küçük", "child", "baby"},
}

// DefaultCategory is assumed when no category scores at all.
const DefaultCategory = "cpr"

// relatedCategories maps a category to its clinically adjacent ones.
var relatedCategories = map[string][]string{
	"cpr":   {"çocuk", "acil"},
	"aed":   {"cpr", "acil"},
	"ilaç":  {"cpr", "acil"},
	"çocuk": {"cpr"},
	"acil":  {"cpr", "aed", "ilaç"},
}

// RelatedCategories reports whether two categories are clinically adjacent.
func RelatedCategories(a, b string) bool {
	for _, rel := range relatedCategories[a] {
		if rel == b {
			return true
		}
	}
	return false
}

// QuestionWords mark a fragment as carrying the intent of the question.
var QuestionWords = []string{
	"nasıl", "nedir", "neden", "ne zaman", "nerede", "kaç", "hangi",
	"how", "what", "why", "when", "where", "which", "how many",
}

// ConnectiveWords split long queries into independent fragments.
var ConnectiveWords = []string{
	"ve", "ile", "ayrıca", "hem", "ek olarak", "bunun yanında",
	"and", "with", "also", "plus", "additionally",
}

// AnchorTerms are the core topics of the domain. Fragments without any of
// these get an anchor prepended so chunk embeddings stay on topic.
var AnchorTerms = []string{
	"cpr", "kompresyon", "solunum", "aed", "defibrilasyon",
	"epinefrin", "amiodarone", "atropin", "hipotermik",
	"yetişkin", "çocuk", "bebek", "kalp", "nabız",
}

// SemanticNeighbors expands a concept with related clinical vocabulary.
var SemanticNeighbors = map[string][]string{
	"kalp":  {"cardiac", "miyokard", "ventrikül", "atrium"},
	"nefes": {"solunum", "respiration", "oksigen", "ventilation"},
	"çocuk": {"pediatrik", "infant", "baby", "küçük"},
	"acil":  {"emergency", "kritik", "urgent", "arrest"},
}

// HighValueTerms earn a semantic bonus when shared by query and document.
var HighValueTerms = []string{
	"epinefrin", "aed", "kompresyon", "defibrilasyon", "entübasyon",
}

// SampleQuestions are shown when a question produces no results.
var SampleQuestions = []string{
	"Epinefrin dozu kaç mg ve nasıl uygulanır?",
	"AED nasıl kullanılır adım adım?",
	"CPR kompresyon oranı ve derinliği nedir?",
	"Çocuklarda CPR nasıl farklıdır?",
	"Amiodarone dozu ve endikasyonları neler?",
	"Entübasyon ne zaman gereklidir?",
	"Kalp durmasında ilk yapılacaklar",
	"Hipotermik arrest protokolü nedir?",
}
