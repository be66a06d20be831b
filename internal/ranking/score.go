package ranking

import (
	"math"
	"strings"
	"time"
)

const (
	defaultCategoryWeight = 2.0
	defaultSourceTrust    = 0.5
	// undatedDecay применяется к записям без даты публикации.
	undatedDecay  = 0.5
	halfLifeHours = 168.0
	minAgeHours   = 1.0
	officialBonus = 1.2
)

var categoryWeights = map[string]float64{
	"legislation":    5.0,
	"agenda":         4.0,
	"public_notice":  3.5,
	"infrastructure": 3.0,
	"safety":         3.5,
	"event":          2.0,
	"news":           2.5,
}

var sourceTrust = map[string]float64{
	"city.gov":   1.0,
	"county.gov": 0.9,
	"state.gov":  0.9,
	"us.gov":     1.0,
	"local_news": 0.6,
	"community":  0.4,
}

type keywordBonus struct {
	keyword string
	factor  float64
}

// keywordBonuses перебираются в фиксированном порядке, чтобы произведение
// было воспроизводимым до последнего бита.
var keywordBonuses = []keywordBonus{
	{"ordinance", 1.5},
	{"zoning", 1.3},
	{"budget", 1.4},
	{"tax", 1.4},
	{"road closure", 1.2},
	{"public hearing", 1.5},
	{"election", 1.6},
	{"schools", 1.2},
	{"water", 1.2},
	{"crime", 1.2},
}

// Input содержит атрибуты новости, влияющие на важность.
type Input struct {
	Category    string
	Source      string
	Title       string
	Summary     *string
	PublishedAt *time.Time
	IsOfficial  bool
}

// Scorer вычисляет важность новостей относительно часов now.
// Безопасен для конкурентного использования.
type Scorer struct {
	now func() time.Time
}

// NewScorer создает Scorer. При now == nil используется time.Now.
func NewScorer(now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{now: now}
}

// Score возвращает важность in на текущий момент часов Scorer.
func (s *Scorer) Score(in Input) float64 {
	return Score(in, s.now())
}

// Score вычисляет важность записи на момент now:
// вес категории * доверие к источнику * ключевые слова * (0.7 + 0.3*затухание) * бонус за официальность.
// Никогда не завершается ошибкой: для всех справочников есть значение по умолчанию.
func Score(in Input, now time.Time) float64 {
	weight := lookup(categoryWeights, in.Category, defaultCategoryWeight)
	trust := lookup(sourceTrust, in.Source, defaultSourceTrust)
	keywords := KeywordMultiplier(in.Title, in.Summary)
	age := Decay(in.PublishedAt, now)
	bonus := 1.0
	if in.IsOfficial {
		bonus = officialBonus
	}
	return weight * trust * keywords * (0.7 + 0.3*age) * bonus
}

// KeywordMultiplier перемножает множители всех ключевых слов, встречающихся
// в заголовке или описании без учета регистра.
func KeywordMultiplier(title string, summary *string) float64 {
	text := title + " "
	if summary != nil {
		text += *summary
	}
	text = strings.ToLower(text)

	mult := 1.0
	for _, kb := range keywordBonuses {
		if strings.Contains(text, kb.keyword) {
			mult *= kb.factor
		}
	}
	return mult
}

// Decay возвращает коэффициент свежести в (0, 1] с периодом полураспада 168 часов.
// Возраст меньше часа (включая даты из будущего) считается равным одному часу.
func Decay(publishedAt *time.Time, now time.Time) float64 {
	if publishedAt == nil {
		return undatedDecay
	}
	hours := now.UTC().Sub(publishedAt.UTC()).Hours()
	if hours < minAgeHours {
		hours = minAgeHours
	}
	return math.Pow(0.5, hours/halfLifeHours)
}

func lookup(table map[string]float64, key string, def float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}
