package feed

import (
	"strings"
	"time"
)

// DateLayout - формат дат RSS (RFC-822) для времени в UTC.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 +0000"

// ContentType - MIME-тип отдаваемых лент.
const ContentType = "application/rss+xml"

// Entry - нормализованный элемент ленты, не зависящий от типа исходной записи.
type Entry struct {
	Title       string
	Link        string
	Description string
	// PubDate уже отформатирован; пустое значение заменяется текущим временем.
	PubDate string
	// GUID пустой, если у записи нет стабильного идентификатора.
	GUID string
}

// Channel описывает заголовок ленты.
type Channel struct {
	Title       string
	Link        string
	Description string
}

// Renderer собирает документ RSS 2.0. Часы внедряются для воспроизводимости
// lastBuildDate и подставляемых pubDate.
type Renderer struct {
	now func() time.Time
}

// NewRenderer создает Renderer. При now == nil используется time.Now.
func NewRenderer(now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{now: now}
}

// Render возвращает документ RSS 2.0 с элементами в порядке entries.
// Пустой список дает корректный документ без <item>.
func (r *Renderer) Render(ch Channel, entries []Entry) string {
	built := FormatDate(r.now())

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<rss version=\"2.0\">\n")
	b.WriteString("  <channel>\n")
	b.WriteString("    <title>" + Escape(ch.Title) + "</title>\n")
	b.WriteString("    <link>" + Escape(ch.Link) + "</link>\n")
	b.WriteString("    <description>" + Escape(ch.Description) + "</description>\n")
	b.WriteString("    <lastBuildDate>" + built + "</lastBuildDate>\n")
	for _, e := range entries {
		pub := e.PubDate
		if pub == "" {
			pub = built
		}
		guid := e.GUID
		if guid == "" {
			guid = e.Link
		}
		if guid == "" {
			guid = e.Title
		}
		b.WriteString("    <item>\n")
		b.WriteString("      <title>" + Escape(e.Title) + "</title>\n")
		b.WriteString("      <link>" + Escape(e.Link) + "</link>\n")
		b.WriteString("      <guid>" + Escape(guid) + "</guid>\n")
		b.WriteString("      <pubDate>" + pub + "</pubDate>\n")
		b.WriteString("      <description>" + Escape(e.Description) + "</description>\n")
		b.WriteString("    </item>\n")
	}
	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")
	return b.String()
}

// Escape заменяет &, < и > на сущности именно в этом порядке. Кавычки не трогает,
// уже экранированный текст экранируется повторно.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

// FormatDate форматирует t в UTC для pubDate и lastBuildDate.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Truncate обрезает s до n символов (рун).
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
