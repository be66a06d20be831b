package feed

import (
	"fmt"

	"civicpulse/internal/domain"
)

const (
	nonpartisan = "Nonpartisan"
	// descriptionLimit - сколько символов свободного текста попадает в описание.
	descriptionLimit = 240
)

// IncumbentsChannel - заголовок ленты действующих должностных лиц.
func IncumbentsChannel(jurisdiction string) Channel {
	return Channel{Title: "Incumbents — " + jurisdiction}
}

// IncumbentEntries формирует по элементу на каждый действующий срок.
// GUID не задается, pubDate подставляется рендерером.
func IncumbentEntries(incumbents []domain.Incumbent) []Entry {
	entries := make([]Entry, 0, len(incumbents))
	for _, inc := range incumbents {
		entries = append(entries, Entry{
			Title: inc.Person.FullName + " — " + inc.Office.Name,
			Link:  domain.StringValue(inc.Person.Website),
			Description: fmt.Sprintf("Party: %s | Office: %s (%s)",
				partyOr(inc.Person.Party, nil), inc.Office.Jurisdiction, inc.Office.Level),
		})
	}
	return entries
}

// RacesChannel - заголовок ленты активных кампаний.
func RacesChannel(jurisdiction string) Channel {
	return Channel{Title: "Active Races — " + jurisdiction}
}

// RaceEntries ссылается на список кандидатов каждой кампании.
func RaceEntries(races []domain.Race) []Entry {
	entries := make([]Entry, 0, len(races))
	for _, r := range races {
		date := "TBD"
		if r.ElectionDate != nil {
			date = r.ElectionDate.UTC().Format("2006-01-02 15:04:05")
		}
		entries = append(entries, Entry{
			Title:       r.Name,
			Link:        fmt.Sprintf("/candidates?race_id=%d", r.ID),
			Description: "Election date: " + date,
			GUID:        fmt.Sprintf("race-%d", r.ID),
		})
	}
	return entries
}

// CandidatesChannel - заголовок ленты кандидатов; raceID == 0 означает все кампании.
func CandidatesChannel(raceID int64) Channel {
	title := "Candidates"
	if raceID != 0 {
		title += fmt.Sprintf(" — Race #%d", raceID)
	}
	return Channel{Title: title}
}

func CandidateEntries(candidates []domain.Candidate) []Entry {
	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		status := domain.StringValue(c.Candidacy.Status)
		if status == "" {
			status = "—"
		}
		entries = append(entries, Entry{
			Title: fmt.Sprintf("%s (%s)", c.Person.FullName, partyOr(c.Candidacy.Party, c.Person.Party)),
			Link:  domain.StringValue(c.Person.Website),
			Description: fmt.Sprintf("Status: %s | Race #%d | Platform: %s",
				status, c.Candidacy.RaceID, Truncate(domain.StringValue(c.Candidacy.Platform), descriptionLimit)),
			GUID: fmt.Sprintf("cand-%d", c.Candidacy.ID),
		})
	}
	return entries
}

// PersonChannel - заголовок персональной ленты.
func PersonChannel(p domain.Person) Channel {
	return Channel{
		Title: p.FullName + " — Positions & Record",
		Link:  domain.StringValue(p.Website),
	}
}

// PersonEntries объединяет позиции и записи о деятельности: сначала позиции,
// затем действия, каждая группа в порядке выборки.
func PersonEntries(p domain.Person, positions []domain.Position, actions []domain.Action) []Entry {
	entries := make([]Entry, 0, len(positions)+len(actions))
	website := domain.StringValue(p.Website)
	for _, pos := range positions {
		entries = append(entries, Entry{
			Title:       "Position: " + pos.Topic,
			Link:        firstNonEmpty(domain.StringValue(pos.SourceURL), website),
			Description: domain.StringValue(pos.Stance),
			GUID:        fmt.Sprintf("pos-%d", pos.ID),
		})
	}
	for _, act := range actions {
		e := Entry{
			Title: "Record: " + act.Title,
			Link:  firstNonEmpty(domain.StringValue(act.SourceURL), website),
			Description: fmt.Sprintf("%s | %s | %s",
				domain.StringValue(act.Category),
				domain.StringValue(act.Outcome),
				Truncate(domain.StringValue(act.Description), descriptionLimit)),
			GUID: fmt.Sprintf("act-%d", act.ID),
		}
		if act.Date != nil {
			e.PubDate = FormatDate(*act.Date)
		}
		entries = append(entries, e)
	}
	return entries
}

func partyOr(primary, fallback *string) string {
	if p := firstNonEmpty(domain.StringValue(primary), domain.StringValue(fallback)); p != "" {
		return p
	}
	return nonpartisan
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
