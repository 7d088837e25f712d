// Package translate provides response translation with LLM APIs (Gemini and Groq).
// This file translates timetable content (subjects, faculty, venues) after
// data fetch and before rendering. Times, room codes and structure are
// preserved; each entry falls back to the glossary on its own, so one bad
// provider call never degrades the whole week.
package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/adityaraj161616/campus-chatbot-go/internal/glossary"
	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
)

// Timetable translates a week of class slots into the target language.
// English input comes back unchanged.
func (s *Service) Timetable(ctx context.Context, week storage.Week, target i18n.Language) storage.Week {
	if target == i18n.English {
		return week
	}

	raw, _ := s.primary.(RawTranslator)
	if raw == nil {
		return glossaryWeek(week, target)
	}

	return storage.Week{
		Monday:    s.translateEntries(ctx, raw, week.Monday, target),
		Tuesday:   s.translateEntries(ctx, raw, week.Tuesday, target),
		Wednesday: s.translateEntries(ctx, raw, week.Wednesday, target),
		Thursday:  s.translateEntries(ctx, raw, week.Thursday, target),
		Friday:    s.translateEntries(ctx, raw, week.Friday, target),
		Saturday:  s.translateEntries(ctx, raw, week.Saturday, target),
	}
}

func (s *Service) translateEntries(ctx context.Context, raw RawTranslator, entries []storage.TimetableEntry, target i18n.Language) []storage.TimetableEntry {
	if len(entries) == 0 {
		return entries
	}
	out := make([]storage.TimetableEntry, len(entries))
	for i, e := range entries {
		out[i] = s.translateEntry(ctx, raw, e, target)
	}
	return out
}

// translateEntry asks the model for "subject|faculty|venue" and splits the
// reply back into fields. Any failure drops this one entry to the glossary.
func (s *Service) translateEntry(ctx context.Context, raw RawTranslator, entry storage.TimetableEntry, target i18n.Language) storage.TimetableEntry {
	if entry.Subject == "" && entry.Faculty == "" && entry.Venue == "" {
		return entry
	}

	reply, err := raw.TranslateRaw(ctx, TimetableEntryPrompt(entry.Subject, entry.Faculty, entry.Venue, target))
	if err != nil {
		slog.DebugContext(ctx, "timetable entry translation failed, using glossary",
			"subject", entry.Subject,
			"target_language", target,
			"error", err)
		return glossaryEntry(entry, target)
	}

	parts := strings.Split(reply, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return glossaryEntry(entry, target)
	}

	out := storage.TimetableEntry{Time: entry.Time, Subject: parts[0], Faculty: parts[1], Venue: parts[2]}
	if out.Subject == "" {
		out.Subject = glossary.Translate(entry.Subject, target)
	}
	if out.Faculty == "" {
		out.Faculty = entry.Faculty
	}
	if out.Venue == "" {
		out.Venue = glossary.Translate(entry.Venue, target)
	}
	return out
}

func glossaryWeek(week storage.Week, target i18n.Language) storage.Week {
	return storage.Week{
		Monday:    glossaryEntries(week.Monday, target),
		Tuesday:   glossaryEntries(week.Tuesday, target),
		Wednesday: glossaryEntries(week.Wednesday, target),
		Thursday:  glossaryEntries(week.Thursday, target),
		Friday:    glossaryEntries(week.Friday, target),
		Saturday:  glossaryEntries(week.Saturday, target),
	}
}

func glossaryEntries(entries []storage.TimetableEntry, target i18n.Language) []storage.TimetableEntry {
	if len(entries) == 0 {
		return entries
	}
	out := make([]storage.TimetableEntry, len(entries))
	for i, e := range entries {
		out[i] = glossaryEntry(e, target)
	}
	return out
}

func glossaryEntry(entry storage.TimetableEntry, target i18n.Language) storage.TimetableEntry {
	return storage.TimetableEntry{
		Time:    entry.Time, // Time stays the same
		Subject: glossary.Translate(entry.Subject, target),
		Faculty: glossary.Translate(entry.Faculty, target),
		Venue:   glossary.Translate(entry.Venue, target),
	}
}
