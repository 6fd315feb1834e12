// Package report renders presence records into the chat reply of a status command.
package report

import (
	"sort"
	"strings"
	"time"

	"steamstatus/status-bot/command"
	"steamstatus/status-bot/models"
)

// Formatter builds status reports. Now is the clock used for "last seen"
// times; nil means time.Now.
type Formatter struct {
	Now func() time.Time
}

func New() *Formatter {
	return &Formatter{Now: time.Now}
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Format returns one line per selected record, online players first, each group
// ordered by name.
func (f *Formatter) Format(req *command.Request, records []models.PresenceRecord) string {
	now := f.now()
	selected := Select(req, records)

	lines := make([]string, 0, len(selected))
	for _, rec := range selected {
		lines = append(lines, f.line(rec, now, req.Has(command.Verbose)))
	}
	return strings.Join(lines, "\n")
}

// Select keeps the records the request asked to see and sorts them offline-last
// and then by name. Records that compare equal keep their input order.
func Select(req *command.Request, records []models.PresenceRecord) []models.PresenceRecord {
	var online, offline []models.PresenceRecord
	for _, rec := range records {
		if rec.Offline() {
			offline = append(offline, rec)
		} else {
			online = append(online, rec)
		}
	}

	out := make([]models.PresenceRecord, 0, len(records))
	if req.Has(command.ShowOnline) {
		out = append(out, online...)
	}
	if req.Has(command.ShowOffline) {
		out = append(out, offline...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Offline() != b.Offline() {
			return !a.Offline()
		}
		return a.Name < b.Name
	})
	return out
}

// Line renders a single record, e.g. "Alice is online, playing Chess.".
func (f *Formatter) Line(rec models.PresenceRecord, verbose bool) string {
	return f.line(rec, f.now(), verbose)
}

func (f *Formatter) line(rec models.PresenceRecord, now time.Time, verbose bool) string {
	var sb strings.Builder
	sb.WriteString(rec.Name)
	sb.WriteString(" is ")
	sb.WriteString(rec.Status.Word())

	switch {
	case rec.Offline():
		sb.WriteString(", last seen ")
		sb.WriteString(Elapsed(now.Sub(rec.LastSeen), verbose))
		sb.WriteString(" ago")
	case rec.Game != "":
		sb.WriteString(", playing ")
		sb.WriteString(rec.Game)
	}
	sb.WriteString(".")
	return sb.String()
}
