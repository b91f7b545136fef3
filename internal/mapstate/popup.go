package mapstate

import (
	"fmt"
	"html"

	"github.com/shenikar/napmap/internal/models"
)

// MemberPopup возвращает HTML всплывающего окна одной записи.
// Значения полей экранируются.
func MemberPopup(rec models.Record) string {
	sub := rec.Subdivision
	if sub == "" {
		sub = "N/A"
	}
	return fmt.Sprintf("<b>%s</b><br>%s<br>%s, %s<br>NAP: %s",
		html.EscapeString(sub),
		html.EscapeString(rec.Street),
		html.EscapeString(rec.Barangay),
		html.EscapeString(rec.City),
		html.EscapeString(rec.NAP))
}

// GroupPopup возвращает сводку свернутой группы
func GroupPopup(g *models.MarkerGroup, store *RecordStore) string {
	if g.Count() == 1 {
		rec, _ := store.Record(g.MemberRecordIDs[0])
		return "NAP: " + html.EscapeString(rec.NAP)
	}
	return fmt.Sprintf("Click to expand %d NAPs", g.Count())
}
