package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-resin-keeper/models"
)

func renderNotes(c models.AccountCharacter, note models.RealTimeNote, ok bool, now time.Time) string {
	title := fmt.Sprintf("%s  %s  %s", c.Nickname, c.UID, c.ServerName)
	hotKeys := "r: refresh  c: copy uid  esc: back"

	if !ok {
		body := "No notes fetched yet. " + statusBadge(c.Status)
		if c.AccountStatus != models.StatusReady {
			body += "\nAccount is " + statusBadge(c.AccountStatus)
		}
		return renderPage(title, body, hotKeys)
	}

	var b strings.Builder

	resin := fmt.Sprintf("%d/%d", note.ResinAt(now), note.MaxResin)
	if full := note.ResinFullAt(); now.Before(full) {
		resin += fmt.Sprintf("  full in %s (%s)", formatRemaining(full.Sub(now)), formatClock(full, now))
	} else {
		resin += "  full"
	}
	b.WriteString(field("Original resin:", resin))

	commissions := fmt.Sprintf("%d/%d", note.FinishedTaskNum, note.TotalTaskNum)
	if note.IsExtraTaskRewardReceived {
		commissions += "  reward claimed"
	} else if note.FinishedTaskNum >= note.TotalTaskNum && note.TotalTaskNum > 0 {
		commissions += "  reward not claimed"
	}
	b.WriteString(field("Daily commissions:", commissions))

	b.WriteString(field("Weekly discounts:",
		fmt.Sprintf("%d/%d", note.RemainResinDiscountNum, note.ResinDiscountNumLimit)))

	if note.MaxHomeCoin > 0 {
		coin := fmt.Sprintf("%d/%d", note.CurrentHomeCoin, note.MaxHomeCoin)
		if full := note.HomeCoinFullAt(); now.Before(full) {
			coin += "  full in " + formatRemaining(full.Sub(now))
		}
		b.WriteString(field("Realm currency:", coin))
	}

	if note.Transformer.Obtained {
		transformer := "ready"
		if !note.Transformer.RecoveryTime.Reached {
			transformer = "in " + formatRemaining(note.FetchedAt.Add(note.Transformer.RecoveryTime.Duration()).Sub(now))
		}
		b.WriteString(field("Parametric transformer:", transformer))
	}

	b.WriteString(field("Expeditions:", fmt.Sprintf("%d/%d, %d finished",
		note.CurrentExpeditionNum, note.MaxExpeditionNum, note.FinishedExpeditions(now))))
	for i := range note.Expeditions {
		b.WriteString("  ")
		b.WriteString(fmt.Sprintf("#%d  %s\n", i+1, formatRemaining(note.ExpeditionFinishAt(i).Sub(now))))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("fetched %s  %s", formatClock(note.FetchedAt, now), statusBadge(c.Status))))

	return renderPage(title, b.String(), hotKeys)
}
