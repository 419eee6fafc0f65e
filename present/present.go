// ABOUTME: Display formatting for deal analysis and matched buyers
// ABOUTME: Implements the percentage/currency heuristic and rank badge colors
package present

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quickflip/quickflip/models"
)

// NoBuyersMessage replaces the buyer list while the match is still empty.
// An empty list is a real state, distinct from "not yet loaded".
const NoBuyersMessage = "No buyers matched yet. We'll keep looking and notify you when we find a fit."

// Label converts a metric key into a human-readable header by replacing
// underscores with spaces. Case is preserved.
func Label(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// AnalysisEntry formats one analysis value for display. Numeric values
// render as percentages when the key contains "pct", otherwise as currency
// with thousands separators; everything else renders as its plain string
// form.
func AnalysisEntry(key string, value any) string {
	n, ok := asNumber(value)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	if strings.Contains(key, "pct") {
		return formatNumber(n) + "%"
	}
	return "$" + groupThousands(formatNumber(n))
}

// Entry is one formatted analysis cell.
type Entry struct {
	Key   string
	Label string
	Value string
}

// AnalysisEntries formats a whole analysis mapping, sorted by key so the
// grid renders in a stable order.
func AnalysisEntries(analysis map[string]any) []Entry {
	keys := make([]string, 0, len(analysis))
	for k := range analysis {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Label: Label(k), Value: AnalysisEntry(k, analysis[k])})
	}
	return entries
}

// BuyerRow is one matched buyer, ready to render.
type BuyerRow struct {
	Name  string
	Email string
	Score string
}

// Buyer formats a matched buyer, rendering the score to one decimal place.
func Buyer(b models.MatchedBuyer) BuyerRow {
	return BuyerRow{
		Name:  b.Name,
		Email: b.Email,
		Score: fmt.Sprintf("%.1f", b.Score),
	}
}

// Buyers formats the full buyer list in server order.
func Buyers(buyers []models.MatchedBuyer) []BuyerRow {
	rows := make([]BuyerRow, 0, len(buyers))
	for _, b := range buyers {
		rows = append(rows, Buyer(b))
	}
	return rows
}

// RankColor returns the badge color for a rank letter. A is green, B blue,
// C amber, everything else (including D and no rank) neutral grey.
func RankColor(rank string) lipgloss.Color {
	switch rank {
	case models.RankA:
		return lipgloss.Color("42")
	case models.RankB:
		return lipgloss.Color("39")
	case models.RankC:
		return lipgloss.Color("214")
	}
	return lipgloss.Color("245")
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	}
	return 0, false
}

// formatNumber renders a float with no trailing zeros (20 -> "20",
// 12.5 -> "12.5").
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// groupThousands inserts commas into the integer part of a formatted
// number, leaving any fractional part untouched.
func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "." + fracPart
	}
	return out
}
