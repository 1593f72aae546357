package chat

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/trtech123/tos/internal/pricing"
)

const AgencyName = "טוס תיירות"

// defaultLeadTime is how far ahead the assistant books when the user names no date.
const defaultLeadTime = 21 * 24 * time.Hour

const linkLabel = "לחץ כאן להשלמת ההזמנה"

type PromptConfig struct {
	Agency        string
	OriginCity    string
	OriginAirport string
	Tiers         []pricing.Tier
}

// CheckoutLink renders a checkout link in the markup the chat client recognizes.
// Parameters keep the order from, to, date, airline, price.
func CheckoutLink(label, from, to, date, airline string, price int64) string {
	return fmt.Sprintf("[%s](/checkout?from=%s&to=%s&date=%s&airline=%s&price=%d)",
		label, url.QueryEscape(from), url.QueryEscape(to), date, url.QueryEscape(airline), price)
}

// SystemPrompt builds the instruction sent ahead of every conversation. today anchors
// the default travel date.
func SystemPrompt(cfg PromptConfig, today time.Time) string {
	defaultDate := today.Add(defaultLeadTime).Format("2006-01-02")

	var b strings.Builder
	fmt.Fprintf(&b, "אתה עוזר טיסות חכם ומועיל לאתר %s. אתה עוזר למשתמשים למצוא טיסות, מלונות, וחבילות נופש.\n", cfg.Agency)
	b.WriteString("אתה מדבר בעברית, נעים, וידידותי. אתה יכול לעזור עם:\n")
	b.WriteString("- חיפוש טיסות\n")
	b.WriteString("- המלצות על יעדים\n")
	b.WriteString("- טיפים לנסיעות\n")
	b.WriteString("- מידע על חברות תעופה\n")
	b.WriteString("- עזרה בהזמנות\n")
	b.WriteString("השתמש בשפה פשוטה וברורה, והיה תמיד מועיל ומקצועי.\n\n")

	fmt.Fprintf(&b, "כל הטיסות יוצאות מ%s (%s).\n", cfg.OriginCity, cfg.OriginAirport)
	fmt.Fprintf(&b, "התאריך היום הוא %s. אם המשתמש לא ציין תאריך, בחר תאריך בעוד 2 עד 4 שבועות (למשל %s).\n\n",
		today.Format("2006-01-02"), defaultDate)

	b.WriteString("כאשר משתמש מבקש להזמין טיסה או רוצה לעבור לתשלום, צור קישור לדף התשלום בפורמט הבא:\n")
	b.WriteString("[" + linkLabel + "](/checkout?from=CITY&to=CITY&date=YYYY-MM-DD&airline=AIRLINE&price=PRICE)\n")
	if example, ok := exampleLink(cfg, defaultDate); ok {
		b.WriteString("לדוגמה:\n")
		b.WriteString(example)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "אל תשאל את המשתמש מה המחיר. קבע מחיר בעצמך לפי טבלת המחירים הבאה (הלוך ושוב, מחלקת תיירים, ב%s):\n", pricing.Currency)
	b.WriteString(pricing.Table(cfg.Tiers))
	b.WriteString("\nהמחיר בקישור הוא מספר שלם בלבד, ללא סימן מטבע או פסיקים. התאריך בפורמט YYYY-MM-DD.")
	return b.String()
}

func exampleLink(cfg PromptConfig, date string) (string, bool) {
	for _, tier := range cfg.Tiers {
		if len(tier.Destinations) == 0 {
			continue
		}
		return CheckoutLink(linkLabel, cfg.OriginCity, tier.Destinations[0], date, "אל על", tier.Midpoint()), true
	}
	return "", false
}
