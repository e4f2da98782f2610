package summary

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/user/inventory-go/items"
)

var promptTemplate = template.Must(template.New("prompt").Parse(
	`You are an AI specialized in inventory analytics and warehouse management. Use {{.CurrencyName}} ({{.Symbol}}) for all monetary values.

Here is the current inventory data:
{{range .Lines}}- {{.}}
{{end}}
Based only on this data, provide a short analytical summary highlighting any relevant patterns, risks, opportunities, or anomalies. Avoid generic advice. Base everything directly on the numbers.
`))

type promptData struct {
	CurrencyName string
	Symbol       string
	Lines        []string
}

// FormatPrice renders an amount in minor units as symbol plus two decimals, e.g. 1234 → "₱12.34".
func FormatPrice(cents int64, symbol string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}

// BuildPrompt renders the analytics prompt with one line per item, in the order given.
func BuildPrompt(list []items.Item, currencyName, symbol string) string {
	lines := make([]string, 0, len(list))
	for _, it := range list {
		lines = append(lines, fmt.Sprintf("%s: quantity=%d, price=%s", it.Name, it.Quantity, FormatPrice(it.Price, symbol)))
	}

	var sb strings.Builder
	// The template is static and its data is plain strings; Execute cannot fail.
	_ = promptTemplate.Execute(&sb, promptData{CurrencyName: currencyName, Symbol: symbol, Lines: lines})
	return sb.String()
}
