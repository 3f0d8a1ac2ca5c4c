package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/fatih/color"
)

var (
	successColor   = color.New(color.FgGreen)
	warningColor   = color.New(color.FgYellow)
	titleColor     = color.New(color.Bold)
	priceColor     = color.New(color.FgCyan)
	highlightColor = color.New(color.FgYellow, color.Bold)
	dimColor       = color.New(color.Faint)
)

func printWarning(w io.Writer, format string, args ...any) {
	warningColor.Fprintf(w, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// formatResult renders a filter result for a terminal. Highlighted words
// are colored instead of showing <em> markup.
func formatResult(result models.FilteredProductResponse) string {
	var b strings.Builder

	if len(result.Product) == 0 {
		b.WriteString(dimColor.Sprint("no products matched") + "\n")
	}
	for _, p := range result.Product {
		fmt.Fprintf(&b, "%s  %s  [%s]\n",
			titleColor.Sprint(p.Title),
			priceColor.Sprint(formatAmount(p.Price)),
			strings.Join(p.Sizes, ", "))
		if p.Description != "" {
			fmt.Fprintf(&b, "    %s\n", colorEmphasis(p.Description))
		}
	}

	info := result.FilterOptions
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s to %s\n", dimColor.Sprint("price:"), formatAmount(info.MinPrice), formatAmount(info.MaxPrice))
	fmt.Fprintf(&b, "%s %s\n", dimColor.Sprint("sizes:"), strings.Join(info.Sizes, ", "))
	fmt.Fprintf(&b, "%s %s\n", dimColor.Sprint("common words:"), strings.Join(info.CommonWords, ", "))
	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// colorEmphasis replaces each <em>word</em> span with the colored word.
func colorEmphasis(text string) string {
	var b strings.Builder
	for {
		start := strings.Index(text, "<em>")
		if start < 0 {
			break
		}
		end := strings.Index(text[start:], "</em>")
		if end < 0 {
			break
		}
		end += start
		b.WriteString(text[:start])
		b.WriteString(highlightColor.Sprint(text[start+len("<em>") : end]))
		text = text[end+len("</em>"):]
	}
	b.WriteString(text)
	return b.String()
}
