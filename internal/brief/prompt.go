// Package brief turns an Analysis into a natural-language performance brief:
// it assembles the prompt and calls the external text-generation service.
// All number formatting lives here, never in the engine.
package brief

import (
	"fmt"
	"strings"

	"github.com/adlens/campaign-brief-go/internal/models"
)

// BuildPrompt renders a deterministic structured prompt from the analysis.
// Same analysis in, same prompt out.
func BuildPrompt(a *models.Analysis) string {
	var b strings.Builder

	b.WriteString("You are a marketing analyst. Write a concise performance brief from the data below.\n")
	b.WriteString("Cover overall performance, per-platform differences and the A/B test outcomes. Do not invent numbers.\n\n")

	b.WriteString(fmt.Sprintf("Rows analyzed: %d\n\n", len(a.Records)))

	b.WriteString("Overall:\n")
	writeSummary(&b, a.Overall)

	if len(a.PlatformOrder) > 0 {
		b.WriteString("\nBy platform:\n")
		for _, p := range a.PlatformOrder {
			s := a.Platforms[p]
			b.WriteString(fmt.Sprintf("- %s: ", p))
			b.WriteString(fmt.Sprintf("impressions=%.0f clicks=%.0f conversions=%.0f spend=%.2f revenue=%.2f ctr=%.4f cpc=%.2f cpa=%.2f roas=%.2f\n",
				s.Impressions, s.Clicks, s.Conversions, s.Spend, s.Revenue, s.CTR, s.CPC, s.CPA, s.ROAS))
		}
	}

	if len(a.ABTests) > 0 {
		b.WriteString("\nA/B tests:\n")
		for _, t := range a.ABTests {
			ident := t.CampaignName
			if t.Product != "" {
				ident += " / " + t.Product
			}
			verdict := "not statistically significant"
			if t.Significant {
				verdict = "statistically significant"
			}
			b.WriteString(fmt.Sprintf("- %s (%s): variant %q converted at %.4f (%.0f/%.0f) vs variant %q at %.4f (%.0f/%.0f); z=%.3f, p=%.4f, %s.\n",
				ident, t.Platform,
				t.VariantA.Label, t.VariantA.Rate, t.VariantA.Conversions, t.VariantA.Trials,
				t.VariantB.Label, t.VariantB.Rate, t.VariantB.Conversions, t.VariantB.Trials,
				t.Z, t.PValue, verdict))
		}
	} else {
		b.WriteString("\nNo campaign had two variants with data; skip A/B commentary.\n")
	}

	return b.String()
}

func writeSummary(b *strings.Builder, s models.Summary) {
	b.WriteString(fmt.Sprintf("- impressions=%.0f clicks=%.0f conversions=%.0f spend=%.2f revenue=%.2f\n",
		s.Impressions, s.Clicks, s.Conversions, s.Spend, s.Revenue))
	b.WriteString(fmt.Sprintf("- ctr=%.4f cpc=%.2f cpa=%.2f roas=%.2f\n", s.CTR, s.CPC, s.CPA, s.ROAS))
}
