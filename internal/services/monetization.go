package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"viralengine-backend/internal/models"
)

// MonetizationEngine turns a finished script into an affiliate strategy.
type MonetizationEngine interface {
	Analyze(ctx context.Context, topic string, script *models.ScriptData) (*models.MonetizationResult, error)
}

// ProfitAnalyzer is the built-in engine: curated product data per category
// plus a markdown brief written under the review directory.
type ProfitAnalyzer struct {
	ReviewDir string
}

func NewProfitAnalyzer(reviewDir string) *ProfitAnalyzer {
	return &ProfitAnalyzer{ReviewDir: reviewDir}
}

var productCatalog = map[string][]models.Product{
	"lifestyle": {
		{
			Name:             "Premium Productivity Planner",
			Price:            "$29.99",
			Commission:       "10%",
			Rating:           4.8,
			URL:              "https://amzn.to/example-planner",
			AffiliateNetwork: "Amazon Associates",
			Reason:           "High conversion with productivity-focused audiences",
		},
		{
			Name:             "Time Management App",
			Price:            "Free + $9.99/month",
			Commission:       "25%",
			Rating:           4.6,
			URL:              "https://shareasale.com/example-app",
			AffiliateNetwork: "ShareASale",
			Reason:           "Recurring commission on subscriptions",
		},
	},
	"wellness": {
		{
			Name:             "Sleep Optimization Kit",
			Price:            "$49.99",
			Commission:       "8%",
			Rating:           4.7,
			URL:              "https://amzn.to/sleep-kit",
			AffiliateNetwork: "Amazon Associates",
			Reason:           "Strong fit for health and habit content",
		},
	},
	"default": {
		{
			Name:             "Trending Lifestyle Product",
			Price:            "$39.99",
			Commission:       "10%",
			Rating:           4.5,
			URL:              "https://amzn.to/trending",
			AffiliateNetwork: "Amazon Associates",
			Reason:           "Broad appeal across viral niches",
		},
	},
}

func productsFor(topic string) []models.Product {
	lower := strings.ToLower(topic)
	for category, products := range productCatalog {
		if category != "default" && strings.Contains(lower, category) {
			return products
		}
	}
	switch {
	case strings.Contains(lower, "sleep"), strings.Contains(lower, "health"), strings.Contains(lower, "fitness"):
		return productCatalog["wellness"]
	case strings.Contains(lower, "productivity"), strings.Contains(lower, "habit"):
		return productCatalog["lifestyle"]
	}
	return productCatalog["default"]
}

func (a *ProfitAnalyzer) Analyze(ctx context.Context, topic string, script *models.ScriptData) (*models.MonetizationResult, error) {
	products := productsFor(topic)
	earnings := models.EarningsProjection{
		Conservative: "$1,500 - $5,000",
		Viral:        "$20,000 - $100,000+",
	}

	brief := a.composeBrief(topic, products, earnings)

	result := &models.MonetizationResult{
		Brief:    brief,
		Products: products,
		Earnings: earnings,
	}

	// Persist the brief for review; failures degrade to an in-memory brief.
	if a.ReviewDir != "" {
		path := filepath.Join(a.ReviewDir, fmt.Sprintf("profit_brief_%s.md", time.Now().UTC().Format("20060102_150405")))
		if err := os.MkdirAll(a.ReviewDir, 0o755); err == nil {
			if err := os.WriteFile(path, []byte(brief), 0o644); err == nil {
				result.BriefPath = path
			}
		}
	}
	return result, nil
}

func (a *ProfitAnalyzer) composeBrief(topic string, products []models.Product, earnings models.EarningsProjection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Profit Brief: %s\n\n", topic)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().UTC().Format("2006-01-02 15:04:05"))
	b.WriteString("## Recommended Products\n\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. **%s** (%s, %s commission via %s)\n   %s\n   %s\n\n",
			i+1, p.Name, p.Price, p.Commission, p.AffiliateNetwork, p.URL, p.Reason)
	}
	b.WriteString("## CTA Strategy\n\n")
	b.WriteString("- Use \"check the comments\" instead of \"link in bio\"\n")
	b.WriteString("- Pin the affiliate link in the first comment\n")
	b.WriteString("- Layer in affiliates gradually after building the audience\n\n")
	b.WriteString("## Earnings Projection\n\n")
	fmt.Fprintf(&b, "- Conservative (100k views): %s\n", earnings.Conservative)
	fmt.Fprintf(&b, "- Viral (1M+ views): %s\n", earnings.Viral)
	return b.String()
}
