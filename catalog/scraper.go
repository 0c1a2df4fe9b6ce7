package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/sparkfel/schedule1-reverse-search/search"
)

const wikiBase = "https://schedule-1.fandom.com"

// One page fetch every half second keeps the wiki happy.
var fetchLimiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 1)

var whitespace = regexp.MustCompile(`\s+`)

func cleanText(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// Run scrapes the wiki's mixing data and saves it as a catalog file at
// path. The mixing overview page lists every ingredient with its base
// effect; each ingredient page carries the ordered interaction table of
// (old effect, new effect) rewrites.
func Run(path string) error {
	ctx := context.Background()

	doc, err := fetchPage(ctx, wikiBase+"/wiki/Mixing")
	if err != nil {
		return err
	}

	cat := make(search.Catalog)

	doc.Find("table.wikitable").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := cleanText(cells.Eq(0).Text())
		baseEffect := cleanText(cells.Eq(1).Text())
		if name == "" || baseEffect == "" {
			return
		}
		cat[name] = search.Ingredient{
			Name:       name,
			BaseEffect: baseEffect,
			Price:      IngredientPrices[name],
		}
	})

	if len(cat) == 0 {
		return fmt.Errorf("no ingredients found on mixing page")
	}

	for name, ing := range cat {
		replacements, err := scrapeInteractions(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to scrape %s: %w", name, err)
		}
		ing.Replacements = replacements
		cat[name] = ing
	}

	if err := Save(path, cat); err != nil {
		return err
	}
	fmt.Printf("Scraped %d ingredients and saved to '%s'\n", len(cat), path)
	return nil
}

// scrapeInteractions reads one ingredient page's interaction table in row
// order. Row order matters: it becomes the replacement application order.
func scrapeInteractions(ctx context.Context, name string) ([]search.Replacement, error) {
	page := wikiBase + "/wiki/" + url.PathEscape(strings.ReplaceAll(name, " ", "_"))
	doc, err := fetchPage(ctx, page)
	if err != nil {
		return nil, err
	}

	var replacements []search.Replacement
	doc.Find("table.wikitable").Each(func(_ int, table *goquery.Selection) {
		header := cleanText(table.Find("th").First().Text())
		if !strings.Contains(strings.ToLower(header), "effect") {
			return
		}
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return
			}
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			oldEffect := cleanText(cells.Eq(0).Text())
			newEffect := cleanText(cells.Eq(1).Text())
			if oldEffect != "" && newEffect != "" {
				replacements = append(replacements, search.Replacement{Old: oldEffect, New: newEffect})
			}
		})
	})
	return replacements, nil
}

func fetchPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := fetchLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := http.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error for %s: %d %s", pageURL, res.StatusCode, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
