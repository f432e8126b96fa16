// Package scraper performs optional pre-flight checks on item URLs.
package scraper

import (
	"context"
	"strings"

	"fetcharr/internal/utils/logging"

	"github.com/gocolly/colly"
)

// Probe visits item URLs before the batch starts and collects their page
// titles. Unreachable URLs only produce warnings; the download engine
// has the final say on whether a URL works.
type Probe struct {
	UserAgent string
}

// NewProbe returns a pre-flight URL prober.
func NewProbe() *Probe {
	return &Probe{}
}

// Probe fetches each URL and returns page titles keyed by URL. URLs that
// fail or carry no title are simply absent from the result.
func (p *Probe) Probe(ctx context.Context, urls []string) map[string]string {
	titles := make(map[string]string, len(urls))

	for _, u := range urls {
		if ctx.Err() != nil {
			return titles
		}

		c := colly.NewCollector()
		if p.UserAgent != "" {
			c.UserAgent = p.UserAgent
		}

		c.OnHTML("title", func(e *colly.HTMLElement) {
			if _, ok := titles[u]; !ok {
				titles[u] = strings.TrimSpace(e.Text)
			}
		})

		if err := c.Visit(u); err != nil {
			logging.W("Pre-flight check failed for %s: %v", u, err)
			continue
		}
		logging.D(1, "Pre-flight check passed for %s (%q)", u, titles[u])
	}

	return titles
}
