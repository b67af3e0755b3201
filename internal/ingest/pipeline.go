// Package ingest orchestrates per-source refresh cycles: fetch, parse,
// dedup, insert, and retention trimming. Failures are isolated per
// source so a dead feed never blocks the others.
package ingest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"opportunityhub/internal/domain"
	"opportunityhub/internal/fetch"
	"opportunityhub/internal/parse"
	"opportunityhub/internal/repository"
)

type Pipeline struct {
	sources      repository.SourceRepository
	opps         repository.OpportunityRepository
	fetcher      *fetch.Fetcher
	maxPerSource int
	autoApprove  bool
}

func NewPipeline(
	sources repository.SourceRepository,
	opps repository.OpportunityRepository,
	fetcher *fetch.Fetcher,
	maxPerSource int,
	autoApprove bool,
) *Pipeline {
	if maxPerSource <= 0 {
		maxPerSource = 200
	}
	return &Pipeline{
		sources:      sources,
		opps:         opps,
		fetcher:      fetcher,
		maxPerSource: maxPerSource,
		autoApprove:  autoApprove,
	}
}

// Run refreshes every active source and returns the total number of
// newly inserted opportunities. A failing source is logged and skipped;
// only the inability to list sources is an error.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	sources, err := p.sources.GetActive()
	if err != nil {
		return 0, fmt.Errorf("failed to load active sources: %w", err)
	}

	log.Printf("Refreshing %d source(s)", len(sources))

	total := 0
	for _, src := range sources {
		added, err := p.refreshSource(ctx, src)
		if err != nil {
			log.Printf("Error refreshing source %s (%s): %v", src.Name, src.URL, err)
			continue
		}
		total += added
	}

	log.Printf("Refresh complete: %d new opportunities", total)
	return total, nil
}

func (p *Pipeline) refreshSource(ctx context.Context, src domain.Source) (int, error) {
	data, err := p.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return 0, err
	}

	items := parse.Parse(src.Kind, data, src.Name)
	log.Printf("Source %s yielded %d item(s)", src.Name, len(items))

	added := 0
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		opp := &domain.Opportunity{
			SourceID:    src.ID,
			Title:       title,
			Company:     fallback(item.Company, src.Name),
			Type:        fallback(item.Type, "Opportunity"),
			Region:      fallback(item.Region, "Unknown"),
			Deadline:    item.Deadline,
			URL:         strings.TrimSpace(item.URL),
			Description: item.Description,
			Salary:      item.Salary,
			Duration:    item.Duration,
			Online:      item.Online,
			Source:      fallback(item.Source, src.Name),
			Approved:    p.autoApprove,
		}

		inserted, err := p.opps.Insert(opp)
		if err != nil {
			return added, err
		}
		if inserted {
			added++
		}
	}

	if err := p.sources.UpdateLastFetched(src.ID); err != nil {
		return added, err
	}

	trimmed, err := p.opps.TrimToCap(src.ID, p.maxPerSource)
	if err != nil {
		return added, err
	}
	if trimmed > 0 {
		log.Printf("Trimmed %d old opportunities for source %s", trimmed, src.Name)
	}

	return added, nil
}

func fallback(value, alt string) string {
	if strings.TrimSpace(value) == "" {
		return alt
	}
	return value
}
