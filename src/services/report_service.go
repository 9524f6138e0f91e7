package services

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/matchpulse/src/database"
	"github.com/username/matchpulse/src/logger"
	"github.com/username/matchpulse/src/models"
	"github.com/username/matchpulse/src/parsers"
	"github.com/username/matchpulse/src/processors"
	"github.com/username/matchpulse/src/renderer"
)

const (
	// Aggregate caches holding the latest completed run, read by the
	// serve-mode API between refreshes.
	ckLatestSummaries = "agg_latest_summaries"
	ckLatestFindings  = "agg_latest_findings"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type reportServiceImpl struct {
	parser       parsers.MatchParser
	processor    processors.SummaryProcessor
	fetcher      FetchService
	reportCache  *cache.Cache
	source       string
	templatePath string
	outputPath   string
}

func NewReportService(
	parser parsers.MatchParser,
	processor processors.SummaryProcessor,
	fetcher FetchService,
	reportCache *cache.Cache,
	source string,
	templatePath string,
	outputPath string,
) ReportService {
	return &reportServiceImpl{
		parser:       parser,
		processor:    processor,
		fetcher:      fetcher,
		reportCache:  reportCache,
		source:       source,
		templatePath: templatePath,
		outputPath:   outputPath,
	}
}

// GenerateReport runs the pipeline once: fetch the source, parse it,
// aggregate per-team statistics, render the blog page and record the
// run. The first failing step aborts the run; nothing is retried.
func (s *reportServiceImpl) GenerateReport() (*ReportResult, error) {
	start := time.Now()

	body, err := s.fetcher.Fetch(s.source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	records, err := s.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse match data from %s: %w", s.source, err)
	}

	summaries, findings := s.processor.Aggregate(records)

	if err := renderer.WriteReport(summaries, findings, s.templatePath, s.outputPath, time.Now()); err != nil {
		return nil, err
	}

	// Run history is advisory; a persistence failure must not undo an
	// already-written page.
	if err := database.SaveRun(s.source, len(records), summaries); err != nil {
		logger.L.Error("Failed to persist run history", "error", err)
	}

	s.reportCache.Set(ckLatestSummaries, summaries, cache.DefaultExpiration)
	s.reportCache.Set(ckLatestFindings, findings, cache.DefaultExpiration)

	logger.L.Info("Report generated",
		"matches", len(records),
		"teams", len(summaries),
		"durationMs", time.Since(start).Milliseconds())

	return &ReportResult{
		Source:     s.source,
		OutputPath: s.outputPath,
		MatchCount: len(records),
		TeamCount:  len(summaries),
	}, nil
}

// LatestSummaries returns the cached result of the most recent
// successful run, or ok=false when no run has completed (or the cache
// entries have expired).
func (s *reportServiceImpl) LatestSummaries() ([]models.TeamSummary, []string, bool) {
	sv, found := s.reportCache.Get(ckLatestSummaries)
	if !found {
		return nil, nil, false
	}
	fv, found := s.reportCache.Get(ckLatestFindings)
	if !found {
		return nil, nil, false
	}

	summaries, ok := sv.([]models.TeamSummary)
	if !ok {
		return nil, nil, false
	}
	findings, _ := fv.([]string)
	return summaries, findings, true
}
