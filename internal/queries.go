package internal

import (
	"time"

	"github.com/wintrace/wintrace/cache"
	"github.com/wintrace/wintrace/calculations"
	"github.com/wintrace/wintrace/categories"
	"github.com/wintrace/wintrace/logging"
	"github.com/wintrace/wintrace/models"
	"github.com/wintrace/wintrace/store"
)

// QueryService is the boundary the presentation layer talks to. Both entry
// points are pure reads of the current store state, safe to call at any time
// and concurrently with the sampling loop.
type QueryService struct {
	store    *store.Store
	resolver *categories.Resolver
	reports  *cache.ReportCache // nil when caching is disabled
	recaps   *cache.RecapCache  // nil when caching is disabled
	logger   *logging.Logger
}

// NewQueryService wires the query side together. Either cache may be nil.
func NewQueryService(st *store.Store, resolver *categories.Resolver, reports *cache.ReportCache, recaps *cache.RecapCache, logger *logging.Logger) *QueryService {
	return &QueryService{
		store:    st,
		resolver: resolver,
		reports:  reports,
		recaps:   recaps,
		logger:   logger,
	}
}

// RangeReport resolves the period for the reference date and aggregates the
// store over it.
func (q *QueryService) RangeReport(date string, kind calculations.PeriodKind, custom *calculations.CustomRange) models.Report {
	start, end := calculations.ResolveRange(date, kind, custom)
	generation := q.store.Generation()

	key := cache.Key(kind, start, end, generation)
	if q.reports != nil {
		if report, ok := q.reports.Get(key); ok {
			return report
		}
	}

	report := calculations.Aggregate(q.store.Snapshot(), start, end, kind, q.resolver.Resolve)
	if q.reports != nil {
		q.reports.Set(key, report)
	}
	return report
}

// YearlyRecap builds the recap for the current local year.
func (q *QueryService) YearlyRecap() models.RecapReport {
	year := time.Now().Year()
	generation := q.store.Generation()

	if q.recaps != nil {
		if recap, ok := q.recaps.Get(year, generation); ok {
			return recap
		}
	}

	recap := calculations.Recap(q.store.Snapshot(), year, q.resolver.Resolve)
	if q.recaps != nil {
		if err := q.recaps.Set(year, generation, recap); err != nil {
			q.logger.Warnf("failed to cache recap: %v", err)
		}
	}
	return recap
}
