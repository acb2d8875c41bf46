package app

import (
	"context"
	"time"

	"godiscrete/domain/core"
	"godiscrete/domain/dist"
	"godiscrete/internal"
	"godiscrete/ports"
)

// SummaryService runs one complete analysis per request: validation, model
// selection, probability mass tables, and the descriptive summary. Nothing is
// persisted; every result is recomputed on demand and discarded by the
// caller.
type SummaryService struct {
	engine ports.DistributionEngine
	log    *internal.Logger
}

// AnalysisRequest defines the population-derived inputs of one analysis.
type AnalysisRequest struct {
	PopulationSize      int `json:"population_size"`      // N
	PopulationSuccesses int `json:"population_successes"` // K
	SampleSize          int `json:"sample_size"`          // n
	Target              int `json:"target"`               // x, upper bound of the reported range
}

// AnalysisResult contains the complete output of one analysis.
type AnalysisResult struct {
	AnalysisID        core.AnalysisID  `json:"analysis_id"`
	Choice            dist.ModelChoice `json:"choice"`
	TargetProbability float64          `json:"target_probability"` // P(X = Target)
	RangeTable        dist.MassTable   `json:"range_table"`        // x in [0, Target]
	FullTable         dist.MassTable   `json:"full_table"`         // x in [0, n]
	Summary           dist.Summary     `json:"summary"`
	RuntimeMs         int64            `json:"runtime_ms"`
}

// NewSummaryService creates a summary service.
func NewSummaryService(engine ports.DistributionEngine, log *internal.Logger) *SummaryService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &SummaryService{engine: engine, log: log}
}

// Summarize validates the request, selects the model by the 20% rule, and
// derives the probability tables and descriptive statistics. It either fully
// succeeds or fails with no partial result.
func (s *SummaryService) Summarize(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	startTime := time.Now()
	analysisID := core.AnalysisID(core.NewID())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	choice, err := s.engine.SelectModel(req.SampleSize, req.PopulationSize)
	if err != nil {
		return nil, err
	}
	s.log.Debug("analysis %s: model=%s ratio=%.4f", analysisID, choice.Model, choice.Ratio)

	rangeTable, err := s.engine.RangeProbabilities(
		req.PopulationSize, req.PopulationSuccesses, req.SampleSize, req.Target, choice.Model)
	if err != nil {
		return nil, err
	}

	fullTable, err := s.engine.AllProbabilities(
		req.PopulationSize, req.PopulationSuccesses, req.SampleSize, choice.Model)
	if err != nil {
		return nil, core.NewCalculationError("computing full support table", err)
	}

	summary, err := s.engine.Moments(
		req.PopulationSize, req.PopulationSuccesses, req.SampleSize, choice.Model, fullTable)
	if err != nil {
		return nil, core.NewCalculationError("deriving descriptive statistics", err)
	}

	result := &AnalysisResult{
		AnalysisID:        analysisID,
		Choice:            choice,
		TargetProbability: rangeTable.Prob(req.Target),
		RangeTable:        rangeTable,
		FullTable:         fullTable,
		Summary:           summary,
		RuntimeMs:         time.Since(startTime).Milliseconds(),
	}

	s.log.Info("analysis %s: %s mean=%.4f stddev=%.4f median=%.0f in %dms",
		analysisID, choice.Model, summary.Mean, summary.StdDev, summary.Median, result.RuntimeMs)
	return result, nil
}
