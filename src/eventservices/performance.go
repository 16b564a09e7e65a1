package eventservices

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/quantfold/tradecore/src/models"
)

// PerformanceSummary aggregates realized performance across positions.
type PerformanceSummary struct {
	PositionCount int     `json:"positionCount"`
	OpenCount     int     `json:"openCount"`
	ClosedCount   int     `json:"closedCount"`
	WinRate       float64 `json:"winRate"`
	TotalPoints   float64 `json:"totalPoints"`
	MeanReturn    float64 `json:"meanReturn"`
	StdDevReturn  float64 `json:"stdDevReturn"`
	MinReturn     float64 `json:"minReturn"`
	MaxReturn     float64 `json:"maxReturn"`
	MedianReturn  float64 `json:"medianReturn"`
}

// NewPerformanceSummary computes summary statistics over the realized
// returns of the given positions. Win rate counts positions with positive
// realized points among those that realized anything.
func NewPerformanceSummary(positions []*models.Position) (*PerformanceSummary, error) {
	summary := &PerformanceSummary{PositionCount: len(positions)}

	var returns []float64
	wins := 0
	realized := 0

	for _, position := range positions {
		if position.IsOpen() {
			summary.OpenCount += 1
		} else {
			summary.ClosedCount += 1
		}

		summary.TotalPoints += position.RealizedPoints()

		// Returns are sampled from positions that realized anything,
		// including closes at zero P&L.
		if position.IsClosed() || position.RealizedPoints() != 0 {
			returns = append(returns, position.RealizedReturn())
		}

		if position.RealizedPoints() != 0 {
			realized += 1
			if position.RealizedPoints() > 0 {
				wins += 1
			}
		}
	}

	if realized > 0 {
		summary.WinRate = float64(wins) / float64(realized)
	}

	if len(returns) == 0 {
		return summary, nil
	}

	var err error
	if summary.MeanReturn, err = stats.Mean(returns); err != nil {
		return nil, fmt.Errorf("NewPerformanceSummary: mean: %w", err)
	}

	if summary.StdDevReturn, err = stats.StandardDeviation(returns); err != nil {
		return nil, fmt.Errorf("NewPerformanceSummary: stddev: %w", err)
	}

	if summary.MinReturn, err = stats.Min(returns); err != nil {
		return nil, fmt.Errorf("NewPerformanceSummary: min: %w", err)
	}

	if summary.MaxReturn, err = stats.Max(returns); err != nil {
		return nil, fmt.Errorf("NewPerformanceSummary: max: %w", err)
	}

	if summary.MedianReturn, err = stats.Median(returns); err != nil {
		return nil, fmt.Errorf("NewPerformanceSummary: median: %w", err)
	}

	return summary, nil
}
