package report

import (
	"sort"

	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

const topSize = 5

// TypeCount is one offense-type bucket over the offensive records.
type TypeCount struct {
	OffenseType string `json:"offense_type"`
	Count       int    `json:"count"`
}

// SeverityStats aggregates severity over offensive records only.
type SeverityStats struct {
	Mean float64 `json:"mean"`
	Min  int     `json:"min"`
	Max  int     `json:"max"`
}

// Report is the aggregation result over a completed, post-threshold record set.
type Report struct {
	Total          int                      `json:"total"`
	OffensiveCount int                      `json:"offensive_count"`
	OffensiveRatio float64                  `json:"offensive_ratio"`
	TypeCounts     []TypeCount              `json:"type_counts"`
	Severity       SeverityStats            `json:"severity"`
	Top            []types.ModerationRecord `json:"top"`
}

// Summarize computes the moderation report. It is a pure function of the
// record set: calling it twice yields identical results, and an empty or
// all-clean set produces a zero-count report rather than an error.
func Summarize(records types.RecordSet) Report {
	report := Report{Total: len(records)}

	var offensive []types.ModerationRecord
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, record := range records {
		if !record.IsOffensive {
			continue
		}
		offensive = append(offensive, record)
		if _, ok := firstSeen[record.OffenseType]; !ok {
			firstSeen[record.OffenseType] = i
		}
		counts[record.OffenseType]++
	}

	report.OffensiveCount = len(offensive)
	if report.Total > 0 {
		report.OffensiveRatio = float64(report.OffensiveCount) / float64(report.Total)
	}
	if len(offensive) == 0 {
		return report
	}

	for offenseType, count := range counts {
		report.TypeCounts = append(report.TypeCounts, TypeCount{OffenseType: offenseType, Count: count})
	}
	sort.SliceStable(report.TypeCounts, func(i, j int) bool {
		if report.TypeCounts[i].Count != report.TypeCounts[j].Count {
			return report.TypeCounts[i].Count > report.TypeCounts[j].Count
		}
		return firstSeen[report.TypeCounts[i].OffenseType] < firstSeen[report.TypeCounts[j].OffenseType]
	})

	report.Severity = severityStats(offensive)

	// Ties keep input order: offensive is already in input order and the sort
	// is stable.
	top := make([]types.ModerationRecord, len(offensive))
	copy(top, offensive)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Severity > top[j].Severity
	})
	if len(top) > topSize {
		top = top[:topSize]
	}
	report.Top = top

	return report
}

func severityStats(offensive []types.ModerationRecord) SeverityStats {
	stats := SeverityStats{Min: offensive[0].Severity, Max: offensive[0].Severity}
	sum := 0
	for _, record := range offensive {
		sum += record.Severity
		if record.Severity < stats.Min {
			stats.Min = record.Severity
		}
		if record.Severity > stats.Max {
			stats.Max = record.Severity
		}
	}
	stats.Mean = float64(sum) / float64(len(offensive))
	return stats
}
