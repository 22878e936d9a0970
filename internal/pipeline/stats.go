package pipeline

// HighRelevanceThreshold is the score above which a section counts as
// highly relevant in the run summary.
const HighRelevanceThreshold = 20.0

// Stats is a point-in-time aggregate of a ranking run.
type Stats struct {
	Count         int     `json:"count"`
	MaxScore      float64 `json:"max_score"`
	AvgScore      float64 `json:"avg_score"`
	HighRelevance int     `json:"high_relevance"`
}

// ComputeStats aggregates scores across ranked sections.
func ComputeStats(sections []ScoredSection) Stats {
	if len(sections) == 0 {
		return Stats{}
	}

	var sum float64
	s := Stats{Count: len(sections)}
	for _, sec := range sections {
		sum += sec.Score
		if sec.Score > s.MaxScore {
			s.MaxScore = sec.Score
		}
		if sec.Score > HighRelevanceThreshold {
			s.HighRelevance++
		}
	}
	s.AvgScore = sum / float64(len(sections))
	return s
}
