package incident

// Summary holds the impact-count statistics for a record sequence.
type Summary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

// Summarize counts records per impact level. Comparison is case-sensitive;
// records without an impact only contribute to Total.
func Summarize(incidents []Incident) Summary {
	s := Summary{Total: len(incidents)}
	for _, inc := range incidents {
		switch inc.Impact {
		case ImpactHigh:
			s.High++
		case ImpactMedium:
			s.Medium++
		case ImpactLow:
			s.Low++
		}
	}
	return s
}
