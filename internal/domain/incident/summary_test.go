package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	incidents := []Incident{
		{Impact: ImpactHigh},
		{Impact: ImpactHigh},
		{Impact: ImpactMedium},
		{Impact: ImpactLow},
		{Impact: ""},
	}

	s := Summarize(incidents)

	assert.Equal(t, 2, s.High)
	assert.Equal(t, 1, s.Medium)
	assert.Equal(t, 1, s.Low)
	assert.Equal(t, 5, s.Total)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_CaseSensitive(t *testing.T) {
	s := Summarize([]Incident{{Impact: Impact("high")}})

	assert.Equal(t, 0, s.High)
	assert.Equal(t, 1, s.Total)
}
