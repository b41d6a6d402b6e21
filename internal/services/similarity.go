package services

import (
	"math"
	"strings"
	"unicode"
)

// similarityStopWords filters common English words that add noise to
// keyword overlap scoring.
var similarityStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "able": true,
}

// keywords tokenizes text into lowercase terms of 3+ runes, skipping
// stop words. + # . count as word characters so terms like "c++" and
// "node.js" survive intact.
func keywords(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 && !similarityStopWords[w] {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}

// MatchScore computes a Jaccard keyword overlap between a resume summary
// and a job description, in [0,1] rounded to 3 decimals.
func MatchScore(resumeSummary, jobDescription string) float64 {
	resumeKW := keywords(resumeSummary)
	jobKW := keywords(jobDescription)

	inter := 0
	for kw := range resumeKW {
		if jobKW[kw] {
			inter++
		}
	}

	union := len(resumeKW) + len(jobKW) - inter
	if union == 0 {
		return 0
	}
	return math.Round(float64(inter)/float64(union)*1000) / 1000
}
