// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package matcher

import "strings"

const (
	// MatchThreshold is the share of matching words needed for two
	// addresses to be considered the same place.
	MatchThreshold = 0.8

	// MaxWordCountDifference is the largest word-count gap that is still scored.
	MaxWordCountDifference = 1
)

// MatchScore holds the intermediate values behind a similarity verdict.
type MatchScore struct {
	Matches     int     `json:"matches"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
	LengthGuard bool    `json:"length_guard"`
	Similar     bool    `json:"similar"`
}

// Score compares two normalized addresses word by word.
//
// Each word of a counts once if it appears anywhere in b. Words of b are not
// consumed, so a repeated word in a matches every time.
func Score(a, b string) MatchScore {
	if a == b {
		total := len(strings.Split(a, " "))
		return MatchScore{Matches: total, Total: total, Percentage: 1, Similar: true}
	}

	wordsA := strings.Split(a, " ")
	wordsB := strings.Split(b, " ")

	diff := len(wordsA) - len(wordsB)
	if diff < 0 {
		diff = -diff
	}
	if diff > MaxWordCountDifference {
		return MatchScore{Total: max(len(wordsA), len(wordsB)), LengthGuard: true}
	}

	score := MatchScore{Total: max(len(wordsA), len(wordsB))}
	for _, wordA := range wordsA {
		for _, wordB := range wordsB {
			if wordA == wordB {
				score.Matches++
				break
			}
		}
	}

	score.Percentage = float64(score.Matches) / float64(score.Total)
	score.Similar = score.Percentage >= MatchThreshold
	return score
}

// IsSimilar reports whether two normalized addresses denote the same place.
func IsSimilar(a, b string) bool {
	return Score(a, b).Similar
}
