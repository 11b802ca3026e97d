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

package standardizer

import (
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// AbbreviationTable maps a full street word to its standard abbreviation.
type AbbreviationTable map[string]string

// defaultAbbreviations lists the street-suffix and compass words that are
// abbreviated. Order is irrelevant since every rule is a whole-word match.
var defaultAbbreviations = [][2]string{
	{"street", "st"},
	{"avenue", "ave"},
	{"road", "rd"},
	{"boulevard", "blvd"},
	{"drive", "dr"},
	{"lane", "ln"},
	{"court", "ct"},
	{"place", "pl"},
	{"north", "n"},
	{"south", "s"},
	{"east", "e"},
	{"west", "w"},
	{"northeast", "ne"},
	{"northwest", "nw"},
	{"southeast", "se"},
	{"southwest", "sw"},
}

// DefaultAbbreviations returns a fresh copy of the default abbreviation table.
func DefaultAbbreviations() AbbreviationTable {
	table := make(AbbreviationTable, len(defaultAbbreviations))
	for _, entry := range defaultAbbreviations {
		table[entry[0]] = entry[1]
	}
	return table
}

type abbreviationRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Normalizer canonicalizes free-text addresses into a comparable form.
// A Normalizer is immutable once built and safe for concurrent use.
type Normalizer struct {
	rules []abbreviationRule
}

var punctuation = strings.NewReplacer(".", "", ",", "")

// NewNormalizer compiles the given abbreviation table. A nil table selects
// the default one.
func NewNormalizer(table AbbreviationTable) *Normalizer {
	if table == nil {
		table = DefaultAbbreviations()
	}

	n := &Normalizer{rules: make([]abbreviationRule, 0, len(table))}
	for longForm, shortForm := range table {
		n.rules = append(n.rules, abbreviationRule{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(longForm) + `\b`),
			replacement: shortForm,
		})
	}
	return n
}

var defaultNormalizer = NewNormalizer(nil)

// NormalizeAddress normalizes raw with the default abbreviation table.
func NormalizeAddress(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// NormalizeText normalizes a nullable text value. NULL normalizes to "".
func NormalizeText(raw pgtype.Text) string {
	if !raw.Valid {
		return ""
	}
	return defaultNormalizer.Normalize(raw.String)
}

// Normalize lowercases the address, drops periods and commas, abbreviates
// street words and collapses whitespace.
func (n *Normalizer) Normalize(raw string) string {
	street := strings.TrimSpace(raw)
	if street == "" {
		return ""
	}

	street = strings.ToLower(street)

	// Periods and commas are deleted, not replaced with a space
	street = punctuation.Replace(street)

	for _, rule := range n.rules {
		street = rule.pattern.ReplaceAllLiteralString(street, rule.replacement)
	}

	// Collapse whitespace runs and trim
	return strings.Join(strings.Fields(street), " ")
}
