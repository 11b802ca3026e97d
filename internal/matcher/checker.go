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

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TFMV/ProjectAddressCheck/internal/standardizer"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// DefaultModule is the record module scanned for candidates.
	DefaultModule = "projects"

	// DefaultAddressField is the field holding the street address on both
	// leads and projects.
	DefaultAddressField = "mailing_street"

	// DefaultPerPage bounds a single scan.
	DefaultPerPage = 200
)

// ErrFieldNotFound is returned by a Record that has no field with the requested name.
var ErrFieldNotFound = errors.New("field not found")

// Record exposes the named fields of a CRM record. A missing value is
// reported as an invalid pgtype.Text, not as an error.
type Record interface {
	Field(name string) (pgtype.Text, error)
}

// Query selects the candidate records to scan.
type Query struct {
	Module  string
	Field   string
	Page    int
	PerPage int
}

// RecordSource returns candidate records in a stable order.
type RecordSource interface {
	FetchCandidates(ctx context.Context, query Query) ([]Record, error)
}

// NotificationSink shows a message to the operator.
type NotificationSink interface {
	Notify(message string) error
}

// Logger is the structured logger used by the checker.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// CheckStatus is the outcome of one check.
type CheckStatus string

const (
	StatusSkipped CheckStatus = "skipped"
	StatusNoMatch CheckStatus = "no_match"
	StatusMatched CheckStatus = "matched"
)

// CheckResult describes what a check did and found.
type CheckResult struct {
	Status         CheckStatus `json:"status"`
	LeadAddress    string      `json:"lead_address,omitempty"`
	ProjectAddress string      `json:"project_address,omitempty"`
	CandidateIndex int         `json:"candidate_index"`
	Scanned        int         `json:"scanned"`
	Score          *MatchScore `json:"score,omitempty"`
	Message        string      `json:"message,omitempty"`
	Err            error       `json:"-"`
}

// Matched reports whether a similar project address was found.
func (r CheckResult) Matched() bool {
	return r.Status == StatusMatched
}

// Checker looks for an existing project at the address of a new lead.
type Checker struct {
	Source     RecordSource
	Sink       NotificationSink
	Logger     Logger
	Normalizer *standardizer.Normalizer
	Query      Query
}

// NewChecker creates a Checker using the default query and abbreviation table.
func NewChecker(source RecordSource, sink NotificationSink, logger Logger) *Checker {
	return &Checker{
		Source:     source,
		Sink:       sink,
		Logger:     logger,
		Normalizer: standardizer.NewNormalizer(nil),
		Query: Query{
			Module:  DefaultModule,
			Field:   DefaultAddressField,
			Page:    1,
			PerPage: DefaultPerPage,
		},
	}
}

// MatchMessage builds the operator notification for a lead and the project it resembles.
func MatchMessage(leadAddress, projectAddress string) string {
	return "Possible project found!\n\n" +
		"Lead Address: " + leadAddress + "\n" +
		"Similar Project Address: " + projectAddress + "\n\n" +
		"Please search the Projects module for more details."
}

// Check compares the lead's address with each candidate and notifies the
// sink about the first similar one. Failures never escape: they are logged
// and reported as StatusNoMatch with Err set.
func (c *Checker) Check(ctx context.Context, lead Record) CheckResult {
	result := CheckResult{Status: StatusNoMatch, CandidateIndex: -1}

	leadAddress, err := lead.Field(c.Query.Field)
	if err != nil {
		return c.fail(result, fmt.Errorf("read lead address: %w", err))
	}
	if !leadAddress.Valid || strings.TrimSpace(leadAddress.String) == "" {
		c.Logger.Debug("lead has no address, skipping project check")
		result.Status = StatusSkipped
		return result
	}
	result.LeadAddress = leadAddress.String

	normalizedLead := c.Normalizer.Normalize(leadAddress.String)

	candidates, err := c.Source.FetchCandidates(ctx, c.Query)
	if err != nil {
		return c.fail(result, fmt.Errorf("fetch %s: %w", c.Query.Module, err))
	}

	for i, candidate := range candidates {
		projectAddress, err := candidate.Field(c.Query.Field)
		if err != nil {
			return c.fail(result, fmt.Errorf("read candidate %d address: %w", i, err))
		}
		if !projectAddress.Valid || strings.TrimSpace(projectAddress.String) == "" {
			continue
		}
		result.Scanned++

		score := Score(normalizedLead, c.Normalizer.Normalize(projectAddress.String))
		if !score.Similar {
			continue
		}

		result.Status = StatusMatched
		result.ProjectAddress = projectAddress.String
		result.CandidateIndex = i
		result.Score = &score
		result.Message = MatchMessage(result.LeadAddress, result.ProjectAddress)

		if err := c.Sink.Notify(result.Message); err != nil {
			c.Logger.Error("failed to notify operator", "error", err)
		}
		c.Logger.Info("address match found",
			"lead", result.LeadAddress,
			"project", result.ProjectAddress,
			"matches", score.Matches,
			"total", score.Total,
		)
		return result
	}

	c.Logger.Debug("no similar project address", "lead", result.LeadAddress, "scanned", result.Scanned)
	return result
}

func (c *Checker) fail(result CheckResult, err error) CheckResult {
	c.Logger.Error("error in address checking", "error", err)
	result.Status = StatusNoMatch
	result.Err = err
	return result
}
