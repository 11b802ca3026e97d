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

package db

import (
	"context"
	"fmt"

	"github.com/TFMV/ProjectAddressCheck/internal/matcher"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the part of *pgxpool.Pool used to read projects.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ProjectSource reads candidate project addresses from Postgres.
type ProjectSource struct {
	pool Querier

	// KeyColumn orders the candidates so a scan always sees them in the same order.
	KeyColumn string
}

// NewProjectSource creates a ProjectSource ordered by the "id" column.
func NewProjectSource(pool Querier) *ProjectSource {
	return &ProjectSource{pool: pool, KeyColumn: "id"}
}

// projectRecord is a single project row holding one address field.
type projectRecord struct {
	field string
	value pgtype.Text
}

func (r projectRecord) Field(name string) (pgtype.Text, error) {
	if name != r.field {
		return pgtype.Text{}, fmt.Errorf("%q: %w", name, matcher.ErrFieldNotFound)
	}
	return r.value, nil
}

// FetchCandidates returns one page of projects whose address field is not NULL.
func (s *ProjectSource) FetchCandidates(ctx context.Context, query matcher.Query) ([]matcher.Record, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 {
		query.PerPage = matcher.DefaultPerPage
	}

	column := pgx.Identifier{query.Field}.Sanitize()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s LIMIT $1 OFFSET $2",
		column,
		pgx.Identifier{query.Module}.Sanitize(),
		column,
		pgx.Identifier{s.KeyColumn}.Sanitize(),
	)

	rows, err := s.pool.Query(ctx, sql, query.PerPage, (query.Page-1)*query.PerPage)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", query.Module, err)
	}
	defer rows.Close()

	var records []matcher.Record
	for rows.Next() {
		var street pgtype.Text
		if err := rows.Scan(&street); err != nil {
			return nil, fmt.Errorf("scan %s: %w", query.Module, err)
		}
		records = append(records, projectRecord{field: query.Field, value: street})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", query.Module, err)
	}

	return records, nil
}
