package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/TFMV/ProjectAddressCheck/internal/matcher"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectProjects = `SELECT "mailing_street" FROM "projects" WHERE "mailing_street" IS NOT NULL ORDER BY "id" LIMIT $1 OFFSET $2`

func defaultQuery() matcher.Query {
	return matcher.Query{
		Module:  matcher.DefaultModule,
		Field:   matcher.DefaultAddressField,
		Page:    1,
		PerPage: matcher.DefaultPerPage,
	}
}

func TestProjectSource_FetchCandidates(t *testing.T) {
	tests := []struct {
		name    string
		query   matcher.Query
		setup   func(mock pgxmock.PgxPoolIface)
		want    []string
		wantErr bool
	}{
		{
			name:  "first page",
			query: defaultQuery(),
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"mailing_street"}).
					AddRow("123 E. 23rd St").
					AddRow("456 Oak Avenue")
				mock.ExpectQuery(regexp.QuoteMeta(selectProjects)).
					WithArgs(200, 0).
					WillReturnRows(rows)
			},
			want: []string{"123 E. 23rd St", "456 Oak Avenue"},
		},
		{
			name: "third page of ten",
			query: matcher.Query{
				Module:  matcher.DefaultModule,
				Field:   matcher.DefaultAddressField,
				Page:    3,
				PerPage: 10,
			},
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"mailing_street"}).AddRow("9 Elm Lane")
				mock.ExpectQuery(regexp.QuoteMeta(selectProjects)).
					WithArgs(10, 20).
					WillReturnRows(rows)
			},
			want: []string{"9 Elm Lane"},
		},
		{
			name:  "paging defaults",
			query: matcher.Query{Module: matcher.DefaultModule, Field: matcher.DefaultAddressField},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectProjects)).
					WithArgs(200, 0).
					WillReturnRows(pgxmock.NewRows([]string{"mailing_street"}))
			},
			want: nil,
		},
		{
			name:  "query error",
			query: defaultQuery(),
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectProjects)).
					WithArgs(200, 0).
					WillReturnError(errors.New("relation does not exist"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			source := NewProjectSource(mock)
			records, err := source.FetchCandidates(context.Background(), tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, records)
			} else {
				require.NoError(t, err)
				var got []string
				for _, record := range records {
					value, err := record.Field(matcher.DefaultAddressField)
					require.NoError(t, err)
					require.True(t, value.Valid)
					got = append(got, value.String)
				}
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectRecord_UnknownField(t *testing.T) {
	record := projectRecord{field: "mailing_street"}
	_, err := record.Field("billing_street")
	assert.ErrorIs(t, err, matcher.ErrFieldNotFound)
}

func TestProjectSource_WithChecker(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"mailing_street"}).
		AddRow("789 Pine Boulevard").
		AddRow("123 E. 23rd St")
	mock.ExpectQuery(regexp.QuoteMeta(selectProjects)).
		WithArgs(200, 0).
		WillReturnRows(rows)

	sink := &recordingSink{}
	checker := matcher.NewChecker(NewProjectSource(mock), sink, discardLogger{})
	result := checker.Check(context.Background(), matcher.NewLeadRecord(matcher.DefaultAddressField, "123 East 23rd Street"))

	assert.True(t, result.Matched())
	assert.Equal(t, "123 E. 23rd St", result.ProjectAddress)
	assert.Len(t, sink.messages, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Notify(message string) error {
	s.messages = append(s.messages, message)
	return nil
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...interface{}) {}
func (discardLogger) Info(string, ...interface{})  {}
func (discardLogger) Error(string, ...interface{}) {}
