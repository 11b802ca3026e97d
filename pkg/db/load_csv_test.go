package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCopier drains the row source the way pgx does.
type fakeCopier struct {
	table   pgx.Identifier
	columns []string
	rows    [][]any
	err     error
}

func (c *fakeCopier) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	c.table = table
	c.columns = columns
	if c.err != nil {
		return 0, c.err
	}
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		c.rows = append(c.rows, values)
	}
	return int64(len(c.rows)), src.Err()
}

func TestLoadProjectsCSV(t *testing.T) {
	input := "id,mailing_street\n1,123 E. 23rd St\n2,\"456 Oak Avenue, Suite 2\"\n3,\n"
	copier := &fakeCopier{}

	count, err := LoadProjectsCSV(context.Background(), copier, "projects", strings.NewReader(input))

	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.Equal(t, pgx.Identifier{"projects"}, copier.table)
	assert.Equal(t, []string{"id", "mailing_street"}, copier.columns)
	assert.Equal(t, []any{"1", "123 E. 23rd St"}, copier.rows[0])
	assert.Equal(t, []any{"2", "456 Oak Avenue, Suite 2"}, copier.rows[1])
	assert.Equal(t, []any{"3", nil}, copier.rows[2])
}

func TestLoadProjectsCSV_MissingHeader(t *testing.T) {
	_, err := LoadProjectsCSV(context.Background(), &fakeCopier{}, "projects", strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadProjectsCSV_CopyError(t *testing.T) {
	copier := &fakeCopier{err: errors.New("permission denied")}
	_, err := LoadProjectsCSV(context.Background(), copier, "projects", strings.NewReader("mailing_street\n1 Main St\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestCsvSource_MalformedRow(t *testing.T) {
	input := "id,mailing_street\n1,\"unterminated\n"
	_, err := LoadProjectsCSV(context.Background(), &fakeCopier{}, "projects", strings.NewReader(input))
	assert.Error(t, err)
}
