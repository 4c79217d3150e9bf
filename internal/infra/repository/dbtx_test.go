//go:build unit

package repository_test

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errUnexpectedSQL = errors.New("repository issued SQL outside the generated queries")

// mockDBTX is only passed through to the mocked queries. Any direct use fails.
type mockDBTX struct{}

func (*mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errUnexpectedSQL
}

func (*mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errUnexpectedSQL
}

func (*mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	return failedRow{}
}

type failedRow struct{}

func (failedRow) Scan(...any) error { return errUnexpectedSQL }
