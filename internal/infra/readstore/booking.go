package readstore

import (
	"context"
	"iter"

	"facility-booking/internal/infra"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
	psql    sq.StatementBuilderType
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	return &queries.BookingView{
		ID:           row.ID,
		UserID:       row.UserID,
		FacilityID:   row.FacilityID,
		FacilityName: row.FacilityName,
		Title:        row.Title,
		Description:  row.Description,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		Status:       row.Status,
		Headcount:    row.Headcount,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// Stream runs one query per iteration and yields rows as they are scanned.
// Breaking out of the loop closes the underlying cursor.
func (r *BookingReadStore) Stream(ctx context.Context, filter queries.BookingListFilter) iter.Seq2[*queries.BookingView, error] {
	return func(yield func(*queries.BookingView, error) bool) {
		query, args, err := r.listQuery(filter).ToSql()
		if err != nil {
			yield(nil, infra.WrapRepoErr("failed to build booking list query", err))
			return
		}

		rows, err := r.db.Query(ctx, query, args...)
		if err != nil {
			yield(nil, infra.WrapRepoErr("failed to list bookings", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			view, err := scanBookingView(rows)
			if err != nil {
				yield(nil, infra.WrapRepoErr("failed to scan booking", err))
				return
			}
			if !yield(view, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, infra.WrapRepoErr("failed to iterate bookings", err))
		}
	}
}

// listQuery orders by (start_time, id) descending; the keyset predicate
// resumes strictly after the cursor row.
func (r *BookingReadStore) listQuery(filter queries.BookingListFilter) sq.SelectBuilder {
	q := r.psql.Select(
		"b.id",
		"b.user_id",
		"b.facility_id",
		"f.name",
		"b.title",
		"b.description",
		"b.start_time",
		"b.end_time",
		"b.status",
		"b.headcount",
		"b.created_at",
		"b.updated_at",
	).
		From("bookings b").
		Join("facilities f ON f.id = b.facility_id").
		OrderBy("b.start_time DESC", "b.id DESC")

	if filter.OwnerID != nil {
		q = q.Where(sq.Eq{"b.user_id": *filter.OwnerID})
	}
	if filter.FacilityID != nil {
		q = q.Where(sq.Eq{"b.facility_id": *filter.FacilityID})
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"b.status": *filter.Status})
	}
	if filter.StartFrom != nil {
		q = q.Where(sq.GtOrEq{"b.start_time": *filter.StartFrom})
	}
	if filter.StartBefore != nil {
		q = q.Where(sq.Lt{"b.start_time": *filter.StartBefore})
	}
	if filter.AfterStart != nil {
		q = q.Where(sq.Expr("(b.start_time, b.id) < (?, ?)", *filter.AfterStart, filter.AfterID))
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	return q
}

func scanBookingView(rows pgx.Rows) (*queries.BookingView, error) {
	var v queries.BookingView
	var start, end, created, updated pgtype.Timestamptz
	if err := rows.Scan(
		&v.ID,
		&v.UserID,
		&v.FacilityID,
		&v.FacilityName,
		&v.Title,
		&v.Description,
		&start,
		&end,
		&v.Status,
		&v.Headcount,
		&created,
		&updated,
	); err != nil {
		return nil, err
	}
	v.StartTime = pgconv.TimeFromPgtype(start)
	v.EndTime = pgconv.TimeFromPgtype(end)
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}
