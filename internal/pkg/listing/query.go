package listing

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Params carries the untrusted list parameters of one request. Zero values select the
// defaults; filters are keyed by logical field name.
type Params struct {
	Search   string
	SearchBy string
	SortBy   string
	Order    string
	Page     int
	PerPage  int
	Filters  map[string][]string
}

// Query is a fully resolved list request. Everything in it is either a whitelisted
// identifier or a bind parameter.
type Query struct {
	Entity *Entity
	Where  squirrel.Sqlizer
	Sort   Sort
	Page   Page
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Prepare resolves params against the entity whitelist.
func (e *Entity) Prepare(p Params) Query {
	return Query{
		Entity: e,
		Where:  Combine(e.FilterClause(p.Filters), e.SearchClause(p.Search, p.SearchBy)),
		Sort:   e.ResolveSort(p.SortBy, p.Order),
		Page:   NewPage(p.Page, p.PerPage, e.DefaultPerPage),
	}
}

func (q Query) where(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	if q.Where == nil {
		return b
	}
	return b.Where(q.Where)
}

// CountSQL renders the total-count statement.
func (q Query) CountSQL() (string, []interface{}, error) {
	return q.where(psql.Select("COUNT(*)").From(q.Entity.Table)).ToSql()
}

// PageSQL renders the ordered page-slice statement.
func (q Query) PageSQL() (string, []interface{}, error) {
	b := psql.Select(q.Entity.Columns()...).From(q.Entity.Table)
	return q.where(b).
		OrderBy(q.Sort.OrderBy()...).
		Limit(uint64(q.Page.PerPage)).
		Offset(q.Page.Offset()).
		ToSql()
}

// Querier is the read side of a pgx pool, connection or transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ScanFunc reads one selected row, with columns in Entity.Columns order.
type ScanFunc[T any] func(row pgx.Row) (T, error)

// Result is one page of items plus the pagination metadata of the whole match set.
type Result[T any] struct {
	Items       []T
	Total       int64
	Pages       int
	CurrentPage int
	PerPage     int
}

// Run executes the count and page queries. The page query is skipped when nothing
// matches. The two reads are not snapshot-consistent with each other.
func Run[T any](ctx context.Context, db Querier, q Query, scan ScanFunc[T]) (*Result[T], error) {
	res := &Result[T]{
		Items:       []T{},
		CurrentPage: q.Page.Number,
		PerPage:     q.Page.PerPage,
	}

	countSQL, countArgs, err := q.CountSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s count query: %w", q.Entity.Name, err)
	}
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&res.Total); err != nil {
		return nil, fmt.Errorf("failed to count %s rows: %w", q.Entity.Name, err)
	}
	res.Pages = TotalPages(res.Total, q.Page.PerPage)
	if res.Total == 0 {
		return res, nil
	}

	pageSQL, pageArgs, err := q.PageSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s page query: %w", q.Entity.Name, err)
	}
	rows, err := db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s page: %w", q.Entity.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", q.Entity.Name, err)
		}
		res.Items = append(res.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", q.Entity.Name, err)
	}

	return res, nil
}
