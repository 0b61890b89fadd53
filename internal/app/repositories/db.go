package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Pool is a DBTX that can also open transactions.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// keyEquals matches a key column case-insensitively.
func keyEquals(column, value string) squirrel.Sqlizer {
	return squirrel.Expr("LOWER("+column+") = LOWER(?)", value)
}

// keyNotEquals excludes a key case-insensitively.
func keyNotEquals(column, value string) squirrel.Sqlizer {
	return squirrel.Expr("LOWER("+column+") <> LOWER(?)", value)
}

// lockRow locks the row whose key matches case-insensitively and returns the key as stored.
func lockRow(ctx context.Context, q DBTX, sb squirrel.StatementBuilderType, table, keyColumn, key string, notFound error) (string, error) {
	query, args, err := sb.Select(keyColumn).
		From(table).
		Where(keyEquals(keyColumn, key)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build %s lock query: %w", table, err)
	}

	var stored string
	if err := q.QueryRow(ctx, query, args...).Scan(&stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", notFound
		}
		return "", fmt.Errorf("error locking %s row: %w", table, err)
	}
	return stored, nil
}

// keyTaken reports whether a row other than exclude already uses key. An empty exclude
// checks every row.
func keyTaken(ctx context.Context, q DBTX, sb squirrel.StatementBuilderType, table, keyColumn, key, exclude string) (bool, error) {
	sel := sb.Select("1").From(table).Where(keyEquals(keyColumn, key))
	if exclude != "" {
		sel = sel.Where(keyNotEquals(keyColumn, exclude))
	}

	query, args, err := sel.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s exists query: %w", table, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s key: %w", table, err)
	}
	return exists, nil
}

// count returns the number of rows in table.
func count(ctx context.Context, q DBTX, sb squirrel.StatementBuilderType, table string) (int64, error) {
	query, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s count query: %w", table, err)
	}

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}

// collect runs query and scans every row with scan.
func collect[T any](ctx context.Context, q DBTX, query string, args []interface{}, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return items, nil
}
