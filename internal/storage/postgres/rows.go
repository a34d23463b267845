package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// rowScanner покрывает и *sql.Row, и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryList выполняет запрос и сканирует все строки. Пустой результат даёт
// пустой срез, а не ошибку.
func queryList[T any](ctx context.Context, db *sql.DB, op string, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, storageError(op, fmt.Errorf("scan row: %w", err))
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, fmt.Errorf("iterate rows: %w", err))
	}

	return result, nil
}

// queryOne сканирует единственную строку; при её отсутствии возвращает notFound.
func queryOne[T any](ctx context.Context, db *sql.DB, op string, notFound error, scan func(rowScanner) (T, error), query string, args ...any) (T, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, notFound
		}
		return zero, storageError(op, err)
	}
	return item, nil
}

// execStatement выполняет запрос без результата и возвращает число затронутых строк.
func execStatement(ctx context.Context, db *sql.DB, op, query string, args ...any) (int64, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageError(op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, storageError(op, fmt.Errorf("rows affected: %w", err))
	}
	return affected, nil
}
