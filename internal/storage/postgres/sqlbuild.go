package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

const (
	opTimeout = 5 * time.Second
	// maxBindParams: предел параметров в одном запросе протокола PostgreSQL.
	maxBindParams = 65535
)

// withOpTimeout ограничивает операцию opTimeout, если у вызывающего нет своего дедлайна.
func withOpTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, opTimeout)
}

// insertSQL строит INSERT на rows строк с позиционными плейсхолдерами
// $1..$N из фиксированного списка колонок; created_at и updated_at
// проставляет сервер. Значения в текст запроса никогда не попадают.
func insertSQL(table string, columns []string, rows int, returning string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(", created_at, updated_at) VALUES ")

	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := range columns {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
		}
		b.WriteString(", NOW(), NOW())")
	}

	if returning != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(returning)
	}
	return b.String()
}

// updateSQL строит UPDATE всех колонок columns с обновлением updated_at.
// Параметры условия where нумеруются после колонок.
func updateSQL(table string, columns []string, where ...string) string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	for i, col := range columns {
		b.WriteString(col)
		b.WriteString(" = $")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(", ")
	}
	b.WriteString("updated_at = NOW() WHERE ")
	for i, col := range where {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(col)
		b.WriteString(" = $")
		b.WriteString(strconv.Itoa(len(columns) + i + 1))
	}
	return b.String()
}

// selectSQL строит SELECT по списку колонок с условием равенства.
func selectSQL(table string, columns []string, where ...string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(table)
	for i, col := range where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(col)
		b.WriteString(" = $")
		b.WriteString(strconv.Itoa(i + 1))
	}
	b.WriteString(" ORDER BY id ASC")
	return b.String()
}

// storageError переводит ошибку драйвера в доменную: нарушение внешнего
// ключа означает отсутствие заказа, остальное оборачивается в StorageError.
func storageError(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrOrderNotFound)
	case isUniqueViolation(err):
		return domain.NewStorageError(op, errors.Join(domain.ErrDuplicateRecord, err))
	default:
		return domain.NewStorageError(op, err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
