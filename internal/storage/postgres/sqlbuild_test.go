package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

func TestInsertSQL_MultiRowPlaceholders(t *testing.T) {
	t.Parallel()

	got := insertSQL("t", []string{"a", "b"}, 2, "")
	want := "INSERT INTO t (a, b, created_at, updated_at) VALUES ($1, $2, NOW(), NOW()), ($3, $4, NOW(), NOW())"
	assert.Equal(t, want, got)
}

func TestInsertSQL_Returning(t *testing.T) {
	t.Parallel()

	got := insertSQL("t", []string{"a"}, 1, "id")
	assert.Equal(t, "INSERT INTO t (a, created_at, updated_at) VALUES ($1, NOW(), NOW()) RETURNING id", got)
}

func TestUpdateSQL_WhereParamsFollowColumns(t *testing.T) {
	t.Parallel()

	got := updateSQL("t", []string{"a", "b"}, "order_id", "custom_fields_id")
	want := "UPDATE t SET a = $1, b = $2, updated_at = NOW() WHERE order_id = $3 AND custom_fields_id = $4"
	assert.Equal(t, want, got)
}

func TestSelectSQL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SELECT id, a FROM t WHERE a = $1 AND b = $2 ORDER BY id ASC",
		selectSQL("t", []string{"id", "a"}, "a", "b"))
	assert.Equal(t, "SELECT id FROM t ORDER BY id ASC", selectSQL("t", []string{"id"}))
}

func TestStorageError_MapsDriverCodes(t *testing.T) {
	t.Parallel()

	fk := storageError("insert order payment", &pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, fk, domain.ErrOrderNotFound)
	assert.False(t, domain.IsStorageError(fk))

	dup := storageError("insert order payment", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}))
	require.ErrorIs(t, dup, domain.ErrDuplicateRecord)
	assert.True(t, domain.IsStorageError(dup))

	other := storageError("select order", errors.New("connection reset"))
	assert.True(t, domain.IsStorageError(other))
	assert.False(t, errors.Is(other, domain.ErrDuplicateRecord))
}

func TestWithOpTimeout_KeepsCallerDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	want, _ := parent.Deadline()

	ctx, done := withOpTimeout(parent)
	defer done()
	got, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, want, got)

	ctx2, done2 := withOpTimeout(context.Background())
	defer done2()
	deadline, ok := ctx2.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(opTimeout), deadline, time.Second)
}
