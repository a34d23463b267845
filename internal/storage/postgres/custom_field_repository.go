package postgres

import (
	"context"
	"database/sql"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

var customFieldColumns = []string{"order_id", "custom_fields_id", "custom_field_name", "custom_answer"}

type customFieldRepository struct {
	db *sql.DB
}

// NewOrderCustomFieldRepository создаёт PostgreSQL-реализацию OrderCustomFieldRepository.
func NewOrderCustomFieldRepository(store *Store) domain.OrderCustomFieldRepository {
	return &customFieldRepository{db: store.DB()}
}

func (r *customFieldRepository) Create(ctx context.Context, field domain.OrderCustomField) error {
	if err := field.Validate(); err != nil {
		return err
	}
	_, err := execStatement(ctx, r.db, "insert order custom field",
		insertSQL("order_custom_fields", customFieldColumns, 1, ""),
		field.OrderID, field.CustomFieldsID, field.CustomFieldName, field.CustomAnswer)
	return err
}

func (r *customFieldRepository) UpdateAnswer(ctx context.Context, orderID, customFieldsID int64, answer string) error {
	_, err := execStatement(ctx, r.db, "update custom answer",
		updateSQL("order_custom_fields", []string{"custom_answer"}, "order_id", "custom_fields_id"),
		answer, orderID, customFieldsID)
	return err
}

func (r *customFieldRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderCustomField, error) {
	return queryList(ctx, r.db, "list order custom fields", scanCustomField,
		selectSQL("order_custom_fields", withTimestamps(customFieldColumns), "order_id"), orderID)
}

func (r *customFieldRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	_, err := execStatement(ctx, r.db, "delete order custom fields",
		`DELETE FROM order_custom_fields WHERE order_id = $1`, orderID)
	return err
}

func scanCustomField(row rowScanner) (domain.OrderCustomField, error) {
	var f domain.OrderCustomField
	err := row.Scan(&f.ID, &f.OrderID, &f.CustomFieldsID, &f.CustomFieldName, &f.CustomAnswer, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

var _ domain.OrderCustomFieldRepository = (*customFieldRepository)(nil)
