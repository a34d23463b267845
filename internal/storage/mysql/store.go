// Package mysql хранит заказы в исходной MySQL-схеме мини-магазина через gorm.
// Чтение может уходить на реплики, запись всегда идёт на основной сервер.
package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

const (
	opTimeout              = 5 * time.Second
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 30 * time.Minute

	// Коды ошибок сервера MySQL.
	errDuplicateEntry = 1062
	errNoReferenced   = 1452
)

// Store владеет gorm-подключением к MySQL.
type Store struct {
	db *gorm.DB
}

// Open подключается к основному серверу по dsn и регистрирует реплики для чтения.
func Open(ctx context.Context, dsn string, replicaDSNs []string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql connection: %w", err)
	}

	if len(replicaDSNs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(replicaDSNs))
		for _, r := range replicaDSNs {
			replicas = append(replicas, mysql.Open(r))
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(defaultMaxOpenConns).
			SetMaxIdleConns(defaultMaxIdleConns).
			SetConnMaxLifetime(defaultConnMaxLifetime)
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("register mysql replicas: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get mysql sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(defaultMaxOpenConns)
	sqlDB.SetMaxIdleConns(defaultMaxIdleConns)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	store := &Store{db: db}
	if err := store.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return store, nil
}

// NewStore оборачивает готовое gorm-подключение.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB возвращает gorm-подключение.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping проверяет доступность основного сервера.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("mysql store is not initialized")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return storageError("ping", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return storageError("ping", err)
	}
	return nil
}

// Close закрывает подключение.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewRepositories создаёт репозитории всех таблиц поверх одного Store.
func NewRepositories(store *Store) domain.Repositories {
	return domain.Repositories{
		Orders:       &orderRepository{db: store.db},
		Products:     &productRepository{db: store.db},
		Payments:     &paymentRepository{db: store.db},
		Logistics:    &logisticsRepository{db: store.db},
		Batches:      &batchRepository{db: store.db},
		CustomFields: &customFieldRepository{db: store.db},
	}
}

// session привязывает запрос к ctx и ограничивает его opTimeout, если у
// вызывающего нет своего дедлайна.
func session(ctx context.Context, db *gorm.DB) (*gorm.DB, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	return db.WithContext(ctx), cancel
}

// storageError переводит ошибку драйвера в доменную.
func storageError(op string, err error) error {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errNoReferenced:
			return fmt.Errorf("%s: %w", op, domain.ErrOrderNotFound)
		case errDuplicateEntry:
			return domain.NewStorageError(op, errors.Join(domain.ErrDuplicateRecord, err))
		}
	}
	return domain.NewStorageError(op, err)
}

// transaction выполняет fn в транзакции. Сбои Begin и Commit gorm отдаёт
// как есть, поэтому они тоже заворачиваются в StorageError.
func transaction(db *gorm.DB, op string, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err == nil || domain.IsStorageError(err) || domain.IsNotFound(err) {
		return err
	}
	return storageError(op, err)
}

// requireOrder проверяет наличие заказа: в исходной схеме нет внешних ключей.
func requireOrder(tx *gorm.DB, op string, orderID int64) error {
	var n int64
	if err := tx.Model(&orderModel{}).Where("id = ?", orderID).Count(&n).Error; err != nil {
		return storageError(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrOrderNotFound)
	}
	return nil
}

// requireNoRow не даёт завести вторую запись на заказ в таблицах один-к-одному.
func requireNoRow(tx *gorm.DB, op string, model any, orderID int64) error {
	var n int64
	if err := tx.Model(model).Where("order_id = ?", orderID).Count(&n).Error; err != nil {
		return storageError(op, err)
	}
	if n > 0 {
		return domain.NewStorageError(op, domain.ErrDuplicateRecord)
	}
	return nil
}
