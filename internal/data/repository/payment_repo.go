package repository

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// CreateAndClearCart stores the payment and deletes the purchased cart
	// entries in one transaction. It returns the number of entries removed.
	CreateAndClearCart(ctx context.Context, doc entity.Document, cartIDs []string) (*entity.Payment, int64, error)
	FindByEmail(ctx context.Context, email string) ([]entity.Payment, error)
}

type paymentRepository struct {
	db       database.PgxIface
	payments *collection
	carts    *collection
	log      *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	log = log.With(zap.String("repository", "payment"))
	return &paymentRepository{
		db:       db,
		payments: newCollection(db, tablePayments, log),
		carts:    newCollection(db, tableCarts, log),
		log:      log,
	}
}

func (r *paymentRepository) CreateAndClearCart(ctx context.Context, doc entity.Document, cartIDs []string) (*entity.Payment, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin payment transaction", zap.Error(err))
		return nil, 0, fmt.Errorf("begin payment transaction: %w", err)
	}

	record, err := r.payments.withTx(tx).insert(ctx, doc)
	if err != nil {
		r.rollback(ctx, tx)
		return nil, 0, fmt.Errorf("create payment for %s: %w", doc.String("email"), err)
	}

	deleted, err := r.carts.withTx(tx).deleteMany(ctx, cartIDs)
	if err != nil {
		r.rollback(ctx, tx)
		return nil, 0, fmt.Errorf("clear cart for payment %s: %w", record.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit payment transaction",
			zap.Error(err),
			zap.String("payment_id", record.ID.String()),
		)
		return nil, 0, fmt.Errorf("commit payment %s: %w", record.ID.String(), err)
	}

	r.log.Info("Payment recorded",
		zap.String("payment_id", record.ID.String()),
		zap.String("email", doc.String("email")),
		zap.Int("cart_ids", len(cartIDs)),
		zap.Int64("cart_deleted", deleted),
	)

	return &entity.Payment{Record: *record}, deleted, nil
}

func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	records, err := r.payments.findAll(ctx, "email", email)
	if err != nil {
		return nil, err
	}

	payments := make([]entity.Payment, len(records))
	for i, record := range records {
		payments[i] = entity.Payment{Record: record}
	}
	return payments, nil
}

func (r *paymentRepository) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		r.log.Warn("Failed to roll back payment transaction", zap.Error(err))
	}
}
