package repository

import (
	"context"
	"fmt"

	"bistro-boss/pkg/database"

	"go.uber.org/zap"
)

// CategorySales is the quantity sold and revenue for one menu category.
type CategorySales struct {
	Category string
	Quantity int64
	Revenue  float64
}

type StatsRepository interface {
	EstimatedUsers(ctx context.Context) (int64, error)
	EstimatedMenuItems(ctx context.Context) (int64, error)
	EstimatedOrders(ctx context.Context) (int64, error)
	// TotalRevenue is 0 when there are no payments.
	TotalRevenue(ctx context.Context) (float64, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
}

type statsRepository struct {
	db       database.PgxIface
	users    *collection
	menu     *collection
	payments *collection
	log      *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	log = log.With(zap.String("repository", "stats"))
	return &statsRepository{
		db:       db,
		users:    newCollection(db, tableUsers, log),
		menu:     newCollection(db, tableMenu, log),
		payments: newCollection(db, tablePayments, log),
		log:      log,
	}
}

func (r *statsRepository) EstimatedUsers(ctx context.Context) (int64, error) {
	return r.users.estimatedCount(ctx)
}

func (r *statsRepository) EstimatedMenuItems(ctx context.Context) (int64, error) {
	return r.menu.estimatedCount(ctx)
}

func (r *statsRepository) EstimatedOrders(ctx context.Context) (int64, error) {
	return r.payments.estimatedCount(ctx)
}

func (r *statsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM((doc->>'price')::numeric), 0)::float8 FROM payments`

	var revenue float64
	if err := r.db.QueryRow(ctx, query).Scan(&revenue); err != nil {
		r.log.Error("Failed to sum revenue", zap.Error(err))
		return 0, fmt.Errorf("sum payment revenue: %w", err)
	}

	return revenue, nil
}

// SalesByCategory expands each payment's menuItemIds and joins them to the
// menu, so an item bought twice counts twice.
func (r *statsRepository) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	query := `
		SELECT COALESCE(m.doc->>'category', '') AS category,
		       COUNT(*) AS quantity,
		       COALESCE(SUM((m.doc->>'price')::numeric), 0)::float8 AS revenue
		FROM payments p
		CROSS JOIN LATERAL jsonb_array_elements_text(
			CASE WHEN jsonb_typeof(p.doc->'menuItemIds') = 'array'
			     THEN p.doc->'menuItemIds' ELSE '[]'::jsonb END
		) AS item(menu_id)
		JOIN menu m ON m.id::text = item.menu_id
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to aggregate category sales", zap.Error(err))
		return nil, fmt.Errorf("aggregate category sales: %w", err)
	}
	defer rows.Close()

	sales := make([]CategorySales, 0)
	for rows.Next() {
		var s CategorySales
		if err := rows.Scan(&s.Category, &s.Quantity, &s.Revenue); err != nil {
			r.log.Error("Failed to scan category sales row", zap.Error(err))
			return nil, fmt.Errorf("scan category sales row: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category sales rows: %w", err)
	}

	return sales, nil
}
