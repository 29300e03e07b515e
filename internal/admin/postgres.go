package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PostgresRepository stores orders in the admin_orders table. Items are kept
// as JSONB in the same shape the storefront sends them.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectOrder = `
	SELECT id, customer_name, customer_phone, customer_discord, items, total, status,
	       account_details, created_at, delivered_at
	FROM admin_orders`

func (r *PostgresRepository) List(ctx context.Context, status Status) ([]Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.QueryContext(ctx, selectOrder+` ORDER BY created_at DESC`)
	} else {
		rows, err = r.db.QueryContext(ctx, selectOrder+` WHERE status = $1 ORDER BY created_at DESC`, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrder+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresRepository) Create(ctx context.Context, o Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	if o.Status == "" {
		o.Status = StatusPending
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_orders (id, customer_name, customer_phone, customer_discord, items, total, status,
		                          account_details, created_at, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`,
		o.ID, o.CustomerName, o.CustomerPhone, o.CustomerDiscord, string(items), o.Total, string(o.Status),
		o.AccountDetails, o.CreatedAt, o.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if n == 0 {
		return ErrOrderExists
	}
	return nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status, deliveredAt *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admin_orders SET status = $1, delivered_at = COALESCE($2, delivered_at) WHERE id = $3`,
		string(status), deliveredAt, id,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) RecordDelivery(ctx context.Context, id, accountDetails string, deliveredAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admin_orders SET status = $1, account_details = $2, delivered_at = $3 WHERE id = $4`,
		string(StatusCompleted), accountDetails, deliveredAt, id,
	)
	if err != nil {
		return fmt.Errorf("record delivery: %w", err)
	}
	return expectOne(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o           Order
		items       []byte
		status      string
		deliveredAt sql.NullTime
	)
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerDiscord, &items, &o.Total, &status,
		&o.AccountDetails, &o.CreatedAt, &deliveredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, err
		}
		return Order{}, fmt.Errorf("scan order: %w", err)
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return Order{}, fmt.Errorf("unmarshal items: %w", err)
	}
	o.Status = Status(status)
	if deliveredAt.Valid {
		t := deliveredAt.Time
		o.DeliveredAt = &t
	}
	return o, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
