package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/fixhive/fixhive/internal/domain/errors"
	"github.com/fixhive/fixhive/internal/domain/model"
	"github.com/fixhive/fixhive/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type partnerRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Partners() repository.PartnerRepository {
	return &partnerRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS partners (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            job_id TEXT UNIQUE NOT NULL,
            is_verified BOOLEAN NOT NULL DEFAULT FALSE,
            approval TEXT NOT NULL DEFAULT 'pending',
            verification_status TEXT NOT NULL DEFAULT 'pending',
            is_documents_submitted BOOLEAN NOT NULL DEFAULT FALSE,
            otp TEXT,
            otp_expires TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
            house_number TEXT NOT NULL DEFAULT '',
            street TEXT NOT NULL DEFAULT '',
            landmark TEXT NOT NULL DEFAULT '',
            address_type TEXT NOT NULL DEFAULT 'Home',
            full_address TEXT NOT NULL DEFAULT '',
            time_slot TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'Pending',
            assigned_partner BIGINT REFERENCES partners(id),
            request_status TEXT NOT NULL DEFAULT 'Pending',
            request_expires_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            price NUMERIC(12,2) NOT NULL DEFAULT 0,
            image_url TEXT NOT NULL DEFAULT '',
            quantity INT NOT NULL DEFAULT 1
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_partner ON orders(assigned_partner, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `o.id, o.customer_id, o.total_amount, o.house_number, o.street, o.landmark,
       o.address_type, o.full_address, o.time_slot, o.status, o.assigned_partner,
       o.request_status, o.request_expires_at, o.created_at, c.name, c.email`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o        model.Order
		customer model.Customer
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.Address.HouseNumber, &o.Address.Street,
		&o.Address.Landmark, &o.Address.Type, &o.Address.FullAddress, &o.Address.TimeSlot,
		&o.Status, &o.AssignedPartner, &o.RequestStatus, &o.RequestExpiresAt, &o.CreatedAt,
		&customer.Name, &customer.Email)
	if err != nil {
		return nil, err
	}
	customer.ID = o.CustomerID
	o.Customer = &customer
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (customer_id, total_amount, house_number, street, landmark, address_type, full_address, time_slot, status)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                             RETURNING id, created_at`
		err := tx.QueryRow(ctx, insertOrder, order.CustomerID, order.TotalAmount,
			order.Address.HouseNumber, order.Address.Street, order.Address.Landmark,
			order.Address.Type, order.Address.FullAddress, order.Address.TimeSlot,
			order.Status).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, title, price, image_url, quantity)
                            VALUES ($1, $2, $3, $4, $5)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.Title, item.Price, item.ImageURL, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.customer_id=$1 ORDER BY o.created_at DESC`
	return r.list(ctx, query, customerID)
}

func (r *orderRepository) ListByPartner(ctx context.Context, partnerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.assigned_partner=$1 ORDER BY o.created_at DESC`
	return r.list(ctx, query, partnerID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              ORDER BY o.created_at DESC`
	return r.list(ctx, query)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*model.Order, 0, len(result))
	for i := range result {
		refs = append(refs, &result[i])
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*model.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const query = `SELECT order_id, title, price, image_url, quantity
                   FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			item    model.OrderItem
		)
		if err := rows.Scan(&orderID, &item.Title, &item.Price, &item.ImageURL, &item.Quantity); err != nil {
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// PlaceOffer lets the write through only when no pending unexpired offer is
// on the order, so concurrent assignment requests cannot clobber a live offer.
func (r *orderRepository) PlaceOffer(ctx context.Context, orderID, partnerID int64, expiresAt, now time.Time) error {
	const query = `UPDATE orders
                   SET assigned_partner=$2, request_status=$3, request_expires_at=$4
                   WHERE id=$1
                     AND NOT (assigned_partner IS NOT NULL AND request_status=$3 AND request_expires_at >= $5)`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, partnerID, model.RequestStatusPending, expiresAt, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOfferActive
	}
	return nil
}

func (r *orderRepository) ResolveOffer(ctx context.Context, orderID, partnerID int64, decision model.RequestStatus, status model.OrderStatus, now time.Time) error {
	const query = `UPDATE orders
                   SET request_status=$2, status=$3
                   WHERE id=$1 AND assigned_partner=$4 AND request_status=$5 AND request_expires_at >= $6`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, decision, status, partnerID, model.RequestStatusPending, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOfferResolved
	}
	return nil
}

func (r *orderRepository) ListExpiredOffers(ctx context.Context, now time.Time, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o JOIN customers c ON c.id = o.customer_id
              WHERE o.assigned_partner IS NOT NULL AND o.request_status=$1 AND o.request_expires_at < $2
              ORDER BY o.request_expires_at
              LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, model.RequestStatusPending, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ExpireOffer(ctx context.Context, orderID int64, now time.Time) (bool, error) {
	const query = `UPDATE orders
                   SET request_status=$2
                   WHERE id=$1 AND request_status=$3 AND request_expires_at < $4`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, model.RequestStatusDeclined, model.RequestStatusPending, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *orderRepository) DashboardStats(ctx context.Context, partnerID int64) (*model.DashboardStats, error) {
	const query = `SELECT COUNT(*),
                          COUNT(*) FILTER (WHERE status=$2),
                          COUNT(*) FILTER (WHERE status=$3),
                          COALESCE(SUM(total_amount) FILTER (WHERE status=$2), 0)
                   FROM orders WHERE assigned_partner=$1`
	var stats model.DashboardStats
	err := r.storage.pool.QueryRow(ctx, query, partnerID, model.OrderStatusConfirmed, model.OrderStatusPending).
		Scan(&stats.TotalOrders, &stats.CompletedOrders, &stats.IncompleteOrders, &stats.Earnings)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- PartnerRepository implementation ---

const partnerColumns = `id, name, phone, email, job_id, is_verified, approval,
       verification_status, is_documents_submitted, created_at`

func scanPartner(row pgx.Row) (*model.Partner, error) {
	var p model.Partner
	err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.JobID, &p.IsVerified,
		&p.Approval, &p.VerificationStatus, &p.IsDocumentsSubmitted, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*model.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id=$1`
	partner, err := scanPartner(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return partner, nil
}

func (r *partnerRepository) FindEligible(ctx context.Context, requireDocuments bool) (*model.Partner, error) {
	query := `SELECT ` + partnerColumns + `
              FROM partners
              WHERE is_verified AND approval=$1 AND verification_status=$2`
	if requireDocuments {
		query += ` AND is_documents_submitted`
	}
	query += ` ORDER BY id LIMIT 1`

	partner, err := scanPartner(r.storage.pool.QueryRow(ctx, query, model.ApprovalApproved, model.VerificationVerified))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNoCandidate
		}
		return nil, err
	}
	return partner, nil
}

func (r *partnerRepository) List(ctx context.Context) ([]model.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *partner)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *partnerRepository) SetApproval(ctx context.Context, id int64, approval model.Approval) error {
	const query = `UPDATE partners SET approval=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, approval, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
