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

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// DBPool is the subset of pgxpool.Pool used by the storage layer.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type orderItemRepository struct {
	storage *Storage
}

// newPgxPool builds the real connection pool; tests swap it out.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DBPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) OrderItems() repository.OrderItemRepository {
	return &orderItemRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            is_staff BOOLEAN NOT NULL DEFAULT FALSE,
            is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
            title TEXT NOT NULL,
            price NUMERIC(7,2) NOT NULL DEFAULT 0,
            description TEXT NOT NULL DEFAULT '',
            image_path TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            id SERIAL PRIMARY KEY,
            product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            name TEXT NOT NULL DEFAULT '',
            rating INT NOT NULL DEFAULT 0,
            comment TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            price NUMERIC(7,2) NOT NULL DEFAULT 0,
            done BOOLEAN NOT NULL DEFAULT FALSE,
            processed_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT REFERENCES orders(id) ON DELETE SET NULL,
            product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
            name TEXT NOT NULL DEFAULT '',
            price NUMERIC(7,2) NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_owner ON products(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash)
	               VALUES ($1, $2, $3)
	               RETURNING id, is_active, is_staff, is_superuser, created_at`
	u := model.User{Email: email, Name: name, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, email, name, passwordHash).
		Scan(&u.ID, &u.Active, &u.Staff, &u.Superuser, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, is_active, is_staff, is_superuser, created_at
	               FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, is_active, is_staff, is_superuser, created_at
	               FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Active, &u.Staff, &u.Superuser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	const query = `UPDATE users SET email=$1, name=$2, password_hash=$3,
	               is_active=$4, is_staff=$5, is_superuser=$6 WHERE id=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		user.Email, user.Name, user.PasswordHash,
		user.Active, user.Staff, user.Superuser, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	const query = `INSERT INTO products (user_id, title, price, description, image_path)
	               VALUES ($1, $2, $3, $4, $5)
	               RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query,
		product.UserID, product.Title, product.Price, product.Description, product.ImagePath).
		Scan(&product.ID, &product.CreatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, user_id, title, price, description, image_path, created_at
	               FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.UserID, &p.Title, &p.Price, &p.Description, &p.ImagePath, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, user_id, title, price, description, image_path, created_at
	               FROM products ORDER BY id`
	return r.collect(r.storage.pool.Query(ctx, query))
}

func (r *productRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Product, error) {
	const query = `SELECT id, user_id, title, price, description, image_path, created_at
	               FROM products WHERE user_id=$1 ORDER BY id`
	return r.collect(r.storage.pool.Query(ctx, query, userID))
}

func (r *productRepository) collect(rows pgx.Rows, err error) ([]model.Product, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Price, &p.Description, &p.ImagePath, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products SET user_id=$1, title=$2, price=$3, description=$4, image_path=$5
	               WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.UserID, product.Title, product.Price, product.Description, product.ImagePath, product.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ReviewRepository implementation ---

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	const query = `INSERT INTO reviews (product_id, user_id, name, rating, comment)
	               VALUES ($1, $2, $3, $4, $5)
	               RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.Name, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	const query = `SELECT id, product_id, user_id, name, rating, comment, created_at
	               FROM reviews WHERE id=$1`
	var rv model.Review
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	const query = `SELECT id, product_id, user_id, name, rating, comment, created_at
	               FROM reviews ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	const query = `UPDATE reviews SET name=$1, rating=$2, comment=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, review.Name, review.Rating, review.Comment, review.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (user_id, price, done) VALUES ($1, $2, $3)
	               RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query, order.UserID, order.Price, order.Done).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, price, done, processed_at, created_at
	               FROM orders WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetForUser(ctx context.Context, id, userID int64) (*model.Order, error) {
	const query = `SELECT id, user_id, price, done, processed_at, created_at
	               FROM orders WHERE id=$1 AND user_id=$2`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *orderRepository) scanOne(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Price, &o.Done, &o.ProcessedAt, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, user_id, price, done, processed_at, created_at
	               FROM orders ORDER BY id`
	return r.collect(r.storage.pool.Query(ctx, query))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, price, done, processed_at, created_at
	               FROM orders WHERE user_id=$1 ORDER BY id`
	return r.collect(r.storage.pool.Query(ctx, query, userID))
}

func (r *orderRepository) collect(rows pgx.Rows, err error) ([]model.Order, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Price, &o.Done, &o.ProcessedAt, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders SET price=$1, done=$2, processed_at=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, order.Price, order.Done, order.ProcessedAt, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Process(ctx context.Context, id int64) (*model.Order, error) {
	// Repeated processing is allowed and moves the timestamp forward.
	const query = `UPDATE orders SET done=TRUE, processed_at=NOW() WHERE id=$1
	               RETURNING id, user_id, price, done, processed_at, created_at`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

// --- OrderItemRepository implementation ---

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	const query = `INSERT INTO order_items (order_id, product_id, name, price)
	               VALUES ($1, $2, $3, $4)
	               RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.Name, item.Price).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *orderItemRepository) GetByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, name, price, created_at
	               FROM order_items WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderItemRepository) GetForUser(ctx context.Context, id, userID int64) (*model.OrderItem, error) {
	const query = `SELECT i.id, i.order_id, i.product_id, i.name, i.price, i.created_at
	               FROM order_items i
	               JOIN orders o ON o.id = i.order_id
	               WHERE i.id=$1 AND o.user_id=$2`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *orderItemRepository) scanOne(row pgx.Row) (*model.OrderItem, error) {
	var item model.OrderItem
	err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) List(ctx context.Context) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, name, price, created_at
	               FROM order_items ORDER BY id`
	return r.collect(r.storage.pool.Query(ctx, query))
}

func (r *orderItemRepository) ListForUser(ctx context.Context, userID int64) ([]model.OrderItem, error) {
	const query = `SELECT i.id, i.order_id, i.product_id, i.name, i.price, i.created_at
	               FROM order_items i
	               JOIN orders o ON o.id = i.order_id
	               WHERE o.user_id=$1 ORDER BY i.id`
	return r.collect(r.storage.pool.Query(ctx, query, userID))
}

func (r *orderItemRepository) collect(rows pgx.Rows, err error) ([]model.OrderItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderItemRepository) Update(ctx context.Context, item *model.OrderItem) error {
	const query = `UPDATE order_items SET name=$1, price=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, item.Name, item.Price, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM order_items WHERE id=$1`, id)
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
