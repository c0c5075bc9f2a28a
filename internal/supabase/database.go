package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"dtf-orders-backend/internal/apperr"
	"dtf-orders-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// CreateOrderWithFile inserts an order and its file record in one
// transaction. Either both rows exist afterwards or neither does.
func (d *DatabaseClient) CreateOrderWithFile(order *models.Order, file *models.OrderFile) error {
	tx, err := d.db.Begin()
	if err != nil {
		return apperr.Upstream("begin order transaction", err)
	}

	_, err = tx.Exec(`
		INSERT INTO orders (id, customer_name, customer_whatsapp, dtf_type, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, order.ID, order.CustomerName, order.CustomerWhatsapp, order.DTFType,
		order.Notes, order.Status, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		tx.Rollback()
		return apperr.Upstream("insert order", err)
	}

	_, err = tx.Exec(`
		INSERT INTO order_files (id, order_id, file_key, file_name, file_size, mime_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, file.ID, file.OrderID, file.FileKey, file.FileName,
		file.FileSize, file.MimeType, file.CreatedAt)
	if err != nil {
		tx.Rollback()
		return apperr.Upstream("insert order file", err)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Upstream("commit order transaction", err)
	}

	return nil
}

func (d *DatabaseClient) GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	err := d.db.QueryRow(`
		SELECT id, customer_name, customer_whatsapp, dtf_type, notes, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&order.ID, &order.CustomerName, &order.CustomerWhatsapp, &order.DTFType,
		&order.Notes, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("order")
	}
	if err != nil {
		return nil, apperr.Upstream("query order", err)
	}

	return &order, nil
}

func (d *DatabaseClient) ListOrders(limit int) ([]models.OrderSummary, error) {
	rows, err := d.db.Query(`
		SELECT o.id, o.customer_name, o.customer_whatsapp, o.dtf_type, o.notes, o.status, o.created_at, o.updated_at,
			(SELECT COUNT(*) FROM order_files f WHERE f.order_id = o.id) AS file_count
		FROM orders o
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, apperr.Upstream("list orders", err)
	}
	defer rows.Close()

	var orders []models.OrderSummary
	for rows.Next() {
		var order models.OrderSummary
		err := rows.Scan(
			&order.ID, &order.CustomerName, &order.CustomerWhatsapp, &order.DTFType,
			&order.Notes, &order.Status, &order.CreatedAt, &order.UpdatedAt,
			&order.FileCount,
		)
		if err != nil {
			return nil, apperr.Upstream("scan order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Upstream("list orders", err)
	}

	return orders, nil
}

// UpdateOrderStatus sets the status and refreshes updated_at. A zero-row
// update means no such order, surfaced as a NotFoundError so callers can
// tell a no-op from a success.
func (d *DatabaseClient) UpdateOrderStatus(orderID, status string) error {
	result, err := d.db.Exec(`
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return apperr.Upstream("update order status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Upstream("update order status", err)
	}
	if affected == 0 {
		return apperr.NotFound("order")
	}

	return nil
}

func (d *DatabaseClient) GetOrderFiles(orderID string) ([]models.OrderFile, error) {
	rows, err := d.db.Query(`
		SELECT id, order_id, file_key, file_name, file_size, mime_type, created_at
		FROM order_files
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, apperr.Upstream("query order files", err)
	}
	defer rows.Close()

	var files []models.OrderFile
	for rows.Next() {
		var file models.OrderFile
		err := rows.Scan(
			&file.ID, &file.OrderID, &file.FileKey, &file.FileName,
			&file.FileSize, &file.MimeType, &file.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Upstream("scan order file", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Upstream("query order files", err)
	}

	return files, nil
}

// GetFirstOrderFile returns the oldest file row for an order, the one the
// submission workflow wrote.
func (d *DatabaseClient) GetFirstOrderFile(orderID string) (*models.OrderFile, error) {
	var file models.OrderFile
	err := d.db.QueryRow(`
		SELECT id, order_id, file_key, file_name, file_size, mime_type, created_at
		FROM order_files
		WHERE order_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`, orderID).Scan(
		&file.ID, &file.OrderID, &file.FileKey, &file.FileName,
		&file.FileSize, &file.MimeType, &file.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("file")
	}
	if err != nil {
		return nil, apperr.Upstream("query order file", err)
	}

	return &file, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
