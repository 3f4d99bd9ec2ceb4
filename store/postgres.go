package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"finbooks/ledger"
)

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a pool to the given connection string.
func NewPostgres(ctx context.Context, connStr string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// whereClause builds the filter predicate shared by the transaction reads.
func whereClause(f TransactionFilter, args []interface{}) (string, []interface{}) {
	var conds []string
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("t.transaction_date >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("t.transaction_date <= $%d", len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("t.category_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(f TransactionFilter) string {
	col := "t.transaction_date"
	if f.SortBy == "amount" {
		col = "t.amount"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortDir, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, t.created_at DESC", col, dir)
}

func (p *Postgres) ListTransactions(ctx context.Context, f TransactionFilter) ([]Transaction, int, error) {
	where, args := whereClause(f, nil)

	var total int
	if err := p.pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions t"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT t.id, t.description, t.amount, t.type, t.transaction_date,
		       t.category_id, t.subcategory, t.created_at, t.updated_at
		FROM transactions t` + where + orderClause(f)
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, (page-1)*f.Limit)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	return transactions, total, rows.Err()
}

func (p *Postgres) CreateTransaction(ctx context.Context, t Transaction) (Transaction, error) {
	amount, err := numericFromFloat(t.Amount)
	if err != nil {
		return Transaction{}, err
	}

	row := p.pool.QueryRow(ctx, `
		INSERT INTO transactions (description, amount, type, transaction_date, category_id, subcategory)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, description, amount, type, transaction_date, category_id, subcategory, created_at, updated_at`,
		t.Description, amount, t.Type, t.TransactionDate, categoryParam(t.CategoryID), textParam(t.Subcategory))

	return scanTransaction(row)
}

func (p *Postgres) UpdateTransaction(ctx context.Context, t Transaction) (Transaction, error) {
	amount, err := numericFromFloat(t.Amount)
	if err != nil {
		return Transaction{}, err
	}

	row := p.pool.QueryRow(ctx, `
		UPDATE transactions
		SET description = $2, amount = $3, type = $4, transaction_date = $5,
		    category_id = $6, subcategory = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, description, amount, type, transaction_date, category_id, subcategory, created_at, updated_at`,
		t.ID, t.Description, amount, t.Type, t.TransactionDate, categoryParam(t.CategoryID), textParam(t.Subcategory))

	updated, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, ErrNotFound
	}
	return updated, err
}

func (p *Postgres) DeleteTransaction(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, main_category, category_type, created_at, updated_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (p *Postgres) GetCategory(ctx context.Context, id string) (Category, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, name, main_category, category_type, created_at, updated_at
		FROM categories
		WHERE id = $1`, id)

	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	return c, err
}

func (p *Postgres) CreateCategory(ctx context.Context, c Category) (Category, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO categories (name, main_category, category_type)
		VALUES ($1, $2, $3)
		RETURNING id, name, main_category, category_type, created_at, updated_at`,
		c.Name, c.MainCategory, textParam(c.CategoryType))

	return scanCategory(row)
}

func (p *Postgres) ListEntries(ctx context.Context, f TransactionFilter) ([]ledger.Transaction, error) {
	where, args := whereClause(f, nil)

	rows, err := p.pool.Query(ctx, `
		SELECT t.id, t.transaction_date, t.amount, t.type,
		       t.category_id, c.main_category, c.category_type, t.subcategory
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id`+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]ledger.Transaction, 0)
	for rows.Next() {
		var (
			id           pgtype.UUID
			date         pgtype.Date
			amount       pgtype.Numeric
			txType       string
			categoryID   pgtype.UUID
			mainCategory pgtype.Text
			categoryType pgtype.Text
			subcategory  pgtype.Text
		)
		if err := rows.Scan(&id, &date, &amount, &txType, &categoryID, &mainCategory, &categoryType, &subcategory); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entry := ledger.Transaction{
			ID:   uuid.UUID(id.Bytes).String(),
			Date: date.Time,
			Type: txType,
		}
		if amount.Valid {
			v, _ := amount.Float64Value()
			entry.Amount = v.Float64
		}
		if categoryID.Valid {
			entry.CategoryID = uuid.UUID(categoryID.Bytes).String()
		}
		if mainCategory.Valid {
			entry.MainCategory = mainCategory.String
		}
		if categoryType.Valid {
			entry.CategoryType = categoryType.String
		}
		if subcategory.Valid {
			entry.Subcategory = subcategory.String
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (p *Postgres) Totals(ctx context.Context, f TransactionFilter) (Totals, error) {
	where, args := whereClause(f, nil)

	var income, expense pgtype.Numeric
	err := p.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN t.type = 'Credit' THEN t.amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'Debit' THEN t.amount ELSE 0 END), 0)
		FROM transactions t`+where, args...).Scan(&income, &expense)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to compute totals: %w", err)
	}

	totals := Totals{}
	if income.Valid {
		v, _ := income.Float64Value()
		totals.Income = v.Float64
	}
	if expense.Valid {
		v, _ := expense.Float64Value()
		totals.Expense = v.Float64
	}
	totals.Net = totals.Income - totals.Expense
	return totals, nil
}

// scanTransaction reads one transaction row regardless of whether it came
// from a Query or QueryRow.
func scanTransaction(row pgx.Row) (Transaction, error) {
	var (
		id          pgtype.UUID
		description string
		amount      pgtype.Numeric
		txType      string
		date        pgtype.Date
		categoryID  pgtype.UUID
		subcategory pgtype.Text
		createdAt   pgtype.Timestamp
		updatedAt   pgtype.Timestamp
	)
	if err := row.Scan(&id, &description, &amount, &txType, &date, &categoryID, &subcategory, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Transaction{}, err
		}
		return Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	t := Transaction{
		ID:              uuid.UUID(id.Bytes).String(),
		Description:     description,
		Type:            txType,
		TransactionDate: date.Time,
		CreatedAt:       createdAt.Time,
		UpdatedAt:       updatedAt.Time,
	}
	if amount.Valid {
		v, _ := amount.Float64Value()
		t.Amount = v.Float64
	}
	if categoryID.Valid {
		s := uuid.UUID(categoryID.Bytes).String()
		t.CategoryID = &s
	}
	if subcategory.Valid {
		s := subcategory.String
		t.Subcategory = &s
	}
	return t, nil
}

func scanCategory(row pgx.Row) (Category, error) {
	var (
		id           pgtype.UUID
		name         string
		mainCategory string
		categoryType pgtype.Text
		createdAt    pgtype.Timestamp
		updatedAt    pgtype.Timestamp
	)
	if err := row.Scan(&id, &name, &mainCategory, &categoryType, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, err
		}
		return Category{}, fmt.Errorf("failed to scan category: %w", err)
	}

	c := Category{
		ID:           uuid.UUID(id.Bytes).String(),
		Name:         name,
		MainCategory: mainCategory,
		CreatedAt:    createdAt.Time,
		UpdatedAt:    updatedAt.Time,
	}
	if categoryType.Valid {
		s := categoryType.String
		c.CategoryType = &s
	}
	return c, nil
}

// numericFromFloat converts an amount to pgtype.Numeric at two decimal
// places, the precision the amount column carries.
func numericFromFloat(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', 2, 64)); err != nil {
		return n, fmt.Errorf("failed to convert amount to numeric: %w", err)
	}
	return n, nil
}

func textParam(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func categoryParam(id *string) pgtype.UUID {
	if id == nil || *id == "" {
		return pgtype.UUID{}
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}
}
