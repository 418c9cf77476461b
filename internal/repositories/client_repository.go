package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clientapi/internal/models"
)

// sortColumns maps the sort fields accepted from callers to table columns.
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"cpf":        "cpf",
	"income":     "income",
	"birthDate":  "birth_date",
	"birth_date": "birth_date",
	"status":     "status",
}

// IsSortable reports whether field can be used in PageRequest.Sort.
func IsSortable(field string) bool {
	_, ok := sortColumns[field]
	return ok
}

const clientColumns = `id, name, cpf, income, birth_date, status`

type ClientRepository struct {
	db     *sql.DB
	driver string
}

func NewClientRepository(db *sql.DB, driver string) *ClientRepository {
	return &ClientRepository{db: db, driver: driver}
}

// FindByID returns nil, nil when no client has the given id.
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*models.Client, error) {
	q := rebind(r.driver, `SELECT `+clientColumns+` FROM clients WHERE id = $1`)

	c, err := scanClient(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client %d: %w", id, err)
	}
	return c, nil
}

func (r *ClientRepository) FindAll(ctx context.Context, req models.PageRequest) (models.Page[models.Client], error) {
	return r.page(ctx, req, "", nil)
}

// FindByIncome pages through clients whose income is at or above threshold.
func (r *ClientRepository) FindByIncome(ctx context.Context, threshold float64, req models.PageRequest) (models.Page[models.Client], error) {
	return r.page(ctx, req, `WHERE income >= $1`, []any{threshold})
}

// Save inserts c when it has no id yet and updates it otherwise.
func (r *ClientRepository) Save(ctx context.Context, c *models.Client) (*models.Client, error) {
	if c.ID == 0 {
		return r.insert(ctx, c)
	}
	return r.update(ctx, c)
}

func (r *ClientRepository) DeleteByID(ctx context.Context, id int64) error {
	q := rebind(r.driver, `DELETE FROM clients WHERE id = $1`)

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored clients.
func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

func (r *ClientRepository) insert(ctx context.Context, c *models.Client) (*models.Client, error) {
	q := rebind(r.driver, `
                INSERT INTO clients (name, cpf, income, birth_date, status)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id
        `)
	out := *c
	if err := r.db.QueryRowContext(ctx, q, c.Name, c.CPF, c.Income, c.BirthDate.UTC(), c.Status).Scan(&out.ID); err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	out.BirthDate = out.BirthDate.UTC()
	return &out, nil
}

func (r *ClientRepository) update(ctx context.Context, c *models.Client) (*models.Client, error) {
	q := rebind(r.driver, `
                UPDATE clients
                SET name=$1, cpf=$2, income=$3, birth_date=$4, status=$5
                WHERE id=$6
        `)
	res, err := r.db.ExecContext(ctx, q, c.Name, c.CPF, c.Income, c.BirthDate.UTC(), c.Status, c.ID)
	if err != nil {
		return nil, fmt.Errorf("update client %d: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update client %d: %w", c.ID, err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	out := *c
	out.BirthDate = out.BirthDate.UTC()
	return &out, nil
}

func (r *ClientRepository) page(ctx context.Context, req models.PageRequest, where string, args []any) (models.Page[models.Client], error) {
	orderBy, err := orderClause(req.Sort)
	if err != nil {
		return models.Page[models.Client]{}, err
	}

	var total int64
	countQ := rebind(r.driver, `SELECT COUNT(*) FROM clients `+where)
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return models.Page[models.Client]{}, fmt.Errorf("count clients: %w", err)
	}

	n := len(args)
	listQ := rebind(r.driver, fmt.Sprintf(
		`SELECT %s FROM clients %s %s LIMIT $%d OFFSET $%d`,
		clientColumns, where, orderBy, n+1, n+2,
	))
	rows, err := r.db.QueryContext(ctx, listQ, append(args, req.Size, req.Offset())...)
	if err != nil {
		return models.Page[models.Client]{}, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	content := make([]models.Client, 0, req.Size)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return models.Page[models.Client]{}, fmt.Errorf("scan client: %w", err)
		}
		content = append(content, *c)
	}
	if err := rows.Err(); err != nil {
		return models.Page[models.Client]{}, fmt.Errorf("list clients: %w", err)
	}
	return models.NewPage(content, req, total), nil
}

// orderClause always ends with id so that pages stay stable across requests.
func orderClause(s models.Sort) (string, error) {
	if s.Field == "" {
		return "ORDER BY id ASC", nil
	}
	col, ok := sortColumns[s.Field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s.Field)
	}
	dir := models.Asc
	if s.Direction == models.Desc {
		dir = models.Desc
	}
	if col == "id" {
		return fmt.Sprintf("ORDER BY id %s", dir), nil
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", col, dir), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*models.Client, error) {
	var c models.Client
	if err := row.Scan(&c.ID, &c.Name, &c.CPF, &c.Income, &c.BirthDate, &c.Status); err != nil {
		return nil, err
	}
	c.BirthDate = c.BirthDate.UTC()
	return &c, nil
}
