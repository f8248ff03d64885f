package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"blogpilot/internal/domain"
)

const customerColumns = `id, name, phone, email, business_type, keywords, tone, specialty,
	target_audience, brand_concept, main_services, price_range, location_info,
	preferred_expressions, avoided_expressions, sample_content, confirm_token,
	is_active, created_at, updated_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) domain.CustomerRepository {
	return &customerRepository{
		DB: db,
	}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `
		INSERT INTO customers (name, phone, email, business_type, keywords, tone, specialty,
			target_audience, brand_concept, main_services, price_range, location_info,
			preferred_expressions, avoided_expressions, sample_content, confirm_token,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Name, c.Phone, nullString(c.Email), c.BusinessType, pq.Array(c.Keywords), c.Tone,
		c.Specialty, c.TargetAudience, c.BrandConcept, pq.Array(c.MainServices), c.PriceRange,
		c.LocationInfo, pq.Array(c.PreferredExpressions), pq.Array(c.AvoidedExpressions),
		nullString(c.SampleContent), c.ConfirmToken, c.IsActive, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)
	return r.queryOne(ctx, query, id)
}

func (r *customerRepository) GetByConfirmToken(ctx context.Context, token string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE confirm_token = $1`, customerColumns)
	return r.queryOne(ctx, query, token)
}

func (r *customerRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) ListActive(ctx context.Context) ([]*domain.Customer, error) {
	active := true
	return r.List(ctx, domain.CustomerFilter{Active: &active})
}

func (r *customerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	builder := psql.Select(customerColumns).From("customers").OrderBy("created_at ASC")
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.Active})
	}
	if filter.Query != "" {
		builder = builder.Where(sq.ILike{"name": "%" + filter.Query + "%"})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, id string, update domain.CustomerUpdate) (*domain.Customer, error) {
	builder := psql.Update("customers").Set("updated_at", sq.Expr("NOW()"))
	changed := false

	setString := func(column string, v *string) {
		if v != nil {
			builder = builder.Set(column, *v)
			changed = true
		}
	}
	setArray := func(column string, v *[]string) {
		if v != nil {
			builder = builder.Set(column, pq.Array(*v))
			changed = true
		}
	}

	setString("name", update.Name)
	setString("phone", update.Phone)
	setString("email", update.Email)
	setString("business_type", update.BusinessType)
	setArray("keywords", update.Keywords)
	setString("tone", update.Tone)
	setString("specialty", update.Specialty)
	setString("target_audience", update.TargetAudience)
	setString("brand_concept", update.BrandConcept)
	setArray("main_services", update.MainServices)
	setString("price_range", update.PriceRange)
	setString("location_info", update.LocationInfo)
	setArray("preferred_expressions", update.PreferredExpressions)
	setArray("avoided_expressions", update.AvoidedExpressions)
	setString("sample_content", update.SampleContent)

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + customerColumns).ToSql()
	if err != nil {
		return nil, err
	}
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE customers SET is_active = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, active)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *customerRepository) UpdateConfirmToken(ctx context.Context, id, token string) error {
	query := `UPDATE customers SET confirm_token = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, token)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	var emailNull, sampleNull sql.NullString
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &emailNull, &c.BusinessType, pq.Array(&c.Keywords), &c.Tone,
		&c.Specialty, &c.TargetAudience, &c.BrandConcept, pq.Array(&c.MainServices), &c.PriceRange,
		&c.LocationInfo, pq.Array(&c.PreferredExpressions), pq.Array(&c.AvoidedExpressions),
		&sampleNull, &c.ConfirmToken, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if emailNull.Valid {
		c.Email = emailNull.String
	}
	if sampleNull.Valid {
		c.SampleContent = sampleNull.String
	}
	return c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
