package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const productColumns = `p.id, p.name, p.category_id, c.slug, p.sub_category, p.brand, p.price, p.currency,
       p.short_description, p.long_description, p.sku, p.stock, p.is_featured, p.is_active,
       p.processor, p.ram, p.storage, p.screen_size, p.created_at, p.updated_at`

const productFrom = ` FROM products p JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CategorySlug, &p.SubCategory, &p.Brand, &p.Price, &p.Currency,
		&p.ShortDescription, &p.LongDescription, &p.SKU, &p.Stock, &p.IsFeatured, &p.IsActive,
		&p.Processor, &p.RAM, &p.Storage, &p.ScreenSize, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()
	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *catalogRepository) GetActiveProduct(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.id=$1 AND p.is_active`
	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// productWhere renders the shared filter clause for listing and counting.
func productWhere(filter model.ProductFilter) (string, []any) {
	conds := []string{"p.is_active"}
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategorySlug != "" {
		conds = append(conds, "c.slug = "+next(filter.CategorySlug))
	}
	lo, hi := filter.PriceBand.Bounds()
	if lo != nil {
		conds = append(conds, "p.price >= "+next(*lo))
	}
	if hi != nil {
		conds = append(conds, "p.price <= "+next(*hi))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		ph := next(likePattern(q))
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %[1]s OR p.short_description ILIKE %[1]s OR p.brand ILIKE %[1]s)", ph))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func productOrder(sort model.ProductSort) string {
	switch sort {
	case model.SortByPriceLow:
		return " ORDER BY p.price ASC, p.name ASC"
	case model.SortByPriceHigh:
		return " ORDER BY p.price DESC, p.name ASC"
	case model.SortByFeatured:
		return " ORDER BY p.is_featured DESC, p.name ASC"
	default:
		return " ORDER BY p.name ASC"
	}
}

func (r *catalogRepository) CountProducts(ctx context.Context, filter model.ProductFilter) (int, error) {
	where, args := productWhere(filter)
	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*)`+productFrom+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	where, args := productWhere(filter)
	query := `SELECT ` + productColumns + productFrom + where + productOrder(filter.Sort)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	return r.queryProducts(ctx, query, args...)
}

func (r *catalogRepository) SearchProducts(ctx context.Context, query string, limit int) ([]model.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	sql := `SELECT ` + productColumns + productFrom + `
            WHERE p.is_active AND (p.name ILIKE $1 OR p.short_description ILIKE $1 OR p.brand ILIKE $1)
            ORDER BY p.created_at DESC
            LIMIT $2`
	return r.queryProducts(ctx, sql, likePattern(q), limit)
}

func (r *catalogRepository) FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
              WHERE p.is_active AND p.is_featured
              ORDER BY p.created_at DESC
              LIMIT $1`
	return r.queryProducts(ctx, query, limit)
}

func (r *catalogRepository) RelatedProducts(ctx context.Context, product *model.Product, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
              WHERE p.is_active AND p.category_id=$1 AND p.id <> $2
              ORDER BY p.created_at DESC
              LIMIT $3`
	return r.queryProducts(ctx, query, product.CategoryID, product.ID, limit)
}

func (r *catalogRepository) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
              WHERE p.is_active AND p.stock <= $1
              ORDER BY p.stock ASC, p.name ASC`
	return r.queryProducts(ctx, query, threshold)
}

func (r *catalogRepository) Categories(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug, description, created_at FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) Services(ctx context.Context, featuredOnly bool, limit int) ([]model.Service, error) {
	query := `SELECT id, name, category, description, duration_estimate, price_range, availability, icon,
                     is_featured, is_active, created_at
              FROM services
              WHERE is_active AND (is_featured OR NOT $1)
              ORDER BY name`
	args := []any{featuredOnly}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.DurationEstimate, &s.PriceRange,
			&s.Availability, &s.Icon, &s.IsFeatured, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
