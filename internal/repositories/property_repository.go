package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/pkg/database"
	"realestate-listings/pkg/metrics"

	"github.com/jmoiron/sqlx"
)

const propertiesTable = "properties"

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{db: db.DB}
}

// unavailable marks a data source failure so the HTTP layer answers 503.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errors.ErrUnavailable, err)
}

func (r *propertyRepository) FindByID(ctx context.Context, id int64) (property *models.Property, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("find_by_id", propertiesTable, start, ignoreNotFound(err)) }()

	var p models.Property
	query := "SELECT " + propertyColumns + " FROM properties p WHERE p.id = ?"
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("property", id)
		}
		return nil, unavailable("find property", err)
	}

	items := []models.Property{p}
	if err := r.loadAmenities(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (r *propertyRepository) FindAll(ctx context.Context) (items []models.Property, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("find_all", propertiesTable, start, err) }()

	items = []models.Property{}
	if err := r.db.SelectContext(ctx, &items, "SELECT "+propertyColumns+" FROM properties p ORDER BY p.id"); err != nil {
		return nil, unavailable("list properties", err)
	}
	if err := r.loadAmenities(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *propertyRepository) Search(ctx context.Context, filter models.SearchFilter) (items []models.Property, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("search", propertiesTable, start, err) }()

	query, args, err := buildSearchQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	items = []models.Property{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, unavailable("search properties", err)
	}
	if err := r.loadAmenities(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *propertyRepository) Count(ctx context.Context, filter models.SearchFilter) (total int64, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("count", propertiesTable, start, err) }()

	query, args, err := buildCountQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(query), args...); err != nil {
		return 0, unavailable("count properties", err)
	}
	return total, nil
}

func (r *propertyRepository) loadAmenities(ctx context.Context, items []models.Property) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	index := make(map[int64]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].AmenityIDs = []int64{}
	}

	query, args, err := sqlx.In(
		"SELECT property_id, amenity_id FROM property_amenities WHERE property_id IN (?) ORDER BY property_id, amenity_id", ids)
	if err != nil {
		return fmt.Errorf("build amenity query: %w", err)
	}

	var rows []struct {
		PropertyID int64 `db:"property_id"`
		AmenityID  int64 `db:"amenity_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return unavailable("load amenities", err)
	}
	for _, row := range rows {
		i := index[row.PropertyID]
		items[i].AmenityIDs = append(items[i].AmenityIDs, row.AmenityID)
	}
	return nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("create", propertiesTable, start, err) }()

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO properties (title, description, address, type, listing_type, price, rooms,
				bathrooms, area, city_id, district_id, sort_order, published, search_text, created_at, updated_at)
			VALUES (:title, :description, :address, :type, :listing_type, :price, :rooms,
				:bathrooms, :area, :city_id, :district_id, :sort_order, :published, :search_text, :created_at, :updated_at)`,
			property)
		if err != nil {
			return unavailable("create property", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return unavailable("create property", err)
		}
		property.ID = id
		return replaceAmenities(ctx, tx, id, property.AmenityIDs)
	})
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("update", propertiesTable, start, ignoreNotFound(err)) }()

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, `
			UPDATE properties SET title = :title, description = :description, address = :address,
				type = :type, listing_type = :listing_type, price = :price, rooms = :rooms,
				bathrooms = :bathrooms, area = :area, city_id = :city_id, district_id = :district_id,
				sort_order = :sort_order, published = :published, search_text = :search_text,
				updated_at = :updated_at
			WHERE id = :id`, property)
		if err != nil {
			return unavailable("update property", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return errors.NotFound("property", property.ID)
		}
		return replaceAmenities(ctx, tx, property.ID, property.AmenityIDs)
	})
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("delete", propertiesTable, start, ignoreNotFound(err)) }()

	res, err := r.db.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return unavailable("delete property", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound("property", id)
	}
	return nil
}

func (r *propertyRepository) Reorder(ctx context.Context, orders []models.PropertyOrder) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDB("reorder", propertiesTable, start, ignoreNotFound(err)) }()

	now := time.Now().UTC()
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, o := range orders {
			res, err := tx.ExecContext(ctx,
				"UPDATE properties SET sort_order = ?, updated_at = ? WHERE id = ?", o.SortOrder, now, o.ID)
			if err != nil {
				return unavailable("reorder properties", err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return errors.NotFound("property", o.ID)
			}
		}
		return nil
	})
}

func replaceAmenities(ctx context.Context, tx *sqlx.Tx, propertyID int64, amenityIDs []int64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM property_amenities WHERE property_id = ?", propertyID); err != nil {
		return unavailable("clear amenities", err)
	}
	for _, amenityID := range amenityIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO property_amenities (property_id, amenity_id) VALUES (?, ?)", propertyID, amenityID); err != nil {
			return unavailable("save amenities", err)
		}
	}
	return nil
}

func (r *propertyRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return withTx(ctx, r.db, fn)
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return unavailable("begin transaction", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return unavailable("commit transaction", err)
	}
	return nil
}

// ignoreNotFound keeps missing rows out of the error metrics.
func ignoreNotFound(err error) error {
	if errors.IsNotFound(err) {
		return nil
	}
	return err
}
