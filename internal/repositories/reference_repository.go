package repositories

import (
	"context"
	"fmt"
	"time"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/pkg/database"
	"realestate-listings/pkg/metrics"

	"github.com/jmoiron/sqlx"
)

type referenceRepository struct {
	db *sqlx.DB
}

func NewReferenceRepository(db *database.Database) ReferenceRepository {
	return &referenceRepository{db: db.DB}
}

func (r *referenceRepository) ListCities(ctx context.Context) (cities []models.City, err error) {
	defer observe("list", "cities", time.Now(), &err)
	cities = []models.City{}
	if err := r.db.SelectContext(ctx, &cities, "SELECT id, name, name_ar FROM cities ORDER BY name, id"); err != nil {
		return nil, unavailable("list cities", err)
	}
	return cities, nil
}

func (r *referenceRepository) ListDistricts(ctx context.Context) (districts []models.District, err error) {
	defer observe("list", "districts", time.Now(), &err)
	districts = []models.District{}
	if err := r.db.SelectContext(ctx, &districts,
		"SELECT id, city_id, name, name_ar FROM districts ORDER BY city_id, name, id"); err != nil {
		return nil, unavailable("list districts", err)
	}
	return districts, nil
}

func (r *referenceRepository) ListAmenities(ctx context.Context) (amenities []models.Amenity, err error) {
	defer observe("list", "amenities", time.Now(), &err)
	amenities = []models.Amenity{}
	if err := r.db.SelectContext(ctx, &amenities, "SELECT id, name, name_ar FROM amenities ORDER BY name, id"); err != nil {
		return nil, unavailable("list amenities", err)
	}
	return amenities, nil
}

func (r *referenceRepository) SaveCity(ctx context.Context, city *models.City) (err error) {
	defer observe("save", "cities", time.Now(), &err)
	if city.ID == 0 {
		city.ID, err = r.insert(ctx, "INSERT INTO cities (name, name_ar) VALUES (:name, :name_ar)", city)
		return err
	}
	return r.update(ctx, "city", city.ID, "UPDATE cities SET name = :name, name_ar = :name_ar WHERE id = :id", city)
}

func (r *referenceRepository) SaveDistrict(ctx context.Context, district *models.District) (err error) {
	defer observe("save", "districts", time.Now(), &err)
	if district.ID == 0 {
		district.ID, err = r.insert(ctx,
			"INSERT INTO districts (city_id, name, name_ar) VALUES (:city_id, :name, :name_ar)", district)
		return err
	}
	return r.update(ctx, "district", district.ID,
		"UPDATE districts SET city_id = :city_id, name = :name, name_ar = :name_ar WHERE id = :id", district)
}

func (r *referenceRepository) SaveAmenity(ctx context.Context, amenity *models.Amenity) (err error) {
	defer observe("save", "amenities", time.Now(), &err)
	if amenity.ID == 0 {
		amenity.ID, err = r.insert(ctx, "INSERT INTO amenities (name, name_ar) VALUES (:name, :name_ar)", amenity)
		return err
	}
	return r.update(ctx, "amenity", amenity.ID,
		"UPDATE amenities SET name = :name, name_ar = :name_ar WHERE id = :id", amenity)
}

var referenceTables = map[models.ReferenceKind]string{
	models.ReferenceCities:    "cities",
	models.ReferenceDistricts: "districts",
	models.ReferenceAmenities: "amenities",
}

func (r *referenceRepository) DeleteReference(ctx context.Context, kind models.ReferenceKind, id int64) (err error) {
	table, ok := referenceTables[kind]
	if !ok {
		return errors.NewValidationError("kind", fmt.Sprintf("unknown reference kind %q", kind))
	}
	defer observe("delete", table, time.Now(), &err)

	res, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return unavailable("delete "+string(kind), err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound(string(kind), id)
	}
	return nil
}

func (r *referenceRepository) insert(ctx context.Context, query string, arg any) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, unavailable("insert reference", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, unavailable("insert reference", err)
	}
	return id, nil
}

func (r *referenceRepository) update(ctx context.Context, resource string, id int64, query string, arg any) error {
	res, err := r.db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return unavailable("update "+resource, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound(resource, id)
	}
	return nil
}

// observe is deferred with a pointer to the named error result.
func observe(operation, table string, start time.Time, err *error) {
	metrics.ObserveDB(operation, table, start, ignoreNotFound(*err))
}
