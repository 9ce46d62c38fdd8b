package repositories

import (
	"strings"

	"realestate-listings/internal/models"

	"github.com/jmoiron/sqlx"
)

const propertyColumns = `p.id, p.title, p.description, p.address, p.type, p.listing_type,
	p.price, p.rooms, p.bathrooms, p.area, p.city_id, p.district_id,
	p.sort_order, p.published, p.search_text, p.created_at, p.updated_at`

// likeEscaper escapes LIKE wildcards using '!' as the escape character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// buildWhere turns a filter into a WHERE clause. The slice placeholder for
// amenities is expanded later by sqlx.In.
func buildWhere(f models.SearchFilter) (string, []any) {
	conds := []string{"p.published = 1"}
	var args []any

	if f.Type != "" {
		conds = append(conds, "p.type = ?")
		args = append(args, string(f.Type))
	}
	if f.ListingType != "" {
		conds = append(conds, "p.listing_type = ?")
		args = append(args, string(f.ListingType))
	}
	// comparisons against NULL are never true, so null prices drop out
	// exactly when a bound is present
	if f.MinPrice != nil {
		conds = append(conds, "p.price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, "p.price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.MinRooms != nil {
		conds = append(conds, "p.rooms >= ?")
		args = append(args, *f.MinRooms)
	}
	if f.MinBathrooms != nil {
		conds = append(conds, "p.bathrooms >= ?")
		args = append(args, *f.MinBathrooms)
	}
	if f.CityID != nil {
		conds = append(conds, "p.city_id = ?")
		args = append(args, *f.CityID)
	}
	if f.DistrictID != nil {
		conds = append(conds, "p.district_id = ?")
		args = append(args, *f.DistrictID)
	}
	for _, tok := range f.Tokens() {
		conds = append(conds, "p.search_text LIKE ? ESCAPE '!'")
		args = append(args, "%"+likeEscaper.Replace(tok)+"%")
	}
	if len(f.AmenityIDs) > 0 {
		conds = append(conds, `p.id IN (
		SELECT pa.property_id FROM property_amenities pa
		WHERE pa.amenity_id IN (?)
		GROUP BY pa.property_id
		HAVING COUNT(DISTINCT pa.amenity_id) = ?)`)
		args = append(args, f.AmenityIDs, len(f.AmenityIDs))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(sort models.SortMode) string {
	switch sort {
	case models.SortOldest:
		return "ORDER BY p.created_at ASC, p.id ASC"
	case models.SortPriceAsc:
		return "ORDER BY p.price IS NULL, p.price ASC, p.id ASC"
	case models.SortPriceDesc:
		return "ORDER BY p.price IS NULL, p.price DESC, p.id ASC"
	case models.SortFeatured:
		return "ORDER BY p.sort_order ASC, p.id ASC"
	default:
		return "ORDER BY p.created_at DESC, p.id ASC"
	}
}

// buildSearchQuery returns the page query for a normalized filter.
func buildSearchQuery(f models.SearchFilter) (string, []any, error) {
	where, args := buildWhere(f)
	query := "SELECT " + propertyColumns + " FROM properties p " + where + " " + orderBy(f.Sort) + " LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset())
	return sqlx.In(query, args...)
}

// buildCountQuery returns the total count query for a filter.
func buildCountQuery(f models.SearchFilter) (string, []any, error) {
	where, args := buildWhere(f)
	return sqlx.In("SELECT COUNT(*) FROM properties p "+where, args...)
}
