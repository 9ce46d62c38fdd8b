package repositories

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"
)

// MemoryStore keeps listings, reference data and settings in process. It
// is the "memory" data source driver and the fake used by service tests.
type MemoryStore struct {
	mu         sync.RWMutex
	properties map[int64]models.Property
	cities     map[int64]models.City
	districts  map[int64]models.District
	amenities  map[int64]models.Amenity
	settings   models.SiteSettings
	// per table, so ids match what AUTO_INCREMENT would hand out
	nextID map[string]int64
}

var (
	_ PropertyRepository  = (*MemoryStore)(nil)
	_ ReferenceRepository = (*MemoryStore)(nil)
	_ SettingsRepository  = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		properties: make(map[int64]models.Property),
		cities:     make(map[int64]models.City),
		districts:  make(map[int64]models.District),
		amenities:  make(map[int64]models.Amenity),
		settings:   models.SiteSettings{},
		nextID:     make(map[string]int64),
	}
}

func (m *MemoryStore) newID(table string) int64 {
	m.nextID[table]++
	return m.nextID[table]
}

func cloneProperty(p models.Property) models.Property {
	p.AmenityIDs = slices.Clone(p.AmenityIDs)
	if p.AmenityIDs == nil {
		p.AmenityIDs = []int64{}
	}
	return p
}

func (m *MemoryStore) FindByID(ctx context.Context, id int64) (*models.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.properties[id]
	if !ok {
		return nil, errors.NotFound("property", id)
	}
	out := cloneProperty(p)
	return &out, nil
}

func (m *MemoryStore) FindAll(ctx context.Context) ([]models.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Property, 0, len(m.properties))
	for _, p := range m.properties {
		items = append(items, cloneProperty(p))
	}
	slices.SortFunc(items, func(a, b models.Property) int { return cmp.Compare(a.ID, b.ID) })
	return items, nil
}

func (m *MemoryStore) matching(filter models.SearchFilter) []*models.Property {
	var out []*models.Property
	for id := range m.properties {
		p := m.properties[id]
		if filter.Matches(&p) {
			out = append(out, &p)
		}
	}
	return out
}

func (m *MemoryStore) Search(ctx context.Context, filter models.SearchFilter) ([]models.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.matching(filter)
	slices.SortFunc(matched, filter.Compare)

	items := []models.Property{}
	offset := filter.Offset()
	if offset < 0 || offset >= len(matched) {
		return items, nil
	}
	end := min(offset+filter.Limit, len(matched))
	for _, p := range matched[offset:end] {
		items = append(items, cloneProperty(*p))
	}
	return items, nil
}

func (m *MemoryStore) Count(ctx context.Context, filter models.SearchFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.matching(filter))), nil
}

func (m *MemoryStore) Create(ctx context.Context, property *models.Property) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	property.ID = m.newID("property")
	m.properties[property.ID] = cloneProperty(*property)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, property *models.Property) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.properties[property.ID]; !ok {
		return errors.NotFound("property", property.ID)
	}
	m.properties[property.ID] = cloneProperty(*property)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.properties[id]; !ok {
		return errors.NotFound("property", id)
	}
	delete(m.properties, id)
	return nil
}

// Reorder applies every order or none of them.
func (m *MemoryStore) Reorder(ctx context.Context, orders []models.PropertyOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range orders {
		if _, ok := m.properties[o.ID]; !ok {
			return errors.NotFound("property", o.ID)
		}
	}
	for _, o := range orders {
		p := m.properties[o.ID]
		p.SortOrder = o.SortOrder
		m.properties[o.ID] = p
	}
	return nil
}

func sortedValues[T any](src map[int64]T, less func(a, b T) int) []T {
	out := make([]T, 0, len(src))
	for _, v := range src {
		out = append(out, v)
	}
	slices.SortFunc(out, less)
	return out
}

func (m *MemoryStore) ListCities(ctx context.Context) ([]models.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedValues(m.cities, func(a, b models.City) int {
		return compareNamed(a.Name, b.Name, a.ID, b.ID)
	}), nil
}

func (m *MemoryStore) ListDistricts(ctx context.Context) ([]models.District, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedValues(m.districts, func(a, b models.District) int {
		if a.CityID != b.CityID {
			if a.CityID < b.CityID {
				return -1
			}
			return 1
		}
		return compareNamed(a.Name, b.Name, a.ID, b.ID)
	}), nil
}

func (m *MemoryStore) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedValues(m.amenities, func(a, b models.Amenity) int {
		return compareNamed(a.Name, b.Name, a.ID, b.ID)
	}), nil
}

func compareNamed(an, bn string, aid, bid int64) int {
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	case aid < bid:
		return -1
	case aid > bid:
		return 1
	}
	return 0
}

func (m *MemoryStore) SaveCity(ctx context.Context, city *models.City) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return save(m, m.cities, "city", &city.ID, *city)
}

func (m *MemoryStore) SaveDistrict(ctx context.Context, district *models.District) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cities[district.CityID]; !ok {
		return errors.NotFound("city", district.CityID)
	}
	return save(m, m.districts, "district", &district.ID, *district)
}

func (m *MemoryStore) SaveAmenity(ctx context.Context, amenity *models.Amenity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return save(m, m.amenities, "amenity", &amenity.ID, *amenity)
}

// save inserts when *id is zero, assigning a fresh id to both the stored
// copy and the caller's value.
func save[T any](m *MemoryStore, table map[int64]T, resource string, id *int64, v T) error {
	if *id == 0 {
		*id = m.newID(resource)
		table[*id] = withID(v, *id)
		return nil
	}
	if _, ok := table[*id]; !ok {
		return errors.NotFound(resource, *id)
	}
	table[*id] = v
	return nil
}

func withID[T any](v T, id int64) T {
	switch x := any(&v).(type) {
	case *models.City:
		x.ID = id
	case *models.District:
		x.ID = id
	case *models.Amenity:
		x.ID = id
	}
	return v
}

// DeleteReference mirrors the foreign keys of the SQL schema: deleting a
// city removes its districts and deleting an amenity detaches it from
// every listing.
func (m *MemoryStore) DeleteReference(ctx context.Context, kind models.ReferenceKind, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	switch kind {
	case models.ReferenceCities:
		if _, ok := m.cities[id]; !ok {
			return errors.NotFound(string(kind), id)
		}
		delete(m.cities, id)
		for did, d := range m.districts {
			if d.CityID == id {
				delete(m.districts, did)
			}
		}
	case models.ReferenceDistricts:
		if _, ok := m.districts[id]; !ok {
			return errors.NotFound(string(kind), id)
		}
		delete(m.districts, id)
	case models.ReferenceAmenities:
		if _, ok := m.amenities[id]; !ok {
			return errors.NotFound(string(kind), id)
		}
		delete(m.amenities, id)
		for pid, p := range m.properties {
			if i := slices.Index(p.AmenityIDs, id); i >= 0 {
				p.AmenityIDs = slices.Delete(slices.Clone(p.AmenityIDs), i, i+1)
				m.properties[pid] = p
			}
		}
	default:
		return errors.NewValidationError("kind", fmt.Sprintf("unknown reference kind %q", kind))
	}
	return nil
}

func (m *MemoryStore) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(models.SiteSettings, len(m.settings))
	for k, v := range m.settings {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) SaveSettings(ctx context.Context, settings models.SiteSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range settings {
		m.settings[k] = v
	}
	return nil
}
