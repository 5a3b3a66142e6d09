package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

func (m *MemoryStore) ListCategories(_ context.Context) ([]*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryName < out[j].CategoryName })
	return out, nil
}

func (m *MemoryStore) GetCategory(_ context.Context, categoryID string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.categories[categoryID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MemoryStore) CreateCategory(_ context.Context, c *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.categories {
		if e.CategoryName == c.CategoryName {
			return ErrConflict
		}
	}
	if c.CategoryID == "" {
		c.CategoryID = uuid.NewString()
	}
	cp := *c
	m.categories[c.CategoryID] = &cp
	return nil
}

func (m *MemoryStore) UpdateCategory(_ context.Context, c *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[c.CategoryID]; !ok {
		return ErrNotFound
	}
	for id, e := range m.categories {
		if id != c.CategoryID && e.CategoryName == c.CategoryName {
			return ErrConflict
		}
	}
	cp := *c
	m.categories[c.CategoryID] = &cp
	return nil
}

func (m *MemoryStore) DeleteCategory(_ context.Context, categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[categoryID]; !ok {
		return ErrNotFound
	}
	for _, k := range m.kinds {
		if k.CategoryID == categoryID {
			return ErrConflict
		}
	}
	delete(m.categories, categoryID)
	return nil
}

func (m *MemoryStore) ListObjectKinds(_ context.Context, categoryID string) ([]*domain.ObjectKind, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.ObjectKind
	for _, k := range m.kinds {
		if categoryID != "" && k.CategoryID != categoryID {
			continue
		}
		c := *k
		if cat := m.categories[k.CategoryID]; cat != nil {
			c.CategoryName = cat.CategoryName
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].KindName < out[j].KindName })
	return out, nil
}

func (m *MemoryStore) GetObjectKind(_ context.Context, kindID string) (*domain.ObjectKind, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, ok := m.kinds[kindID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *k
	if cat := m.categories[k.CategoryID]; cat != nil {
		c.CategoryName = cat.CategoryName
	}
	return &c, nil
}

func (m *MemoryStore) CreateObjectKind(_ context.Context, k *domain.ObjectKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[k.CategoryID]; !ok {
		return ErrConflict
	}
	for _, e := range m.kinds {
		if e.KindName == k.KindName {
			return ErrConflict
		}
	}
	if k.KindID == "" {
		k.KindID = uuid.NewString()
	}
	c := *k
	m.kinds[k.KindID] = &c
	return nil
}

func (m *MemoryStore) UpdateObjectKind(_ context.Context, k *domain.ObjectKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.kinds[k.KindID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.categories[k.CategoryID]; !ok {
		return ErrConflict
	}
	for id, e := range m.kinds {
		if id != k.KindID && e.KindName == k.KindName {
			return ErrConflict
		}
	}
	c := *k
	m.kinds[k.KindID] = &c
	return nil
}

func (m *MemoryStore) DeleteObjectKind(_ context.Context, kindID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.kinds[kindID]; !ok {
		return ErrNotFound
	}
	for _, v := range m.variants {
		if v.KindID == kindID {
			return ErrConflict
		}
	}
	delete(m.kinds, kindID)
	return nil
}

func (m *MemoryStore) ListObjectVariants(_ context.Context, kindID, categoryID string) ([]*domain.ObjectVariant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.ObjectVariant
	for _, v := range m.variants {
		if kindID != "" && v.KindID != kindID {
			continue
		}
		k := m.kinds[v.KindID]
		if categoryID != "" && (k == nil || k.CategoryID != categoryID) {
			continue
		}
		c := *v
		if k != nil {
			c.KindName = k.KindName
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].KindName != out[j].KindName {
			return out[i].KindName < out[j].KindName
		}
		if out[i].Brand != out[j].Brand {
			return out[i].Brand < out[j].Brand
		}
		return out[i].Material < out[j].Material
	})
	return out, nil
}

func (m *MemoryStore) GetObjectVariant(_ context.Context, variantID string) (*domain.ObjectVariant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.variants[variantID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *v
	if k := m.kinds[v.KindID]; k != nil {
		c.KindName = k.KindName
	}
	return &c, nil
}

func (m *MemoryStore) CreateObjectVariant(_ context.Context, v *domain.ObjectVariant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.kinds[v.KindID]; !ok {
		return ErrConflict
	}
	for _, e := range m.variants {
		if e.KindID == v.KindID && e.Brand == v.Brand && e.Material == v.Material {
			return ErrConflict
		}
	}
	if v.VariantID == "" {
		v.VariantID = uuid.NewString()
	}
	c := *v
	m.variants[v.VariantID] = &c
	return nil
}

func (m *MemoryStore) UpdateObjectVariant(_ context.Context, v *domain.ObjectVariant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.variants[v.VariantID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.kinds[v.KindID]; !ok {
		return ErrConflict
	}
	for id, e := range m.variants {
		if id != v.VariantID && e.KindID == v.KindID && e.Brand == v.Brand && e.Material == v.Material {
			return ErrConflict
		}
	}
	c := *v
	m.variants[v.VariantID] = &c
	return nil
}

func (m *MemoryStore) DeleteObjectVariant(_ context.Context, variantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.variants[variantID]; !ok {
		return ErrNotFound
	}
	for _, it := range m.items {
		if it.VariantID.Valid && it.VariantID.String == variantID {
			return ErrConflict
		}
	}
	for id, t := range m.typicals {
		if t.VariantID == variantID {
			delete(m.typicals, id)
		}
	}
	delete(m.variants, variantID)
	return nil
}

func (m *MemoryStore) ListTypicalObjects(_ context.Context, roomTypeID string) ([]*domain.TypicalObject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.TypicalObject
	for _, t := range m.typicals {
		if t.RoomTypeID != roomTypeID || !t.Active {
			continue
		}
		c := *t
		if v := m.variants[t.VariantID]; v != nil {
			c.Brand, c.Material = v.Brand, v.Material
			if k := m.kinds[v.KindID]; k != nil {
				c.KindID, c.KindName = k.KindID, k.KindName
				if cat := m.categories[k.CategoryID]; cat != nil {
					c.CategoryID, c.CategoryName = cat.CategoryID, cat.CategoryName
				}
			}
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].KindName < out[j].KindName
	})
	return out, nil
}

func (m *MemoryStore) SeedTypicalObjects(_ context.Context, roomTypeID string, entries []SeedEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roomTypes[roomTypeID]; !ok {
		return ErrNotFound
	}
	order := 0
	for _, t := range m.typicals {
		if t.RoomTypeID == roomTypeID && t.SortOrder >= order {
			order = t.SortOrder + 1
		}
	}
	for _, e := range entries {
		catID := ""
		for _, c := range m.categories {
			if c.CategoryName == e.CategoryName {
				catID = c.CategoryID
				break
			}
		}
		if catID == "" {
			catID = uuid.NewString()
			m.categories[catID] = &domain.Category{CategoryID: catID, CategoryName: e.CategoryName}
		}
		// kind names are global; an existing kind keeps whatever category
		// it already has
		kindID := ""
		for _, k := range m.kinds {
			if k.KindName == e.KindName {
				kindID = k.KindID
				break
			}
		}
		if kindID == "" {
			kindID = uuid.NewString()
			m.kinds[kindID] = &domain.ObjectKind{KindID: kindID, KindName: e.KindName, CategoryID: catID}
		}
		variantID := ""
		for _, v := range m.variants {
			if v.KindID == kindID && v.Brand == "" && v.Material == "" {
				variantID = v.VariantID
				break
			}
		}
		if variantID == "" {
			variantID = uuid.NewString()
			m.variants[variantID] = &domain.ObjectVariant{VariantID: variantID, KindID: kindID}
		}
		linked := false
		for _, t := range m.typicals {
			if t.RoomTypeID == roomTypeID && t.VariantID == variantID {
				linked = true
				break
			}
		}
		if linked {
			continue
		}
		id := uuid.NewString()
		m.typicals[id] = &domain.TypicalObject{
			TypicalID:  id,
			RoomTypeID: roomTypeID,
			VariantID:  variantID,
			Active:     true,
			SortOrder:  order,
		}
		order++
	}
	return nil
}

func (m *MemoryStore) ReplaceTypicalObjects(_ context.Context, roomTypeID string, variantIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roomTypes[roomTypeID]; !ok {
		return ErrNotFound
	}
	for _, vid := range variantIDs {
		if _, ok := m.variants[vid]; !ok {
			return ErrConflict
		}
	}
	for id, t := range m.typicals {
		if t.RoomTypeID == roomTypeID {
			delete(m.typicals, id)
		}
	}
	for i, vid := range variantIDs {
		id := uuid.NewString()
		m.typicals[id] = &domain.TypicalObject{
			TypicalID:  id,
			RoomTypeID: roomTypeID,
			VariantID:  vid,
			Active:     true,
			SortOrder:  i,
		}
	}
	return nil
}
