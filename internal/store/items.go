package store

import (
	"slices"

	"github.com/jonathan/resume-studio/internal/sections"
	"github.com/jonathan/resume-studio/internal/types"
)

// defaultFieldLabel is the label of a freshly added custom field.
const defaultFieldLabel = "New Field"

// AddItem appends an item whose shape follows the section's type.
func (s *Store) AddItem(sectionID string) (string, Result) {
	id := s.newID()
	res := s.editSection(sectionID, true, func(sec *types.Section) Result {
		sec.Items = append(sec.Items, sections.NewItem(sec.Type, id))
		return Applied
	})
	if res != Applied {
		return "", res
	}
	return id, Applied
}

// RemoveItem deletes an item from a section.
func (s *Store) RemoveItem(sectionID, itemID string) Result {
	return s.editSection(sectionID, false, func(sec *types.Section) Result {
		ii := itemIndex(sec.Items, itemID)
		if ii < 0 {
			return NotFound
		}
		sec.Items = slices.Delete(sec.Items, ii, ii+1)
		return Applied
	})
}

// DuplicateItem inserts a deep copy of an item, with a fresh id, right after it.
func (s *Store) DuplicateItem(sectionID, itemID string) (string, Result) {
	id := s.newID()
	res := s.editSection(sectionID, true, func(sec *types.Section) Result {
		ii := itemIndex(sec.Items, itemID)
		if ii < 0 {
			return NotFound
		}
		dup := sec.Items[ii].Clone()
		dup.ID = id
		sec.Items = slices.Insert(sec.Items, ii+1, dup)
		return Applied
	})
	if res != Applied {
		return "", res
	}
	return id, Applied
}

// UpdateItem merges patch into an item.
func (s *Store) UpdateItem(sectionID, itemID string, patch ItemPatch) Result {
	return s.editItem(sectionID, itemID, true, func(it *types.Item) Result {
		patch.apply(it)
		return Applied
	})
}

// ReorderItems moves the item at from so that it ends up at index to.
func (s *Store) ReorderItems(sectionID string, from, to int) Result {
	return s.editSection(sectionID, false, func(sec *types.Section) Result {
		moved, ok := move(sec.Items, from, to)
		if !ok {
			return NotFound
		}
		sec.Items = moved
		return Applied
	})
}

// AddBullet appends a bullet, creating the bullet list if the item has none.
func (s *Store) AddBullet(sectionID, itemID, text string) Result {
	return s.editItem(sectionID, itemID, true, func(it *types.Item) Result {
		if it.Bullets == nil {
			it.Bullets = []string{}
		}
		it.Bullets = append(it.Bullets, text)
		return Applied
	})
}

// RemoveBullet deletes the bullet at index.
func (s *Store) RemoveBullet(sectionID, itemID string, index int) Result {
	return s.editItem(sectionID, itemID, false, func(it *types.Item) Result {
		if index < 0 || index >= len(it.Bullets) {
			return NotFound
		}
		it.Bullets = slices.Delete(it.Bullets, index, index+1)
		return Applied
	})
}

// UpdateBullet replaces the text of the bullet at index.
func (s *Store) UpdateBullet(sectionID, itemID string, index int, text string) Result {
	return s.editItem(sectionID, itemID, true, func(it *types.Item) Result {
		if index < 0 || index >= len(it.Bullets) {
			return NotFound
		}
		it.Bullets[index] = text
		return Applied
	})
}

// ReorderBullets moves the bullet at from so that it ends up at index to.
func (s *Store) ReorderBullets(sectionID, itemID string, from, to int) Result {
	return s.editItem(sectionID, itemID, false, func(it *types.Item) Result {
		moved, ok := move(it.Bullets, from, to)
		if !ok {
			return NotFound
		}
		it.Bullets = moved
		return Applied
	})
}

// AddCustomField appends a "New Field" label/value pair. Any item accepts fields;
// only custom sections display them.
func (s *Store) AddCustomField(sectionID, itemID string) (string, Result) {
	id := s.newID()
	res := s.editItem(sectionID, itemID, true, func(it *types.Item) Result {
		it.Fields = append(it.Fields, types.CustomField{ID: id, Label: defaultFieldLabel})
		return Applied
	})
	if res != Applied {
		return "", res
	}
	return id, Applied
}

// RemoveCustomField deletes a custom field. It raises the saving flag but leaves the
// version's UpdatedAt alone.
func (s *Store) RemoveCustomField(sectionID, itemID, fieldID string) Result {
	res := s.editItem(sectionID, itemID, false, func(it *types.Item) Result {
		fi := fieldIndex(it.Fields, fieldID)
		if fi < 0 {
			return NotFound
		}
		it.Fields = slices.Delete(it.Fields, fi, fi+1)
		return Applied
	})
	if res == Applied {
		s.saving.Store(true)
	}
	return res
}

// UpdateCustomField merges patch into a custom field.
func (s *Store) UpdateCustomField(sectionID, itemID, fieldID string, patch FieldPatch) Result {
	return s.editItem(sectionID, itemID, true, func(it *types.Item) Result {
		fi := fieldIndex(it.Fields, fieldID)
		if fi < 0 {
			return NotFound
		}
		patch.apply(&it.Fields[fi])
		return Applied
	})
}
