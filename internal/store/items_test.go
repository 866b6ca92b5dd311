package store

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestAddItem_Shapes(t *testing.T) {
	tests := []struct {
		name        string
		sectionType types.SectionType
		want        string
	}{
		{
			name:        "experience keeps every position key and one blank bullet",
			sectionType: types.SectionExperience,
			want:        `{"id":"%s","company":"","organization":"","role":"","location":"","startDate":"","endDate":"","current":false,"bullets":[""]}`,
		},
		{
			name:        "skills start with an empty skill list",
			sectionType: types.SectionSkills,
			want:        `{"id":"%s","name":"","skills":[]}`,
		},
		{
			name:        "custom starts with no fields",
			sectionType: types.SectionCustom,
			want:        `{"id":"%s","title":"","fields":[]}`,
		},
		{
			name:        "training gets an empty bullet list",
			sectionType: types.SectionTraining,
			want:        `{"id":"%s","title":"","description":"","bullets":[]}`,
		},
		{
			name:        "education has no lists",
			sectionType: types.SectionEducation,
			want:        `{"id":"%s","location":"","endDate":"","institution":"","degree":"","field":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSeededStore(t)
			secID, res := s.AddSection(tt.sectionType, "")
			require.Equal(t, Applied, res)

			itemID, res := s.AddItem(secID)
			require.Equal(t, Applied, res)
			require.NotEmpty(t, itemID)

			secs := activeVersion(t, s).Document.Sections
			sec := secs[len(secs)-1]
			require.Equal(t, secID, sec.ID)
			require.Len(t, sec.Items, 1)

			got, err := json.Marshal(sec.Items[0])
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf(tt.want, itemID), string(got))
		})
	}
}

func TestAddItem_UnknownSection(t *testing.T) {
	s, _ := newSeededStore(t)
	id, res := s.AddItem("missing")
	assert.Equal(t, NotFound, res)
	assert.Empty(t, id)
}

func TestDuplicateThenRemoveItem(t *testing.T) {
	s, _ := newSeededStore(t)
	exp := sectionByType(t, s, types.SectionExperience)
	before := exp.Items

	dupID, res := s.DuplicateItem(exp.ID, exp.Items[0].ID)
	require.Equal(t, Applied, res)

	items := sectionByType(t, s, types.SectionExperience).Items
	require.Len(t, items, 2)
	assert.Equal(t, dupID, items[1].ID)
	assert.Equal(t, items[0].Bullets, items[1].Bullets)
	assert.Equal(t, items[0].Company, items[1].Company)

	require.Equal(t, Applied, s.RemoveItem(exp.ID, dupID))
	assert.Equal(t, before, sectionByType(t, s, types.SectionExperience).Items)

	assert.Equal(t, NotFound, s.RemoveItem(exp.ID, dupID))
	_, res = s.DuplicateItem(exp.ID, dupID)
	assert.Equal(t, NotFound, res)
}

func TestUpdateItem(t *testing.T) {
	s, clock := newSeededStore(t)
	edu := sectionByType(t, s, types.SectionEducation)
	clock.Advance(time.Minute)

	require.Equal(t, Applied, s.UpdateItem(edu.ID, edu.Items[0].ID, ItemPatch{
		Degree:  String("M.Sc."),
		Current: Bool(true),
		Bullets: []string{"Thesis on consensus"},
	}))

	item := sectionByType(t, s, types.SectionEducation).Items[0]
	assert.Equal(t, "M.Sc.", item.Degree)
	assert.True(t, item.Current)
	assert.Equal(t, []string{"Thesis on consensus"}, item.Bullets)
	assert.Equal(t, edu.Items[0].Institution, item.Institution)
	assert.Equal(t, clock.Now().UnixMilli(), activeVersion(t, s).UpdatedAt)
	assert.True(t, s.Saving())

	require.Equal(t, Applied, s.UpdateItem(edu.ID, edu.Items[0].ID, ItemPatch{
		Issuer:  String(""),
		Current: Bool(false),
	}))
	got, err := json.Marshal(sectionByType(t, s, types.SectionEducation).Items[0])
	require.NoError(t, err)
	assert.Contains(t, string(got), `"current":false`)
	assert.Contains(t, string(got), `"issuer":""`)

	assert.Equal(t, NotFound, s.UpdateItem(edu.ID, "missing", ItemPatch{}))
	assert.Equal(t, NotFound, s.UpdateItem("missing", edu.Items[0].ID, ItemPatch{}))
}

func TestReorderItems(t *testing.T) {
	s, _ := newSeededStore(t)
	exp := sectionByType(t, s, types.SectionExperience)
	second, _ := s.AddItem(exp.ID)
	third, _ := s.AddItem(exp.ID)
	first := exp.Items[0].ID
	s.ClearSaving()

	require.Equal(t, Applied, s.ReorderItems(exp.ID, 2, 0))
	ids := func() []string {
		var out []string
		for _, it := range sectionByType(t, s, types.SectionExperience).Items {
			out = append(out, it.ID)
		}
		return out
	}
	assert.Equal(t, []string{third, first, second}, ids())
	assert.False(t, s.Saving())

	assert.Equal(t, NotFound, s.ReorderItems(exp.ID, 3, 0))
	assert.Equal(t, NotFound, s.ReorderItems("missing", 0, 1))
}

func TestBullets(t *testing.T) {
	s, _ := newSeededStore(t)
	exp := sectionByType(t, s, types.SectionExperience)
	secID, itemID := exp.ID, exp.Items[0].ID
	bullets := func() []string {
		return sectionByType(t, s, types.SectionExperience).Items[0].Bullets
	}
	original := bullets()
	require.Len(t, original, 4)

	require.Equal(t, Applied, s.AddBullet(secID, itemID, "Shipped v2"))
	assert.Equal(t, append(append([]string{}, original...), "Shipped v2"), bullets())

	require.Equal(t, Applied, s.UpdateBullet(secID, itemID, 4, "Shipped v3"))
	assert.Equal(t, "Shipped v3", bullets()[4])

	require.Equal(t, Applied, s.ReorderBullets(secID, itemID, 4, 0))
	assert.Equal(t, "Shipped v3", bullets()[0])
	assert.Equal(t, original, bullets()[1:])

	require.Equal(t, Applied, s.RemoveBullet(secID, itemID, 0))
	assert.Equal(t, original, bullets())

	assert.Equal(t, NotFound, s.RemoveBullet(secID, itemID, 4))
	assert.Equal(t, NotFound, s.RemoveBullet(secID, itemID, -1))
	assert.Equal(t, NotFound, s.UpdateBullet(secID, itemID, 10, "x"))
	assert.Equal(t, NotFound, s.ReorderBullets(secID, itemID, 7, 0))
}

func TestAddBullet_CreatesList(t *testing.T) {
	s, _ := newSeededStore(t)
	edu := sectionByType(t, s, types.SectionEducation)
	require.Nil(t, edu.Items[0].Bullets)

	require.Equal(t, Applied, s.AddBullet(edu.ID, edu.Items[0].ID, "Dean's list"))
	assert.Equal(t, []string{"Dean's list"}, sectionByType(t, s, types.SectionEducation).Items[0].Bullets)
}

func TestCustomFields(t *testing.T) {
	s, clock := newSeededStore(t)
	secID, _ := s.AddSection(types.SectionCustom, "Extras")
	itemID, _ := s.AddItem(secID)
	fields := func() []types.CustomField {
		return sectionByType(t, s, types.SectionCustom).Items[0].Fields
	}

	fieldID, res := s.AddCustomField(secID, itemID)
	require.Equal(t, Applied, res)
	assert.Equal(t, []types.CustomField{{ID: fieldID, Label: "New Field"}}, fields())

	require.Equal(t, Applied, s.UpdateCustomField(secID, itemID, fieldID, FieldPatch{Value: String("Go")}))
	assert.Equal(t, []types.CustomField{{ID: fieldID, Label: "New Field", Value: "Go"}}, fields())

	require.Equal(t, Applied, s.UpdateCustomField(secID, itemID, fieldID, FieldPatch{Label: String("Language")}))
	assert.Equal(t, "Language", fields()[0].Label)
	assert.Equal(t, "Go", fields()[0].Value)

	stamped := activeVersion(t, s).UpdatedAt
	s.ClearSaving()
	clock.Advance(time.Minute)
	require.Equal(t, Applied, s.RemoveCustomField(secID, itemID, fieldID))
	assert.Empty(t, fields())
	assert.True(t, s.Saving())
	assert.Equal(t, stamped, activeVersion(t, s).UpdatedAt, "removing a field does not stamp the version")

	assert.Equal(t, NotFound, s.RemoveCustomField(secID, itemID, fieldID))
	assert.Equal(t, NotFound, s.UpdateCustomField(secID, itemID, fieldID, FieldPatch{}))
	_, res = s.AddCustomField(secID, "missing")
	assert.Equal(t, NotFound, res)
}

func TestOldSnapshotsAreImmutable(t *testing.T) {
	s, _ := newSeededStore(t)
	snap := s.Snapshot()
	frozen := snap.Resumes[0].Clone()
	exp := sectionByType(t, s, types.SectionExperience)
	item := exp.Items[0]

	s.UpdateBullet(exp.ID, item.ID, 0, "changed")
	s.AddBullet(exp.ID, item.ID, "more")
	s.UpdateItem(exp.ID, item.ID, ItemPatch{Company: String("Other Co")})
	s.ReorderSections(0, 2)
	s.AddSection(types.SectionAwards, "")
	s.UpdateDocumentBasics(BasicsPatch{Name: String("Someone Else")})
	s.ForkVersion("")
	s.RenameResume(frozen.ID, "Renamed")

	assert.Equal(t, frozen, snap.Resumes[0])
	assert.NotEqual(t, frozen, s.Snapshot().Resumes[0])
}

func TestStaleIDsAfterRemoval(t *testing.T) {
	s, _ := newSeededStore(t)
	exp := sectionByType(t, s, types.SectionExperience)
	item := exp.Items[0]
	require.Equal(t, Applied, s.RemoveSection(exp.ID))
	before := s.Snapshot()

	assert.Equal(t, NotFound, s.UpdateBullet(exp.ID, item.ID, 0, "x"))
	assert.Equal(t, NotFound, s.AddBullet(exp.ID, item.ID, "x"))
	assert.Equal(t, NotFound, s.UpdateItem(exp.ID, item.ID, ItemPatch{Role: String("x")}))
	_, res := s.AddItem(exp.ID)
	assert.Equal(t, NotFound, res)
	assert.Same(t, before, s.Snapshot())
}
