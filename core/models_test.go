package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("rooms/1")
		id2 := IDFromContent("rooms/1")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		id1 := IDFromContent("rooms/1")
		id2 := IDFromContent("staff/1")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		id := IDFromContent("")
		assert.Equal(t, id, IDFromContent(""))
	})
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), "category %q should be valid", c)
	}
	assert.False(t, ValidCategory("professors"))
	assert.False(t, ValidCategory(""))
}

func TestCategoriesPresentationOrder(t *testing.T) {
	expected := []Category{CategoryStaff, CategoryRooms, CategorySchedules, CategoryContacts}
	assert.Equal(t, expected, Categories)
}

func TestDatasetLen(t *testing.T) {
	d := &Dataset{}
	assert.True(t, d.Empty())
	assert.Equal(t, 0, d.Len())

	d.Classrooms = []ClassroomRecord{{Id: "1", Name: "Aula 101"}}
	d.Contacts = []ContactRecord{{Id: "1", Area: "Biblioteca"}}
	assert.False(t, d.Empty())
	assert.Equal(t, 2, d.Len())
}
