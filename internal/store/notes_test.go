package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

func TestNoteStoreAdd(t *testing.T) {
	s := NewNoteStore()

	n, err := s.Add("Shopping List", "milk, eggs")
	require.NoError(t, err)
	assert.Equal(t, "Shopping List", n.Title)
	assert.Equal(t, "milk, eggs", n.Body)
	assert.NotEmpty(t, n.ID)

	t.Run("duplicate title rejected", func(t *testing.T) {
		_, err := s.Add("shopping  list", "other body")
		assert.ErrorIs(t, err, types.ErrDuplicateNote)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := s.Add("  ", "body")
		assert.ErrorIs(t, err, types.ErrInvalidTitle)
	})

	t.Run("empty body allowed", func(t *testing.T) {
		_, err := s.Add("Placeholder", "")
		assert.NoError(t, err)
	})
}

func TestNoteStoreEditAndReplace(t *testing.T) {
	s := NewNoteStore()
	_, err := s.Add("Shopping List", "milk")
	require.NoError(t, err)

	require.NoError(t, s.Edit("Shopping List", "milk, eggs"))
	n, err := s.Get("shopping_list")
	require.NoError(t, err)
	assert.Equal(t, "milk, eggs", n.Body)

	require.NoError(t, s.Replace("Shopping List", "bread"))
	n, _ = s.Get("shopping_list")
	assert.Equal(t, "bread", n.Body)

	assert.ErrorIs(t, s.Edit("Nothing", "x"), types.ErrNoteNotFound)
	assert.ErrorIs(t, s.Replace("Nothing", "x"), types.ErrNoteNotFound)
}

func TestNoteStoreDelete(t *testing.T) {
	s := NewNoteStore()
	_, err := s.Add("Shopping List", "milk")
	require.NoError(t, err)

	require.NoError(t, s.Delete("SHOPPING LIST"))
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, s.Delete("Shopping List"), types.ErrNoteNotFound)

	t.Run("title becomes reusable", func(t *testing.T) {
		_, err := s.Add("Shopping List", "fresh start")
		assert.NoError(t, err)
	})
}

func TestNoteStoreTags(t *testing.T) {
	s := NewNoteStore()
	_, err := s.Add("Shopping List", "milk")
	require.NoError(t, err)

	require.NoError(t, s.AddTag("Shopping List", "errands"))
	assert.ErrorIs(t, s.AddTag("Shopping List", "ERRANDS"), types.ErrDuplicateTag)
	assert.ErrorIs(t, s.AddTag("Nothing", "errands"), types.ErrNoteNotFound)
	assert.ErrorIs(t, s.AddTag("Shopping List", "has spaces"), types.ErrInvalidTag)

	require.NoError(t, s.RemoveTag("Shopping List", "Errands"))
	assert.ErrorIs(t, s.RemoveTag("Shopping List", "errands"), types.ErrTagNotFound)

	t.Run("remove then re-add restores the tag", func(t *testing.T) {
		require.NoError(t, s.AddTag("Shopping List", "errands"))
		n, err := s.Get("Shopping List")
		require.NoError(t, err)
		assert.Equal(t, []string{"errands"}, n.Tags)
	})
}

func TestNoteStoreFindByTag(t *testing.T) {
	s := NewNoteStore()
	seed := func(title, tag string) {
		_, err := s.Add(title, "body")
		require.NoError(t, err)
		if tag != "" {
			require.NoError(t, s.AddTag(title, tag))
		}
	}
	seed("Groceries", "errands")
	seed("Ideas", "work")
	seed("Chores", "errands")

	found := s.FindByTag("ERRANDS")
	require.Len(t, found, 2)
	assert.Equal(t, "Groceries", found[0].Title)
	assert.Equal(t, "Chores", found[1].Title)

	assert.Empty(t, s.FindByTag("missing"))
}

func TestNoteStoreSortByTag(t *testing.T) {
	s := NewNoteStore()
	titles := []string{"Zebra", "Apple", "Mango"}
	for _, title := range titles {
		_, err := s.Add(title, "body")
		require.NoError(t, err)
		require.NoError(t, s.AddTag(title, "fruit"))
	}
	_, err := s.Add("Untagged", "body")
	require.NoError(t, err)

	sorted := s.SortByTag("fruit")
	require.Len(t, sorted, 3)
	assert.Equal(t, "Apple", sorted[0].Title)
	assert.Equal(t, "Mango", sorted[1].Title)
	assert.Equal(t, "Zebra", sorted[2].Title)
}

func TestNoteStoreSearchByText(t *testing.T) {
	s := NewNoteStore()
	_, err := s.Add("Shopping List", "buy MILK and eggs")
	require.NoError(t, err)
	_, err = s.Add("Meeting Notes", "quarterly review")
	require.NoError(t, err)

	t.Run("matches body case-insensitively", func(t *testing.T) {
		found := s.SearchByText("milk")
		require.Len(t, found, 1)
		assert.Equal(t, "Shopping List", found[0].Title)
	})

	t.Run("matches title", func(t *testing.T) {
		found := s.SearchByText("meeting")
		require.Len(t, found, 1)
		assert.Equal(t, "Meeting Notes", found[0].Title)
	})

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Len(t, s.SearchByText(""), 2)
	})

	t.Run("whitespace-only query matches all", func(t *testing.T) {
		assert.Len(t, s.SearchByText("   "), 2)
	})
}

func TestNoteStoreLinks(t *testing.T) {
	contacts := NewContactStore()
	_, err := contacts.Add("Jane Doe", "0501234567")
	require.NoError(t, err)

	notes := NewNoteStore()
	_, err = notes.Add("Call notes", "discussed plans")
	require.NoError(t, err)

	t.Run("attach does not verify the contact", func(t *testing.T) {
		require.NoError(t, notes.Attach("Call notes", "Someone Unknown"))
		require.NoError(t, notes.Attach("Call notes", "Jane Doe"))
	})

	t.Run("notes for a live contact", func(t *testing.T) {
		found := notes.NotesForContact("jane doe", contacts)
		require.Len(t, found, 1)
		assert.Equal(t, "Call notes", found[0].Title)
	})

	t.Run("resolve link yields display name", func(t *testing.T) {
		n, err := notes.Get("Call notes")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", ResolveLink(n, contacts))
	})

	t.Run("dangling link after contact removal", func(t *testing.T) {
		require.NoError(t, contacts.Remove("Jane Doe"))
		assert.Empty(t, notes.NotesForContact("jane doe", contacts))
		n, err := notes.Get("Call notes")
		require.NoError(t, err)
		assert.Equal(t, "", ResolveLink(n, contacts))
	})

	t.Run("detach clears the link", func(t *testing.T) {
		require.NoError(t, notes.Detach("Call notes"))
		n, err := notes.Get("Call notes")
		require.NoError(t, err)
		assert.Empty(t, n.LinkedContact)
	})

	t.Run("unknown note", func(t *testing.T) {
		assert.ErrorIs(t, notes.Attach("Nothing", "Jane Doe"), types.ErrNoteNotFound)
		assert.ErrorIs(t, notes.Detach("Nothing"), types.ErrNoteNotFound)
	})
}
