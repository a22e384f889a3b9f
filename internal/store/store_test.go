package store

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhootz/storefront-backend/internal/models"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func rope() models.Product {
	return models.Product{ID: "2", Name: "Tough Tug Rope", Price: 15.50, Category: models.CategoryToys}
}

func brush() models.Product {
	return models.Product{ID: "8", Name: "Slicker Brush", Price: 19.99, Category: models.CategoryGrooming}
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("sid", rope())
	items := s.AddToCart("sid", rope())

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("sid", rope())
	s.AddToCart("sid", rope())
	s.AddToCart("sid", brush())

	items := s.UpdateQuantity("sid", "2", -2)

	require.Len(t, items, 1)
	assert.Equal(t, "8", items[0].ID)
}

func TestUpdateQuantityClampsBelowZero(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("sid", rope())
	items := s.UpdateQuantity("sid", "2", -10)
	assert.Empty(t, items)
}

func TestUpdateQuantityIncrements(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("sid", rope())
	items := s.UpdateQuantity("sid", "2", 3)

	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("sid", rope())
	s.AddToCart("sid", rope())
	items := s.RemoveItem("sid", "2")
	assert.Empty(t, items)
}

func TestCheckoutClearsCartAndTotals(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("sid", rope())
	s.AddToCart("sid", rope())
	s.AddToCart("sid", brush())

	items, total := s.Checkout("sid")
	assert.Equal(t, 3, items)
	assert.InDelta(t, 2*15.50+19.99, total, 0.001)
	assert.Empty(t, s.Cart("sid"))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := New("", testLogger())

	s.AddToCart("alice", rope())
	assert.Empty(t, s.Cart("bob"))
}

func TestLoginDerivesDisplayNameFromEmail(t *testing.T) {
	s := New("", testLogger())

	user := s.Login("sid", "sarah@example.com")
	assert.Equal(t, "Sarah", user.Name)
	assert.Equal(t, "sarah@example.com", user.Email)

	got, ok := s.User("sid")
	require.True(t, ok)
	assert.Equal(t, user, got)

	s.Logout("sid")
	_, ok = s.User("sid")
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := New(path, testLogger())
	s.AddToCart("sid", rope())
	s.Login("sid", "sarah@example.com")

	reloaded := New(path, testLogger())

	items := reloaded.Cart("sid")
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	user, ok := reloaded.User("sid")
	require.True(t, ok)
	assert.Equal(t, "Sarah", user.Name)
}

func TestCheckoutClearsPersistedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := New(path, testLogger())
	s.AddToCart("sid", rope())
	s.Checkout("sid")

	reloaded := New(path, testLogger())
	assert.Empty(t, reloaded.Cart("sid"))
}

func TestCorruptSnapshotLoadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path, testLogger())
	assert.Empty(t, s.Cart("sid"))

	// The store still works and overwrites the bad file on next change.
	s.AddToCart("sid", rope())
	reloaded := New(path, testLogger())
	assert.Len(t, reloaded.Cart("sid"), 1)
}

func TestMissingSnapshotIsFine(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"), testLogger())
	assert.Empty(t, s.Cart("sid"))
}
