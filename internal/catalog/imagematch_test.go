package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawhootz/storefront-backend/internal/models"
)

func TestFindBestImageMatchesHyphenatedFileName(t *testing.T) {
	files := []models.MediaFile{
		{Name: "logo.png", URL: "https://cdn.example.com/logo.png"},
		{Name: "tough-tug-rope.jpg", URL: "https://cdn.example.com/rope.jpg"},
	}

	// Hyphens are stripped without inserting spaces, so this lands on the
	// token-overlap path: every product token appears in the file name.
	assert.Equal(t, "https://cdn.example.com/rope.jpg", FindBestImage("Tough Tug Rope", files))
}

func TestFindBestImagePrefersLongerContainmentMatch(t *testing.T) {
	files := []models.MediaFile{
		{Name: "rope.jpg", URL: "https://cdn.example.com/short.jpg"},
		{Name: "tough-tug-rope-studio-shot.jpg", URL: "https://cdn.example.com/long.jpg"},
	}

	// Both contain the product name after normalization; the longer file
	// name scores higher.
	assert.Equal(t, "https://cdn.example.com/long.jpg", FindBestImage("Rope", files))
}

func TestFindBestImageTokenOverlap(t *testing.T) {
	files := []models.MediaFile{
		{Name: "slicker-grooming-set.jpg", URL: "https://cdn.example.com/set.jpg"},
		{Name: "invoice.pdf", URL: "https://cdn.example.com/invoice.pdf"},
	}

	// "slicker" (7) matches, clearing the minimum score.
	assert.Equal(t, "https://cdn.example.com/set.jpg", FindBestImage("Slicker Brush Deluxe", files))
}

func TestFindBestImageNoMatchBelowThreshold(t *testing.T) {
	files := []models.MediaFile{
		{Name: "invoice.pdf", URL: "https://cdn.example.com/invoice.pdf"},
		{Name: "logo.png", URL: "https://cdn.example.com/logo.png"},
	}

	assert.Equal(t, "", FindBestImage("Tough Tug Rope", files))
}

func TestFindBestImageSkipsFoldersAndUnnamedFiles(t *testing.T) {
	files := []models.MediaFile{
		{Name: "tough tug rope", URL: "https://cdn.example.com/folder", IsDir: true},
		{Name: "tough tug rope", URL: "https://cdn.example.com/typed-folder", Type: "folder"},
		{Name: "", URL: "https://cdn.example.com/unnamed.jpg"},
	}

	assert.Equal(t, "", FindBestImage("Tough Tug Rope", files))
}

func TestFindBestImageTieKeepsFirstSeen(t *testing.T) {
	files := []models.MediaFile{
		{Name: "rope-a.jpg", URL: "https://cdn.example.com/a.jpg"},
		{Name: "rope-b.jpg", URL: "https://cdn.example.com/b.jpg"},
	}

	assert.Equal(t, "https://cdn.example.com/a.jpg", FindBestImage("Rope", files))
}

func TestFindBestImageIsDeterministic(t *testing.T) {
	files := []models.MediaFile{
		{Name: "lavender-shampoo.png", URL: "https://cdn.example.com/shampoo.png"},
		{Name: "puzzle-feeder.png", URL: "https://cdn.example.com/feeder.png"},
		{Name: "fleece-blanket.png", URL: "https://cdn.example.com/blanket.png"},
	}

	first := FindBestImage("Lavender Calming Shampoo", files)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FindBestImage("Lavender Calming Shampoo", files))
	}
}
