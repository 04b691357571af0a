package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimJoin(t *testing.T) {
	assert.Equal(t, "Asha Rao", TrimJoin("Asha", "Rao"))
	assert.Equal(t, "Asha", TrimJoin("  Asha ", ""))
	assert.Equal(t, "Rao", TrimJoin("", "Rao"))
	assert.Equal(t, "", TrimJoin("", "  "))
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=3&limit=25", nil)
	skip, limit := ParsePagination(r, 10, 100)
	assert.EqualValues(t, 50, skip)
	assert.EqualValues(t, 25, limit)

	r = httptest.NewRequest("GET", "/", nil)
	skip, limit = ParsePagination(r, 10, 100)
	assert.EqualValues(t, 0, skip)
	assert.EqualValues(t, 10, limit)

	r = httptest.NewRequest("GET", "/?limit=9999", nil)
	_, limit = ParsePagination(r, 10, 100)
	assert.EqualValues(t, 100, limit)
}
