package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(95, 1, 20)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(95, 5, 20)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// data kosong tetap 1 halaman
	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)

	// input ngawur dinormalisasi
	p = BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}
