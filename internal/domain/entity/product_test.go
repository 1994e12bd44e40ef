package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortProductsByAvailability(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "紅茶", OutOfStock: true},
		{ID: 2, Name: "綠茶"},
		{ID: 3, Name: "烏龍茶", OutOfStock: true},
		{ID: 4, Name: "珍珠奶茶"},
	}

	sorted := SortProductsByAvailability(products)

	ids := make([]int64, 0, len(sorted))
	for _, p := range sorted {
		ids = append(ids, p.ID)
	}
	// In-stock items first, then out-of-stock, relative order preserved.
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)

	// The input order is untouched.
	assert.Equal(t, int64(1), products[0].ID)
}

func TestSortProductsByAvailability_Empty(t *testing.T) {
	assert.Empty(t, SortProductsByAvailability(nil))
}
