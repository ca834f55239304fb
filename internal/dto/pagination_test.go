package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_TotalPagesRoundsUp(t *testing.T) {
	p := NewPagination(1, 10, 25)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)
}

func TestNewPagination_ExactFit(t *testing.T) {
	p := NewPagination(2, 10, 20)
	assert.Equal(t, 2, p.TotalPages)
}

func TestNewPagination_Empty(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, PageQuery{Page: 5, Limit: 10}.Offset())
}
