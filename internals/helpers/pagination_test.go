package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", "", 1, 10, 0},
		{"explicit", "3", "20", 3, 20, 40},
		{"limit capped", "2", "1000", 2, 100, 100},
		{"whitespace", " 2 ", " 5 ", 2, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPaging(tt.page, tt.limit, DefaultLimit, MaxLimit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestNewPagingRejectsInvalid(t *testing.T) {
	for _, tc := range [][2]string{{"0", ""}, {"-1", ""}, {"abc", ""}, {"", "0"}, {"", "x"}, {"1.5", ""}} {
		_, err := NewPaging(tc[0], tc[1], DefaultLimit, MaxLimit)
		require.Error(t, err, "page=%q limit=%q", tc[0], tc[1])
		assert.True(t, IsKind(err, KindValidation))
	}
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 1, Limit: 10}
	assert.Equal(t, 0, BuildPagination(0, p).Pages)
	assert.Equal(t, 1, BuildPagination(1, p).Pages)
	assert.Equal(t, 1, BuildPagination(10, p).Pages)
	assert.Equal(t, 2, BuildPagination(11, p).Pages)

	got := BuildPagination(25, Paging{Page: 3, Limit: 10, Offset: 20})
	assert.Equal(t, Pagination{Page: 3, Limit: 10, Total: 25, Pages: 3}, got)
}

func TestNewPagingRejectsOverflowingPage(t *testing.T) {
	_, err := NewPaging("1844674407370955162", "10", DefaultLimit, MaxLimit)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.EqualError(t, err, "page is too large")

	p, err := NewPaging("1000000", "100", DefaultLimit, MaxLimit)
	require.NoError(t, err)
	assert.Equal(t, 99999900, p.Offset)
}
