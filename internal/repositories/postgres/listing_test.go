package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"empty", 0, 6, 0},
		{"exact single page", 6, 6, 1},
		{"partial last page", 13, 6, 3},
		{"one item", 1, 6, 1},
		{"large per page", 5, 48, 1},
		{"per page one", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Page[int]{TotalCount: tt.total, PerPage: tt.perPage}
			assert.Equal(t, tt.want, p.TotalPages())
		})
	}
}

func TestListParamsNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{"zero values", ListParams{}, ListParams{Page: 1, PerPage: DefaultPerPage}},
		{"negative page", ListParams{Page: -3, PerPage: 12}, ListParams{Page: 1, PerPage: 12}},
		{"per page capped", ListParams{Page: 2, PerPage: 500}, ListParams{Page: 2, PerPage: maxPerPage}},
		{"valid untouched", ListParams{Page: 3, PerPage: 24, Search: "go"}, ListParams{Page: 3, PerPage: 24, Search: "go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.normalized())
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{"%_%", `\%\_\%`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in))
	}
}
