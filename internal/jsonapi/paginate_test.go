package jsonapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = PageDefaults{Size: 25, Number: 1, MaxSize: 500}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		query       string
		want        Page
		wantDetails []string
	}{
		{
			name:  "defaults when absent",
			query: "",
			want:  Page{Size: 25, Number: 1},
		},
		{
			name:  "explicit values",
			query: "page[size]=10&page[number]=3",
			want:  Page{Size: 10, Number: 3},
		},
		{
			name:  "empty values fall back to defaults",
			query: "page[size]=&page[number]=",
			want:  Page{Size: 25, Number: 1},
		},
		{
			name:        "non-integer size",
			query:       "page[size]=ten",
			want:        Page{Size: 25, Number: 1},
			wantDetails: []string{"page[size] must be an integer"},
		},
		{
			name:        "zero size and negative number",
			query:       "page[size]=0&page[number]=-2",
			want:        Page{Size: 25, Number: 1},
			wantDetails: []string{
				"page[size] must be greater than or equal to 1",
				"page[number] must be greater than or equal to 1",
			},
		},
		{
			name:        "size above maximum",
			query:       "page[size]=501",
			want:        Page{Size: 25, Number: 1},
			wantDetails: []string{"page[size] must be less than or equal to 500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			page, details := ParsePage(values, testDefaults)

			assert.Equal(t, tt.want, page)
			assert.Equal(t, tt.wantDetails, details)
		})
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	rows := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name       string
		page       Page
		wantRows   []int
		totalPages int
		hasPrev    bool
		hasNext    bool
	}{
		{"first page", Page{Size: 3, Number: 1}, []int{1, 2, 3}, 3, false, true},
		{"middle page", Page{Size: 3, Number: 2}, []int{4, 5, 6}, 3, true, true},
		{"last partial page", Page{Size: 3, Number: 3}, []int{7}, 3, true, false},
		{"past the end", Page{Size: 3, Number: 9}, []int{}, 3, true, false},
		{"page larger than rows", Page{Size: 25, Number: 1}, rows, 1, false, false},
		{"huge page number", Page{Size: 3, Number: int(^uint(0) >> 1)}, []int{}, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Paginate(rows, tt.page)

			assert.Equal(t, tt.wantRows, p.Rows)
			assert.Equal(t, len(rows), p.TotalResults)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasPrev, p.HasPrev())
			assert.Equal(t, tt.hasNext, p.HasNext())
		})
	}
}

// For every row count and page shape, the page length is
// min(size, max(0, total-(number-1)*size)) and the total is unaffected.
func TestPaginate_LengthProperty(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 12; total++ {
		rows := make([]int, total)
		for i := range rows {
			rows[i] = i
		}
		for size := 1; size <= 5; size++ {
			for number := 1; number <= 6; number++ {
				p := Paginate(rows, Page{Size: size, Number: number})

				want := max(0, min(size, total-(number-1)*size))
				require.Lenf(t, p.Rows, want, "total=%d size=%d number=%d", total, size, number)
				require.Equal(t, total, p.TotalResults)
				if want > 0 {
					require.Equal(t, (number-1)*size, p.Rows[0])
				}
			}
		}
	}
}

func TestPaginate_EmptyRows(t *testing.T) {
	t.Parallel()

	p := Paginate([]string(nil), Page{Size: 10, Number: 1})

	assert.NotNil(t, p.Rows)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 0, p.TotalResults)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, &Meta{TotalResults: 0, TotalPages: 1, CurrentPageNumber: 1, CurrentPageSize: 10}, p.Meta())
}
