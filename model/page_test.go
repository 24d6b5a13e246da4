package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPageRequest(t *testing.T) {
	req := DefaultPageRequest()

	assert.Equal(t, 0, req.Page)
	assert.Equal(t, 10, req.Size)
	assert.Equal(t, "dataCriacao", req.Sort)
	assert.Equal(t, SortAsc, req.Direction)
	assert.Equal(t, "created_at", req.SortColumn())
	assert.NoError(t, req.Validate())
}

func TestPageRequest_ParseSort(t *testing.T) {
	tests := []struct {
		expr     string
		wantSort string
		wantDir  SortDirection
	}{
		{expr: "", wantSort: "dataCriacao", wantDir: SortAsc},
		{expr: "titulo", wantSort: "titulo", wantDir: SortAsc},
		{expr: "titulo,desc", wantSort: "titulo", wantDir: SortDesc},
		{expr: " curso , DESC ", wantSort: "curso", wantDir: SortDesc},
		{expr: "id,asc", wantSort: "id", wantDir: SortAsc},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			req := DefaultPageRequest()
			req.ParseSort(tt.expr)

			assert.Equal(t, tt.wantSort, req.Sort)
			assert.Equal(t, tt.wantDir, req.Direction)
		})
	}
}

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PageRequest)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*PageRequest) {}},
		{name: "second page", mutate: func(p *PageRequest) { p.Page = 1 }},
		{name: "negative page", mutate: func(p *PageRequest) { p.Page = -1 }, wantErr: true},
		{name: "last page", mutate: func(p *PageRequest) { p.Page = MaxPage }},
		{name: "page over max", mutate: func(p *PageRequest) { p.Page = MaxPage + 1 }, wantErr: true},
		{name: "huge page", mutate: func(p *PageRequest) { p.Page = 922337203685477581 }, wantErr: true},
		{name: "zero size", mutate: func(p *PageRequest) { p.Size = 0 }, wantErr: true},
		{name: "size over max", mutate: func(p *PageRequest) { p.Size = MaxPageSize + 1 }, wantErr: true},
		{name: "unknown sort", mutate: func(p *PageRequest) { p.Sort = "autor_id; DROP TABLE" }, wantErr: true},
		{name: "unknown direction", mutate: func(p *PageRequest) { p.Direction = "sideways" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultPageRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := PageRequest{Page: 3, Size: 10}
	assert.Equal(t, int64(30), req.Offset())

	req = PageRequest{Page: MaxPage, Size: MaxPageSize}
	assert.Equal(t, int64(MaxPage)*MaxPageSize, req.Offset())
	assert.Positive(t, req.Offset())
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		items     int
		total     int64
		wantPages int
		wantFirst bool
		wantLast  bool
	}{
		{name: "empty", page: 0, items: 0, total: 0, wantPages: 0, wantFirst: true, wantLast: true},
		{name: "first of two", page: 0, items: 10, total: 15, wantPages: 2, wantFirst: true, wantLast: false},
		{name: "second of two", page: 1, items: 5, total: 15, wantPages: 2, wantFirst: false, wantLast: true},
		{name: "exact multiple", page: 1, items: 10, total: 20, wantPages: 2, wantFirst: false, wantLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultPageRequest()
			req.Page = tt.page

			page := NewPage(make([]int, tt.items), req, tt.total)

			assert.Equal(t, tt.total, page.TotalElements)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.page, page.Number)
			assert.Equal(t, 10, page.Size)
			assert.Equal(t, tt.items, page.NumberOfElements)
			assert.Equal(t, tt.wantFirst, page.First)
			assert.Equal(t, tt.wantLast, page.Last)
			assert.Equal(t, tt.items == 0, page.Empty)
		})
	}
}

func TestNewPage_NilContentIsEmptySlice(t *testing.T) {
	page := NewPage[string](nil, DefaultPageRequest(), 0)

	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}

func TestMapPage(t *testing.T) {
	req := DefaultPageRequest()
	page := NewPage([]int{1, 2, 3}, req, 3)

	mapped := MapPage(page, func(i int) int { return i * 10 })

	assert.Equal(t, []int{10, 20, 30}, mapped.Content)
	assert.Equal(t, page.TotalElements, mapped.TotalElements)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
	assert.Equal(t, page.Last, mapped.Last)
}
