package model

import (
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Paging defaults used when the caller does not provide a value.
const (
	DefaultPageSize  = 10
	MaxPageSize      = 100
	DefaultTopicSort = "dataCriacao"

	// MaxPage is the highest page index accepted by PageRequest.Validate.
	MaxPage = math.MaxInt32
)

// SortDirection is the ordering applied to the sort key.
type SortDirection string

const (
	// SortAsc orders from the smallest value to the largest.
	SortAsc SortDirection = "asc"

	// SortDesc orders from the largest value to the smallest.
	SortDesc SortDirection = "desc"
)

// TopicSortColumns maps the public sort keys onto topic table columns.
var TopicSortColumns = map[string]string{
	"id":          "id",
	"titulo":      "title",
	"mensagem":    "message",
	"dataCriacao": "created_at",
	"status":      "status",
	"curso":       "course",
}

// PageRequest selects one page of an ordered collection. Page is zero-based.
type PageRequest struct {
	Page      int           `json:"page"`
	Size      int           `json:"size"`
	Sort      string        `json:"sort"`
	Direction SortDirection `json:"direction"`
}

// DefaultPageRequest returns the first page of 10 topics ordered by creation time.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page:      0,
		Size:      DefaultPageSize,
		Sort:      DefaultTopicSort,
		Direction: SortAsc,
	}
}

// ParseSort reads a "field[,asc|desc]" expression into the request.
// An empty expression leaves the current sort untouched.
func (p *PageRequest) ParseSort(expr string) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return
	}
	field, dir, found := strings.Cut(expr, ",")
	p.Sort = strings.TrimSpace(field)
	p.Direction = SortAsc
	if found {
		p.Direction = SortDirection(strings.ToLower(strings.TrimSpace(dir)))
	}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

// SortColumn returns the column for the sort key, or "" if the key is unknown.
func (p PageRequest) SortColumn() string {
	return TopicSortColumns[p.Sort]
}

// Validate checks page bounds, the sort key and the direction.
func (p PageRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Min(0), validation.Max(MaxPage)),
		validation.Field(&p.Size, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
		validation.Field(&p.Sort, validation.Required, validation.In(sortKeys()...)),
		validation.Field(&p.Direction, validation.Required, validation.In(SortAsc, SortDesc)),
	)
}

// Page is one page of an ordered collection plus counts metadata.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPage builds page metadata for content taken from req out of total elements.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           req.Page,
		Size:             req.Size,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// MapPage converts the content of a page while keeping its metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, len(p.Content))
	for i, item := range p.Content {
		content[i] = fn(item)
	}
	return Page[U]{
		Content:          content,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: p.NumberOfElements,
		First:            p.First,
		Last:             p.Last,
		Empty:            p.Empty,
	}
}

func sortKeys() []interface{} {
	keys := make([]interface{}, 0, len(TopicSortColumns))
	for k := range TopicSortColumns {
		keys = append(keys, k)
	}
	return keys
}
