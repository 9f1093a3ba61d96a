package movies

import (
	"math"
	"strings"
)

// sortColumns is the closed mapping from legal sort keys to the column
// references used by the listing query. Caller-supplied field names never
// reach the query text - anything outside this map is dropped.
var sortColumns = map[string]string{
	"title":     "m.title",
	"dateAdded": "m.date_added",
	"likeCount": "like_count",
	"hateCount": "hate_count",
	"username":  "u.username",
}

// defaultOrder is the fallback ordering when no legal sort key survives
const defaultOrder = "m.date_added DESC"

// SortOrder is a single (field, direction) pair of a sort spec
type SortOrder struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// Sort is a parsed sort spec. Serialized in the Spring page envelope shape
// the original frontend consumes.
type Sort struct {
	Orders   []SortOrder `json:"orders,omitempty"`
	Empty    bool        `json:"empty"`
	Sorted   bool        `json:"sorted"`
	Unsorted bool        `json:"unsorted"`
}

// ParseSort parses a "field,direction" query parameter. The direction is
// case-insensitive and defaults to desc when absent. A non-dateAdded primary
// sort gets dateAdded desc appended as a stable secondary order.
func ParseSort(param string) Sort {
	parts := strings.Split(param, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	property := "dateAdded"
	if len(parts) > 0 && parts[0] != "" {
		property = parts[0]
	}
	direction := "desc"
	if len(parts) > 1 && parts[1] != "" {
		direction = parts[1]
	}

	orders := []SortOrder{{Property: property, Direction: strings.ToUpper(direction)}}
	if property != "dateAdded" {
		orders = append(orders, SortOrder{Property: "dateAdded", Direction: "DESC"})
	}

	return Sort{
		Orders: orders,
		Sorted: true,
	}
}

// OrderBy renders the ORDER BY clause body for this sort. Unknown fields are
// silently dropped; if nothing survives, the fixed default order applies.
func (s Sort) OrderBy() string {
	var parts []string
	for _, o := range s.Orders {
		column, ok := sortColumns[o.Property]
		if !ok {
			continue
		}
		dir := "ASC"
		if strings.EqualFold(o.Direction, "desc") {
			dir = "DESC"
		}
		parts = append(parts, column+" "+dir)
	}

	if len(parts) == 0 {
		return defaultOrder
	}
	return strings.Join(parts, ", ")
}

// Pageable describes a bounded, ordered query: zero-based page number,
// page size and sort spec.
type Pageable struct {
	Sort       Sort  `json:"sort"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	Offset     int64 `json:"offset"`
	Paged      bool  `json:"paged"`
	Unpaged    bool  `json:"unpaged"`
}

// NewPageable builds a Pageable, computing the row offset
func NewPageable(pageNumber, pageSize int, sort Sort) Pageable {
	return Pageable{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Offset:     int64(pageNumber) * int64(pageSize),
		Paged:      true,
		Sort:       sort,
	}
}

// Page is one bounded slice of a listing plus its paging metadata.
// The envelope mirrors the shape the frontend already consumes.
type Page struct {
	Content          []*Movie `json:"content"`
	Pageable         Pageable `json:"pageable"`
	Sort             Sort     `json:"sort"`
	TotalElements    int64    `json:"totalElements"`
	TotalPages       int      `json:"totalPages"`
	Size             int      `json:"size"`
	Number           int      `json:"number"`
	NumberOfElements int      `json:"numberOfElements"`
	Last             bool     `json:"last"`
	First            bool     `json:"first"`
	Empty            bool     `json:"empty"`
}

// NewPage derives the paging metadata from the bounded content and the
// unbounded total count.
func NewPage(content []*Movie, pageable Pageable, totalElements int64) *Page {
	if content == nil {
		content = []*Movie{}
	}

	totalPages := int(math.Ceil(float64(totalElements) / float64(pageable.PageSize)))

	return &Page{
		Content:          content,
		Pageable:         pageable,
		Sort:             pageable.Sort,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		Size:             pageable.PageSize,
		Number:           pageable.PageNumber,
		NumberOfElements: len(content),
		Last:             pageable.PageNumber+1 >= totalPages,
		First:            pageable.PageNumber == 0,
		Empty:            len(content) == 0,
	}
}
