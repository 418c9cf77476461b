package models

import (
	"math"
	"strings"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection accepts "asc"/"desc" in any case. Anything else falls back to ASC.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

type Sort struct {
	Field     string
	Direction Direction
}

// PageRequest addresses one page of an ordered result set. Page is 0-based.
type PageRequest struct {
	Page int
	Size int
	Sort Sort
}

func NewPageRequest(page, size int) PageRequest {
	return PageRequest{Page: page, Size: size}
}

func (p PageRequest) WithSort(field string, dir Direction) PageRequest {
	p.Sort = Sort{Field: field, Direction: dir}
	return p
}

// Offset is the number of rows before the page. It saturates at math.MaxInt
// instead of wrapping, so absurd page numbers still land past the end.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Page is a bounded slice of a larger result set plus the total count across all pages.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
	}
}

func (p Page[T]) NumberOfElements() int { return len(p.Content) }

func (p Page[T]) IsEmpty() bool { return len(p.Content) == 0 }

// MapPage converts every element with fn and keeps the page metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[R]{
		Content:       out,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
