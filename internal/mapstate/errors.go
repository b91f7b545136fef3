package mapstate

import (
	"errors"
	"fmt"
)

var (
	// ErrParse - таблица точек не может быть разобрана
	ErrParse = errors.New("points table parse error")
	// ErrEmptyQuery - пустой поисковый запрос
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrPointsNotLoaded - событие по точкам до загрузки набора точек
	ErrPointsNotLoaded = errors.New("points dataset is not loaded")
	// ErrGroupNotFound - группа маркеров с таким идентификатором не существует
	ErrGroupNotFound = errors.New("marker group not found")
	// ErrBoundaryNotFound - слой границ с таким именем не загружен
	ErrBoundaryNotFound = errors.New("boundary layer not found")
)

// ParseError описывает причину, по которой набор точек не загружен целиком
type ParseError struct {
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("points table: required column %q is missing", e.Column)
	}
	return fmt.Sprintf("points table: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
