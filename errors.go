package course2osm

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ParseCourseError wraps any failure while interpreting a single course file
type ParseCourseError struct {
	Path string
	Err  error
}

func (e *ParseCourseError) Error() string {
	return fmt.Sprintf("Can't parse course '%s': %s", e.Path, e.Err)
}

func (e *ParseCourseError) Cause() error  { return e.Err }
func (e *ParseCourseError) Unwrap() error { return e.Err }

// NumberFormatError is returned when an attribute or a tag expected to be a number is not
type NumberFormatError struct {
	Entity string
	Key    string
	Value  string
	Err    error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("Bad number in '%s' of %s: '%s'", e.Key, e.Entity, e.Value)
}

func (e *NumberFormatError) Cause() error  { return e.Err }
func (e *NumberFormatError) Unwrap() error { return e.Err }

// StructuralError is returned for documents which are well-formed XML but miss required parts
type StructuralError struct {
	Path   string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func newStructuralError(path, format string, args ...interface{}) error {
	return errors.WithStack(&StructuralError{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func parseFloat(entity, key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &NumberFormatError{Entity: entity, Key: key, Value: value, Err: err}
	}
	return f, nil
}

func parseInt(entity, key, value string) (int64, error) {
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &NumberFormatError{Entity: entity, Key: key, Value: value, Err: err}
	}
	return i, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
