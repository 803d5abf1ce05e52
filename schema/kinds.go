package schema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

const (
	IntMin          = -1 << 31
	IntMax          = 1<<31 - 1
	FloatMin        = -1.79e+38
	FloatMax        = 1.79e+38
	StringMinLength = 1
	StringMaxLength = 8000
	TimeMinYear     = 1000
	TimeMaxYear     = 9999
)

// IntField declares an integer field stored as INT(10), values are int64
func IntField(name string, opts ...FieldOption) *Field {
	return NewField(name, IntKind{Min: IntMin, Max: IntMax}, opts...)
}

// StringField declares a string field stored as CHAR(255)
func StringField(name string, opts ...FieldOption) *Field {
	return NewField(name, StringKind{MinLength: StringMinLength, MaxLength: StringMaxLength}, opts...)
}

// FloatField declares a float field stored as FLOAT(53,8), values are float64
func FloatField(name string, opts ...FieldOption) *Field {
	return NewField(name, FloatKind{Min: FloatMin, Max: FloatMax}, opts...)
}

// TimeField declares a date time field stored as DATETIME, values are time.Time
func TimeField(name string, opts ...FieldOption) *Field {
	return NewField(name, TimeKind{}, opts...)
}

// UUIDField declares a field holding a canonical UUID string, stored as CHAR(36)
func UUIDField(name string, opts ...FieldOption) *Field {
	return NewField(name, UUIDKind{}, opts...)
}

type IntKind struct {
	Min, Max int64
}

func (IntKind) DataType() DataType { return Int }

func (IntKind) SQLType() string { return "INT(10)" }

func (k IntKind) Check(value interface{}) error {
	v, err := toInt64(value)
	if err != nil {
		return err
	}

	if v < k.Min || v > k.Max {
		return fmt.Errorf("value %d is out of range [%d, %d]", v, k.Min, k.Max)
	}
	return nil
}

func (IntKind) Coerce(value interface{}) (interface{}, error) {
	return toInt64(value)
}

type FloatKind struct {
	Min, Max float64
}

func (FloatKind) DataType() DataType { return Float }

func (FloatKind) SQLType() string { return "FLOAT(53,8)" }

func (k FloatKind) Check(value interface{}) error {
	v, err := toFloat64(value)
	if err != nil {
		return err
	}

	if !(v >= k.Min && v <= k.Max) {
		return fmt.Errorf("value %v is out of range [%v, %v]", v, k.Min, k.Max)
	}
	return nil
}

func (FloatKind) Coerce(value interface{}) (interface{}, error) {
	return toFloat64(value)
}

type StringKind struct {
	MinLength, MaxLength int
}

func (StringKind) DataType() DataType { return String }

func (StringKind) SQLType() string { return "CHAR(255)" }

func (k StringKind) Check(value interface{}) error {
	s, err := toString(value)
	if err != nil {
		return err
	}

	if n := utf8.RuneCountInString(s); n < k.MinLength || n > k.MaxLength {
		return fmt.Errorf("length %d is out of range [%d, %d]", n, k.MinLength, k.MaxLength)
	}
	return nil
}

func (StringKind) Coerce(value interface{}) (interface{}, error) {
	return toString(value)
}

type TimeKind struct{}

func (TimeKind) DataType() DataType { return Time }

func (TimeKind) SQLType() string { return "DATETIME" }

func (k TimeKind) Check(value interface{}) error {
	t, err := toTime(value)
	if err != nil {
		return err
	}

	if year := t.Year(); year < TimeMinYear || year > TimeMaxYear {
		return fmt.Errorf("year %d is out of range [%d, %d]", year, TimeMinYear, TimeMaxYear)
	}
	return nil
}

func (TimeKind) Coerce(value interface{}) (interface{}, error) {
	return toTime(value)
}

type UUIDKind struct{}

func (UUIDKind) DataType() DataType { return UUID }

func (UUIDKind) SQLType() string { return "CHAR(36)" }

func (UUIDKind) Check(value interface{}) error {
	_, err := toUUID(value)
	return err
}

func (UUIDKind) Coerce(value interface{}) (interface{}, error) {
	id, err := toUUID(value)
	if err != nil {
		return nil, err
	}
	return id.String(), nil
}

var (
	errNotConvertible = errors.New("cannot convert")
	timeParser        = &now.Config{TimeLocation: time.UTC, TimeFormats: now.TimeFormats}
)

func convertError(value interface{}, to string) error {
	return fmt.Errorf("%w %T to %s", errNotConvertible, value, to)
}

func toInt64(value interface{}) (int64, error) {
	switch rv := reflect.Indirect(reflect.ValueOf(value)); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), nil
		}
		return 0, fmt.Errorf("value %d overflows int64", rv.Uint())
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
		return 0, fmt.Errorf("value %v is not an integer", rv.Float())
	case reflect.String:
		return parseInt(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return parseInt(string(rv.Bytes()))
		}
	}
	return 0, convertError(value, "int")
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q to int", errNotConvertible, s)
	}
	return v, nil
}

func toFloat64(value interface{}) (float64, error) {
	switch rv := reflect.Indirect(reflect.ValueOf(value)); rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		return parseFloat(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return parseFloat(string(rv.Bytes()))
		}
	}
	return 0, convertError(value, "float")
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q to float", errNotConvertible, s)
	}
	return v, nil
}

func toString(value interface{}) (string, error) {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), nil
	}

	switch rv := reflect.Indirect(reflect.ValueOf(value)); rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}
	return "", convertError(value, "string")
}

func toTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		return *v, nil
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	}
	return time.Time{}, convertError(value, "time")
}

func parseTime(s string) (time.Time, error) {
	t, err := timeParser.Parse(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q to time", errNotConvertible, s)
	}
	return t, nil
}

func toUUID(value interface{}) (uuid.UUID, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case *uuid.UUID:
		return *v, nil
	case string:
		return parseUUID(v)
	case []byte:
		return parseUUID(string(v))
	}
	return uuid.Nil, convertError(value, "uuid")
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q to uuid: %v", errNotConvertible, s, err)
	}
	return id, nil
}
