package schema_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/orm/schema"
)

func TestFieldBounds(t *testing.T) {
	results := []struct {
		Field   *schema.Field
		Valid   []interface{}
		Invalid []interface{}
	}{
		{
			schema.IntField("Telephone"),
			[]interface{}{-1 << 31, 1<<31 - 1, 0, int8(3), uint16(7), 12.0, "42", []byte(" 17 ")},
			[]interface{}{-1<<31 - 1, 1 << 31, int64(1) << 40, uint64(1) << 63, 1.5, "forty", true, struct{}{}},
		},
		{
			schema.FloatField("Balance"),
			[]interface{}{-1.79e38, 1.79e38, 0, float32(1.25), "3.5", []byte("2e10")},
			[]interface{}{-1.8e38, 1.8e38, "NaN", "rich", false},
		},
		{
			schema.StringField("Name"),
			[]interface{}{"k", strings.Repeat("x", 8000), strings.Repeat("я", 8000), []byte("kirill"), 42, time.Second},
			[]interface{}{"", strings.Repeat("x", 8001), true, map[string]int{"a": 1}},
		},
		{
			schema.TimeField("Birthday"),
			[]interface{}{time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), "2020-02-23 11:10:10", "2020-02-23T11:10:10Z", []byte("2020-02-23")},
			[]interface{}{time.Date(999, 12, 31, 0, 0, 0, 0, time.UTC), time.Time{}, "yesterday", 20200223},
		},
		{
			schema.UUIDField("Token"),
			[]interface{}{uuid.New(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8", []byte("6BA7B810-9DAD-11D1-80B4-00C04FD430C8")},
			[]interface{}{"6ba7b810", 12, uuid.New().String() + "0"},
		},
	}

	for _, result := range results {
		for idx, value := range result.Valid {
			t.Run(fmt.Sprintf("%v valid #%v", result.Field.Name, idx), func(t *testing.T) {
				_, err := result.Field.Validate(value)
				assert.NoError(t, err)
			})
		}

		for idx, value := range result.Invalid {
			t.Run(fmt.Sprintf("%v invalid #%v", result.Field.Name, idx), func(t *testing.T) {
				_, err := result.Field.Validate(value)
				var verr *schema.ValidationError
				require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
				assert.Equal(t, result.Field.Name, verr.Field)
			})
		}
	}
}

func TestFieldCoercion(t *testing.T) {
	results := []struct {
		Field  *schema.Field
		Value  interface{}
		Expect interface{}
	}{
		{schema.IntField("id"), "42", int64(42)},
		{schema.IntField("id"), []byte("7"), int64(7)},
		{schema.IntField("id"), uint8(9), int64(9)},
		{schema.IntField("id"), 3.0, int64(3)},
		{schema.FloatField("Balance"), 3, float64(3)},
		{schema.FloatField("Balance"), "0.25", 0.25},
		{schema.StringField("Name"), 42, "42"},
		{schema.StringField("Name"), []byte("kirill"), "kirill"},
		{schema.UUIDField("Token"), "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{schema.TimeField("Birthday"), "2020-02-23 11:10:10", time.Date(2020, 2, 23, 11, 10, 10, 0, time.UTC)},
	}

	for idx, result := range results {
		t.Run(fmt.Sprintf("case #%v", idx), func(t *testing.T) {
			v, err := result.Field.Validate(result.Value)
			require.NoError(t, err)
			if expect, ok := result.Expect.(time.Time); ok {
				assert.True(t, expect.Equal(v.(time.Time)), "expect %v, got %v", expect, v)
			} else {
				assert.Equal(t, result.Expect, v)
			}
		})
	}
}

func TestFieldRequired(t *testing.T) {
	var nilBytes []byte
	var nilInt *int

	required := schema.IntField("id", schema.Required(), schema.Default(0))
	for _, value := range []interface{}{nil, nilBytes, nilInt} {
		_, err := required.Validate(value)
		var verr *schema.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "field is required", verr.Reason)
	}

	optional := schema.StringField("Sex", schema.Default("Male"))
	v, err := optional.Validate(nil)
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestFieldStorage(t *testing.T) {
	storage := map[string]interface{}{}
	field := schema.StringField("Name", schema.Default("some_name"))

	assert.Equal(t, "some_name", field.ValueOf(storage))

	require.NoError(t, field.Set(storage, "kirill"))
	assert.Equal(t, "kirill", field.ValueOf(storage))
	assert.Equal(t, "kirill", storage["_Name"])

	require.Error(t, field.Set(storage, ""))
	assert.Equal(t, "kirill", field.ValueOf(storage), "a rejected value must not be stored")

	require.NoError(t, field.Set(storage, nil))
	assert.Equal(t, "some_name", field.ValueOf(storage))

	require.NoError(t, field.Set(storage, "nikita"))
	field.Unset(storage)
	assert.Equal(t, "some_name", field.ValueOf(storage))
}

func TestFieldOptions(t *testing.T) {
	level := schema.IntField("Level", schema.Range(-1, 100))
	_, err := level.Validate(100)
	assert.NoError(t, err)
	_, err = level.Validate(101)
	assert.Error(t, err)
	_, err = level.Validate(-2)
	assert.Error(t, err)

	name := schema.StringField("Name", schema.Length(2, 5), schema.Column("name"))
	assert.Equal(t, "name", name.DBName)
	assert.Equal(t, "_Name", name.StorageKey)
	_, err = name.Validate("k")
	assert.Error(t, err)
	_, err = name.Validate("kiril")
	assert.NoError(t, err)

	assert.Equal(t, "INT(10)", schema.IntField("id").SQLType)
	assert.Equal(t, "CHAR(255)", schema.StringField("Name").SQLType)
	assert.Equal(t, "FLOAT(53,8)", schema.FloatField("Balance").SQLType)
	assert.Equal(t, "DATETIME", schema.TimeField("Birthday").SQLType)
	assert.Equal(t, "CHAR(36)", schema.UUIDField("Token").SQLType)
}

type percentKind struct{ schema.FloatKind }

func (percentKind) SQLType() string { return "DECIMAL(5,2)" }

func (percentKind) Check(value interface{}) error {
	if f, ok := value.(float64); !ok || f < 0 || f > 100 {
		return errors.New("not a percentage")
	}
	return nil
}

func TestCustomKind(t *testing.T) {
	field := schema.NewField("Discount", percentKind{}, schema.Default(0.0))
	assert.Equal(t, schema.Float, field.DataType)
	assert.Equal(t, "DECIMAL(5,2)", field.SQLType)

	v, err := field.Validate(12.5)
	assert.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = field.Validate(120.0)
	assert.ErrorContains(t, err, "not a percentage")
}
