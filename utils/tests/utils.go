package tests

import (
	"reflect"
	"testing"
	"time"

	"gorm.io/orm"
)

func AssertEqual(t *testing.T, got, expect interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, expect) {
		return
	}

	if curTime, ok := got.(time.Time); ok {
		if expectTime, ok := expect.(time.Time); ok && curTime.Equal(expectTime) {
			return
		}
	}
	t.Errorf("expect: %#v, got %#v", expect, got)
}

// AssertInstance checks the values of inst field by field
func AssertInstance(t *testing.T, inst *orm.Instance, expect map[string]interface{}) {
	t.Helper()
	for name, value := range expect {
		got, err := inst.Get(name)
		if err != nil {
			t.Errorf("failed to get %v, got error %v", name, err)
			continue
		}
		AssertEqual(t, got, value)
	}
}
