package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range zeroFields(reflect.ValueOf(*cfg), "Config") {
		assert.Fail(t, "zero-value field", field)
	}
}

func TestDefaultIsConsistent(t *testing.T) {
	cfg := Default()
	require.LessOrEqual(t, cfg.Accept.Ranges.Default, cfg.Accept.Ranges.Maximal)
	require.LessOrEqual(t, cfg.Accept.DefaultQuality, uint16(1000))
}

func zeroFields(v reflect.Value, name string) (fields []string) {
	if v.Kind() == reflect.Struct {
		for i := range v.NumField() {
			fields = append(fields, zeroFields(v.Field(i), name+"."+v.Type().Field(i).Name)...)
		}

		return fields
	}

	if v.IsZero() {
		return []string{name}
	}

	return nil
}
