package simpleexcel

import (
	"fmt"
	"reflect"
	"time"
)

// DateLayout is the layout used for time.Time values written to a sheet.
const DateLayout = "02-01-2006"

// ToRecords turns section data into one map per sheet row, keyed by field name.
// data may be a struct, a pointer to one, a slice of either, or a
// []map[string]interface{} which is returned unchanged. Map fields are expanded
// into "<Field>_<key>" entries.
func ToRecords(data interface{}) ([]map[string]interface{}, error) {
	if maps, ok := data.([]map[string]interface{}); ok {
		return maps, nil
	}

	val := reflect.Indirect(reflect.ValueOf(data))
	switch val.Kind() {
	case reflect.Struct:
		return []map[string]interface{}{recordOf(val)}, nil
	case reflect.Slice, reflect.Array:
		records := make([]map[string]interface{}, val.Len())
		for i := range records {
			elem := reflect.Indirect(val.Index(i))
			if elem.Kind() != reflect.Struct {
				return nil, fmt.Errorf("row %d: expected struct, got %v", i, elem.Kind())
			}
			records[i] = recordOf(elem)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("expected struct or slice, got %v", val.Kind())
	}
}

func recordOf(val reflect.Value) map[string]interface{} {
	typ := val.Type()
	record := make(map[string]interface{}, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := val.Field(i)
		if field.Kind() == reflect.Map {
			iter := field.MapRange()
			for iter.Next() {
				record[fmt.Sprintf("%s_%v", sf.Name, iter.Key().Interface())] = iter.Value().Interface()
			}
			continue
		}
		record[sf.Name] = cellValue(field)
	}
	return record
}

// cellValue reduces a field to something the stream writer renders sensibly.
func cellValue(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(DateLayout)
	case fmt.Stringer:
		return v.String()
	}
	if field.Kind() == reflect.String {
		return field.String()
	}
	return field.Interface()
}
