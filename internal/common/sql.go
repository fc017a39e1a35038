package common

import (
	"errors"
	"reflect"
)

// get value each fields from entities
func GetFieldValues(i interface{}) ([]interface{}, error) {
	entities := reflect.ValueOf(i)
	if entities.Kind() != reflect.Struct {
		return nil, errors.New("invalid entity for get field values")
	}

	values := make([]interface{}, entities.NumField())
	for i := 0; i < entities.NumField(); i++ {
		v := entities.Field(i).Interface()
		values[i] = v
	}
	return values, nil
}
