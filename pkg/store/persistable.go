package store

import (
	"fmt"
	"reflect"
	"strings"
)

// Persistable interface defines methods that persistent objects must implement
type Persistable interface {
	TableName() string
}

// generateCreateTableSQL generates CREATE TABLE SQL from struct tags
func generateCreateTableSQL(obj Persistable) string {
	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}

	var columns []string

	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)

		if !field.IsExported() {
			continue
		}

		// Fields without a database type are not persisted
		dbType := field.Tag.Get("dbtype")
		if dbType == "" {
			continue
		}

		columns = append(columns, fmt.Sprintf("%s %s", columnName(field), dbType))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		obj.TableName(), strings.Join(columns, ", "))
}

// generateIndexSQL generates index creation SQL from struct tags
func generateIndexSQL(obj Persistable) []string {
	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}

	var indexSQL []string

	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)

		if field.Tag.Get("index") == "" || field.Tag.Get("dbtype") == "" {
			continue
		}

		column := columnName(field)
		indexName := fmt.Sprintf("idx_%s_%s", obj.TableName(), column)
		indexSQL = append(indexSQL,
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", indexName, obj.TableName(), column))
	}

	return indexSQL
}

// getInsertData extracts column names, placeholders, and values for INSERT.
// Auto-generated columns (auto:"true") are left to the database.
func getInsertData(obj Persistable) ([]string, []string, []interface{}) {
	objValue := reflect.ValueOf(obj)
	objType := reflect.TypeOf(obj)

	if objValue.Kind() == reflect.Ptr {
		objValue = objValue.Elem()
		objType = objType.Elem()
	}

	var columns []string
	var placeholders []string
	var values []interface{}

	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)

		if !field.IsExported() || field.Tag.Get("dbtype") == "" {
			continue
		}
		if field.Tag.Get("auto") == "true" {
			continue
		}

		columns = append(columns, columnName(field))
		placeholders = append(placeholders, "?")
		values = append(values, objValue.Field(i).Interface())
	}

	return columns, placeholders, values
}

// getSelectData extracts column names and scan destinations for SELECT
func getSelectData(obj Persistable) ([]string, []interface{}) {
	objValue := reflect.ValueOf(obj)
	objType := reflect.TypeOf(obj)

	if objValue.Kind() == reflect.Ptr {
		objValue = objValue.Elem()
		objType = objType.Elem()
	}

	var columns []string
	var destinations []interface{}

	for i := 0; i < objType.NumField(); i++ {
		field := objType.Field(i)

		if !field.IsExported() || field.Tag.Get("dbtype") == "" {
			continue
		}

		columns = append(columns, columnName(field))
		destinations = append(destinations, objValue.Field(i).Addr().Interface())
	}

	return columns, destinations
}

func columnName(field reflect.StructField) string {
	if name := field.Tag.Get("column"); name != "" {
		return name
	}
	return strings.ToLower(field.Name)
}
