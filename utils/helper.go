package utils

import (
	"context"
	"strings"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm/schema"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// inputs share gin's `binding` tags
	v.SetTagName("binding")
	return v
}

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func DereferencePtr[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}

func Ptr[T any](v T) *T {
	return &v
}

// ValidateStruct runs the `binding` tags on an input struct before it is
// written to the database.
func ValidateStruct(input interface{}) error {
	return validate.Struct(input)
}

// ProcessValidationErrors flattens validator errors into field => tag pairs
// for the GraphQL error response.
func ProcessValidationErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	errorResponse := make(map[string]string)
	for _, fieldErr := range validationErrors {
		errorResponse[fieldErr.Field()] = fieldErr.Tag()
	}
	return errorResponse
}

// GetQueryFields maps the caller's requested GraphQL fields onto the model's
// column names, so queries only select what the request shape asks for.
// Fields with sub-selections map onto their foreign key column (e.g. a
// selected "origin" object selects origin_id).
func GetQueryFields(ctx context.Context, model interface{}) (fieldNames []string, err error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return
	}
	m := make(map[string]string)
	for _, field := range s.Fields {
		dbName := field.DBName
		modelName := strings.ToLower(field.Name)
		m[modelName] = dbName
	}

	fields := graphql.CollectFieldsCtx(ctx, nil)
	for _, column := range fields {
		if !strings.HasPrefix(column.Name, "__") {
			colName := strings.ToLower(column.Name)
			if len(column.Selections) == 0 {
				if dbName := m[colName]; len(dbName) > 0 {
					fieldNames = append(fieldNames, dbName)
				}
			} else if dbName := m[colName+"id"]; len(dbName) > 0 {
				fieldNames = append(fieldNames, dbName)
			}
		}
	}
	return
}

// GetPaginatedQueryFields does the same for connection-shaped queries,
// descending through edges { node { ... } }.
func GetPaginatedQueryFields(ctx context.Context, model interface{}) (fieldNames []string, err error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return
	}
	m := make(map[string]string)
	for _, field := range s.Fields {
		dbName := field.DBName
		modelName := strings.ToLower(field.Name)
		m[modelName] = dbName
	}

	fields := graphql.CollectFieldsCtx(ctx, nil)
	for _, column := range fields {
		if column.Name == "edges" {
			edgesFields := graphql.CollectFields(graphql.GetOperationContext(ctx), column.Selections, nil)
			if len(edgesFields) == 0 {
				break
			}
			nodeFields := graphql.CollectFields(graphql.GetOperationContext(ctx), edgesFields[0].Selections, nil)
			for _, nodeColumn := range nodeFields {
				if !strings.HasPrefix(nodeColumn.Name, "__") {
					colName := strings.ToLower(nodeColumn.Name)
					if len(nodeColumn.Selections) == 0 {
						if dbName := m[colName]; len(dbName) > 0 {
							fieldNames = append(fieldNames, dbName)
						}
					} else if dbName := m[colName+"id"]; len(dbName) > 0 {
						fieldNames = append(fieldNames, dbName)
					}
				}
			}
			break
		}
	}
	return
}

func UniqueSlice[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	unique := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}
