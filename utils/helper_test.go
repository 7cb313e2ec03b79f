package utils_test

import (
	"reflect"
	"testing"

	"github.com/lcadata/assembly_backend/utils"
)

func TestUniqueSliceKeepsFirstOccurrenceOrder(t *testing.T) {
	got := utils.UniqueSlice([]string{"b", "a", "b", "c", "a"})
	if !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("UniqueSlice = %v", got)
	}
}

func TestValidateStructRunsBindingTags(t *testing.T) {
	type input struct {
		Name string `json:"name" binding:"required"`
	}

	if err := utils.ValidateStruct(&input{}); err == nil {
		t.Fatalf("ValidateStruct accepted a missing required field")
	}
	if err := utils.ValidateStruct(&input{Name: "ok"}); err != nil {
		t.Fatalf("ValidateStruct: %v", err)
	}
}
