package repository

import (
	"testing"
)

func TestBuildKeywordConditionSQLite(t *testing.T) {
	condition, argCount := buildKeywordCondition(nil, []string{"name", " ", "brand"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if want := "name LIKE ? OR brand LIKE ?"; condition != want {
		t.Fatalf("condition want %s got %s", want, condition)
	}
}

func TestBuildKeywordConditionPostgres(t *testing.T) {
	condition, argCount := buildKeywordConditionByDialect("postgres", []string{"name", "category"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if want := "name ILIKE ? OR category ILIKE ?"; condition != want {
		t.Fatalf("condition want %s got %s", want, condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%phone%", 3)
	if len(args) != 3 {
		t.Fatalf("args length want 3 got %d", len(args))
	}
	for i, arg := range args {
		if arg != "%phone%" {
			t.Fatalf("arg %d want %%phone%% got %v", i, arg)
		}
	}
}
