package service

import (
	"context"
	"testing"
)

func TestImportStudents_NameFallbacks(t *testing.T) {
	svc, _, _ := newTestService()

	result := svc.ImportStudents(context.Background(), []ImportItem{
		{Name: "John Doe"},
		{FullName: "Jane Roe"},
		{Email: "anon@example.com"},
	})

	if result.Total != 3 || result.Created != 3 || result.Failed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.JobID == "" {
		t.Error("expected a job id")
	}

	listed, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make(map[string]bool)
	for _, s := range listed {
		names[s.Name] = true
	}
	for _, want := range []string{"John Doe", "Jane Roe", "Unknown"} {
		if !names[want] {
			t.Errorf("expected imported record named %q, have %v", want, names)
		}
	}
}

func TestImportStudents_FireAndContinue(t *testing.T) {
	svc, _, recorder := newTestService()

	// The middle item fails validation; the items around it must still land.
	result := svc.ImportStudents(context.Background(), []ImportItem{
		{Name: "First Student"},
		{Name: "Second Student", Phone: "123"},
		{Name: "Third Student"},
	})

	if result.Created != 2 {
		t.Errorf("expected 2 created, got %d", result.Created)
	}
	if result.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", result.Failed)
	}
	if len(result.Errors) != 1 || result.Errors[0].Index != 1 {
		t.Errorf("expected error at index 1, got %v", result.Errors)
	}

	snap := recorder.Snapshot()
	if snap.ImportItemsCreated != 2 || snap.ImportItemsFailed != 1 {
		t.Errorf("unexpected import counters: %+v", snap)
	}
}

func TestImportStudents_EmptyInput(t *testing.T) {
	svc, _, _ := newTestService()

	result := svc.ImportStudents(context.Background(), nil)
	if result.Total != 0 || result.Created != 0 || result.Failed != 0 {
		t.Errorf("unexpected result for empty input: %+v", result)
	}
}

func TestImportStudents_ItemFieldsCarryOver(t *testing.T) {
	svc, _, _ := newTestService()

	result := svc.ImportStudents(context.Background(), []ImportItem{{
		Name:    "John Doe",
		Address: "12 Oak St",
		City:    "Springfield",
		State:   "IL",
		Email:   "john@example.com",
		Phone:   "5551234567",
	}})
	if result.Created != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	listed, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := listed[0]
	if got.Address != "12 Oak St" || got.City != "Springfield" || got.State != "IL" {
		t.Errorf("fields not carried over: %+v", got)
	}
}
