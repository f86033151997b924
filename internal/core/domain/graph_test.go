package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_AddStage(t *testing.T) {
	g := domain.NewGraph()
	stage := domain.Stage{Name: "fetch-mods"}

	if err := g.AddStage(stage); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddStage(stage)
	if err == nil {
		t.Fatal("expected error when adding duplicate stage, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["stage_name"].(string); !ok || name != "fetch-mods" {
		t.Errorf("expected metadata stage_name=fetch-mods, got %v", meta["stage_name"])
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	if err := g.AddStage(domain.Stage{Name: "A", Dependencies: []string{"B"}}); err != nil {
		t.Fatalf("failed to add stage A: %v", err)
	}
	if err := g.AddStage(domain.Stage{Name: "B", Dependencies: []string{"A"}}); err != nil {
		t.Fatalf("failed to add stage B: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if cycle, ok := zErr.Metadata()["cycle"].(string); !ok || cycle != "A -> B -> A" {
		t.Errorf("expected metadata cycle=A -> B -> A, got %v", zErr.Metadata()["cycle"])
	}
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	if err := g.AddStage(domain.Stage{Name: "server-pack", Dependencies: []string{"fetch-mods"}}); err != nil {
		t.Fatalf("failed to add stage: %v", err)
	}

	err := g.Validate()
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C
	// Execution order: C, B, A
	stages := []domain.Stage{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"C"}},
		{Name: "C"},
	}
	for _, s := range stages {
		if err := g.AddStage(s); err != nil {
			t.Fatalf("failed to add stage %s: %v", s.Name, err)
		}
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	executed := make([]string, 0, 3)
	for stage := range g.Walk() {
		executed = append(executed, stage.Name)
	}

	if len(executed) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(executed))
	}
	if executed[0] != "C" || executed[1] != "B" || executed[2] != "A" {
		t.Errorf("unexpected execution order: %v", executed)
	}

	if deps := g.Dependents("C"); len(deps) != 1 || deps[0] != "B" {
		t.Errorf("expected B to depend on C, got %v", deps)
	}
}
