// Package domain contains the core domain models of the pack pipeline.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Graph represents a dependency graph of pipeline stages.
type Graph struct {
	stages         map[string]Stage
	dependents     map[string][]string
	executionOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		stages:     make(map[string]Stage),
		dependents: make(map[string][]string),
	}
}

// AddStage adds a stage to the graph.
// It returns an error if a stage with the same name already exists.
func (g *Graph) AddStage(s Stage) error {
	if _, exists := g.stages[s.Name]; exists {
		return Fail(ErrStageAlreadyExists, "stage_name", s.Name)
	}
	g.stages[s.Name] = s
	for _, dep := range s.Dependencies {
		g.dependents[dep] = append(g.dependents[dep], s.Name)
	}
	return nil
}

// StageCount returns the number of stages in the graph.
func (g *Graph) StageCount() int {
	return len(g.stages)
}

// Stage returns the stage with the given name.
func (g *Graph) Stage(name string) (Stage, bool) {
	s, ok := g.stages[name]
	return s, ok
}

// Dependents returns the names of stages that depend directly on name.
func (g *Graph) Dependents(name string) []string {
	return g.dependents[name]
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order if successful. Stages are visited by name so the
// order is stable across runs.
func (g *Graph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.stages))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		stage, exists := g.stages[u]
		if !exists {
			return Fail(ErrMissingDependency, "dependency", u)
		}

		for _, dep := range stage.Dependencies {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(g.stages)) {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return Fail(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}

// Walk returns an iterator that yields stages in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Stage] {
	return func(yield func(Stage) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.stages[name]) {
				return
			}
		}
	}
}
