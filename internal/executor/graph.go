package executor

import "github.com/go-runz/runz/internal/planner"

// dependencyGraph derives the scheduling graph from a Plan: a Call depends
// on each of its own Prerequisites (the Group it backs cannot complete
// until they have), plus one implicit edge per consecutive, non-parallel
// sibling pair — by default sibling Jobs run serially.
type dependencyGraph struct {
	deps       map[*planner.Call]map[*planner.Call]bool
	dependents map[*planner.Call][]*planner.Call
}

func buildDependencyGraph(plan *planner.Plan) *dependencyGraph {
	g := &dependencyGraph{
		deps:       make(map[*planner.Call]map[*planner.Call]bool),
		dependents: make(map[*planner.Call][]*planner.Call),
	}
	for _, call := range plan.Calls() {
		g.deps[call] = make(map[*planner.Call]bool)
	}

	addEdge := func(dependent, dependency *planner.Call) {
		if g.deps[dependent][dependency] {
			return
		}
		g.deps[dependent][dependency] = true
		g.dependents[dependency] = append(g.dependents[dependency], dependent)
	}

	for _, call := range plan.Calls() {
		pre := call.Prerequisites()
		for _, p := range pre {
			addEdge(call, p)
		}
		for i := 1; i < len(pre); i++ {
			if !plan.AreParallel(pre[i-1], pre[i]) {
				addEdge(pre[i], pre[i-1])
			}
		}
	}
	return g
}

func (g *dependencyGraph) depCount(call *planner.Call) int {
	return len(g.deps[call])
}
