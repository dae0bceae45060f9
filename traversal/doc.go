// Package traversal is the per-edge cost kernel of the street routing
// core: given a search state, an edge, and an assembled routing
// request, it decides whether the traversal is admissible and what
// time and weight it contributes, producing zero, one, or (for
// kiss-and-ride forks) two successor states.
package traversal
