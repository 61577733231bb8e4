// Package graph provides the functional graph the solver decomposes.
//
// Nodes are plain integer indices into flat slices. An edge u -> v means
// "the value held at u flows into v". Every node has at most one incoming
// edge, because every destination is fed by exactly one source, while a
// node may have any number of outgoing edges (fan-out) or none (drop).
//
// Under the in-degree invariant every strongly connected component is
// either a single node, possibly carrying a self-loop, or a simple cycle.
//
// A Graph is transient: it is built, consumed and discarded within a single
// solver call, so it carries no locking.
package graph
