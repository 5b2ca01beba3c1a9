// Package overlay defines the three positional overlay kinds applied to
// a document during rendering — selection, decorations, and annotations —
// and the range projection that re-expresses an overlay from a node's
// coordinate space into one of its children's.
//
// Projection is the heart of the render pass: every overlay a node holds
// is expressed relative to that node, and handing it to a child means
// either rebasing it (the endpoint lies inside the child), clamping it to
// the child's subtree extremity (the overlay spans through the child), or
// dropping it (the overlay does not reach the child at all).
package overlay
