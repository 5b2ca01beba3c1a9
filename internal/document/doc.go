// Package document defines the immutable rich-text document model: the
// node tree (document, block, inline, text), stable node keys, and the
// coordinate types (Path, Point, Range) used to address positions within
// the tree.
//
// Node trees are treated as persistent values. An edit never mutates a
// tree in place; it produces a new tree that may share unchanged subtrees
// with the old one. Pointer identity on *Node is therefore a sound and
// O(1) "did this subtree change" test, which the render update gate
// relies on.
//
// Coordinates are always relative: a Path supplied with a node selects
// child indices starting at that node, and an empty Path denotes the node
// itself. Offsets count grapheme clusters within a text leaf.
package document
