// Package bvh implements the bounding-volume hierarchy that accelerates
// nearest-hit queries against a primitive group: a binary tree built by
// median split over a randomly chosen centroid axis, traversed with
// AABB-guided pruning. Each split picks a fresh random axis and partitions
// by centroid median via a linear-time partial sort, down to one primitive
// per leaf -- no longest-axis heuristic, no multi-primitive leaf threshold.
package bvh

import (
	"math/rand"

	"github.com/White-Link/pathtracer/internal/geom"
	"github.com/White-Link/pathtracer/internal/vecmath"
)

// entry pairs a primitive with its precomputed bounding box, avoiding a
// recomputation of BoundingBox() at every partition step.
type entry struct {
	primitive geom.Primitive
	box       geom.AABB
}

// node is either a leaf (exactly one primitive) or an internal node (exactly
// two children).
type node struct {
	box      geom.AABB
	leaf     *entry
	left     *node
	right    *node
}

// BVH is a binary acceleration index over a group of primitives. The zero
// value is not usable; build one with Build.
type BVH struct {
	root *node
	// rng drives the random axis choice at each split. Build runs once,
	// synchronously, at scene construction, so a single, non-shared
	// generator here is safe -- it never runs concurrently with traversal
	// or with itself.
	rng *rand.Rand
}

// Build constructs a BVH over primitives by recursively partitioning on a
// uniformly random axis, using a median split (by centroid) to divide each
// range in two. A single primitive becomes a leaf. Returns nil for an empty
// primitive list -- an index with no primitives is a valid, always-miss
// index, not an error.
func Build(primitives []geom.Primitive, seed int64) *BVH {
	if len(primitives) == 0 {
		return nil
	}
	entries := make([]entry, len(primitives))
	for i, p := range primitives {
		entries[i] = entry{primitive: p, box: p.BoundingBox()}
	}
	b := &BVH{rng: rand.New(rand.NewSource(seed))}
	b.root = b.build(entries)
	return b
}

func (b *BVH) build(entries []entry) *node {
	box := entries[0].box
	for _, e := range entries[1:] {
		box = box.Union(e.box)
	}
	if len(entries) == 1 {
		leaf := entries[0]
		return &node{box: box, leaf: &leaf}
	}

	axis := b.rng.Intn(3)
	mid := len(entries) / 2
	nthElementByCentroidAxis(entries, mid, axis)

	left := b.build(entries[:mid])
	right := b.build(entries[mid:])
	return &node{box: box, left: left, right: right}
}

// nthElementByCentroidAxis partitions entries in place so that the element
// at index mid is the one that would occupy that position in a full sort
// by centroid coordinate along axis, with every element before it no
// greater and every element after it no smaller -- a linear-time median
// split via Hoare's quickselect.
func nthElementByCentroidAxis(entries []entry, mid, axis int) {
	key := func(e entry) float64 { return e.box.CentroidAxis(axis) }
	lo, hi := 0, len(entries)-1
	for lo < hi {
		pivot := key(entries[(lo+hi)/2])
		i, j := lo, hi
		for i <= j {
			for key(entries[i]) < pivot {
				i++
			}
			for key(entries[j]) > pivot {
				j--
			}
			if i <= j {
				entries[i], entries[j] = entries[j], entries[i]
				i++
				j--
			}
		}
		if mid <= j {
			hi = j
		} else if mid >= i {
			lo = i
		} else {
			break
		}
	}
}

// NearestHit traverses the BVH, returning the globally nearest intersection
// of r with any primitive in the tree, or an empty Intersection. The
// traversal is conservative: it searches the first child fully, then skips
// the second child only when the first child's hit lies strictly before the
// ray enters the second child's box, so the returned hit is always the true
// nearest one.
func (b *BVH) NearestHit(r vecmath.Ray) geom.Intersection {
	if b == nil || b.root == nil {
		return geom.EmptyIntersection()
	}
	return b.hit(b.root, r)
}

func (b *BVH) hit(n *node, r vecmath.Ray) geom.Intersection {
	boxHit := n.box.Intersect(r)
	if boxHit.IsEmpty() {
		return geom.EmptyIntersection()
	}
	if n.leaf != nil {
		return n.leaf.primitive.Intersect(r)
	}

	firstHit := b.hit(n.left, r)
	secondEntry := n.right.box.Intersect(r)
	// A back-facing box hit is the exit: the ray starts inside the second
	// child's box, so no hit in it can be ruled out.
	if geom.Less(firstHit, secondEntry) && (secondEntry.IsEmpty() || secondEntry.FrontFacing()) {
		return firstHit
	}
	secondHit := b.hit(n.right, r)
	return geom.NearestMerge(firstHit, secondHit)
}

// Bounds returns the bounding box of the whole tree, or an empty-at-origin
// box for a BVH with no primitives.
func (b *BVH) Bounds() geom.AABB {
	if b == nil || b.root == nil {
		return geom.NewAABB(vecmath.Vector{}, vecmath.Vector{})
	}
	return b.root.box
}

// LeafCount returns the number of leaves in the tree, used by tests to
// check the "n primitives in, n leaves out" invariant.
func (b *BVH) LeafCount() int {
	if b == nil || b.root == nil {
		return 0
	}
	return countLeaves(b.root)
}

func countLeaves(n *node) int {
	if n.leaf != nil {
		return 1
	}
	total := 0
	if n.left != nil {
		total += countLeaves(n.left)
	}
	if n.right != nil {
		total += countLeaves(n.right)
	}
	return total
}

// NaiveList is the unaccelerated O(n) alternative to BVH, used by tests to
// check that BVH traversal agrees with a linear scan.
type NaiveList struct {
	Primitives []geom.Primitive
}

// NearestHit linearly scans every primitive and returns the nearest hit.
func (l NaiveList) NearestHit(r vecmath.Ray) geom.Intersection {
	best := geom.EmptyIntersection()
	for _, p := range l.Primitives {
		best = geom.NearestMerge(best, p.Intersect(r))
	}
	return best
}
