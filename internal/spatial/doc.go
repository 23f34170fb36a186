// Package spatial provides the geometric primitives the interpreter is
// built on: guarded vector normalization, axis-angle rotation, axis-aligned
// bounding boxes, and ray casting against them.
//
// Vectors and quaternions are mgl64 types from go-gl/mathgl. All operations
// are pure; none of them hold state between calls.
package spatial
