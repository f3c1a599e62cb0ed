// Package geom provides the planar predicates and small point-set helpers
// used by the mesh algorithms: orientation, point-in-triangle,
// point-in-circle, point-in-polygon, segment intersection, circumcircles,
// centroids, bounding boxes and convex hulls.
//
// Predicates work on the XY projection; use [XY] to drop Z from a 3D point.
package geom
