// Package conway implements Conway polyhedron operators over half-edge
// meshes.
//
// Every operator reads a [halfedge.Topology] and returns a brand-new
// [halfedge.Mesh]; the input is never modified, so one seed can feed any
// number of operators.
//
// Dual, Join, Kis and Gyro rewrite the topology directly. The others are
// compositions:
//
//	ambo     = dual(join(M))
//	needle   = kis(dual(M))
//	zip      = dual(kis(M))
//	truncate = dual(kis(dual(M)))
//	ortho    = join(join(M))
//	expand   = ambo(ambo(M))
//	snub     = dual(gyro(dual(M)))
//	meta     = kis(join(M))
//	bevel    = truncate(ambo(M))
//
// For a closed seed with V vertices, E edges and F faces the results obey
// fixed count laws, for example dual gives (F, E, V) and kis gives
// (V+F, 3E, 2E).
//
// Build evaluates complete notation such as "tkC", where the final letter
// names a platonic seed (T, C, O, D or I). Cache memoizes Build for
// programs that rebuild the same shapes.
//
// Open meshes are accepted. Dual only builds faces around interior
// vertices. Join only builds quads over interior edges and keeps just the
// vertices those quads touch.
package conway
