// Package scenario loads search scenarios: a map, start and goal, and the
// depth settings for the depth-limited strategies.
//
// Scenarios are YAML documents. The map is a list of strings, one per row:
//
//	'.' or '0'  open cell
//	'#' or '1'  blocked cell
//	'S'         start (open)
//	'G'         goal (open)
//
// Spaces inside a row are ignored. Start and goal may instead be given as
// [row, col] pairs; explicit pairs win over markers.
//
//	name: wall
//	map:
//	  - "....#....."
//	  - ".S..#..G.."
//	connectivity: conn6
//	depth_limit: 15
//
// A Catalog indexes scenarios by name. Builtin returns the catalog of
// scenarios compiled into the binary; LoadDir adds every *.yaml or *.yml
// file of a directory.
package scenario
