// Package grid models a fixed rectangular map of open and blocked cells as an
// implicit graph for pathfinding.
//
// What:
//
//   - Grid wraps a rectangular [][]int map (0 = open, anything else = blocked)
//     together with a Start and Goal Coordinate validated at construction.
//   - Neighbors yields every in-bounds open neighbour of a cell, paired with
//     the cost of the move, in the fixed order of the move list.
//   - Components groups open cells into regions that are mutually reachable.
//   - PathCost and ValidatePath re-check a path against the move rule.
//
// Moves:
//
//	The default connectivity is Conn6: up, right, down, down-right, left,
//	up-left, in exactly that order. Orthogonal moves cost 1.0, diagonal moves
//	cost 1.4. Conn4 and Conn8 exist for experiments; exploration order of the
//	search package depends on the move order, so it never changes silently.
//
//	      (-1,-1) (-1,0)
//	(0,-1)   [c]    (0,1)
//	        (1,0)  (1,1)
//
// Complexity:
//
//   - New:        O(R×C) time and memory (deep copy).
//   - Neighbors:  O(d), d = number of moves.
//   - Components: O(R×C×d).
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrOutOfBounds:     start or goal outside the map.
//   - ErrBlockedEndpoint: start or goal on a blocked cell.
//   - ErrBadConnectivity: unknown Connectivity value.
//   - ErrBadCost:         non-positive or non-finite move cost.
//   - ErrInvalidPath:     path rejected by ValidatePath or PathCost.
package grid
