package align

import (
	"fmt"
	"math"

	"github.com/trajolab/trajo/trajectory"
)

// Distance computes the dynamic-time-warping distance between two
// trajectories that may differ in length or pacing — the same gesture
// recorded at different rates, say. The per-step cost is the Euclidean
// distance between the two D-vectors, so both trajectories must share the
// same dimension.
//
// Algorithm outline (full-matrix):
//  1. Let n = a.Len(), m = b.Len(). Allocate an (n+1)×(m+1) DP matrix D.
//  2. D[0][0] = 0; first row and column +∞.
//  3. For each (i, j) inside the window |i−j| ≤ Window:
//     D[i][j] = cost(i−1, j−1) + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1])
//     where p is the slope penalty.
//  4. distance = D[n][m]; optionally backtrack the warp path.
//
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
// Complexity: O(n·m) time; O(n·m) memory (FullMatrix) or O(m) (TwoRows).
func Distance(a, b *trajectory.Trajectory, opts Options) (float64, []PathPoint, error) {
	if a == nil || b == nil {
		return 0, nil, ErrEmptyTrajectory
	}
	if a.Dims() != b.Dims() {
		return 0, nil, fmt.Errorf("dimensions %d and %d: %w", a.Dims(), b.Dims(), ErrDimMismatch)
	}
	if opts.Window < -1 {
		return 0, nil, fmt.Errorf("window %d: %w", opts.Window, ErrBadWindow)
	}
	if opts.ReturnPath && opts.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	n, m := a.Len(), b.Len()
	am, bm := a.Matrix(), b.Matrix()
	d := a.Dims()
	cost := func(i, j int) float64 {
		var sq float64
		for k := 0; k < d; k++ {
			dev := am.At(i, k) - bm.At(j, k)
			sq += dev * dev
		}
		return math.Sqrt(sq)
	}

	window := opts.Window
	if window < 0 {
		window = math.MaxInt32
	}
	penalty := opts.SlopePenalty
	inf := math.Inf(1)

	if opts.MemoryMode == TwoRows {
		return distanceTwoRows(cost, n, m, window, penalty), nil, nil
	}

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				dp[i][j] = inf
				continue
			}
			best := min3(dp[i-1][j]+penalty, dp[i][j-1]+penalty, dp[i-1][j-1])
			dp[i][j] = cost(i-1, j-1) + best
		}
	}
	distance := dp[n][m]

	var path []PathPoint
	if opts.ReturnPath {
		path = backtrack(dp, n, m, penalty)
	}
	return distance, path, nil
}

// distanceTwoRows is the rolling-array variant: O(m) memory, no path.
func distanceTwoRows(cost func(i, j int) float64, n, m, window int, penalty float64) float64 {
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
			curr[j] = cost(i-1, j-1) + best
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// backtrack recovers the optimal warp path from a filled DP matrix by
// repeatedly stepping to the cheapest predecessor (diagonal wins ties).
func backtrack(dp [][]float64, n, m int, penalty float64) []PathPoint {
	path := make([]PathPoint, 0, n+m)
	i, j := n, m
	path = append(path, PathPoint{I: i - 1, J: j - 1})
	for i > 1 || j > 1 {
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
		path = append(path, PathPoint{I: i - 1, J: j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
