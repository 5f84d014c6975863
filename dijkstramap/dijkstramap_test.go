package dijkstramap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gpath "gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/gridpath/dijkstramap"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridmap"
)

// DijkstraMapSuite exercises the distance field under various scenarios.
type DijkstraMapSuite struct {
	suite.Suite
}

func (s *DijkstraMapSuite) openMap(w, h int, opts gridmap.GridOptions) *gridmap.GridMap {
	gm, err := gridmap.NewGridMap(w, h, opts)
	require.NoError(s.T(), err)
	return gm
}

func (s *DijkstraMapSuite) newField(w, h int, opts ...dijkstramap.Option) *dijkstramap.Map {
	md, err := dijkstramap.New(w, h, opts...)
	require.NoError(s.T(), err)
	return md
}

func conn4() gridmap.GridOptions {
	o := gridmap.DefaultGridOptions()
	o.Conn = gridmap.Conn4
	return o
}

// TestConstructorErrors verifies dimension and option validation.
func (s *DijkstraMapSuite) TestConstructorErrors() {
	_, err := dijkstramap.New(0, 5)
	require.ErrorIs(s.T(), err, dijkstramap.ErrEmptyGrid)
	_, err = dijkstramap.New(5, -1)
	require.ErrorIs(s.T(), err, dijkstramap.ErrEmptyGrid)
	_, err = dijkstramap.New(5, 5, dijkstramap.WithMaxDistance(-1))
	require.ErrorIs(s.T(), err, dijkstramap.ErrOptionViolation)
	_, err = dijkstramap.New(5, 5, dijkstramap.WithMaxDistance(math.NaN()))
	require.ErrorIs(s.T(), err, dijkstramap.ErrOptionViolation)

	md := s.newField(4, 3)
	w, h := md.Size()
	require.Equal(s.T(), 4, w)
	require.Equal(s.T(), 3, h)
	require.Equal(s.T(), dijkstramap.Unreached, md.DistanceAt(grid.Pos(0, 0)))
}

// TestGoalBookkeeping checks AddGoal validation, ordering and the stale flag.
func (s *DijkstraMapSuite) TestGoalBookkeeping() {
	md := s.newField(5, 5)
	require.False(s.T(), md.Stale())

	require.ErrorIs(s.T(), md.AddGoal(grid.Pos(5, 0), 0), grid.ErrOutOfBounds)
	require.ErrorIs(s.T(), md.AddGoal(grid.Pos(0, -1), 0), grid.ErrOutOfBounds)
	require.ErrorIs(s.T(), md.AddGoal(grid.Pos(1, 1), math.Inf(1)), dijkstramap.ErrBadGoalCost)
	require.False(s.T(), md.Stale(), "rejected goals leave the field untouched")

	require.NoError(s.T(), md.AddGoal(grid.Pos(3, 2), 4))
	require.NoError(s.T(), md.AddGoal(grid.Pos(1, 0), 2))
	require.NoError(s.T(), md.AddGoal(grid.Pos(3, 2), 1)) // overwrite
	require.True(s.T(), md.Stale())
	require.Equal(s.T(), []dijkstramap.Goal{
		{Pos: grid.Pos(1, 0), Cost: 2},
		{Pos: grid.Pos(3, 2), Cost: 1},
	}, md.Goals())

	gm := s.openMap(5, 5, conn4())
	require.NoError(s.T(), md.Recalculate(gm))
	require.False(s.T(), md.Stale())
	require.Equal(s.T(), 1.0, md.DistanceAt(grid.Pos(3, 2)))

	md.RemoveGoal(grid.Pos(4, 4)) // unknown goal
	require.False(s.T(), md.Stale())
	md.RemoveGoal(grid.Pos(1, 0))
	require.True(s.T(), md.Stale())
	require.Len(s.T(), md.Goals(), 1)

	md.ClearGoals()
	require.Empty(s.T(), md.Goals())
	require.NoError(s.T(), md.Recalculate(gm))
	require.Equal(s.T(), dijkstramap.Unreached, md.DistanceAt(grid.Pos(3, 2)))
}

// TestNoGoals leaves every cell unreached and every descent blocked.
func (s *DijkstraMapSuite) TestNoGoals() {
	gm := s.openMap(6, 4, gridmap.DefaultGridOptions())
	md := s.newField(6, 4)
	require.NoError(s.T(), md.Recalculate(gm))

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			p := grid.Pos(x, y)
			require.Equal(s.T(), dijkstramap.Unreached, md.DistanceAt(p))
			_, err := md.NextLowest(p, gm)
			require.ErrorIs(s.T(), err, grid.ErrNoImprovement)
		}
	}
}

// TestWeightedGoals steps toward the nearer-weighted of two goals past a wall.
func (s *DijkstraMapSuite) TestWeightedGoals() {
	gm := s.openMap(20, 20, gridmap.DefaultGridOptions())
	for y := 5; y <= 7; y++ {
		require.NoError(s.T(), gm.SetObstacle(grid.Pos(5, y), true))
	}
	md := s.newField(20, 20)
	require.NoError(s.T(), md.AddGoal(grid.Pos(10, 10), 0))
	require.NoError(s.T(), md.AddGoal(grid.Pos(15, 15), 5))
	require.NoError(s.T(), md.Recalculate(gm))

	next, err := md.NextLowest(grid.Pos(13, 13), gm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), grid.Pos(12, 12), next)

	require.InDelta(s.T(), 3*math.Sqrt2, md.DistanceAt(grid.Pos(13, 13)), 1e-9)
	require.Equal(s.T(), 0.0, md.DistanceAt(grid.Pos(10, 10)))
	require.Equal(s.T(), 5.0, md.DistanceAt(grid.Pos(15, 15)))
	require.Equal(s.T(), dijkstramap.Unreached, md.DistanceAt(grid.Pos(5, 6)))
	require.Equal(s.T(), dijkstramap.Unreached, md.DistanceAt(grid.Pos(-1, 3)))

	// a goal is a local minimum
	_, err = md.NextLowest(grid.Pos(10, 10), gm)
	require.ErrorIs(s.T(), err, grid.ErrNoImprovement)
	_, err = md.NextLowest(grid.Pos(20, 0), gm)
	require.ErrorIs(s.T(), err, grid.ErrOutOfBounds)
}

// TestMatchesGonum compares the field with a per-goal gonum Dijkstra.
func (s *DijkstraMapSuite) TestMatchesGonum() {
	rng := rand.New(rand.NewSource(5))
	const w, h = 25, 18
	for _, opts := range []gridmap.GridOptions{gridmap.DefaultGridOptions(), conn4()} {
		gm := s.openMap(w, h, opts)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := grid.Pos(x, y)
				switch r := rng.Float64(); {
				case r < 0.25:
					require.NoError(s.T(), gm.SetObstacle(p, true))
				case r < 0.5:
					require.NoError(s.T(), gm.SetWeight(p, 1+4*rng.Float64()))
				}
			}
		}
		md := s.newField(w, h)
		for i := 0; i < 4; i++ {
			require.NoError(s.T(), md.AddGoal(grid.Pos(rng.Intn(w), rng.Intn(h)), float64(rng.Intn(6))))
		}
		require.NoError(s.T(), md.Recalculate(gm))

		g := gm.ToGraph()
		want := make([]float64, w*h)
		for i := range want {
			want[i] = math.Inf(1)
		}
		for _, goal := range md.Goals() {
			if gm.IsObstacle(goal.Pos) {
				continue
			}
			sp := gpath.DijkstraFrom(g.Node(gm.NodeID(goal.Pos)), g)
			for i := range want {
				if gm.IsObstacle(grid.FromIndex(i, w)) {
					continue
				}
				want[i] = math.Min(want[i], goal.Cost+sp.WeightTo(int64(i)))
			}
		}

		for i, got := range md.Values() {
			if math.IsInf(want[i], 1) {
				require.Equal(s.T(), dijkstramap.Unreached, got, "cell %v", grid.FromIndex(i, w))
				continue
			}
			require.InDelta(s.T(), want[i], got, 1e-9, "cell %v", grid.FromIndex(i, w))
		}
	}
}

// TestIdempotentAndDescending recalculates twice and walks every cell downhill.
func (s *DijkstraMapSuite) TestIdempotentAndDescending() {
	rng := rand.New(rand.NewSource(9))
	const w, h = 30, 30
	gm := s.openMap(w, h, gridmap.DefaultGridOptions())
	for i := 0; i < w*h/4; i++ {
		require.NoError(s.T(), gm.SetObstacle(grid.Pos(rng.Intn(w), rng.Intn(h)), true))
	}
	md := s.newField(w, h)
	goals := map[grid.Position]bool{}
	for len(goals) < 3 {
		p := grid.Pos(rng.Intn(w), rng.Intn(h))
		if !gm.IsObstacle(p) {
			goals[p] = true
			require.NoError(s.T(), md.AddGoal(p, 0))
		}
	}

	require.NoError(s.T(), md.Recalculate(gm))
	first := md.Values()
	require.NoError(s.T(), md.Recalculate(gm))
	require.Equal(s.T(), first, md.Values())

	for i, d := range first {
		if d == dijkstramap.Unreached {
			continue
		}
		p := grid.FromIndex(i, w)
		for steps := 0; ; steps++ {
			require.Less(s.T(), steps, w*h, "descent from %v does not terminate", grid.FromIndex(i, w))
			next, err := md.NextLowest(p, gm)
			if err != nil {
				require.ErrorIs(s.T(), err, grid.ErrNoImprovement)
				break
			}
			require.Less(s.T(), md.DistanceAt(next), md.DistanceAt(p))
			_, err = grid.StepCost(gm, p, next)
			require.NoError(s.T(), err)
			p = next
		}
		require.True(s.T(), goals[p], "descent from %v stopped at %v", grid.FromIndex(i, w), p)
	}
}

// TestObstacleGoalSkipped ignores goals that sit on obstacles.
func (s *DijkstraMapSuite) TestObstacleGoalSkipped() {
	gm := s.openMap(4, 4, conn4())
	require.NoError(s.T(), gm.SetObstacle(grid.Pos(2, 2), true))
	md := s.newField(4, 4)
	require.NoError(s.T(), md.AddGoal(grid.Pos(2, 2), 0))
	require.NoError(s.T(), md.Recalculate(gm))
	for _, v := range md.Values() {
		require.Equal(s.T(), dijkstramap.Unreached, v)
	}
}

// TestMaxDistance leaves the far side of the corridor unreached.
func (s *DijkstraMapSuite) TestMaxDistance() {
	gm := s.openMap(10, 1, conn4())
	var settled []grid.Position
	md := s.newField(10, 1,
		dijkstramap.WithMaxDistance(3),
		dijkstramap.WithOnSettle(func(p grid.Position, _ float64) { settled = append(settled, p) }),
	)
	require.NoError(s.T(), md.AddGoal(grid.Pos(0, 0), 0))
	require.NoError(s.T(), md.Recalculate(gm))

	for x := 0; x < 10; x++ {
		want := float64(x)
		if x > 3 {
			want = dijkstramap.Unreached
		}
		require.Equal(s.T(), want, md.DistanceAt(grid.Pos(x, 0)), "x=%d", x)
	}
	require.Equal(s.T(), []grid.Position{grid.Pos(0, 0), grid.Pos(1, 0), grid.Pos(2, 0), grid.Pos(3, 0)}, settled)
}

// TestMaxDistance_GoalAboveCap leaves a goal whose base exceeds the cap unreached.
func (s *DijkstraMapSuite) TestMaxDistance_GoalAboveCap() {
	gm := s.openMap(5, 1, conn4())
	var settled []grid.Position
	md := s.newField(5, 1,
		dijkstramap.WithMaxDistance(3),
		dijkstramap.WithOnSettle(func(p grid.Position, _ float64) { settled = append(settled, p) }),
	)
	require.NoError(s.T(), md.AddGoal(grid.Pos(4, 0), 10))
	require.NoError(s.T(), md.AddGoal(grid.Pos(0, 0), 2))
	require.NoError(s.T(), md.Recalculate(gm))

	require.Equal(s.T(), []float64{2, 3, dijkstramap.Unreached, dijkstramap.Unreached, dijkstramap.Unreached}, md.Values())
	require.Equal(s.T(), []grid.Position{grid.Pos(0, 0), grid.Pos(1, 0)}, settled)
	_, err := md.NextLowest(grid.Pos(4, 0), gm)
	require.ErrorIs(s.T(), err, grid.ErrNoImprovement)

	// values pushed over the cap by Apply are dropped on Rescan
	md.Apply(func(v float64) float64 { return v + 1 })
	require.NoError(s.T(), md.Rescan(gm))
	require.Equal(s.T(), []float64{3, dijkstramap.Unreached, dijkstramap.Unreached, dijkstramap.Unreached, dijkstramap.Unreached}, md.Values())
}

// TestFleeMap inverts an approach field and rescans it.
//
// Corridor 10×1, goal at x=2; after ×(-1.2) and a rescan the field is
//
//	x:  0     1     2     3     4   …   9
//	  -2.4  -1.4  -1.4  -2.4  -3.4 … -8.4
func (s *DijkstraMapSuite) TestFleeMap() {
	gm := s.openMap(10, 1, conn4())
	md := s.newField(10, 1)
	require.NoError(s.T(), md.AddGoal(grid.Pos(2, 0), 0))
	require.NoError(s.T(), md.Recalculate(gm))

	md.Apply(func(v float64) float64 { return v * -1.2 })
	require.InDelta(s.T(), -8.4, md.DistanceAt(grid.Pos(9, 0)), 1e-9)
	require.NoError(s.T(), md.Rescan(gm))

	want := []float64{-2.4, -1.4, -1.4, -2.4, -3.4, -4.4, -5.4, -6.4, -7.4, -8.4}
	require.InDeltaSlice(s.T(), want, md.Values(), 1e-9)

	next, err := md.NextLowest(grid.Pos(2, 0), gm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), grid.Pos(3, 0), next, "flee away from the goal")
	next, err = md.NextLowest(grid.Pos(1, 0), gm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), grid.Pos(0, 0), next, "flee into the near corner")
}

// TestApplySkipsUnreached keeps the sentinel intact.
func (s *DijkstraMapSuite) TestApplySkipsUnreached() {
	gm := s.openMap(3, 1, conn4())
	require.NoError(s.T(), gm.SetObstacle(grid.Pos(1, 0), true))
	md := s.newField(3, 1)
	require.NoError(s.T(), md.AddGoal(grid.Pos(0, 0), 2))
	require.NoError(s.T(), md.Recalculate(gm))

	md.Apply(func(v float64) float64 { return v + 1 })
	require.Equal(s.T(), 3.0, md.DistanceAt(grid.Pos(0, 0)))
	require.Equal(s.T(), dijkstramap.Unreached, md.DistanceAt(grid.Pos(2, 0)))
}

// TestExits lists neighbors lowest first with unreached cells last.
func (s *DijkstraMapSuite) TestExits() {
	gm := s.openMap(3, 3, conn4())
	require.NoError(s.T(), gm.SetObstacle(grid.Pos(1, 0), true))
	md := s.newField(3, 3)
	require.NoError(s.T(), md.AddGoal(grid.Pos(2, 1), 0))
	require.NoError(s.T(), md.Recalculate(gm))

	exits, err := md.Exits(grid.Pos(1, 1), gm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []dijkstramap.Step{
		{Pos: grid.Pos(2, 1), Distance: 0},
		{Pos: grid.Pos(1, 2), Distance: 2},
		{Pos: grid.Pos(0, 1), Distance: 2},
	}, exits)

	_, err = md.Exits(grid.Pos(3, 3), gm)
	require.ErrorIs(s.T(), err, grid.ErrOutOfBounds)
	require.ErrorContains(s.T(), err, "(3,3)")
	_, err = md.Exits(grid.Pos(0, 0), nil)
	require.ErrorIs(s.T(), err, grid.ErrNilMap)
}

// TestDimensionMismatch rejects maps of another size.
func (s *DijkstraMapSuite) TestDimensionMismatch() {
	md := s.newField(5, 5)
	other := s.openMap(5, 6, conn4())
	require.ErrorIs(s.T(), md.Recalculate(other), grid.ErrDimensionMismatch)
	require.ErrorIs(s.T(), md.Rescan(other), grid.ErrDimensionMismatch)
	_, err := md.NextLowest(grid.Pos(0, 0), other)
	require.ErrorIs(s.T(), err, grid.ErrDimensionMismatch)
	_, err = md.Exits(grid.Pos(0, 0), other)
	require.ErrorIs(s.T(), err, grid.ErrDimensionMismatch)
	require.ErrorIs(s.T(), md.Recalculate(nil), grid.ErrNilMap)
	_, err = md.NextLowest(grid.Pos(0, 0), nil)
	require.ErrorIs(s.T(), err, grid.ErrNilMap)
}

// negativeMap is an open 3×3 map whose moves out of (1,1) cost -1.
type negativeMap struct{ *gridmap.GridMap }

func (m negativeMap) Neighbors(p grid.Position, buf []grid.Neighbor) []grid.Neighbor {
	buf = m.GridMap.Neighbors(p, buf)
	if p == grid.Pos(1, 1) {
		for i := range buf {
			buf[i].Cost = -1
		}
	}
	return buf
}

// TestNegativeCost resets the field and leaves it stale.
func (s *DijkstraMapSuite) TestNegativeCost() {
	base := s.openMap(3, 3, conn4())
	md := s.newField(3, 3)
	require.NoError(s.T(), md.AddGoal(grid.Pos(0, 1), 0))
	require.NoError(s.T(), md.Recalculate(base))
	require.Equal(s.T(), 1.0, md.DistanceAt(grid.Pos(1, 1)))

	err := md.Recalculate(negativeMap{base})
	require.ErrorIs(s.T(), err, grid.ErrNegativeCost)
	require.True(s.T(), md.Stale())
	for _, v := range md.Values() {
		require.Equal(s.T(), dijkstramap.Unreached, v)
	}
}

// Entry point for running the suite.
func TestDijkstraMapSuite(t *testing.T) {
	suite.Run(t, new(DijkstraMapSuite))
}
