package traversal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitgraph/streetcore/core"
	"github.com/transitgraph/streetcore/request"
	"github.com/transitgraph/streetcore/tstate"
	"github.com/transitgraph/streetcore/turncost"
)

// testRequest builds a request with unit speeds and reluctances so
// expected weights stay readable in assertions.
func testRequest() *request.RoutingRequest {
	return &request.RoutingRequest{
		WalkSpeed:         1.0,
		BikeSpeed:         5.0,
		CarSpeed:          10.0,
		WalkReluctance:    1.0,
		StairsReluctance:  3.0,
		TurnReluctance:    1.0,
		Optimize:          request.OptimizeQuick,
		MaxSlope:          0.0833,
		MaxWalkDistance:   math.MaxFloat64,
		MaxPreTransitTime: math.MaxInt32,
		PermitFootway:     true,
		Accessibility:     request.NeutralAccessibilityVector(),
	}
}

// flatEdge returns a flat 100m edge between from and to with the given
// permission, registered in g.
func flatEdge(t *testing.T, g *core.Graph, id, from, to string, permission core.TraversalPermission) *core.StreetEdge {
	t.Helper()
	carSpeed := float32(0)
	if permission.Allows(core.ModeCar) {
		carSpeed = 10.0
	}
	e, err := core.NewStreetEdge(id, from, to, 100_000, permission, carSpeed)
	require.NoError(t, err)
	e.SlopeSpeedEffectiveLength = e.LengthMeters()
	e.SlopeWorkCostEffectiveLength = e.LengthMeters()
	require.NoError(t, g.AddStreetEdge(e))
	return e
}

func originAt(vertex string, mode core.TraverseMode) *tstate.State {
	return &tstate.State{Vertex: vertex, Mode: mode, BackMode: mode}
}

func TestWalkBaseWeight(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	req := testRequest()

	s1 := Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk)
	require.NotNil(t, s1)

	// Flat 100m at 1 m/s: slope cost equals length, weight = 100 * 4/3.
	assert.InDelta(t, 100*4.0/3.0, s1.Weight, 1e-9)
	assert.Equal(t, int64(134), s1.TimeSeconds)
	assert.Equal(t, 100.0, s1.WalkDistance)
	assert.Equal(t, "B", s1.Vertex)
	assert.Equal(t, core.ModeWalk, s1.BackMode)
	assert.Same(t, e, s1.BackEdge)
}

func TestUTurnGuard(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	ba := flatEdge(t, g, "BA", "B", "A", core.PermitWalk)
	req := testRequest()

	s1 := Traverse(g, originAt("A", core.ModeWalk), ab, req, core.ModeWalk)
	require.NotNil(t, s1)

	assert.Nil(t, Traverse(g, s1, ba, req, core.ModeWalk), "immediate reversal must die")
}

func TestAccessibilityMultiplierComposition(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	e.SetFlag(core.FlagCrossing)
	e.SetFlag(core.FlagTLSound)

	neutral := testRequest()
	base := Traverse(g, originAt("A", core.ModeWalk), e, neutral, core.ModeWalk)
	require.NotNil(t, base)

	disliked := testRequest()
	disliked.Accessibility.PermitCrossing = request.PreferenceDislike
	disliked.Accessibility.PermitTrafficLightSound = request.PreferenceDislike
	worse := Traverse(g, originAt("A", core.ModeWalk), e, disliked, core.ModeWalk)
	require.NotNil(t, worse)

	// Two disliked features on one crossing compose to x4.
	assert.InDelta(t, 4.0, worse.Weight/base.Weight, 1e-9)
}

func TestAccessibilityPreferHalves(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	e.SetFlag(core.FlagBollard)

	neutral := testRequest()
	base := Traverse(g, originAt("A", core.ModeWalk), e, neutral, core.ModeWalk)
	require.NotNil(t, base)

	preferring := testRequest()
	preferring.Accessibility.PermitBollard = request.PreferencePrefer
	better := Traverse(g, originAt("A", core.ModeWalk), e, preferring, core.ModeWalk)
	require.NotNil(t, better)

	assert.InDelta(t, 0.5, better.Weight/base.Weight, 1e-9)
}

func TestCrossingGroupOnlyAppliesOnCrossings(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	// A traffic light cue on an edge that is not itself a crossing.
	e.SetFlag(core.FlagTLSound)

	req := testRequest()
	req.Accessibility.PermitTrafficLightSound = request.PreferenceDislike

	base := Traverse(g, originAt("A", core.ModeWalk), e, testRequest(), core.ModeWalk)
	got := Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk)
	require.NotNil(t, base)
	require.NotNil(t, got)

	assert.InDelta(t, 1.0, got.Weight/base.Weight, 1e-9)
}

func TestForbiddenFeatureKillsTraversal(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	e.SetFlag(core.FlagBollard)

	req := testRequest()
	req.Accessibility.PermitBollard = request.PreferenceForbid

	assert.Nil(t, Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk))
}

func TestStairsReluctance(t *testing.T) {
	g := core.NewGraph()
	flat := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	stairs := flatEdge(t, g, "AC", "A", "C", core.PermitWalk)
	stairs.SetFlag(core.FlagStairs)

	req := testRequest()
	onFlat := Traverse(g, originAt("A", core.ModeWalk), flat, req, core.ModeWalk)
	onStairs := Traverse(g, originAt("A", core.ModeWalk), stairs, req, core.ModeWalk)
	require.NotNil(t, onFlat)
	require.NotNil(t, onStairs)

	assert.InDelta(t, req.StairsReluctance, onStairs.Weight/onFlat.Weight, 1e-9)
}

func TestWheelchairWeight(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	e.SetFlag(core.FlagWheelchairAccessible)
	e.SlopeSpeedEffectiveLength = 120 // elevation-adjusted

	req := testRequest()
	req.WheelchairAccessible = true
	req.MaxSlope = 0.0833

	s1 := Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk)
	require.NotNil(t, s1)
	assert.InDelta(t, 120.0, s1.Weight, 1e-9)
}

func TestBicycleOptimizationBranches(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitBicycle)
	e.BicycleSafetyFactor = 1.5
	e.SlopeSpeedEffectiveLength = 110
	e.SlopeWorkCostEffectiveLength = 130

	cases := []struct {
		name     string
		mutate   func(r *request.RoutingRequest)
		expected float64
	}{
		{"quick", func(r *request.RoutingRequest) { r.Optimize = request.OptimizeQuick }, 110.0 / 5},
		{"safe", func(r *request.RoutingRequest) { r.Optimize = request.OptimizeSafe }, 1.5 * 100 / 5},
		{"flat", func(r *request.RoutingRequest) { r.Optimize = request.OptimizeFlat }, 100.0/5 + 130},
		{"triangle", func(r *request.RoutingRequest) {
			r.Optimize = request.OptimizeTriangle
			r.Triangle = &request.BikeTriangle{Safety: 0.2, Slope: 0.3, Time: 0.5}
		}, (110*0.5 + 130*0.3 + 1.5*100*0.2) / 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			req.BikeSwitchTime = 0
			tc.mutate(req)
			s1 := Traverse(g, originAt("A", core.ModeBicycle), e, req, core.ModeBicycle)
			require.NotNil(t, s1)
			assert.InDelta(t, tc.expected, s1.Weight, 1e-9)
		})
	}
}

func TestGreenwaysBonus(t *testing.T) {
	g := core.NewGraph()
	greenway := flatEdge(t, g, "AB", "A", "B", core.PermitBicycle)
	greenway.BicycleSafetyFactor = 0.05

	plain := flatEdge(t, g, "AC", "A", "C", core.PermitBicycle)
	plain.BicycleSafetyFactor = 0.5

	req := testRequest()
	req.Optimize = request.OptimizeGreenways

	onGreenway := Traverse(g, originAt("A", core.ModeBicycle), greenway, req, core.ModeBicycle)
	onPlain := Traverse(g, originAt("A", core.ModeBicycle), plain, req, core.ModeBicycle)
	require.NotNil(t, onGreenway)
	require.NotNil(t, onPlain)

	// The safety factor is stored as float32, so the expectation widens
	// the stored value rather than using the literal 0.05.
	assert.InDelta(t, float64(greenway.BicycleSafetyFactor)*100/5*0.66, onGreenway.Weight, 1e-9)
	assert.InDelta(t, 0.5*100/5, onPlain.Weight, 1e-9)
}

func TestBicycleDismountsOnWalkOnlyEdge(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	s1 := Traverse(g, originAt("A", core.ModeBicycle), e, testRequest(), core.ModeBicycle)
	require.NotNil(t, s1)
	assert.Equal(t, core.ModeWalk, s1.Mode)
	assert.True(t, s1.BackWalkingBike)
}

func TestBikeSwitchCost(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitBicycle)

	req := testRequest()
	req.BikeSwitchTime = 30
	req.BikeSwitchCost = 100

	// Origin state is on foot: mounting the bike pays the switch.
	mounted := Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeBicycle)
	require.NotNil(t, mounted)

	req2 := testRequest()
	free := Traverse(g, originAt("A", core.ModeWalk), e, req2, core.ModeBicycle)
	require.NotNil(t, free)

	assert.InDelta(t, 100, mounted.Weight-free.Weight, 1e-9)
	assert.Equal(t, free.TimeSeconds+30, mounted.TimeSeconds)
}

func TestNoBikeSwitchWhenAlreadyRiding(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitBicycle)
	bc := flatEdge(t, g, "BC", "B", "C", core.PermitBicycle)

	req := testRequest()
	req.BikeSwitchTime = 30
	req.BikeSwitchCost = 100

	s1 := Traverse(g, originAt("A", core.ModeBicycle), ab, req, core.ModeBicycle)
	require.NotNil(t, s1)
	s2 := Traverse(g, s1, bc, req, core.ModeBicycle)
	require.NotNil(t, s2)

	// Only the first mount pays.
	assert.InDelta(t, s1.Weight-100, s2.Weight-s1.Weight, 1e-9)
}

func TestTurnRestrictionNoTurn(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	bc := flatEdge(t, g, "BC", "B", "C", core.PermitWalk)
	bd := flatEdge(t, g, "BD", "B", "D", core.PermitWalk)

	g.AddTurnRestriction("AB", &core.TurnRestriction{
		To:    bc,
		Modes: core.PermitWalk,
		Type:  core.RestrictionNoTurn,
	})

	req := testRequest()
	s1 := Traverse(g, originAt("A", core.ModeWalk), ab, req, core.ModeWalk)
	require.NotNil(t, s1)

	assert.Nil(t, Traverse(g, s1, bc, req, core.ModeWalk), "banned turn")
	assert.NotNil(t, Traverse(g, s1, bd, req, core.ModeWalk), "other turns stay open")
}

func TestTurnRestrictionOnlyTurn(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	bc := flatEdge(t, g, "BC", "B", "C", core.PermitWalk)
	bd := flatEdge(t, g, "BD", "B", "D", core.PermitWalk)

	g.AddTurnRestriction("AB", &core.TurnRestriction{
		To:    bc,
		Modes: core.PermitWalk,
		Type:  core.RestrictionOnlyTurn,
	})

	req := testRequest()
	s1 := Traverse(g, originAt("A", core.ModeWalk), ab, req, core.ModeWalk)
	require.NotNil(t, s1)

	assert.NotNil(t, Traverse(g, s1, bc, req, core.ModeWalk), "the designated turn")
	assert.Nil(t, Traverse(g, s1, bd, req, core.ModeWalk), "everything else is forbidden")
}

func TestTurnCostAddsTimeWeightAndTieBreaker(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	bc := flatEdge(t, g, "BC", "B", "C", core.PermitWalk)

	// A 90-degree corner between the continuation azimuths.
	ab.InAngle = core.EncodeAngle(0)
	bc.OutAngle = core.EncodeAngle(math.Pi / 2)

	req := testRequest()
	req.CostModel = turncost.NewDefaultCostModel()

	s1 := Traverse(g, originAt("A", core.ModeWalk), ab, req, core.ModeWalk)
	require.NotNil(t, s1)

	straight := testRequest()
	base := Traverse(g, s1, bc, straight, core.ModeWalk) // no cost model
	require.NotNil(t, base)

	turned := Traverse(g, s1, bc, req, core.ModeWalk)
	require.NotNil(t, turned)

	// DefaultCostModel prices a 90-degree walking turn at 4s.
	assert.Equal(t, base.TimeSeconds+4, turned.TimeSeconds)
	assert.InDelta(t, 4.0, turned.Weight-base.Weight, 1e-9)
	assert.InDelta(t, 4.0/100, turned.WalkDistance-base.WalkDistance, 1e-9)
}

func TestHardWalkLimit(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	req.MaxWalkDistance = 50
	req.SoftWalkLimiting = false

	assert.Nil(t, Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk))
}

func TestSoftWalkLimitOverage(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	req.MaxWalkDistance = 50
	req.SoftWalkLimiting = true
	req.SoftWalkPenalty = 60
	req.SoftWalkOverageRate = 2

	unlimited := testRequest()
	base := Traverse(g, originAt("A", core.ModeWalk), e, unlimited, core.ModeWalk)
	limited := Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk)
	require.NotNil(t, base)
	require.NotNil(t, limited)

	// First crossing of the 50m limit: (100-50)*2 + 60.
	assert.InDelta(t, 160, limited.Weight-base.Weight, 1e-9)
}

func TestSoftWalkLimitSubsequentSteps(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)
	bc := flatEdge(t, g, "BC", "B", "C", core.PermitWalk)

	req := testRequest()
	req.MaxWalkDistance = 50
	req.SoftWalkLimiting = true
	req.SoftWalkPenalty = 60
	req.SoftWalkOverageRate = 2

	s1 := Traverse(g, originAt("A", core.ModeWalk), ab, req, core.ModeWalk)
	require.NotNil(t, s1)
	s2 := Traverse(g, s1, bc, req, core.ModeWalk)
	require.NotNil(t, s2)

	// Already past the limit: the whole 100m increment is rated, no
	// second flat penalty.
	base := 100 * 4.0 / 3.0
	assert.InDelta(t, base+100*2, s2.Weight-s1.Weight, 1e-9)
}

func TestHardPreTransitLimit(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	req.MaxPreTransitTime = 60
	req.SoftPreTransitLimiting = false

	// 100m at 1 m/s walks for ~134s of slope-adjusted time, over the cap.
	assert.Nil(t, Traverse(g, originAt("A", core.ModeWalk), e, req, core.ModeWalk))
}

func TestPreTransitNotChargedAfterBoarding(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	req.MaxPreTransitTime = 60
	req.SoftPreTransitLimiting = false

	s0 := originAt("A", core.ModeWalk)
	s0.EverBoarded = true

	s1 := Traverse(g, s0, e, req, core.ModeWalk)
	require.NotNil(t, s1)
	assert.Equal(t, int64(0), s1.PreTransitTime)
}

func TestWeightTimeMonotonic(t *testing.T) {
	g := core.NewGraph()
	ab := flatEdge(t, g, "AB", "A", "B", core.PermitAll)
	bc := flatEdge(t, g, "BC", "B", "C", core.PermitAll)

	req := testRequest()
	s0 := originAt("A", core.ModeWalk)
	s1 := Traverse(g, s0, ab, req, core.ModeWalk)
	require.NotNil(t, s1)
	s2 := Traverse(g, s1, bc, req, core.ModeWalk)
	require.NotNil(t, s2)

	assert.GreaterOrEqual(t, s1.Weight, s0.Weight)
	assert.GreaterOrEqual(t, s2.Weight, s1.Weight)
	assert.GreaterOrEqual(t, s2.TimeSeconds, s1.TimeSeconds)
	assert.GreaterOrEqual(t, s2.WalkDistance, s1.WalkDistance)
}

func TestArriveByMovesToFromVertex(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	req.ArriveBy = true

	s1 := Traverse(g, originAt("B", core.ModeWalk), e, req, core.ModeWalk)
	require.NotNil(t, s1)
	assert.Equal(t, "A", s1.Vertex)
}

func TestKissAndRideArriveByFork(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitAll)

	req := testRequest()
	req.ArriveBy = true

	s0 := originAt("B", core.ModeWalk)
	s0.CarParked = true
	s0.EverBoarded = true

	s1 := Traverse(g, s0, e, req, core.ModeWalk)
	require.NotNil(t, s1)

	successors := s1.Successors()
	require.Len(t, successors, 2)

	assert.Equal(t, core.ModeWalk, successors[0].Mode)
	assert.True(t, successors[0].CarParked)

	assert.Equal(t, core.ModeCar, successors[1].Mode)
	assert.False(t, successors[1].CarParked, "forked state has picked the car back up")
}

func TestKissAndRideArriveByNoForkOnWalkOnlyEdge(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	req.ArriveBy = true

	s0 := originAt("B", core.ModeWalk)
	s0.CarParked = true
	s0.EverBoarded = true

	s1 := Traverse(g, s0, e, req, core.ModeWalk)
	require.NotNil(t, s1)
	assert.Len(t, s1.Successors(), 1, "forked branch silently reverts")
}

func TestKissAndRideDepartAfterSwitch(t *testing.T) {
	g := core.NewGraph()
	e := flatEdge(t, g, "AB", "A", "B", core.PermitWalk)

	req := testRequest()
	s1 := Traverse(g, originAt("A", core.ModeCar), e, req, core.ModeCar)
	require.NotNil(t, s1)

	assert.Equal(t, core.ModeWalk, s1.Mode)
	assert.True(t, s1.CarParked, "the switch is irrevocable")
	assert.Len(t, s1.Successors(), 1)
}

func TestOverageWeightFormula(t *testing.T) {
	// First crossing pays penalty plus rated overage past the limit.
	assert.InDelta(t, 160, overageWeight(0, 100, 50, 60, 2), 1e-9)
	// Fully past the limit: only the increment is rated.
	assert.InDelta(t, 200, overageWeight(100, 200, 50, 60, 2), 1e-9)
	// Landing exactly on the limit is not a crossing.
	assert.InDelta(t, 100, overageWeight(0, 50, 50, 60, 2), 1e-9)
}
