// South African brick/mortar calculation engine.
//
// Standard brick: 222 x 106 x 73 mm.
// Single skin (110 mm): ~52 bricks/m². Double skin (230 mm): ~104 bricks/m².
// Wastage: +10%. Cement 1:4 mix: ~7 bags per 1000 bricks. Sand: ~0.5 m³
// per 1000 bricks.
package boq

import "math"

// SA masonry constants.
const (
	BricksPerSqmSingle = 52  // 110mm single-skin wall
	BricksPerSqmDouble = 104 // 230mm double-skin wall

	WastageFactor = 0.10

	DefaultWallHeightM = 2.7 // standard SA residential wall height

	CementBagsPer1000Bricks = 7.0
	SandCubesPer1000Bricks  = 0.5
)

// Retail unit prices in Rand, used when price estimation is requested.
const (
	PriceBrick     = 2.20   // per brick
	PriceCementBag = 94.50  // per 50 kg bag
	PriceSandCube  = 465.00 // per m³
)

// CalcInput holds the measurements and options for a BOQ calculation.
type CalcInput struct {
	Filename       string
	Scale          string
	Walls230M      float64 // linear meters of 230mm double-skin walls
	Walls110M      float64 // linear meters of 110mm single-skin walls
	WallHeightM    float64 // floor-to-ceiling height; 0 means DefaultWallHeightM
	Floors         int     // 0 or 1 means single storey
	EstimatePrices bool
	ConfidenceNote string
}

// Calculate computes the full Bill of Quantities from wall measurements.
func Calculate(in CalcInput) *Result {
	height := in.WallHeightM
	if height == 0 {
		height = DefaultWallHeightM
	}
	floors := in.Floors
	if floors < 1 {
		floors = 1
	}

	area230 := in.Walls230M * height * float64(floors)
	area110 := in.Walls110M * height * float64(floors)

	bricks230 := int(math.Ceil(area230 * BricksPerSqmDouble * (1 + WastageFactor)))
	bricks110 := int(math.Ceil(area110 * BricksPerSqmSingle * (1 + WastageFactor)))
	totalBricks := bricks230 + bricks110

	cementBags := round1(float64(totalBricks) / 1000 * CementBagsPer1000Bricks * (1 + WastageFactor))
	sandCubes := round2(float64(totalBricks) / 1000 * SandCubesPer1000Bricks * (1 + WastageFactor))

	materials := []MaterialLine{
		{Item: "Bricks — 230 mm double skin", Quantity: float64(bricks230), Unit: "bricks"},
		{Item: "Bricks — 110 mm single skin", Quantity: float64(bricks110), Unit: "bricks"},
		{Item: "Cement (50 kg bags)", Quantity: cementBags, Unit: "bags"},
		{Item: "Building sand", Quantity: sandCubes, Unit: "m³"},
	}

	var totalCost *float64
	if in.EstimatePrices {
		unitPrices := []float64{PriceBrick, PriceBrick, PriceCementBag, PriceSandCube}
		sum := 0.0
		for i := range materials {
			cost := round2(materials[i].Quantity * unitPrices[i])
			materials[i].EstimatedCost = &cost
			sum += cost
		}
		sum = round2(sum)
		totalCost = &sum
	}

	return &Result{
		Filename:           in.Filename,
		Scale:              in.Scale,
		WallHeightM:        height,
		Walls230LinearM:    round2(in.Walls230M),
		Walls110LinearM:    round2(in.Walls110M),
		Walls230AreaSqm:    round2(area230),
		Walls110AreaSqm:    round2(area110),
		Bricks230:          bricks230,
		Bricks110:          bricks110,
		TotalBricks:        totalBricks,
		CementBags:         cementBags,
		SandCubes:          sandCubes,
		WastagePercent:     WastageFactor * 100,
		Materials:          materials,
		TotalEstimatedCost: totalCost,
		ConfidenceNote:     in.ConfidenceNote,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
