package boq

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleSkinOnly(t *testing.T) {
	// 10 linear m of 230mm wall at 2.7 m height.
	r := Calculate(CalcInput{
		Filename:  "test.pdf",
		Scale:     "1:100",
		Walls230M: 10.0,
	})

	area := 10.0 * 2.7 // 27 m²
	expected := int(math.Ceil(area * BricksPerSqmDouble * (1 + WastageFactor)))

	assert.Equal(t, expected, r.Bricks230)
	assert.Equal(t, 0, r.Bricks110)
	assert.Equal(t, expected, r.TotalBricks)
	assert.Equal(t, 27.0, r.Walls230AreaSqm)
	assert.Equal(t, 0.0, r.Walls110AreaSqm)
	assert.Equal(t, 10.0, r.WastagePercent)
}

func TestSingleSkinOnly(t *testing.T) {
	r := Calculate(CalcInput{
		Filename:  "test.pdf",
		Scale:     "1:50",
		Walls110M: 15.0,
	})

	area := 15.0 * 2.7
	expected := int(math.Ceil(area * BricksPerSqmSingle * (1 + WastageFactor)))

	assert.Equal(t, expected, r.Bricks110)
	assert.Equal(t, 0, r.Bricks230)
	assert.Equal(t, expected, r.TotalBricks)
}

func TestMixedWalls(t *testing.T) {
	r := Calculate(CalcInput{
		Filename:  "mixed.pdf",
		Scale:     "1:100",
		Walls230M: 20.0,
		Walls110M: 10.0,
	})

	b230 := int(math.Ceil(20.0 * 2.7 * BricksPerSqmDouble * (1 + WastageFactor)))
	b110 := int(math.Ceil(10.0 * 2.7 * BricksPerSqmSingle * (1 + WastageFactor)))

	assert.Equal(t, b230, r.Bricks230)
	assert.Equal(t, b110, r.Bricks110)
	assert.Equal(t, b230+b110, r.TotalBricks)
}

func TestCementAndSandIncludeWastage(t *testing.T) {
	r := Calculate(CalcInput{
		Filename:  "test.pdf",
		Scale:     "1:100",
		Walls230M: 10.0,
		Walls110M: 5.0,
	})

	total := float64(r.TotalBricks)
	cement := math.Round(total/1000*CementBagsPer1000Bricks*(1+WastageFactor)*10) / 10
	sand := math.Round(total/1000*SandCubesPer1000Bricks*(1+WastageFactor)*100) / 100

	assert.Equal(t, cement, r.CementBags)
	assert.Equal(t, sand, r.SandCubes)
}

func TestFloorsMultiplyAreas(t *testing.T) {
	one := Calculate(CalcInput{Walls230M: 10, Floors: 1})
	two := Calculate(CalcInput{Walls230M: 10, Floors: 2})

	assert.Equal(t, one.Walls230AreaSqm*2, two.Walls230AreaSqm)
	assert.Greater(t, two.TotalBricks, one.TotalBricks)
}

func TestMaterialsTableHasFourLines(t *testing.T) {
	r := Calculate(CalcInput{Walls230M: 5, Walls110M: 5})

	require.Len(t, r.Materials, 4)
	items := make([]string, len(r.Materials))
	for i, m := range r.Materials {
		items[i] = m.Item
	}
	assert.Contains(t, items, "Bricks — 230 mm double skin")
	assert.Contains(t, items, "Bricks — 110 mm single skin")
	assert.Contains(t, items, "Cement (50 kg bags)")
	assert.Contains(t, items, "Building sand")
}

func TestZeroWalls(t *testing.T) {
	r := Calculate(CalcInput{Filename: "empty.pdf", Scale: "1:100"})

	assert.Equal(t, 0, r.TotalBricks)
	assert.Equal(t, 0.0, r.CementBags)
	assert.Equal(t, 0.0, r.SandCubes)
	assert.Nil(t, r.TotalEstimatedCost)
}

func TestPriceEstimation(t *testing.T) {
	r := Calculate(CalcInput{Walls230M: 10, EstimatePrices: true})

	require.NotNil(t, r.TotalEstimatedCost)
	sum := 0.0
	for _, m := range r.Materials {
		require.NotNil(t, m.EstimatedCost, "every line should be priced")
		sum += *m.EstimatedCost
	}
	assert.InDelta(t, sum, *r.TotalEstimatedCost, 0.01)
}

func TestDecodeRejectsUnrelatedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"message":"hello"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	r := Calculate(CalcInput{Filename: "plan.pdf", Scale: "1:100", Walls230M: 10})
	data, err := json.Marshal(r)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, r.TotalBricks, decoded.TotalBricks)
	assert.Equal(t, "plan.pdf", decoded.Filename)
}
