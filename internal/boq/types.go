// Package boq defines the Bill of Quantities data model shared by the
// client, the formatter, and the bundled stub service.
package boq

import (
	"encoding/json"
	"fmt"
)

// MaterialLine is a single line item in the materials table.
// EstimatedCost is only populated when price estimation was requested.
type MaterialLine struct {
	Item          string   `json:"item"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

// Result is the full Bill of Quantities returned by the analysis service.
// It is immutable once decoded; nothing in the client mutates it.
type Result struct {
	Filename    string  `json:"filename"`
	Scale       string  `json:"scale"`
	WallHeightM float64 `json:"wall_height_m"`

	Walls230LinearM float64 `json:"walls_230mm_linear_m"`
	Walls110LinearM float64 `json:"walls_110mm_linear_m"`
	Walls230AreaSqm float64 `json:"walls_230mm_area_sqm"`
	Walls110AreaSqm float64 `json:"walls_110mm_area_sqm"`

	Bricks230   int `json:"bricks_230mm"`
	Bricks110   int `json:"bricks_110mm"`
	TotalBricks int `json:"total_bricks"`

	CementBags float64 `json:"cement_bags"`
	SandCubes  float64 `json:"sand_cubes"`

	WastagePercent float64 `json:"wastage_percent"`

	Materials []MaterialLine `json:"materials"`

	TotalEstimatedCost *float64 `json:"total_estimated_cost,omitempty"`
	ConfidenceNote     string   `json:"confidence_note,omitempty"`
}

// Decode parses a JSON response body into a Result.
// A body that parses but carries none of the expected fields is rejected,
// so a stray JSON object (e.g. an HTML error page proxied as 200) does not
// masquerade as an empty result.
func Decode(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding BOQ response: %w", err)
	}
	if r.Filename == "" && r.Scale == "" && len(r.Materials) == 0 {
		return nil, fmt.Errorf("decoding BOQ response: body does not look like a bill of quantities")
	}
	return &r, nil
}
