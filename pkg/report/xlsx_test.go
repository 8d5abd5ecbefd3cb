package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
)

func TestWriteXLSX(t *testing.T) {
	in := types.FieldInput{
		FieldLength: 20, FieldWidth: 10, WaterDepth: 5,
		SoilType: "Clay", RainfallIntensity: "moderate",
	}
	res := drainage.Simulate(in)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, in, res))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	assert.Equal(t, []string{SummarySheet, ChannelsSheet}, x.GetSheetList())

	label, err := x.GetCellValue(SummarySheet, "B9")
	require.NoError(t, err)
	assert.Equal(t, "Peripheral Drains + Central Slope Trench", label)

	risk, err := x.GetCellValue(SummarySheet, "B13")
	require.NoError(t, err)
	assert.Equal(t, "low", risk)

	rows, err := x.GetRows(ChannelsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"#", "x_m", "z_m", "direction", "length_m", "width_m"}, rows[0])
	assert.Equal(t, []string{"4", "10", "5", "east", "20", "1.5"}, rows[4])
}
