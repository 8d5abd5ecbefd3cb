// Package report renders a drainage simulation as a spreadsheet farmers can
// keep offline.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"drainsim/pkg/drainage/types"
)

const (
	SummarySheet  = "Summary"
	ChannelsSheet = "Channels"
)

var channelHeader = []any{"#", "x_m", "z_m", "direction", "length_m", "width_m"}

// WriteXLSX writes a two-sheet workbook: the inputs and outcome, then one
// row per drainage channel.
func WriteXLSX(w io.Writer, in types.FieldInput, res types.SimulationResult) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	summary := [][]any{
		{"field_length_m", in.FieldLength},
		{"field_width_m", in.FieldWidth},
		{"water_depth_cm", in.WaterDepth},
		{"soil_type", in.SoilType},
		{"rainfall_intensity", string(in.RainfallIntensity)},
		{"disaster_type", in.DisasterType},
		{"land_slope_pct", in.LandSlope},
		{"crop_stage", in.CropStage},
		{"drainage_type", res.DrainageType},
		{"channels", len(res.DrainChannels)},
		{"expected_drain_time_minutes", res.ExpectedDrainTimeMinutes},
		{"expected_drain_time_hours", res.ExpectedDrainTimeMinutes / 60},
		{"risk_level", string(res.RiskLevel)},
	}
	if err := writeRows(x, SummarySheet, summary); err != nil {
		return err
	}

	if _, err := x.NewSheet(ChannelsSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	rows := make([][]any, 0, len(res.DrainChannels)+1)
	rows = append(rows, channelHeader)
	for i, ch := range res.DrainChannels {
		rows = append(rows, []any{i + 1, ch.X, ch.Z, ch.Direction, ch.Length, ch.Width})
	}
	if err := writeRows(x, ChannelsSheet, rows); err != nil {
		return err
	}

	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
