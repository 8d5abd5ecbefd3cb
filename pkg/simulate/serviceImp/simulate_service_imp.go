package serviceImp

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/log"

	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
	"drainsim/pkg/report"
	"drainsim/pkg/simulate/service"
	"drainsim/pkg/validation"
)

type simulateSvc struct{ engine *drainage.Engine }

func New(engine *drainage.Engine) service.SimulateService { return &simulateSvc{engine: engine} }

func (s *simulateSvc) Calculate(in types.FieldInput) (types.SimulationResult, drainage.Breakdown) {
	res, bd := s.engine.Explain(in)
	log.Debugf("[simulate] %s rules=%v hours=%.2f risk=%s", res.DrainageType, bd.Layout.Rules, bd.DrainHours, res.RiskLevel)
	return res, bd
}

func (s *simulateSvc) WriteReport(w io.Writer, in types.FieldInput) error {
	res, _ := s.Calculate(in)
	if err := report.WriteXLSX(w, in, res); err != nil {
		return fmt.Errorf("drainage report: %w", err)
	}
	return nil
}

func (s *simulateSvc) Options() service.Options {
	return service.Options{
		SoilTypes:      validation.Soils,
		RainfallLabels: validation.Rainfalls,
		DisasterTypes:  validation.Disasters,
		CropStages:     validation.Stages,
	}
}
