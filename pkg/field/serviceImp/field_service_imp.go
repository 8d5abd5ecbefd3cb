package serviceImp

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"drainsim/entities"
	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
	repo "drainsim/pkg/field/repository"
	"drainsim/pkg/field/service"
)

type fieldSvc struct {
	r      repo.FieldRepository
	engine *drainage.Engine
}

func NewFieldService(r repo.FieldRepository, engine *drainage.Engine) service.FieldService {
	return &fieldSvc{r: r, engine: engine}
}

func (s *fieldSvc) CreateField(f *entities.Field) (*entities.Field, error) {
	if err := s.r.Create(f); err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}
	return f, nil
}

func (s *fieldSvc) GetFieldByID(id uint, uid string) (*entities.Field, error) {
	f, err := s.r.FindByID(id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find field %d: %w", id, err)
	}
	return f, nil
}

func (s *fieldSvc) ListFields(uid string) ([]entities.Field, error) {
	fs, err := s.r.ListByUser(uid)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return fs, nil
}

func (s *fieldSvc) SimulateField(id uint, uid string, cond service.Conditions) (types.SimulationResult, drainage.Breakdown, error) {
	f, err := s.GetFieldByID(id, uid)
	if err != nil {
		return types.SimulationResult{}, drainage.Breakdown{}, err
	}
	in := FieldInput(f, cond)
	res, bd := s.engine.Explain(in)
	log.Debugf("[field] simulate field=%d disaster=%s hours=%.2f risk=%s", f.FieldID, bd.Params.Disaster, bd.DrainHours, res.RiskLevel)
	return res, bd, nil
}

// FieldInput combines a stored profile with event conditions.
func FieldInput(f *entities.Field, cond service.Conditions) types.FieldInput {
	stage := f.CropStage
	if cond.CropStage != "" {
		stage = cond.CropStage
	}
	return types.FieldInput{
		FieldLength:       f.LengthM,
		FieldWidth:        f.WidthM,
		WaterDepth:        cond.WaterDepth,
		SoilType:          f.SoilType,
		RainfallIntensity: cond.RainfallIntensity,
		DisasterType:      cond.DisasterType,
		LandSlope:         f.LandSlope,
		CropStage:         stage,
		CustomDrains:      f.CustomDrains,
	}
}
