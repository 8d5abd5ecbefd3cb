package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"drainsim/database"
	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
	fieldCtrlImp "drainsim/pkg/field/controllerImp"
	fieldRepoImp "drainsim/pkg/field/repositoryImp"
	fieldSvcImp "drainsim/pkg/field/serviceImp"
	healthCtrlImp "drainsim/pkg/health/controllerImp"
	"drainsim/pkg/middleware"
	simCtrlImp "drainsim/pkg/simulate/controllerImp"
	simSvcImp "drainsim/pkg/simulate/serviceImp"
	"drainsim/pkg/validation"
)

func newServer(t *testing.T, requireFarmer bool) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	engine := drainage.New(drainage.DefaultTable())

	e := echo.New()
	e.Validator = validation.New()
	return New(e, requireFarmer,
		simCtrlImp.New(simSvcImp.New(engine)),
		fieldCtrlImp.New(fieldSvcImp.NewFieldService(fieldRepoImp.New(db), engine)),
		healthCtrlImp.NewHealthCtrl(db, engine),
	)
}

func do(e *echo.Echo, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const loamyBody = `{"field_length":20,"field_width":10,"water_depth":5,"soil_type":"Loamy","rainfall_intensity":"moderate"}`

func TestRoot(t *testing.T) {
	rec := do(newServer(t, false), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Disaster Management API Ready"}`, rec.Body.String())
}

func TestCalculate(t *testing.T) {
	e := newServer(t, false)
	rec := do(e, http.MethodPost, "/api/drainage/calculate", loamyBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res types.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Peripheral Drains", res.DrainageType)
	assert.Len(t, res.DrainChannels, 3)
	assert.Equal(t, 2.0, res.ExpectedDrainTimeMinutes)
	assert.Equal(t, types.RiskLow, res.RiskLevel)
}

func TestCalculateNumericRainfallAndDebug(t *testing.T) {
	e := newServer(t, false)
	body := `{"field_length":20,"field_width":10,"water_depth":5,"soil_type":"sandy","rainfall_intensity":45,"disaster_type":"cyclone_surge"}`
	rec := do(e, http.MethodPost, "/api/drainage/calculate?debug=1", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Result    types.SimulationResult `json:"result"`
		Breakdown drainage.Breakdown     `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 95.0, out.Breakdown.Params.RainfallMMHr)
	assert.Equal(t, 12.0, out.Breakdown.Params.TargetHours)
	assert.Equal(t, "Cyclone Emergency Channels + Central Slope Trench + Cross Drains", out.Result.DrainageType)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	e := newServer(t, false)
	tests := map[string]string{
		"bad json":     `{"field_length":`,
		"zero width":   `{"field_length":20,"field_width":0,"water_depth":5,"soil_type":"clay"}`,
		"unknown soil": `{"field_length":20,"field_width":10,"water_depth":5,"soil_type":"peat"}`,
		"bad disaster": `{"field_length":20,"field_width":10,"water_depth":5,"soil_type":"clay","disaster_type":"tsunami"}`,
		"bad rainfall": `{"field_length":20,"field_width":10,"water_depth":5,"soil_type":"clay","rainfall_intensity":[1]}`,
		"bad drain":    `{"field_length":20,"field_width":10,"water_depth":5,"soil_type":"clay","custom_drains":[{"x":1,"z":1,"direction":"east","length":5,"width":0}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/drainage/calculate", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestReport(t *testing.T) {
	rec := do(newServer(t, false), http.MethodPost, "/api/drainage/report", loamyBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "drainage-plan.xlsx")

	x, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows("Channels")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestOptions(t *testing.T) {
	rec := do(newServer(t, false), http.MethodGet, "/api/drainage/options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []string{"sandy", "loamy", "clay"}, out["soil_types"])
	assert.Contains(t, out["disaster_types"], "cyclone_surge")
	assert.Contains(t, out["crop_stages"], "flowering")
	assert.Contains(t, out["rainfall_labels"], "heavy")
}

func TestFieldProfileFlow(t *testing.T) {
	e := newServer(t, false)
	owner := []string{middleware.FarmerHeader, "farmer-7"}

	rec := do(e, http.MethodPost, "/fields",
		`{"name":"east plot","length_m":20,"width_m":10,"soil_type":"Clay","crop_stage":"vegetative"}`, owner...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		FieldID uint   `json:"field_id"`
		UserID  string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "farmer-7", created.UserID)

	path := "/fields/" + jsonNumber(created.FieldID)
	rec = do(e, http.MethodGet, path, "", owner...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, path, "", middleware.FarmerHeader, "someone-else")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/fields", "", owner...)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(e, http.MethodPost, path+"/simulate", `{"water_depth":5,"rainfall_intensity":"heavy"}`, owner...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res types.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Peripheral Drains + Central Slope Trench", res.DrainageType)
	assert.Equal(t, 1.3, res.ExpectedDrainTimeMinutes)

	rec = do(e, http.MethodPost, "/fields/999/simulate", `{"water_depth":5}`, owner...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/fields/abc/simulate", `{"water_depth":5}`, owner...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFieldsRequireFarmer(t *testing.T) {
	e := newServer(t, true)
	rec := do(e, http.MethodGet, "/fields", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the calculator itself stays open
	rec = do(e, http.MethodPost, "/api/drainage/calculate", loamyBody)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func jsonNumber(n uint) string {
	b, _ := json.Marshal(n)
	return string(b)
}
