package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"github.com/sundap1986/Vehicle-Repair-Order-System/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.RepairOrder{},
		&entity.SparePart{},
		&entity.LaborDetail{},
		&entity.VehicleCheck{},
	))

	r := gin.New()
	r.Use(middlewares.CORSMiddleware())

	orderCtrl := NewOrderController(db)
	itemCtrl := NewLineItemController(db)
	r.GET("/", orderCtrl.Index)
	r.GET("/create_order", orderCtrl.CreateForm)
	r.POST("/create_order", orderCtrl.Create)
	r.GET("/order/:id", orderCtrl.Detail)
	r.POST("/update_status/:id", orderCtrl.UpdateStatus)
	r.POST("/add_spare_part/:id", itemCtrl.AddSparePart)
	r.POST("/add_labor/:id", itemCtrl.AddLabor)
	r.GET("/delete_spare_part/:partId/:id", itemCtrl.DeleteSparePart)
	r.GET("/delete_labor/:laborId/:id", itemCtrl.DeleteLabor)
	r.GET("/api/order_totals/:id", orderCtrl.Totals)
	return r, db
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func intakeForm() url.Values {
	return url.Values{
		"reg_number":             {"KA-01-AB-1234"},
		"vin_number":             {"MA3EYD32S00123456"},
		"vehicle_in_date":        {"2026-09-01"},
		"vehicle_in_time":        {"09:30"},
		"make":                   {"Tata"},
		"model":                  {"407"},
		"driver_name":            {"Ramesh"},
		"phone_number":           {"9876543210"},
		"vehicle_came_from_site": {"Site A"},
		"site_incharge_name":     {"Suresh"},
		"driver_permanent":       {"Yes"},
		"road_test_along":        {"No"},
		"service_type":           {"General Service"},
		"under_warranty":         {"No"},
		"expected_delivery_date": {"2026-09-03"},
		"expected_delivery_time": {"17:00"},
		"allotted_technician":    {"Mahesh"},
		"oil_level":              {"OK"},
	}
}

func TestCreateOrderRedirectsToDetail(t *testing.T) {
	r, db := setupRouter(t)

	w := postForm(r, "/create_order", intakeForm())
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/order/1", w.Header().Get("Location"))

	var n int64
	require.NoError(t, db.Model(&entity.VehicleCheck{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateOrderMissingRequiredField(t *testing.T) {
	r, db := setupRouter(t)

	form := intakeForm()
	form.Del("reg_number")
	w := postForm(r, "/create_order", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.RepairOrder{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDetailResponseShape(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusSeeOther, postForm(r, "/create_order", intakeForm()).Code)

	w := get(r, "/order/1")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Order struct {
				OrderNumber string `json:"order_number"`
				Status      string `json:"status"`
				Kms         int    `json:"kms"`
			} `json:"order"`
			VehicleCheck *struct {
				OilLevel string `json:"oil_level"`
			} `json:"vehicle_check"`
			Totals struct {
				GrandTotal float64 `json:"grand_total"`
			} `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, entity.StatusOpen, body.Data.Order.Status)
	assert.Equal(t, 0, body.Data.Order.Kms) // omitted on the form
	require.NotNil(t, body.Data.VehicleCheck)
	assert.Equal(t, "OK", body.Data.VehicleCheck.OilLevel)
	assert.Equal(t, 0.0, body.Data.Totals.GrandTotal)
}

func TestDetailNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/order/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddSparePartAndTotals(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusSeeOther, postForm(r, "/create_order", intakeForm()).Code)

	w := postForm(r, "/add_spare_part/1", url.Values{
		"part_description": {"Brake pad set"},
		"part_number":      {"BP-2041"},
		"make":             {"Bosch"},
		"unit_cost":        {"150.00"},
		"quantity":         {"3"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/order/1", w.Header().Get("Location"))

	w = postForm(r, "/add_labor/1", url.Values{
		"description":   {"Brake service"},
		"labor_charges": {"200"},
		"outside_labor": {"50"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(r, "/api/order_totals/1")
	require.Equal(t, http.StatusOK, w.Code)

	var totals struct {
		PartsTotal float64 `json:"parts_total"`
		LaborTotal float64 `json:"labor_total"`
		GrandTotal float64 `json:"grand_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &totals))
	assert.Equal(t, 450.00, totals.PartsTotal)
	assert.Equal(t, 250.00, totals.LaborTotal)
	assert.Equal(t, 700.00, totals.GrandTotal)
}

func TestAddSparePartNonNumericInput(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusSeeOther, postForm(r, "/create_order", intakeForm()).Code)

	w := postForm(r, "/add_spare_part/1", url.Values{
		"part_description": {"Brake pad set"},
		"part_number":      {"BP-2041"},
		"make":             {"Bosch"},
		"unit_cost":        {"one fifty"},
		"quantity":         {"3"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusFlow(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusSeeOther, postForm(r, "/create_order", intakeForm()).Code)

	w := postForm(r, "/update_status/1", url.Values{"status": {entity.StatusClosed}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(r, "/order/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Closed"`)

	// outside the closed set
	w = postForm(r, "/update_status/1", url.Values{"status": {"Scrapped"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSparePartVerifiesParent(t *testing.T) {
	r, db := setupRouter(t)

	require.Equal(t, http.StatusSeeOther, postForm(r, "/create_order", intakeForm()).Code)
	require.Equal(t, http.StatusSeeOther, postForm(r, "/add_spare_part/1", url.Values{
		"part_description": {"Fan belt"},
		"part_number":      {"FB-9"},
		"make":             {"Gates"},
		"unit_cost":        {"120"},
		"quantity":         {"1"},
	}).Code)

	// order id in the URL does not own this part
	w := get(r, "/delete_spare_part/1/2")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/delete_spare_part/1/1")
	require.Equal(t, http.StatusSeeOther, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.SparePart{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestTotalsMissingOrder(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/api/order_totals/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexListsOrders(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusSeeOther, postForm(r, "/create_order", intakeForm()).Code)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reg_number":"KA-01-AB-1234"`)
}
