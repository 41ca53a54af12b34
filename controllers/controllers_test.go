package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/blogem/geoattend/models"
	"github.com/blogem/geoattend/repositories"
	repomocks "github.com/blogem/geoattend/repositories/mocks"
	"github.com/blogem/geoattend/services"
	"github.com/blogem/geoattend/services/mocks"
	"github.com/blogem/geoattend/userctx"
)

var testNow = time.Date(2025, 10, 6, 9, 15, 0, 0, time.UTC)

// ControllersTestSuite exercises the JSON handlers against mocked services
type ControllersTestSuite struct {
	suite.Suite
	admission *mocks.MockAdmissionService
	zone      *mocks.MockZoneService
	identity  *mocks.MockIdentityService
	ledger    *mocks.MockLedgerService
	stats     *mocks.MockStatsService
	summary   *mocks.MockSummaryService
	router    *chi.Mux

	restoreClock func()
}

func (suite *ControllersTestSuite) SetupTest() {
	suite.admission = mocks.NewMockAdmissionService(suite.T())
	suite.zone = mocks.NewMockZoneService(suite.T())
	suite.identity = mocks.NewMockIdentityService(suite.T())
	suite.ledger = mocks.NewMockLedgerService(suite.T())
	suite.stats = mocks.NewMockStatsService(suite.T())
	suite.summary = mocks.NewMockSummaryService(suite.T())

	ctrl := NewControllers(&services.Services{
		Identity:  suite.identity,
		Zone:      suite.zone,
		Admission: suite.admission,
		Ledger:    suite.ledger,
		Stats:     suite.stats,
		Summary:   suite.summary,
	}, Options{Location: time.UTC, MaxImageBytes: 1024}, zap.NewNop())

	asAdmin := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(userctx.SetActor(r.Context(), "warden")))
		})
	}

	r := chi.NewRouter()
	r.Post("/attendance", ctrl.Attendance.Submit)
	r.Get("/attendance", ctrl.Attendance.List)
	r.Get("/zones", ctrl.Zone.List)
	r.Get("/zones/active", ctrl.Zone.Active)
	r.Get("/stats", ctrl.Report.Stats)
	r.Group(func(r chi.Router) {
		r.Use(asAdmin)
		r.Post("/zones", ctrl.Zone.Create)
		r.Post("/zones/{id}/activate", ctrl.Zone.Activate)
		r.Delete("/zones/{id}", ctrl.Zone.Delete)
		r.Patch("/attendance/{id}", ctrl.Attendance.Update)
		r.Post("/attendance/{id}/verify", ctrl.Attendance.Verify)
		r.Get("/attendance/{id}/history", ctrl.Attendance.History)
		r.Get("/identities", ctrl.Identity.List)
		r.Post("/identities/{id}/deactivate", ctrl.Identity.Deactivate)
		r.Post("/summary", ctrl.Report.Summary)
	})
	suite.router = r

	original := timeNow
	timeNow = func() time.Time { return testNow }
	suite.restoreClock = func() { timeNow = original }
}

func (suite *ControllersTestSuite) TearDownTest() {
	suite.restoreClock()
}

func (suite *ControllersTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ControllersTestSuite) decodeError(rec *httptest.ResponseRecorder) errorResponse {
	var body errorResponse
	require.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// admissionForm builds a multipart admission request
func admissionForm(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "selfie.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/attendance", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"name":        "John Doe",
		"latitude":    "10.6785",
		"longitude":   "77.0321",
		"accuracy":    "12.5",
		"captured_at": "2025-10-06T09:14:30Z",
	}
}

func (suite *ControllersTestSuite) TestSubmit_Admitted() {
	image := []byte("not-really-a-png")
	result := &models.AdmissionResult{RecordID: 7, IdentityID: 1, IdentityName: "john doe", ZoneID: 3, ZoneName: "Library", Date: "2025-10-06", Time: "09:15:00", DistanceMeters: 12}

	suite.admission.EXPECT().Attempt(mock.Anything, mock.MatchedBy(func(a services.AdmissionAttempt) bool {
		return a.Name == "John Doe" &&
			bytes.Equal(a.Image, image) &&
			a.Location.Latitude == 10.6785 &&
			a.Location.Longitude == 77.0321 &&
			a.Location.AccuracyMeters == 12.5 &&
			a.Location.CapturedAt.Equal(time.Date(2025, 10, 6, 9, 14, 30, 0, time.UTC)) &&
			a.Now.Equal(testNow)
	})).Return(result, nil)

	rec := suite.serve(admissionForm(suite.T(), validFields(), image))

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var body models.AdmissionResult
	require.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(suite.T(), *result, body)
}

func (suite *ControllersTestSuite) TestSubmit_OutOfRange() {
	suite.admission.EXPECT().Attempt(mock.Anything, mock.Anything).
		Return(nil, &services.Error{Kind: services.KindOutOfRange, Message: "too far", Distance: 812.4, RadiusMeters: 50})

	rec := suite.serve(admissionForm(suite.T(), validFields(), []byte("img")))

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	body := suite.decodeError(rec)
	assert.Equal(suite.T(), "OutOfRange", body.Error)
	require.NotNil(suite.T(), body.DistanceMeters)
	require.NotNil(suite.T(), body.RadiusMeters)
	assert.Equal(suite.T(), 812.4, *body.DistanceMeters)
	assert.Equal(suite.T(), 50.0, *body.RadiusMeters)
}

func (suite *ControllersTestSuite) TestSubmit_AlreadyRecorded() {
	suite.admission.EXPECT().Attempt(mock.Anything, mock.Anything).
		Return(nil, &services.Error{Kind: services.KindAlreadyRecorded, ExistingTime: "08:02:11"})

	rec := suite.serve(admissionForm(suite.T(), validFields(), []byte("img")))

	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	body := suite.decodeError(rec)
	assert.Equal(suite.T(), "AlreadyRecorded", body.Error)
	assert.Equal(suite.T(), "08:02:11", body.ExistingTime)
	assert.Nil(suite.T(), body.DistanceMeters)
}

func (suite *ControllersTestSuite) TestSubmit_NoActiveZone() {
	suite.admission.EXPECT().Attempt(mock.Anything, mock.Anything).Return(nil, services.ErrNoActiveZone)

	rec := suite.serve(admissionForm(suite.T(), validFields(), []byte("img")))

	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
	assert.Equal(suite.T(), "NoActiveZone", suite.decodeError(rec).Error)
}

func (suite *ControllersTestSuite) TestSubmit_MissingImageIsLeftToAdmission() {
	suite.admission.EXPECT().Attempt(mock.Anything, mock.MatchedBy(func(a services.AdmissionAttempt) bool {
		return a.Name == "John Doe" && len(a.Image) == 0
	})).Return(nil, &services.Error{Kind: services.KindInvalidImage, Message: "image is empty"})

	rec := suite.serve(admissionForm(suite.T(), validFields(), nil))

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(suite.T(), "InvalidImage", suite.decodeError(rec).Error)
}

func (suite *ControllersTestSuite) TestSubmit_BadLocationIsLeftToAdmission() {
	suite.admission.EXPECT().Attempt(mock.Anything, mock.MatchedBy(func(a services.AdmissionAttempt) bool {
		return math.IsNaN(a.Location.Latitude) &&
			math.IsNaN(a.Location.Longitude) &&
			math.IsNaN(a.Location.AccuracyMeters) &&
			a.Location.CapturedAt.IsZero()
	})).Return(nil, services.ErrStaleLocation)

	fields := validFields()
	fields["latitude"] = "north"
	delete(fields, "longitude")
	fields["accuracy"] = "good"
	fields["captured_at"] = "yesterday"

	rec := suite.serve(admissionForm(suite.T(), fields, []byte("img")))

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(suite.T(), "StaleLocation", suite.decodeError(rec).Error)
}

func (suite *ControllersTestSuite) TestSubmit_UploadTooLarge() {
	rec := suite.serve(admissionForm(suite.T(), validFields(), bytes.Repeat([]byte{0xff}, 3<<20)))

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(suite.T(), "InvalidImage", suite.decodeError(rec).Error)
}

func (suite *ControllersTestSuite) TestList_DefaultsToToday() {
	suite.ledger.EXPECT().GetByDate(mock.Anything, "2025-10-06").Return(nil, nil)

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/attendance", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"date":"2025-10-06","records":[]}`, rec.Body.String())
}

func (suite *ControllersTestSuite) TestList_InvalidDate() {
	suite.ledger.EXPECT().GetByDate(mock.Anything, "06-10-2025").
		Return(nil, &services.Error{Kind: services.KindInvalidInput, Message: "invalid date"})

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/attendance?date=06-10-2025", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *ControllersTestSuite) TestUpdate_RecordsActor() {
	late := models.StatusLate
	suite.ledger.EXPECT().Update(mock.Anything, 7, models.ReviewFields{Status: &late}, "warden").
		Return(&models.PresenceRecord{ID: 7, Status: late}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/attendance/7", strings.NewReader(`{"status":"Late"}`))
	rec := suite.serve(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ControllersTestSuite) TestUpdate_InvalidID() {
	req := httptest.NewRequest(http.MethodPatch, "/attendance/abc", strings.NewReader(`{"status":"Late"}`))
	rec := suite.serve(req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *ControllersTestSuite) TestVerify_NotFound() {
	suite.ledger.EXPECT().Verify(mock.Anything, 99, "warden").Return(nil, services.ErrNotFound)

	rec := suite.serve(httptest.NewRequest(http.MethodPost, "/attendance/99/verify", nil))

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *ControllersTestSuite) TestHistory() {
	suite.ledger.EXPECT().History(mock.Anything, 7).Return([]models.AuditEntry{
		{ID: 1, PresenceRecordID: 7, Action: models.AuditCreate, Actor: models.SystemActor},
	}, nil)

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/attendance/7/history", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var entries []models.AuditEntry
	require.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&entries))
	assert.Len(suite.T(), entries, 1)
}

func (suite *ControllersTestSuite) TestZoneCreate() {
	suite.zone.EXPECT().Create(mock.Anything, &models.ZoneForm{Name: "Library", Latitude: 10.6785, Longitude: 77.0321, RadiusMeters: 50, SetActive: true}, "warden").
		Return(&models.Zone{ID: 3, Name: "Library", Active: true}, nil)

	body := `{"name":"Library","latitude":10.6785,"longitude":77.0321,"radius_meters":50,"set_active":true}`
	rec := suite.serve(httptest.NewRequest(http.MethodPost, "/zones", strings.NewReader(body)))

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
}

func (suite *ControllersTestSuite) TestZoneCreate_InvalidGeometry() {
	suite.zone.EXPECT().Create(mock.Anything, mock.Anything, "warden").
		Return(nil, &services.Error{Kind: services.KindInvalidGeometry, Message: "Radius must be greater than 0 meters"})

	rec := suite.serve(httptest.NewRequest(http.MethodPost, "/zones", strings.NewReader(`{"name":"Library"}`)))

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(suite.T(), "InvalidGeometry", suite.decodeError(rec).Error)
}

func (suite *ControllersTestSuite) TestZoneActivate() {
	suite.zone.EXPECT().Activate(mock.Anything, 3).Return(nil)
	suite.zone.EXPECT().GetByID(mock.Anything, 3).Return(&models.Zone{ID: 3, Active: true}, nil)

	rec := suite.serve(httptest.NewRequest(http.MethodPost, "/zones/3/activate", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ControllersTestSuite) TestZoneDelete_Active() {
	suite.zone.EXPECT().Delete(mock.Anything, 3).Return(services.ErrZoneActiveConstraint)

	rec := suite.serve(httptest.NewRequest(http.MethodDelete, "/zones/3", nil))

	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
}

func (suite *ControllersTestSuite) TestZoneActive_None() {
	suite.zone.EXPECT().GetActive(mock.Anything).Return(nil, services.ErrNoActiveZone)

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/zones/active", nil))

	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
}

func (suite *ControllersTestSuite) TestIdentityDeactivate() {
	suite.identity.EXPECT().Deactivate(mock.Anything, 4).Return(nil)

	rec := suite.serve(httptest.NewRequest(http.MethodPost, "/identities/4/deactivate", nil))

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

func (suite *ControllersTestSuite) TestStats() {
	suite.stats.EXPECT().ForDate(mock.Anything, "2025-10-05").Return(models.NewStats("2025-10-05", 4, 3), nil)

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/stats?date=2025-10-05", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"date":"2025-10-05","total":4,"present":3,"absent":1,"rate":75}`, rec.Body.String())
}

func (suite *ControllersTestSuite) TestSummary() {
	suite.summary.EXPECT().SendDaily(mock.Anything, "2025-10-06").Return(models.NewStats("2025-10-06", 2, 1), nil)

	rec := suite.serve(httptest.NewRequest(http.MethodPost, "/summary", nil))

	assert.Equal(suite.T(), http.StatusAccepted, rec.Code)
}

func (suite *ControllersTestSuite) TestUnexpectedErrorIsNotLeaked() {
	suite.zone.EXPECT().GetAll(mock.Anything).Return(nil, context.DeadlineExceeded)

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/zones", nil))

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	body := suite.decodeError(rec)
	assert.Equal(suite.T(), "PersistenceFailure", body.Error)
	assert.NotContains(suite.T(), body.Message, "deadline")
}

func TestControllersTestSuite(t *testing.T) {
	suite.Run(t, new(ControllersTestSuite))
}

func TestStatusFor(t *testing.T) {
	cases := map[services.Kind]int{
		services.KindInvalidName:          http.StatusUnprocessableEntity,
		services.KindStaleLocation:        http.StatusUnprocessableEntity,
		services.KindOutsideWindow:        http.StatusUnprocessableEntity,
		services.KindInvalidInput:         http.StatusBadRequest,
		services.KindNotFound:             http.StatusNotFound,
		services.KindAlreadyRecorded:      http.StatusConflict,
		services.KindZoneActiveConstraint: http.StatusConflict,
		services.KindNoActiveZone:         http.StatusServiceUnavailable,
		services.KindPersistenceFailure:   http.StatusServiceUnavailable,
	}
	for kind, expected := range cases {
		assert.Equal(t, expected, statusFor(kind), string(kind))
	}
}

// submitThroughAdmission posts a form to Submit backed by a real admission
// service over mocked repositories
func submitThroughAdmission(t *testing.T, zoneRepo *repomocks.MockZoneRepository, fields map[string]string, photo []byte) *httptest.ResponseRecorder {
	t.Helper()

	admission := services.NewAdmissionService(
		zoneRepo,
		repomocks.NewMockIdentityRepository(t),
		repomocks.NewMockPresenceRepository(t),
		services.Config{
			MaxImageBytes:     1 << 20,
			LocationFreshness: 5 * time.Minute,
			Window:            models.DefaultTimeWindow,
			Location:          time.UTC,
		},
		zap.NewNop(),
	)
	ctrl := NewAttendanceController(&services.Services{Admission: admission},
		Options{Location: time.UTC, MaxImageBytes: 1 << 20}, zap.NewNop())

	original := timeNow
	timeNow = func() time.Time { return testNow }
	defer func() { timeNow = original }()

	rec := httptest.NewRecorder()
	ctrl.Submit(rec, admissionForm(t, fields, photo))
	return rec
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 120, 160))))
	return buf.Bytes()
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestSubmit_NameIsCheckedFirst(t *testing.T) {
	// Without an image the name still decides the outcome
	rec := submitThroughAdmission(t, repomocks.NewMockZoneRepository(t), map[string]string{"name": "x1"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "InvalidName", errorKind(t, rec))

	// A good image without captured_at is not reported before the name
	rec = submitThroughAdmission(t, repomocks.NewMockZoneRepository(t), map[string]string{"name": "x1"}, testPNG(t))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "InvalidName", errorKind(t, rec))
}

func TestSubmit_NoActiveZoneBeforeLocation(t *testing.T) {
	zoneRepo := repomocks.NewMockZoneRepository(t)
	zoneRepo.EXPECT().GetActive(mock.Anything).
		Return(nil, fmt.Errorf("active zone: %w", repositories.ErrNotFound))

	fields := validFields()
	delete(fields, "captured_at")

	rec := submitThroughAdmission(t, zoneRepo, fields, testPNG(t))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NoActiveZone", errorKind(t, rec))
}
