package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "harvest/internal/adapters/in/http"
	"harvest/internal/core/application/usecases/commands"
	"harvest/internal/core/application/usecases/queries"
	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/services"
	"harvest/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateJobHandler struct{ mock.Mock }

func (m *MockCreateJobHandler) Handle(ctx context.Context, command commands.CreateJobCommand) (*job.HarvestJob, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.HarvestJob), args.Error(1)
}

type MockAcceptJobHandler struct{ mock.Mock }

func (m *MockAcceptJobHandler) Handle(ctx context.Context, command commands.AcceptJobCommand) (*job.HarvestJob, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.HarvestJob), args.Error(1)
}

type MockCompleteJobHandler struct{ mock.Mock }

func (m *MockCompleteJobHandler) Handle(ctx context.Context, command commands.CompleteJobCommand) (*job.HarvestJob, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.HarvestJob), args.Error(1)
}

type MockListOpenJobsHandler struct{ mock.Mock }

func (m *MockListOpenJobsHandler) Handle(
	ctx context.Context, query queries.ListOpenJobsQuery,
) (iter.Seq2[*job.HarvestJob, error], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq2[*job.HarvestJob, error]), args.Error(1)
}

type MockListJobViewsHandler struct{ mock.Mock }

func (m *MockListJobViewsHandler) Handle(
	ctx context.Context, query queries.ListOpenJobsQuery,
) (iter.Seq2[queries.GetJobViewQueryResponse, error], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq2[queries.GetJobViewQueryResponse, error]), args.Error(1)
}

type MockGetJobViewHandler struct{ mock.Mock }

func (m *MockGetJobViewHandler) Handle(
	ctx context.Context, query queries.GetJobViewQuery,
) (queries.GetJobViewQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetJobViewQueryResponse), args.Error(1)
}

type MockEstimateCostHandler struct{ mock.Mock }

func (m *MockEstimateCostHandler) Handle(ctx context.Context, query queries.EstimateCostQuery) (estimate.CostEstimate, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(estimate.CostEstimate), args.Error(1)
}

type testServer struct {
	echo     *echo.Echo
	create   *MockCreateJobHandler
	accept   *MockAcceptJobHandler
	complete *MockCompleteJobHandler
	list     *MockListOpenJobsHandler
	views    *MockListJobViewsHandler
	view     *MockGetJobViewHandler
	estimate *MockEstimateCostHandler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		echo:     echo.New(),
		create:   new(MockCreateJobHandler),
		accept:   new(MockAcceptJobHandler),
		complete: new(MockCompleteJobHandler),
		list:     new(MockListOpenJobsHandler),
		views:    new(MockListJobViewsHandler),
		view:     new(MockGetJobViewHandler),
		estimate: new(MockEstimateCostHandler),
	}

	server := httpadapter.NewServer(
		ts.create, ts.accept, ts.complete, ts.list, ts.views, ts.view, ts.estimate,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	server.Register(ts.echo)
	return ts
}

func (ts *testServer) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func newJob(t *testing.T) *job.HarvestJob {
	t.Helper()
	j, err := job.NewHarvestJob(kernel.NewUUID(), kernel.NewUUID(), 5, 10, "A", "B",
		time.Date(2025, 2, 1, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return j
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_CreateJob_UsesActorAsFarmer(t *testing.T) {
	ts := newTestServer(t)
	farmerID := kernel.NewUUID()
	created := newJob(t)

	ts.create.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.CreateJobCommand) bool {
		return c.FarmerID().IsEqual(farmerID) && c.Acres() == 5 && c.DistanceKm() == 10 &&
			c.PickupLocation() == "A" && c.DeliveryLocation() == "B"
	})).Return(created, nil).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs",
		`{"acres":5,"distance_km":10,"pickup_location":"A","delivery_location":"B"}`,
		map[string]string{httpadapter.HeaderActorID: farmerID.String(), httpadapter.HeaderActorRole: "farmer"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode[httpadapter.JobResponse](t, rec)
	assert.Equal(t, created.ID().String(), body.ID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "pending", body.LabourStatus)
	assert.Equal(t, "pending", body.TransportStatus)
	assert.Nil(t, body.LabourProviderID)
	assert.Nil(t, body.TransportProviderID)
	ts.create.AssertExpectations(t)
}

func TestServer_CreateJob_ActorOverridesBodyFarmer(t *testing.T) {
	ts := newTestServer(t)
	farmerID := kernel.NewUUID()

	ts.create.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.CreateJobCommand) bool {
		return c.FarmerID().IsEqual(farmerID)
	})).Return(newJob(t), nil).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs",
		`{"farmer_id":"`+kernel.NewUUID().String()+`","acres":5,"distance_km":10,"pickup_location":"A","delivery_location":"B"}`,
		map[string]string{httpadapter.HeaderActorID: farmerID.String(), httpadapter.HeaderActorRole: "farmer"})

	require.Equal(t, http.StatusCreated, rec.Code)
	ts.create.AssertExpectations(t)
}

func TestServer_CreateJob_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "no farmer",
			body:    `{"acres":5,"distance_km":10,"pickup_location":"A","delivery_location":"B"}`,
			wantMsg: "farmer_id",
		},
		{
			name:    "missing acres",
			body:    `{"farmer_id":"` + kernel.NewUUID().String() + `","distance_km":10,"pickup_location":"A","delivery_location":"B"}`,
			wantMsg: "acres",
		},
		{
			name:    "malformed farmer id",
			body:    `{"farmer_id":"42","acres":5,"distance_km":10}`,
			wantMsg: "farmer_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(http.MethodPost, "/harvest-jobs", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[httpadapter.ErrorResponse](t, rec).Message, tt.wantMsg)
			ts.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestServer_CreateJob_DomainValidationIsBadRequest(t *testing.T) {
	ts := newTestServer(t)
	ts.create.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewValueIsOutOfRangeError("acres", -1.0, 0, nil)).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs",
		`{"farmer_id":"`+kernel.NewUUID().String()+`","acres":-1,"distance_km":10,"pickup_location":"A","delivery_location":"B"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateJob_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/harvest-jobs", `{"acres":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AcceptLabour_WithProviderInBody(t *testing.T) {
	ts := newTestServer(t)
	j := newJob(t)
	providerID := kernel.NewUUID()
	require.NoError(t, j.AcceptLabour(providerID))

	ts.accept.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.AcceptJobCommand) bool {
		return c.JobID().IsEqual(j.ID()) && c.ProviderID().IsEqual(providerID) && c.Track() == job.Labour
	})).Return(j, nil).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs/"+j.ID().String()+"/accept-labour",
		`{"provider_id":"`+providerID.String()+`"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[httpadapter.JobResponse](t, rec)
	assert.Equal(t, "accepted", body.LabourStatus)
	require.NotNil(t, body.LabourProviderID)
	assert.Equal(t, providerID.String(), *body.LabourProviderID)
	ts.accept.AssertExpectations(t)
}

func TestServer_AcceptTransport_FallsBackToActor(t *testing.T) {
	ts := newTestServer(t)
	j := newJob(t)
	actorID := kernel.NewUUID()
	require.NoError(t, j.AcceptTransport(actorID))

	ts.accept.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.AcceptJobCommand) bool {
		return c.ProviderID().IsEqual(actorID) && c.Track() == job.Transport
	})).Return(j, nil).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs/"+j.ID().String()+"/accept-transport", "",
		map[string]string{httpadapter.HeaderActorID: actorID.String(), httpadapter.HeaderActorRole: "transport"})

	require.Equal(t, http.StatusOK, rec.Code)
	ts.accept.AssertExpectations(t)
}

func TestServer_AcceptLabour_Conflict(t *testing.T) {
	ts := newTestServer(t)
	jobID := kernel.NewUUID()
	holder := kernel.NewUUID()

	ts.accept.On("Handle", mock.Anything, mock.Anything).Return(nil,
		errs.NewConflictErrorWithCause("labour", jobID.String(), holder.String(), job.ErrTrackAlreadyAccepted)).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs/"+jobID.String()+"/accept-labour",
		`{"provider_id":"`+kernel.NewUUID().String()+`"}`, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decode[httpadapter.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, "labour", body.Field)
	assert.Equal(t, holder.String(), body.ProviderID)
}

func TestServer_AcceptLabour_MissingProvider(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/harvest-jobs/"+kernel.NewUUID().String()+"/accept-labour", `{}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpadapter.ErrorResponse](t, rec).Message, "provider_id")
	ts.accept.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_AcceptLabour_InvalidJobID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/harvest-jobs/42/accept-labour",
		`{"provider_id":"`+kernel.NewUUID().String()+`"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.accept.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_CompleteJob(t *testing.T) {
	ts := newTestServer(t)
	j := newJob(t)
	require.NoError(t, j.Complete())

	ts.complete.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.CompleteJobCommand) bool {
		return c.JobID().IsEqual(j.ID())
	})).Return(j, nil).Once()

	rec := ts.do(http.MethodPost, "/harvest-jobs/"+j.ID().String()+"/complete", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[httpadapter.JobResponse](t, rec)
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, "pending", body.TransportStatus)
}

func TestServer_CompleteJob_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        errs.NewObjectNotFoundError("job", "x"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "object not found",
		},
		{
			name:       "already completed",
			err:        errs.NewConflictErrorWithCause("status", "x", nil, job.ErrJobAlreadyCompleted),
			wantStatus: http.StatusConflict,
			wantMsg:    "conflict",
		},
		{
			name:       "storage failure",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.complete.On("Handle", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := ts.do(http.MethodPost, "/harvest-jobs/"+kernel.NewUUID().String()+"/complete", "", nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decode[httpadapter.ErrorResponse](t, rec)
			assert.Contains(t, body.Message, tt.wantMsg)
			assert.NotContains(t, body.Message, "connection reset")
		})
	}
}

func TestServer_ListJobs(t *testing.T) {
	ts := newTestServer(t)
	first, second := newJob(t), newJob(t)
	seq := func(yield func(*job.HarvestJob, error) bool) {
		if !yield(first, nil) {
			return
		}
		yield(second, nil)
	}

	ts.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOpenJobsQuery) bool {
		return q.Track() != nil && *q.Track() == job.Labour
	})).Return(iter.Seq2[*job.HarvestJob, error](seq), nil).Once()

	rec := ts.do(http.MethodGet, "/harvest-jobs?role=labour", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]httpadapter.JobResponse](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, first.ID().String(), body[0].ID)
	assert.Equal(t, second.ID().String(), body[1].ID)
}

func TestServer_ListJobs_AllRolesAndEmpty(t *testing.T) {
	ts := newTestServer(t)
	empty := func(func(*job.HarvestJob, error) bool) {}

	ts.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOpenJobsQuery) bool {
		return q.Track() == nil
	})).Return(iter.Seq2[*job.HarvestJob, error](empty), nil).Once()

	rec := ts.do(http.MethodGet, "/harvest-jobs?role=farmer", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_ListJobs_IterationFailure(t *testing.T) {
	ts := newTestServer(t)
	failing := func(yield func(*job.HarvestJob, error) bool) {
		yield(nil, errors.New("cursor closed"))
	}

	ts.list.On("Handle", mock.Anything, mock.Anything).
		Return(iter.Seq2[*job.HarvestJob, error](failing), nil).Once()

	rec := ts.do(http.MethodGet, "/harvest-jobs", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ListJobs_WithDetails(t *testing.T) {
	ts := newTestServer(t)
	pending, accepted := newJob(t), newJob(t)
	labourID := kernel.NewUUID()
	require.NoError(t, accepted.AcceptLabour(labourID))

	views := func(yield func(queries.GetJobViewQueryResponse, error) bool) {
		if !yield(queries.GetJobViewQueryResponse{Job: pending}, nil) {
			return
		}
		yield(queries.GetJobViewQueryResponse{
			Job:           accepted,
			LabourDetails: &queries.ProviderDetails{ID: labourID, Name: "Selvam Labour Team", Phone: "9876543211"},
		}, nil)
	}

	ts.views.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOpenJobsQuery) bool {
		return q.Track() == nil
	})).Return(iter.Seq2[queries.GetJobViewQueryResponse, error](views), nil).Once()

	rec := ts.do(http.MethodGet, "/harvest-jobs?details=true", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, pending.ID().String(), raw[0]["id"])
	assert.Contains(t, raw[0], "labour_details")
	assert.Nil(t, raw[0]["labour_details"])
	assert.Equal(t, map[string]any{
		"id":    labourID.String(),
		"name":  "Selvam Labour Team",
		"phone": "9876543211",
	}, raw[1]["labour_details"])
	assert.Nil(t, raw[1]["transport_details"])
	ts.list.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_ListJobs_InvalidDetailsFlag(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/harvest-jobs?details=maybe", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpadapter.ErrorResponse](t, rec).Message, "details")
	ts.list.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	ts.views.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_GetJob(t *testing.T) {
	ts := newTestServer(t)
	j := newJob(t)
	labourID := kernel.NewUUID()
	require.NoError(t, j.AcceptLabour(labourID))

	ts.view.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetJobViewQuery) bool {
		return q.JobID().IsEqual(j.ID())
	})).Return(queries.GetJobViewQueryResponse{
		Job:           j,
		LabourDetails: &queries.ProviderDetails{ID: labourID, Name: "Selvam Labour Team", Phone: "9876543211"},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/harvest-jobs/"+j.ID().String(), "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, map[string]any{
		"id":    labourID.String(),
		"name":  "Selvam Labour Team",
		"phone": "9876543211",
	}, raw["labour_details"])
	assert.Contains(t, raw, "transport_details")
	assert.Nil(t, raw["transport_details"])
	assert.Equal(t, "accepted", raw["labour_status"])
}

func TestServer_GetJob_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.view.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetJobViewQueryResponse{}, errs.NewObjectNotFoundError("job", "x")).Once()

	rec := ts.do(http.MethodGet, "/harvest-jobs/"+kernel.NewUUID().String(), "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_EstimateCost(t *testing.T) {
	ts := newTestServer(t)

	ts.estimate.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.EstimateCostQuery) bool {
		p := q.Params()
		return p.Acres() == 10 && p.DistanceKm() == 20 && p.LabourCount() == 5 && p.FuelPrice() == 100
	})).Return(estimate.CostEstimate{
		Total:     9950,
		Breakdown: estimate.Breakdown{Labour: 2250, Transport: 1200, Base: 1000},
	}, nil).Once()

	rec := ts.do(http.MethodPost, "/cost-estimate",
		`{"acres":10,"distance_km":20,"labour_count":5,"fuel_price":100}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"predicted_cost":9950,"cost_breakdown":{"labour":2250,"transport":1200,"base":1000}}`,
		rec.Body.String())
}

func TestServer_EstimateCost_MissingInputs(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/cost-estimate", `{"acres":10}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decode[httpadapter.ErrorResponse](t, rec).Message
	assert.Contains(t, msg, "distance_km")
	assert.Contains(t, msg, "labour_count")
	ts.estimate.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_EstimateCost_PredictorFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.estimate.On("Handle", mock.Anything, mock.Anything).
		Return(estimate.CostEstimate{}, errors.New("predict cost: model exploded")).Once()

	rec := ts.do(http.MethodPost, "/cost-estimate",
		`{"acres":10,"distance_km":20,"labour_count":5}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_EstimateCost_OverflowIsBadRequest(t *testing.T) {
	ts := newTestServer(t)
	e := echo.New()
	httpadapter.NewServer(
		ts.create, ts.accept, ts.complete, ts.list, ts.views, ts.view,
		queries.NewEstimateCostQueryHandler(services.NewCostEstimator(services.FormulaStrategy{})),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).Register(e)

	req := httptest.NewRequest(http.MethodPost, "/cost-estimate",
		strings.NewReader(`{"acres":1e308,"distance_km":1e308,"labour_count":5,"fuel_price":1e308}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[httpadapter.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.Contains(t, body.Message, "cost_params")
}

func TestIdentity_RejectsMalformedHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "bad id", headers: map[string]string{httpadapter.HeaderActorID: "42"}},
		{name: "bad role", headers: map[string]string{
			httpadapter.HeaderActorID:   kernel.NewUUID().String(),
			httpadapter.HeaderActorRole: "tractor",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(http.MethodGet, "/health", "", tt.headers)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
