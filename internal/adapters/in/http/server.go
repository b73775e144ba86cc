package http

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"net/http"
	"strconv"

	"harvest/internal/core/application/usecases/commands"
	"harvest/internal/core/application/usecases/queries"
	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	createJobHandler interface {
		Handle(ctx context.Context, command commands.CreateJobCommand) (*job.HarvestJob, error)
	}
	acceptJobHandler interface {
		Handle(ctx context.Context, command commands.AcceptJobCommand) (*job.HarvestJob, error)
	}
	completeJobHandler interface {
		Handle(ctx context.Context, command commands.CompleteJobCommand) (*job.HarvestJob, error)
	}
	listOpenJobsHandler interface {
		Handle(ctx context.Context, query queries.ListOpenJobsQuery) (iter.Seq2[*job.HarvestJob, error], error)
	}
	listJobViewsHandler interface {
		Handle(
			ctx context.Context, query queries.ListOpenJobsQuery,
		) (iter.Seq2[queries.GetJobViewQueryResponse, error], error)
	}
	getJobViewHandler interface {
		Handle(ctx context.Context, query queries.GetJobViewQuery) (queries.GetJobViewQueryResponse, error)
	}
	estimateCostHandler interface {
		Handle(ctx context.Context, query queries.EstimateCostQuery) (estimate.CostEstimate, error)
	}
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	// Command handlers
	createJobHandler   createJobHandler
	acceptJobHandler   acceptJobHandler
	completeJobHandler completeJobHandler

	// Query handlers
	listOpenJobsHandler listOpenJobsHandler
	listJobViewsHandler listJobViewsHandler
	getJobViewHandler   getJobViewHandler
	estimateCostHandler estimateCostHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler createJobHandler,
	acceptJobHandler acceptJobHandler,
	completeJobHandler completeJobHandler,
	listOpenJobsHandler listOpenJobsHandler,
	listJobViewsHandler listJobViewsHandler,
	getJobViewHandler getJobViewHandler,
	estimateCostHandler estimateCostHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createJobHandler:    createJobHandler,
		acceptJobHandler:    acceptJobHandler,
		completeJobHandler:  completeJobHandler,
		listOpenJobsHandler: listOpenJobsHandler,
		listJobViewsHandler: listJobViewsHandler,
		getJobViewHandler:   getJobViewHandler,
		estimateCostHandler: estimateCostHandler,
		logger:              logger.With("component", "http_server"),
	}
}

// Register mounts the routes on e. Mutating routes additionally pass
// through the given middleware, typically the rate limiter.
func (s *Server) Register(e *echo.Echo, mutating ...echo.MiddlewareFunc) {
	e.Use(Identity())

	e.GET("/health", s.Health)

	e.GET("/harvest-jobs", s.ListJobs)
	e.GET("/harvest-jobs/:id", s.GetJob)
	e.POST("/harvest-jobs", s.CreateJob, mutating...)
	e.POST("/harvest-jobs/:id/accept-labour", s.AcceptLabour, mutating...)
	e.POST("/harvest-jobs/:id/accept-transport", s.AcceptTransport, mutating...)
	e.POST("/harvest-jobs/:id/complete", s.CompleteJob, mutating...)
	e.POST("/cost-estimate", s.EstimateCost, mutating...)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateJob handles POST /harvest-jobs. The farmer is the calling actor;
// farmer_id in the body is used only when no actor is present.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	farmerID, err := s.actorOr(ctx, req.FarmerID, "farmer_id")
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = req.validate(); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateJobCommand(farmerID, *req.Acres, *req.DistanceKm, req.PickupLocation, req.DeliveryLocation)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toJobResponse(created))
}

// AcceptLabour handles POST /harvest-jobs/:id/accept-labour.
func (s *Server) AcceptLabour(ctx echo.Context) error {
	return s.accept(ctx, job.Labour)
}

// AcceptTransport handles POST /harvest-jobs/:id/accept-transport.
func (s *Server) AcceptTransport(ctx echo.Context) error {
	return s.accept(ctx, job.Transport)
}

func (s *Server) accept(ctx echo.Context, track job.Track) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("job_id", err))
	}

	var req AcceptJobRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	providerID, err := s.bodyOrActor(ctx, req.ProviderID, "provider_id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, providerID, track)
	if err != nil {
		return s.fail(ctx, err)
	}

	accepted, err := s.acceptJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(accepted))
}

// CompleteJob handles POST /harvest-jobs/:id/complete.
func (s *Server) CompleteJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("job_id", err))
	}

	cmd, err := commands.NewCompleteJobCommand(jobID)
	if err != nil {
		return s.fail(ctx, err)
	}

	completed, err := s.completeJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(completed))
}

// ListJobs handles GET /harvest-jobs?role=labour|transport. Any other role
// lists every job. With details=true each job carries the provider details
// of its accepted tracks.
func (s *Server) ListJobs(ctx echo.Context) error {
	query := queries.NewListOpenJobsQuery(ctx.QueryParam("role"))

	withDetails, err := parseFlag(ctx.QueryParam("details"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("details", err))
	}
	if withDetails {
		return s.listJobViews(ctx, query)
	}

	seq, err := s.listOpenJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]JobResponse, 0)
	for j, iterErr := range seq {
		if iterErr != nil {
			return s.fail(ctx, iterErr)
		}
		response = append(response, toJobResponse(j))
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) listJobViews(ctx echo.Context, query queries.ListOpenJobsQuery) error {
	seq, err := s.listJobViewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]JobViewResponse, 0)
	for view, iterErr := range seq {
		if iterErr != nil {
			return s.fail(ctx, iterErr)
		}
		response = append(response, toJobViewResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseFlag treats an absent flag as false.
func parseFlag(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// GetJob handles GET /harvest-jobs/:id.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("job_id", err))
	}

	query, err := queries.NewGetJobViewQuery(jobID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getJobViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobViewResponse(view))
}

// EstimateCost handles POST /cost-estimate.
func (s *Server) EstimateCost(ctx echo.Context) error {
	var req CostEstimateRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewEstimateCostQuery(req.Acres, req.DistanceKm, req.LabourCount, req.FuelPrice)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.estimateCostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCostEstimateResponse(result))
}

// actorOr returns the calling actor's id, or the id given in the body when
// the request carries no actor. A zero UUID is returned when neither is set
// so that the command reports the missing field.
func (s *Server) actorOr(ctx echo.Context, bodyID *string, field string) (kernel.UUID, error) {
	if actor, ok := ActorFrom(ctx); ok {
		return actor.ID, nil
	}
	return parseBodyID(bodyID, field)
}

// bodyOrActor returns the id given in the body, falling back to the calling
// actor when the body omits it.
func (s *Server) bodyOrActor(ctx echo.Context, bodyID *string, field string) (kernel.UUID, error) {
	if bodyID == nil || *bodyID == "" {
		if actor, ok := ActorFrom(ctx); ok {
			return actor.ID, nil
		}
	}
	return parseBodyID(bodyID, field)
}

func parseBodyID(bodyID *string, field string) (kernel.UUID, error) {
	if bodyID == nil || *bodyID == "" {
		return kernel.UUID{}, nil
	}

	id, err := kernel.UUIDFromString(*bodyID)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail writes the response for err. Unexpected errors are logged and
// reported without detail.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := errorResponse(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}

// errorResponse maps the error taxonomy onto HTTP statuses.
func errorResponse(err error) (int, ErrorResponse) {
	var conflict *errs.ConflictError
	switch {
	case errors.As(err, &conflict):
		body := ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Field:   conflict.ParamName,
		}
		if holder, ok := conflict.Holder.(string); ok {
			body.ProviderID = holder
		}
		return http.StatusConflict, body
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ErrorResponse{Code: http.StatusNotFound, Message: err.Error()}
	case errs.IsValidation(err):
		return http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		}
	}
}
