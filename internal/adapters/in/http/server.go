// Package http exposes the production tracking API over echo. Handlers
// translate between JSON payloads and application commands and queries;
// errors surface as RFC 7807 problem documents.
package http

import (
	"errors"
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/worker"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	StartProcess    commands.StartProcessCommandHandler
	CompleteProcess commands.CompleteProcessCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	CompleteOrder   commands.CompleteOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	CreateWorker    commands.CreateWorkerCommandHandler
	DeleteWorker    commands.DeleteWorkerCommandHandler

	GetOrders            queries.GetOrdersQueryHandler
	GetOrderDetail       queries.GetOrderDetailQueryHandler
	GetProcessExecutions queries.GetProcessExecutionsQueryHandler
	GetOrderStats        queries.GetOrderStatsQueryHandler
	GetWorkers           queries.GetWorkersQueryHandler
	GetWorkerCredentials queries.GetWorkerCredentialsQueryHandler
}

// Server handles HTTP requests for the production tracking API.
type Server struct {
	handlers Handlers
	issuer   TokenIssuer
	secret   string
	validate *validator.Validate
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, issuer TokenIssuer, secret string) *Server {
	return &Server{
		handlers: handlers,
		issuer:   issuer,
		secret:   secret,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Everything under
// /api/v1 except login requires a valid token; management routes require the
// admin role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	authed := api.Group("", AuthMiddleware(s.secret))
	authed.POST("/processes/:processId/start", s.StartProcess)
	authed.POST("/processes/:processId/complete", s.CompleteProcess)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:orderId", s.GetOrderDetail)
	authed.POST("/orders/:orderId/complete", s.CompleteOrder)

	admin := authed.Group("", AdminOnly())
	admin.GET("/processes/:processId/executions", s.GetProcessExecutions)
	admin.POST("/orders", s.CreateOrder)
	admin.DELETE("/orders/:orderId", s.DeleteOrder)
	admin.GET("/orders/stats/summary", s.GetOrderStats)
	admin.GET("/workers", s.GetWorkers)
	admin.POST("/workers", s.CreateWorker)
	admin.DELETE("/workers/:workerId", s.DeleteWorker)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login - authenticates a worker and issues
// a token. Unknown usernames and wrong passwords get the same answer.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetWorkerCredentialsQuery(req.Username)
	if err != nil {
		return respondError(ctx, err)
	}

	creds, err := s.handlers.GetWorkerCredentials.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return unauthorized(ctx, "invalid credentials")
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) != nil {
		return unauthorized(ctx, "invalid credentials")
	}

	token, err := s.issuer.Issue(creds.ID, creds.Name, creds.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Worker: WorkerResponse{
			ID:       creds.ID.String(),
			Username: req.Username,
			Name:     creds.Name,
			Role:     creds.Role,
		},
	})
}

// StartProcess handles POST /api/v1/processes/:processId/start - opens a work
// session on a process for the authenticated worker.
func (s *Server) StartProcess(ctx echo.Context) error {
	processID, err := kernel.UUIDFromString(ctx.Param("processId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("processId", err))
	}

	var req StartProcessRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	workerID, err := workerIDFromContext(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartProcessCommand(
		processID, workerID, req.Equipment, execution.Variables(req.Variables))
	if err != nil {
		return respondError(ctx, err)
	}

	executionID, err := s.handlers.StartProcess.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrEquipmentConflict) {
			metrics.EquipmentConflict(req.Equipment)
		}
		return respondError(ctx, err)
	}

	metrics.ExecutionStarted()

	return ctx.JSON(http.StatusCreated, StartProcessResponse{ExecutionID: executionID.String()})
}

// CompleteProcess handles POST /api/v1/processes/:processId/complete - closes
// a work session, either a named one or the caller's latest active one.
func (s *Server) CompleteProcess(ctx echo.Context) error {
	processID, err := kernel.UUIDFromString(ctx.Param("processId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("processId", err))
	}

	var req CompleteProcessRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	workerID, err := workerIDFromContext(ctx)
	if err != nil {
		return err
	}

	var executionID *kernel.UUID
	if req.ExecutionID != "" {
		parsed, parseErr := kernel.UUIDFromString(req.ExecutionID)
		if parseErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("execution_id", parseErr))
		}
		executionID = &parsed
	}

	cmd, err := commands.NewCompleteProcessCommand(
		processID, executionID, workerID, execution.Variables(req.Variables))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CompleteProcess.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	metrics.ExecutionCompleted()

	return ctx.NoContent(http.StatusOK)
}

// GetProcessExecutions handles GET /api/v1/processes/:processId/executions -
// returns the full work session history of a process.
func (s *Server) GetProcessExecutions(ctx echo.Context) error {
	processID, err := kernel.UUIDFromString(ctx.Param("processId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("processId", err))
	}

	query, err := queries.NewGetProcessExecutionsQuery(processID)
	if err != nil {
		return respondError(ctx, err)
	}

	executions, err := s.handlers.GetProcessExecutions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ExecutionResponse, 0, len(executions))
	for _, exec := range executions {
		response = append(response, executionFromQuery(exec))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - returns the order board, optionally
// filtered by status.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, row := range orders {
		response = append(response, orderSummaryFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDetail handles GET /api/v1/orders/:orderId - returns the order with
// its processes and active work sessions. includeHistory=true adds completed
// sessions and is limited to admins.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	includeHistory := ctx.QueryParam("includeHistory") == "true"
	if includeHistory && !isAdmin(ctx) {
		return forbidden(ctx, "admin role required for execution history")
	}

	query, err := queries.NewGetOrderDetailQuery(orderID, includeHistory)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetOrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromQuery(detail))
}

// CreateOrder handles POST /api/v1/orders - registers an order with its
// production steps.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	processNames := make([]order.ProcessName, 0, len(req.Processes))
	for _, raw := range req.Processes {
		name, err := order.NewProcessName(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		processNames = append(processNames, name)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.OrderNumber, req.Description, req.PhotoURL, processNames)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - marks an
// order completed once every process has finished.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	metrics.OrderCompleted()

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes an order and
// its processes, sessions, and variables.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStats handles GET /api/v1/orders/stats/summary.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.handlers.GetOrderStats.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		TotalOrders:      stats.TotalOrders,
		InProgressOrders: stats.InProgressOrders,
		CompletedOrders:  stats.CompletedOrders,
		ActiveExecutions: stats.ActiveExecutions,
	})
}

// GetWorkers handles GET /api/v1/workers - lists worker accounts.
func (s *Server) GetWorkers(ctx echo.Context) error {
	workers, err := s.handlers.GetWorkers.Handle(ctx.Request().Context(), queries.NewGetWorkersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WorkerResponse, 0, len(workers))
	for _, row := range workers {
		response = append(response, workerFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorker handles POST /api/v1/workers - registers a worker account.
// The password is bcrypt-hashed here so only the hash travels further.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var req CreateWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	role, err := worker.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	workerID := kernel.NewUUID()

	cmd, err := commands.NewCreateWorkerCommand(workerID, req.Username, req.Name, string(hash), role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: workerID.String()})
}

// DeleteWorker handles DELETE /api/v1/workers/:workerId - removes a worker
// account. Past work sessions keep their record with the worker unlinked.
func (s *Server) DeleteWorker(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("workerId", err))
	}

	cmd, err := commands.NewDeleteWorkerCommand(workerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
