package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"
	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store // optional; runs are not persisted when nil
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		store:  st,
		logger: logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}

	all := make(map[schedulers.Algorithm]responses.ScheduleResponse)
	for _, algorithm := range schedulers.Algorithms() {
		response, err := s.run(ctx, request, algorithm)
		if err != nil {
			return err
		}
		all[algorithm] = response
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": schedulers.Algorithms()})
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return fiber.NewError(fiber.StatusNotFound, "run history is disabled")
	}
	runs, err := s.store.ListRuns(ctx.Context(), ctx.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"runs": runs})
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return fiber.NewError(fiber.StatusNotFound, "run history is disabled")
	}
	run, err := s.store.GetRun(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := s.run(ctx, request, algorithm)
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if total := request.TotalBurstTime(); s.config.MaxTotalBurst > 0 && total > s.config.MaxTotalBurst {
		return request, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("total burst time %d exceeds limit %d", total, s.config.MaxTotalBurst))
	}
	if latest := request.LatestArrivalTime(); s.config.MaxArrivalTime > 0 && latest > s.config.MaxArrivalTime {
		return request, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("arrival time %d exceeds limit %d", latest, s.config.MaxArrivalTime))
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request requests.ScheduleRequests, algorithm schedulers.Algorithm) (responses.ScheduleResponse, error) {
	timeQuantum := 0
	if algorithm == schedulers.RoundRobin {
		timeQuantum = s.config.RoundRobinTimeQuantum
		if request.TimeQuantum != nil {
			timeQuantum = *request.TimeQuantum
		}
		if timeQuantum < 1 {
			timeQuantum = 1
		}
	}

	result, err := schedulers.Schedule(request.Processes(), algorithm, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response := responses.NewScheduleResponse(string(algorithm), timeQuantum, result)
	s.logger.Info("schedule computed", "algorithm", algorithm, "processes", len(request.Jobs), "total_time", response.TotalTime)

	if s.store != nil {
		s.saveRun(ctx, request, response)
	}
	return response, nil
}

// saveRun only logs failures; the computed schedule is still returned.
func (s *SchedulerHandlerImpl) saveRun(ctx *fiber.Ctx, request requests.ScheduleRequests, response responses.ScheduleResponse) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		s.logger.Error("marshal request", "error", err)
		return
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("marshal response", "error", err)
		return
	}

	run := &store.Run{
		Algorithm:    response.Algorithm,
		TimeQuantum:  response.TimeQuantum,
		ProcessCount: len(request.Jobs),
		Request:      requestJSON,
		Response:     responseJSON,
	}
	if err := s.store.SaveRun(ctx.Context(), run); err != nil {
		s.logger.Error("save run", "error", err)
		return
	}
	ctx.Set("X-Run-Id", run.ID)
}

// ErrorHandler writes every error as {"error": "..."} with a status derived from its kind.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "can not process request"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, schedulers.ErrInvalidInput):
			status = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, store.ErrNotFound):
			status = fiber.StatusNotFound
			message = err.Error()
		default:
			logger.Error("request failed", "path", ctx.Path(), "error", err)
		}
		return ctx.Status(status).JSON(fiber.Map{"error": message})
	}
}
