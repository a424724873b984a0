package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func NewRouter(handler SchedulerHandler, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logger),
	})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}

	return app
}
