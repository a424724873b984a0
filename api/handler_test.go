package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testApp(t *testing.T, withStore bool) (*fiber.App, store.Store) {
	t.Helper()
	cfg := config.Default()
	cfg.MaxTotalBurst = 100
	cfg.MaxArrivalTime = 50

	var st store.Store
	if withStore {
		sqlite, err := store.NewSQLiteStore(":memory:", testLogger())
		require.NoError(t, err)
		require.NoError(t, sqlite.Migrate(context.Background()))
		t.Cleanup(func() { sqlite.Close() })
		st = sqlite
	}
	return NewRouter(NewSchedulerHandlerImpl(cfg, st, testLogger()), testLogger()), st
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

const twoJobs = `{"jobs":[
	{"process_id":1,"name":"P1","arrival_time":0,"burst_time":5,"priority":2},
	{"process_id":2,"name":"P2","arrival_time":1,"burst_time":3,"priority":1}
]`

func TestRoundRobinEndpoint(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/rr", twoJobs+`,"time_quantum":2}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	decode(t, resp, &response)
	assert.Equal(t, "rr", response.Algorithm)
	assert.Equal(t, 2, response.TimeQuantum)
	require.Len(t, response.Chart, 5)
	assert.Equal(t, 7, response.Chart[4].Start)
	assert.Equal(t, 8, response.TotalTime)
}

func TestRoundRobinUsesConfiguredQuantum(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/rr", twoJobs+`}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	decode(t, resp, &response)
	assert.Equal(t, config.Default().RoundRobinTimeQuantum, response.TimeQuantum)
}

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/fcfs", twoJobs+`}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	decode(t, resp, &response)
	require.NotNil(t, response.AverageWaitingTime)
	assert.Equal(t, 2.0, *response.AverageWaitingTime)
	assert.Equal(t, 6.0, *response.AverageTurnAroundTime)
	assert.Zero(t, response.TimeQuantum)
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/all", twoJobs+`}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var all map[string]responses.ScheduleResponse
	decode(t, resp, &all)
	assert.Len(t, all, 5)
	srtf := all["srtf"]
	require.Len(t, srtf.Chart, 3)
	assert.Equal(t, 1, srtf.Chart[1].Start)
	assert.Equal(t, 4, srtf.Chart[1].End)
}

func TestInvalidBurstIsBadRequest(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/sjf", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["error"], "invalid input")
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/priority", `{"jobs":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTotalBurstLimit(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/srtf", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":101}]}`)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestTotalBurstLimitDoesNotOverflow(t *testing.T) {
	app, _ := testApp(t, false)

	body := `{"jobs":[
		{"process_id":1,"arrival_time":0,"burst_time":4611686018427387904},
		{"process_id":2,"arrival_time":0,"burst_time":4611686018427387904}
	]}`
	for _, path := range []string{"/api/v1/fcfs", "/api/v1/srtf", "/api/v1/all"} {
		resp := post(t, app, path, body)
		assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode, path)
	}
}

func TestArrivalTimeLimit(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/sjf", `{"jobs":[{"process_id":1,"arrival_time":100000000000,"burst_time":1}]}`)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["error"], "arrival time")

	resp = post(t, app, "/api/v1/sjf", `{"jobs":[{"process_id":1,"arrival_time":50,"burst_time":1}]}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEmptyJobsOmitAverages(t *testing.T) {
	app, _ := testApp(t, false)

	resp := post(t, app, "/api/v1/fcfs", `{"jobs":[]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decode(t, resp, &body)
	assert.NotContains(t, body, "average_waiting_time")
	assert.Equal(t, []any{}, body["chart"])
}

func TestListAlgorithms(t *testing.T) {
	app, _ := testApp(t, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil))
	require.NoError(t, err)

	var body map[string][]string
	decode(t, resp, &body)
	assert.Equal(t, []string{"fcfs", "sjf", "priority", "rr", "srtf"}, body["algorithms"])
}

func TestRunHistory(t *testing.T) {
	app, _ := testApp(t, true)

	resp := post(t, app, "/api/v1/sjf", twoJobs+`}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	runID := resp.Header.Get("X-Run-Id")
	require.NotEmpty(t, runID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+runID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var run store.Run
	decode(t, resp, &run)
	assert.Equal(t, "sjf", run.Algorithm)
	assert.Equal(t, 2, run.ProcessCount)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/runs?limit=5", nil))
	require.NoError(t, err)
	var list struct {
		Runs []store.Run `json:"runs"`
	}
	decode(t, resp, &list)
	assert.Len(t, list.Runs, 1)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/runs/run_missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRunHistoryDisabled(t *testing.T) {
	app, _ := testApp(t, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
