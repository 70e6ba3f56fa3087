package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/slider"
	"chain-usage-dashboard/internal/dashboard/core/usecase"
)

// SessionHeader carries the client session used for latest-wins.
const SessionHeader = "X-Session-ID"

type GetDashboardUseCase interface {
	Execute(ctx context.Context, sessionID string, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type ControlsUseCase interface {
	Dates(left, right int) (usecase.SliderState, error)
	Values(from, to string) (usecase.SliderState, error)
	Replay(start domain.SliderRange, events []slider.Event) (usecase.SliderState, error)
	CrossFilter(current domain.CrossFilter, action, value string) (domain.CrossFilter, error)
}

type DashboardHandler struct {
	dashboards GetDashboardUseCase
	controls   ControlsUseCase
	log        *zap.Logger
}

func NewDashboardHandler(dashboards GetDashboardUseCase, controls ControlsUseCase, log *zap.Logger) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{dashboards: dashboards, controls: controls, log: log}
}

// Register mounts every dashboard route on r.
func (h *DashboardHandler) Register(r fiber.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Post("/dashboard/cross-filter", h.ApplyCrossFilter)
	r.Get("/slider/dates", h.SliderDates)
	r.Get("/slider/values", h.SliderValues)
	r.Post("/slider/events", h.SliderEvents)
}

// GetDashboard godoc
// @Summary Build the chain usage dashboard
// @Description Aggregates, ranks and compares usage of the home chain for the selected period
// @Tags Dashboard
// @Produce json
// @Param chain query string true "Home chain"
// @Param from query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Param country query string false "Country filter (alpha-2 or numeric code)"
// @Param category query string false "Category filter"
// @Param filtered_by_category query string false "Growth cross-filter category"
// @Param filtered_by_country query string false "Growth cross-filter country"
// @Param metric query string false "requests | users | volume"
// @Param X-Session-ID header string false "Session for latest-wins refreshes"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	in := usecase.GetDashboardInput{
		Chain:              query(c, "chain"),
		From:               query(c, "from"),
		To:                 query(c, "to"),
		Country:            query(c, "country"),
		Category:           query(c, "category"),
		FilteredByCategory: query(c, "filtered_by_category"),
		FilteredByCountry:  query(c, "filtered_by_country"),
		Metric:             query(c, "metric"),
	}

	// the session id keys the latest-wins registry and outlives the request
	sessionID := utils.CopyString(c.Get(SessionHeader))
	if sessionID != "" {
		c.Set(SessionHeader, sessionID)
	}

	d, err := h.dashboards.Execute(c.UserContext(), sessionID, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidChain),
			errors.Is(err, usecase.ErrInvalidDateRange),
			errors.Is(err, usecase.ErrInvalidMetric),
			errors.Is(err, usecase.ErrConflictingCrossFilter),
			errors.Is(err, usecase.ErrRangeOutsideSlider):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrStaleRequest):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Error:   "superseded",
				Message: err.Error(),
			})
		default:
			h.log.Error("dashboard build failed", zap.String("chain", in.Chain), zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(newDashboardResponse(d))
}

// ApplyCrossFilter godoc
// @Summary Apply a growth card cross-filter action
// @Description Selecting a category clears the country selection and vice versa
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body CrossFilterRequest true "Current selection and action"
// @Success 200 {object} domain.CrossFilter
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/cross-filter [post]
func (h *DashboardHandler) ApplyCrossFilter(c *fiber.Ctx) error {
	var req CrossFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	state, err := h.controls.CrossFilter(domain.CrossFilter{
		ByCategory: req.FilteredByCategory,
		ByCountry:  req.FilteredByCountry,
	}, req.Action, req.Value)
	if err != nil {
		return badControlInput(c, err)
	}

	return c.Status(http.StatusOK).JSON(state)
}

// SliderDates godoc
// @Summary Convert slider values to dates
// @Tags Slider
// @Produce json
// @Param left query int true "Left thumb value"
// @Param right query int true "Right thumb value"
// @Success 200 {object} SliderResponse
// @Failure 400 {object} ErrorResponse
// @Router /slider/dates [get]
func (h *DashboardHandler) SliderDates(c *fiber.Ctx) error {
	left, err := strconv.Atoi(c.Query("left", ""))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'left' parameter",
		})
	}
	right, err := strconv.Atoi(c.Query("right", ""))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'right' parameter",
		})
	}

	st, err := h.controls.Dates(left, right)
	if err != nil {
		return badControlInput(c, err)
	}
	return c.Status(http.StatusOK).JSON(sliderResponse(st))
}

// SliderValues godoc
// @Summary Convert a date range to slider values
// @Tags Slider
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} SliderResponse
// @Failure 400 {object} ErrorResponse
// @Router /slider/values [get]
func (h *DashboardHandler) SliderValues(c *fiber.Ctx) error {
	st, err := h.controls.Values(c.Query("from", ""), c.Query("to", ""))
	if err != nil {
		return badControlInput(c, err)
	}
	return c.Status(http.StatusOK).JSON(sliderResponse(st))
}

// SliderEvents godoc
// @Summary Replay slider interactions
// @Description Applies pointer, track and keyboard events in order; thumbs are clamped, never rejected
// @Tags Slider
// @Accept json
// @Produce json
// @Param request body SliderEventsRequest true "Start values and events"
// @Success 200 {object} SliderResponse
// @Failure 400 {object} ErrorResponse
// @Router /slider/events [post]
func (h *DashboardHandler) SliderEvents(c *fiber.Ctx) error {
	var req SliderEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	st, err := h.controls.Replay(domain.SliderRange{Left: req.Left, Right: req.Right}, req.Events)
	if err != nil {
		return badControlInput(c, err)
	}
	return c.Status(http.StatusOK).JSON(sliderResponse(st))
}

func sliderResponse(st usecase.SliderState) SliderResponse {
	return SliderResponse{
		Left:  st.Range.Left,
		Right: st.Range.Right,
		Mode:  st.Mode,
		From:  st.Dates.From(),
		To:    st.Dates.To(),
	}
}

// query copies the value out of the request buffer, which fiber reuses once
// the handler returns.
func query(c *fiber.Ctx, key string) string {
	return utils.CopyString(c.Query(key))
}

func badControlInput(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInvalidControlInput) || errors.Is(err, usecase.ErrInvalidDateRange) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}
