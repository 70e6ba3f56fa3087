package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"chain-usage-dashboard/internal/facts/core/usecase"
)

type StoreFactUseCase interface {
	Execute(ctx context.Context, in usecase.StoreFactInput) (bool, error)
	BulkCreateFacts(ctx context.Context, in usecase.BulkCreateFactsInput) (usecase.BulkCreateFactsResult, error)
}

type FactHandler struct {
	storeUC StoreFactUseCase
	log     *zap.Logger
}

func NewFactHandler(storeUC StoreFactUseCase, log *zap.Logger) *FactHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FactHandler{storeUC: storeUC, log: log}
}

func (h *FactHandler) Register(r fiber.Router) {
	r.Post("/facts", h.CreateFact)
	r.Post("/facts/bulk", h.BulkCreateFacts)
}

// CreateFact godoc
// @Summary Ingest a daily usage fact
// @Description Stores one (day, country, chain, category) row; repeated rows are reported as duplicates
// @Tags Facts
// @Accept json
// @Produce json
// @Param request body CreateFactRequest true "Fact payload"
// @Success 201 {object} CreateFactResponse
// @Success 200 {object} CreateFactResponse "Duplicate fact"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /facts [post]
func (h *FactHandler) CreateFact(c *fiber.Ctx) error {
	var req CreateFactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.fail(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateFactResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateFactResponse{Status: "created"})
}

// BulkCreateFacts godoc
// @Summary Bulk ingest daily usage facts
// @Description Validates the whole list, then stores it in one statement
// @Tags Facts
// @Accept json
// @Produce json
// @Param request body BulkCreateFactsRequest true "Bulk fact payload"
// @Success 201 {object} BulkCreateFactsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /facts/bulk [post]
func (h *FactHandler) BulkCreateFacts(c *fiber.Ctx) error {
	var req BulkCreateFactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req.Facts) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "facts_list_required"})
	}

	inputs := make([]usecase.StoreFactInput, len(req.Facts))
	for i, f := range req.Facts {
		inputs[i] = toInput(f)
	}

	result, err := h.storeUC.BulkCreateFacts(c.UserContext(), usecase.BulkCreateFactsInput{Facts: inputs})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateFactsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func (h *FactHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidFact),
		errors.Is(err, usecase.ErrFutureDate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_fact",
			Message: err.Error(),
		})
	default:
		h.log.Error("storing facts failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(req CreateFactRequest) usecase.StoreFactInput {
	return usecase.StoreFactInput{
		Date:          req.Date,
		Country:       req.Country,
		Chain:         req.Chain,
		Category:      req.Category,
		TotalRequests: req.TotalRequests,
		UniqueUsers:   req.UniqueUsers,
		TxVolumeUSD:   req.TxVolumeUSD,
	}
}
