package handler

import (
	"errors"

	"jobquery/internal/delivery/http/dto"
	"jobquery/internal/delivery/http/middleware"
	"jobquery/internal/search"
	"jobquery/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	MessageFormReceived = "Form received successfully!"
	MessageMissingTitle = "Please enter a job title."
)

type QueryHandler struct {
	uc usecase.QueryUsecase
}

func NewQueryHandler(uc usecase.QueryUsecase) *QueryHandler {
	return &QueryHandler{uc: uc}
}

func (h *QueryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/data", h.Generate)
}

func (h *QueryHandler) Generate(c fiber.Ctx) error {
	var req dto.GenerateQueriesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if search.QueryTitle(req.JobTitle) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, MessageMissingTitle, nil, nil)
	}

	out, err := h.uc.Generate(c.Context(), usecase.GenerateInput{
		JobTitle:   req.JobTitle,
		FullTime:   req.FullTime,
		PartTime:   req.PartTime,
		Contract:   req.Contract,
		Internship: req.Internship,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, MessageMissingTitle, nil, err)
		}
		return err
	}

	titles := out.AlternateTitles
	if titles == nil {
		titles = []string{}
	}
	return c.Status(fiber.StatusOK).JSON(dto.GenerateQueriesResponse{
		Message:             MessageFormReceived,
		Data:                out.Queries,
		AdditionalJobTitles: titles,
	})
}
