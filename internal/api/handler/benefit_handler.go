package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/service"
)

type BenefitHandler struct {
	benefits *service.BenefitService
}

func NewBenefitHandler(benefits *service.BenefitService) *BenefitHandler {
	return &BenefitHandler{benefits: benefits}
}

type benefitRequest struct {
	Name string `json:"name" validate:"required"`
	Code int64  `json:"code" validate:"required,gt=0"`
}

// Create handles POST /v1/benefits.
//
// @Summary      Create a benefit
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      benefitRequest  true  "Benefit details"
// @Success      201   {object}  domain.Benefit
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/benefits [post]
func (h *BenefitHandler) Create(c echo.Context) error {
	var req benefitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	benefit, err := h.benefits.Create(c.Request().Context(), &domain.Benefit{Name: req.Name, Code: req.Code})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, benefit)
}

// Get handles GET /v1/benefits/:id.
//
// @Summary      Get a benefit
// @Tags         benefits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Benefit id"
// @Success      200  {object}  domain.Benefit
// @Failure      404  {object}  map[string]string
// @Router       /v1/benefits/{id} [get]
func (h *BenefitHandler) Get(c echo.Context) error {
	benefit, err := h.benefits.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, benefit)
}

// Update handles PUT /v1/benefits/:id.
//
// @Summary      Update a benefit
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Benefit id"
// @Param        body  body      benefitRequest  true  "Benefit details"
// @Success      200   {object}  domain.Benefit
// @Failure      404   {object}  map[string]string
// @Router       /v1/benefits/{id} [put]
func (h *BenefitHandler) Update(c echo.Context) error {
	var req benefitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	benefit, err := h.benefits.Update(c.Request().Context(), c.Param("id"), req.Name, req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, benefit)
}

// Delete handles DELETE /v1/benefits/:id. Join rows in both relations are
// swept before the benefit row goes away.
//
// @Summary      Delete a benefit and every link to it
// @Tags         benefits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Benefit id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/benefits/{id} [delete]
func (h *BenefitHandler) Delete(c echo.Context) error {
	if err := h.benefits.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/benefits.
//
// @Summary      List benefits
// @Tags         benefits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Benefit
// @Router       /v1/benefits [get]
func (h *BenefitHandler) List(c echo.Context) error {
	benefits, err := h.benefits.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, benefits)
}
