package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/service"
)

type CareerHandler struct {
	careers *service.CareerService
}

func NewCareerHandler(careers *service.CareerService) *CareerHandler {
	return &CareerHandler{careers: careers}
}

type careerRequest struct {
	Name    string `json:"name" validate:"required"`
	Faculty string `json:"faculty" validate:"required"`
	Code    int64  `json:"code" validate:"required,gt=0"`
}

// Create handles POST /v1/careers.
//
// @Summary      Create a career
// @Tags         careers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      careerRequest  true  "Career details"
// @Success      201   {object}  domain.Career
// @Failure      400   {object}  map[string]string
// @Router       /v1/careers [post]
func (h *CareerHandler) Create(c echo.Context) error {
	var req careerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	career, err := h.careers.Create(c.Request().Context(), &domain.Career{
		Name:    req.Name,
		Faculty: req.Faculty,
		Code:    req.Code,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, career)
}

// Get handles GET /v1/careers/:id.
//
// @Summary      Get a career
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Career id"
// @Success      200  {object}  domain.Career
// @Failure      404  {object}  map[string]string
// @Router       /v1/careers/{id} [get]
func (h *CareerHandler) Get(c echo.Context) error {
	career, err := h.careers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, career)
}

// Update handles PUT /v1/careers/:id.
//
// @Summary      Update a career
// @Tags         careers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Career id"
// @Param        body  body      careerRequest  true  "Career details"
// @Success      200   {object}  domain.Career
// @Failure      404   {object}  map[string]string
// @Router       /v1/careers/{id} [put]
func (h *CareerHandler) Update(c echo.Context) error {
	var req careerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	career, err := h.careers.Update(c.Request().Context(), c.Param("id"), req.Name, req.Faculty, req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, career)
}

// Delete handles DELETE /v1/careers/:id.
//
// @Summary      Delete a career
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Career id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/careers/{id} [delete]
func (h *CareerHandler) Delete(c echo.Context) error {
	if err := h.careers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/careers.
//
// @Summary      List careers
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Career
// @Router       /v1/careers [get]
func (h *CareerHandler) List(c echo.Context) error {
	careers, err := h.careers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, careers)
}
