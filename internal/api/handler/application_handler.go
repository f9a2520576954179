package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admision-lab/benefits-api/internal/core/ports"
)

type ApplicationHandler struct {
	applications ports.ApplicationService
}

func NewApplicationHandler(applications ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type createApplicationRequest struct {
	ApplicantID string   `json:"applicant_id" validate:"required"`
	EntryYear   string   `json:"entry_year" validate:"required"`
	Benefits    []string `json:"benefits"`
}

type updateApplicationRequest struct {
	EntryYear string   `json:"entry_year" validate:"required"`
	Benefits  []string `json:"benefits"`
}

// Create handles POST /v1/applications. The career is taken from the
// applicant; each named benefit is resolved and fanned out into a join row.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applications.Create(c.Request().Context(), ports.CreateApplicationInput{
		ApplicantID: req.ApplicantID,
		EntryYear:   req.EntryYear,
		Benefits:    req.Benefits,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, application)
}

// Update handles PUT /v1/applications/:id. The benefit list is replaced
// wholesale: old join rows are dropped and the new names fanned out again.
//
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application id"
// @Param        body  body      updateApplicationRequest  true  "Fields to update"
// @Success      200   {object}  domain.Application
// @Failure      404   {object}  map[string]string
// @Router       /v1/applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	var req updateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applications.Update(c.Request().Context(), c.Param("id"), ports.UpdateApplicationInput{
		EntryYear: req.EntryYear,
		Benefits:  req.Benefits,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, application)
}

// Delete handles DELETE /v1/applications/:id, cascading the benefit join
// rows before the application row itself.
//
// @Summary      Delete an application and its benefit links
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	if err := h.applications.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListByApplicant handles GET /v1/applicants/:id/applications.
//
// @Summary      List an applicant's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {array}   domain.Application
// @Failure      404  {object}  map[string]string
// @Router       /v1/applicants/{id}/applications [get]
func (h *ApplicationHandler) ListByApplicant(c echo.Context) error {
	applications, err := h.applications.ListByApplicant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}
