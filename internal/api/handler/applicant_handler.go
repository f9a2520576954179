package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admision-lab/benefits-api/internal/core/ports"
)

type ApplicantHandler struct {
	applicants ports.ApplicantService
}

func NewApplicantHandler(applicants ports.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{applicants: applicants}
}

type createApplicantRequest struct {
	UserID   string  `json:"user_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	RUT      string  `json:"rut" validate:"required"`
	CareerID string  `json:"career_id" validate:"required"`
	Address  string  `json:"address"`
	NEM      float64 `json:"nem" validate:"gte=0"`
	Ranking  float64 `json:"ranking" validate:"gte=0"`
}

type updateApplicantRequest struct {
	Name     *string  `json:"name"`
	RUT      *string  `json:"rut"`
	CareerID *string  `json:"career_id"`
	Address  *string  `json:"address"`
	NEM      *float64 `json:"nem"`
	Ranking  *float64 `json:"ranking"`
}

// Create handles POST /v1/applicants. The RUT is normalized to digits before
// storage, so "12.345.678-9" and "123456789" are the same applicant key.
//
// @Summary      Create an applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicantRequest  true  "Applicant details"
// @Success      201   {object}  domain.Applicant
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/applicants [post]
func (h *ApplicantHandler) Create(c echo.Context) error {
	var req createApplicantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	applicant, err := h.applicants.Create(c.Request().Context(), ports.CreateApplicantInput{
		UserID:   req.UserID,
		Name:     req.Name,
		RUT:      req.RUT,
		CareerID: req.CareerID,
		Address:  req.Address,
		NEM:      req.NEM,
		Ranking:  req.Ranking,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, applicant)
}

// Get handles GET /v1/applicants/:id.
//
// @Summary      Get an applicant
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      200  {object}  domain.Applicant
// @Failure      404  {object}  map[string]string
// @Router       /v1/applicants/{id} [get]
func (h *ApplicantHandler) Get(c echo.Context) error {
	applicant, err := h.applicants.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicant)
}

// Update handles PUT /v1/applicants/:id. Absent fields are left untouched.
//
// @Summary      Update an applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Applicant id"
// @Param        body  body      updateApplicantRequest  true  "Fields to update"
// @Success      200   {object}  domain.Applicant
// @Failure      404   {object}  map[string]string
// @Router       /v1/applicants/{id} [put]
func (h *ApplicantHandler) Update(c echo.Context) error {
	var req updateApplicantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	applicant, err := h.applicants.Update(c.Request().Context(), c.Param("id"), ports.UpdateApplicantInput{
		Name:     req.Name,
		RUT:      req.RUT,
		CareerID: req.CareerID,
		Address:  req.Address,
		NEM:      req.NEM,
		Ranking:  req.Ranking,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicant)
}

// Delete handles DELETE /v1/applicants/:id. Benefit join rows referencing
// the applicant are removed first.
//
// @Summary      Delete an applicant and its benefit links
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/applicants/{id} [delete]
func (h *ApplicantHandler) Delete(c echo.Context) error {
	if err := h.applicants.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/applicants. A rut query takes precedence over a name
// query; with neither, all applicants are returned.
//
// @Summary      List applicants
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Param        rut   query     string  false  "RUT filter (any formatting accepted)"
// @Param        name  query     string  false  "Name filter (partial match)"
// @Success      200   {array}   domain.Applicant
// @Router       /v1/applicants [get]
func (h *ApplicantHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if rut := c.QueryParam("rut"); rut != "" {
		applicants, err := h.applicants.ListByRUT(ctx, rut)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, applicants)
	}

	applicants, err := h.applicants.ListByName(ctx, c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicants)
}
