package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/admision-lab/benefits-api/internal/core/service"
)

// AssociationHandler serves the benefit link routes nested under a parent
// resource. One instance per relation; the routes differ only in the parent
// collection they hang off.
type AssociationHandler struct {
	associations *service.AssociationService
}

func NewAssociationHandler(associations *service.AssociationService) *AssociationHandler {
	return &AssociationHandler{associations: associations}
}

// Link handles POST /v1/{parent}/:id/benefits/:benefitId. Linking the same
// pair twice yields two independent join rows.
//
// @Summary      Link a benefit to a parent entity
// @Tags         associations
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "Parent id"
// @Param        benefitId  path      string  true  "Benefit id"
// @Success      201        "Created"
// @Failure      404        {object}  map[string]string
// @Router       /v1/applicants/{id}/benefits/{benefitId} [post]
func (h *AssociationHandler) Link(c echo.Context) error {
	if err := h.associations.Link(c.Request().Context(), c.Param("id"), c.Param("benefitId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Unlink handles DELETE /v1/{parent}/:id/benefits/:benefitId. One call
// removes one join row; removing an absent pair succeeds quietly.
//
// @Summary      Unlink a benefit from a parent entity
// @Tags         associations
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "Parent id"
// @Param        benefitId  path      string  true  "Benefit id"
// @Success      204        "No Content"
// @Failure      404        {object}  map[string]string
// @Router       /v1/applicants/{id}/benefits/{benefitId} [delete]
func (h *AssociationHandler) Unlink(c echo.Context) error {
	if err := h.associations.Unlink(c.Request().Context(), c.Param("id"), c.Param("benefitId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBenefits handles GET /v1/{parent}/:id/benefits.
//
// @Summary      List the benefits linked to a parent entity
// @Tags         associations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Parent id"
// @Success      200  {array}   domain.Benefit
// @Failure      404  {object}  map[string]string
// @Router       /v1/applicants/{id}/benefits [get]
func (h *AssociationHandler) ListBenefits(c echo.Context) error {
	benefits, err := h.associations.ListBenefits(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, benefits)
}
