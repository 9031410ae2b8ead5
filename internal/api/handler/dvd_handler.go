package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aegean-rentals/dvd-catalog/internal/api/metrics"
	"github.com/aegean-rentals/dvd-catalog/internal/core/ports"
)

// DvdHandler handles HTTP requests for catalogue operations. All routes
// sit behind the Auth and RBAC middleware; domain errors propagate to the
// central error handler unmodified.
type DvdHandler struct {
	service ports.DvdService
}

func NewDvdHandler(service ports.DvdService) *DvdHandler {
	return &DvdHandler{service: service}
}

// Create handles POST /catalogue.
//
// @Summary      Create a catalogue item
// @Tags         catalogue
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDvdRequest  true  "New item"
// @Success      201   {object}  dvdResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /catalogue [post]
func (h *DvdHandler) Create(c echo.Context) error {
	var req createDvdRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dvd, err := h.service.Create(c.Request().Context(), ports.CreateDvdInput{
		Title:    req.Title,
		Genre:    req.Genre,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.DvdsCreatedTotal.WithLabelValues(string(dvd.Genre)).Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/catalogue/"+dvd.ID)
	return c.JSON(http.StatusCreated, toDvdResponse(dvd))
}

// Get handles GET /catalogue/:id.
//
// @Summary      Get a catalogue item by id
// @Tags         catalogue
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  dvdResponse
// @Failure      404  {object}  errorResponse
// @Router       /catalogue/{id} [get]
func (h *DvdHandler) Get(c echo.Context) error {
	dvd, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDvdResponse(dvd))
}

// List handles GET /catalogue?title=. A blank or omitted title returns
// every item.
//
// @Summary      List catalogue items
// @Tags         catalogue
// @Produce      json
// @Security     BearerAuth
// @Param        title  query     string  false  "Title substring filter"
// @Success      200    {array}   dvdResponse
// @Router       /catalogue [get]
func (h *DvdHandler) List(c echo.Context) error {
	dvds, err := h.service.Find(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDvdResponses(dvds))
}

// Update handles PUT /catalogue/:id.
//
// @Summary      Partially update a catalogue item
// @Tags         catalogue
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Item id"
// @Param        body  body      updateDvdRequest  true  "Fields to change"
// @Success      200   {object}  dvdResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /catalogue/{id} [put]
func (h *DvdHandler) Update(c echo.Context) error {
	var req updateDvdRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dvd, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateDvdInput{
		Quantity: req.Quantity,
		Genre:    req.Genre,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDvdResponse(dvd))
}

// Delete handles DELETE /catalogue/:id.
//
// @Summary      Delete a catalogue item
// @Tags         catalogue
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /catalogue/{id} [delete]
func (h *DvdHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
