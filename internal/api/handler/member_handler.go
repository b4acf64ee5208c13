package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devassignment/member-service/internal/core/ports"
)

// MemberHandler handles HTTP requests for member operations.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /api/v1/members.
//
// The public page parameter is one-based; the query layer works zero-based,
// so the handler decrements before calling the service. page=0 therefore
// reaches the service as -1 and is rejected there with a 400.
//
// @Summary      List members with optional name filters
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        firstName  query     string  false  "Case-insensitive substring match on first name"
// @Param        lastName   query     string  false  "Case-insensitive substring match on last name"
// @Param        page       query     int     false  "One-based page number"  default(1)
// @Param        size       query     int     false  "Page size"              default(10)
// @Param        sort       query     string  false  "Sort spec <field>,<asc|desc>"  default(lastName,asc)
// @Success      200  {object}  pagedResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	page, err := intQueryParam(c, "page", 1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
	}
	size, err := intQueryParam(c, "size", 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "size must be an integer")
	}

	result, err := h.service.List(
		c.Request().Context(),
		c.QueryParam("firstName"),
		c.QueryParam("lastName"),
		page-1,
		size,
		c.QueryParam("sort"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPagedResponse(result))
}

// GetByID handles GET /api/v1/members/:id.
//
// @Summary      Get a member by id
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member id"
// @Success      200  {object}  memberResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/members/{id} [get]
func (h *MemberHandler) GetByID(c echo.Context) error {
	m, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMemberResponse(m))
}

// Create handles POST /api/v1/members.
//
// @Summary      Create a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      memberRequest  true  "Member details"
// @Success      201   {object}  memberResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := h.service.Create(c.Request().Context(), toMemberInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMemberResponse(m))
}

// Update handles PUT /api/v1/members/:id. The update is a full overwrite.
//
// @Summary      Update a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Member id"
// @Param        body  body      memberRequest  true  "Member details"
// @Success      200   {object}  memberResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := h.service.Update(c.Request().Context(), c.Param("id"), toMemberInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMemberResponse(m))
}

// Delete handles DELETE /api/v1/members/:id.
//
// @Summary      Delete a member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "Member deleted successfully"})
}

func intQueryParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
