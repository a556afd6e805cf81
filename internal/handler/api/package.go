package api

import (
	"net/http"

	reqdto "turipack/internal/handler/dto/request"
	resdto "turipack/internal/handler/dto/response"
	"turipack/internal/handler/httperr"
	"turipack/internal/handler/middleware"
	"turipack/internal/pkg/errs"
	"turipack/internal/usecase/commands"
	"turipack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNoSession   = errs.New("session not resolved")
	errEmptyUpdate = errs.New("no fields to update")
)

type PackageHandler struct {
	packageCommands commands.PackageCommands
	packageQueries  queries.PackageQueries
}

func NewPackageHandler(packageCommands commands.PackageCommands, packageQueries queries.PackageQueries) *PackageHandler {
	return &PackageHandler{
		packageCommands: packageCommands,
		packageQueries:  packageQueries,
	}
}

// @Summary Get current package
// @Description Get the session's in-progress package with totals
// @Tags package
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Success 200 {object} resdto.PackageResponse
// @Router /package [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	view, err := h.packageQueries.GetPackage(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load package", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Add service to package
// @Description Add a catalog service to the session's package, creating the package when absent
// @Tags package
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param request body reqdto.AddItemRequest true "Service selection"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /package/items [post]
func (h *PackageHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	input := commands.AddServiceInput{
		ServiceID: req.ServiceID,
		Persons:   req.Persons,
		Date:      date,
		Time:      req.GetTime(),
		Notes:     req.Notes,
	}

	view, err := h.packageCommands.AddService(c.Request.Context(), sessionID, input)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Remove service from package
// @Description Remove a service line; an emptied category disappears from the package
// @Tags package
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param serviceId path string true "Service ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /package/items/{serviceId} [delete]
func (h *PackageHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	view, err := h.packageCommands.RemoveService(c.Request.Context(), sessionID, serviceID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Update package item
// @Description Patch a line's persons, date, time or notes. Unknown service IDs leave the package unchanged
// @Tags package
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /package/items/{serviceId} [patch]
func (h *PackageHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyUpdate, "No fields to update", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	input := commands.UpdateItemInput{
		Persons: req.Persons,
		Time:    req.Time,
		Notes:   req.Notes,
	}
	if req.Date != nil {
		input.Date = date
	}

	view, err := h.packageCommands.UpdateItem(c.Request.Context(), sessionID, serviceID, input)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Set package travelers
// @Description Set the package-level headcount; per-line headcounts are unaffected
// @Tags package
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param request body reqdto.SetTravelersRequest true "Travelers"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /package/travelers [put]
func (h *PackageHandler) SetTravelers(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	var req reqdto.SetTravelersRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.packageCommands.SetTravelers(c.Request.Context(), sessionID, req.TotalPersons)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Set package date range
// @Description Set the package-level stay window, independent of per-service dates
// @Tags package
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param request body reqdto.SetDateRangeRequest true "Stay window"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /package/dates [put]
func (h *PackageHandler) SetDates(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	var req reqdto.SetDateRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	checkIn, checkOut, err := req.ParseRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.packageCommands.SetDateRange(c.Request.Context(), sessionID, checkIn, checkOut)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Recalculate package totals
// @Description Recompute subtotal, taxes and total from the current lines; idempotent
// @Tags package
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Success 200 {object} resdto.PackageResponse
// @Router /package/recalculate [post]
func (h *PackageHandler) Recalculate(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	view, err := h.packageCommands.Recalculate(c.Request.Context(), sessionID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Save package
// @Description Mark the package as saved for later and extend its expiry
// @Tags package
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} map[string]string
// @Router /package/save [post]
func (h *PackageHandler) SavePackage(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	view, err := h.packageCommands.SavePackage(c.Request.Context(), sessionID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Clear package
// @Description Discard the session's package entirely
// @Tags package
// @Param X-Session-ID header string false "Composition session ID"
// @Success 204
// @Router /package [delete]
func (h *PackageHandler) ClearPackage(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	if err := h.packageCommands.ClearPackage(c.Request.Context(), sessionID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear package", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PackageHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errs.Is(err, commands.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No package to save", nil)
	case errs.Is(err, commands.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in must be before check-out", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
