package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	portssvc "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/services"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
	"github.com/ledgerbooks/ledgerbooks_app/internal/middleware"
)

// taxCodeHandler handles HTTP requests related to tax codes.
type taxCodeHandler struct {
	taxCodeService portssvc.TaxCodeSvcFacade
}

// newTaxCodeHandler creates a new taxCodeHandler.
func newTaxCodeHandler(taxCodeService portssvc.TaxCodeSvcFacade) *taxCodeHandler {
	return &taxCodeHandler{taxCodeService: taxCodeService}
}

// registerTaxCodeRoutes registers all tax-code-related routes.
func registerTaxCodeRoutes(rg *gin.RouterGroup, taxCodeService portssvc.TaxCodeSvcFacade) {
	h := newTaxCodeHandler(taxCodeService)

	taxCodes := rg.Group("/taxcodes")
	{
		taxCodes.POST("/", h.createTaxCode)
		taxCodes.GET("/", h.listTaxCodes)
		taxCodes.GET("/:taxCodeID", h.getTaxCode)
	}
}

// createTaxCode godoc
// @Summary Create a tax code
// @Description Adds a new tax code for use on journal lines.
// @Tags taxcodes
// @Accept json
// @Produce json
// @Param taxcode body dto.CreateTaxCodeRequest true "Tax code details"
// @Success 201 {object} dto.TaxCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate tax code"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxcodes/ [post]
func (h *taxCodeHandler) createTaxCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaxCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	taxCode, err := h.taxCodeService.CreateTaxCode(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create tax code", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create tax code"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaxCodeResponse(taxCode))
}

// listTaxCodes godoc
// @Summary List tax codes
// @Description Retrieves all tax codes ordered by code.
// @Tags taxcodes
// @Produce json
// @Success 200 {object} dto.ListTaxCodesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxcodes/ [get]
func (h *taxCodeHandler) listTaxCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	taxCodes, err := h.taxCodeService.ListTaxCodes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tax codes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve tax codes"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTaxCodesResponse{TaxCodes: dto.ToTaxCodeResponses(taxCodes)})
}

// getTaxCode godoc
// @Summary Get a tax code
// @Tags taxcodes
// @Produce json
// @Param taxCodeID path string true "Tax code ID"
// @Success 200 {object} dto.TaxCodeResponse
// @Failure 404 {object} ErrorResponse "Tax code not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxcodes/{taxCodeID} [get]
func (h *taxCodeHandler) getTaxCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxCodeID := c.Param("taxCodeID")

	taxCode, err := h.taxCodeService.GetTaxCodeByID(c.Request.Context(), taxCodeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tax code not found"})
			return
		}
		logger.Error("Failed to get tax code", slog.String("error", err.Error()), slog.String("tax_code_id", taxCodeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve tax code"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxCodeResponse(taxCode))
}
