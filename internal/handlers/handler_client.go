package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests for shop khatas.
type clientHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newClientHandler(ls portssvc.LedgerSvcFacade) *clientHandler {
	return &clientHandler{ledgerService: ls}
}

// RegisterClientRoutes registers client khata routes on an authenticated
// group. Exported for handler tests.
func RegisterClientRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newClientHandler(ledgerService)

	clients := rg.Group("/clients")
	{
		clients.POST("", middleware.RequireRole(domain.RoleSalesman), h.createClient)
		clients.GET("", middleware.RequireRole(domain.RoleSalesman, domain.RoleCompany), h.listClients)
		clients.GET("/:client_id", middleware.RequireRole(domain.RoleSalesman, domain.RoleCompany), h.getClient)
		clients.GET("/:client_id/payments", middleware.RequireRole(domain.RoleSalesman, domain.RoleCompany), h.listClientPayments)
	}
}

// createClient godoc
// @Summary Create client
// @Description Opens a new shop khata owned by the authenticated salesman.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client Info"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client, err := h.ledgerService.CreateClient(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists the salesman's clients, newest first. The company admin sees all clients.
// @Tags clients
// @Produce json
// @Param limit query int false "Max clients to return" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListClientsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := ledgerScope(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	clients, err := h.ledgerService.ListClients(c.Request.Context(), scope, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// getClient godoc
// @Summary Get client
// @Description Returns a single client khata with its current pending balance.
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	client, err := h.ledgerService.GetClient(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to get client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get client"})
		return
	}

	if !canAccessClient(c, client) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// listClientPayments godoc
// @Summary Client payment history
// @Description Lists a client's payments newest first.
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/payments [get]
func (h *clientHandler) listClientPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("client_id")

	client, err := h.ledgerService.GetClient(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to get client for payments", slog.String("error", err.Error()), slog.String("client_id", clientID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	if !canAccessClient(c, client) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this client"})
		return
	}

	payments, err := h.ledgerService.ListPayments(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()), slog.String("client_id", clientID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// ledgerScope returns the salesman ID to scope queries by: the requester's
// own ID for salesmen, the empty string (whole book) for the company admin.
func ledgerScope(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return "", false
	}
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok {
		return "", false
	}
	if role == domain.RoleCompany {
		return "", true
	}
	return userID, true
}

// canAccessClient reports whether the requester may read this client's khata:
// its owning salesman or the company admin.
func canAccessClient(c *gin.Context, client *domain.Client) bool {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return false
	}
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok {
		return false
	}
	return role == domain.RoleCompany || client.SalesmanID == userID
}
