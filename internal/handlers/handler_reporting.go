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

// reportingHandler handles HTTP requests for dashboard views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	userService      portssvc.UserSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, us portssvc.UserSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		userService:      us,
	}
}

// RegisterReportingRoutes registers dashboard routes on an authenticated
// group. Exported for handler tests.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, userService portssvc.UserSvcFacade) {
	h := newReportingHandler(reportingService, userService)

	rg.GET("/dashboard", middleware.RequireRole(domain.RoleSalesman, domain.RoleCompany), h.getDashboard)
	rg.GET("/my-ledger", middleware.RequireRole(domain.RoleClient), h.getMyLedger)
}

// getDashboard godoc
// @Summary Dashboard stats
// @Description Aggregates the salesman's book: client count, total pending, and trailing-window recovery stats. The company admin sees the whole book.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := ledgerScope(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to build dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// getMyLedger godoc
// @Summary Client's own khata
// @Description Resolves the authenticated CLIENT user's khata by cnic, then phone, and returns it with its payment history. linked=false means no khata references this person yet.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MyLedgerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /my-ledger [get]
func (h *reportingHandler) getMyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load user for my-ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load ledger"})
		return
	}

	client, err := h.reportingService.ResolveClientForUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Not an error: the khata just hasn't been opened against this
			// person's cnic or phone yet.
			c.JSON(http.StatusOK, dto.MyLedgerResponse{Linked: false})
			return
		}
		logger.Error("Failed to resolve client for user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load ledger"})
		return
	}

	payments, err := h.reportingService.ClientHistory(c.Request.Context(), client.ClientID)
	if err != nil {
		logger.Error("Failed to load client history", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load ledger"})
		return
	}

	clientResp := dto.ToClientResponse(client)
	paymentResp := dto.ToListPaymentsResponse(payments)
	c.JSON(http.StatusOK, dto.MyLedgerResponse{
		Linked:   true,
		Client:   &clientResp,
		Payments: paymentResp.Payments,
	})
}
