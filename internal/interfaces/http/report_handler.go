package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agrostock-api/internal/application/reports"
)

// ReportHandler expone los reportes del inventario (protegido).
type ReportHandler struct {
	dashboardUC *reports.DashboardUseCase
	pdfUC       *reports.PDFUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(dashboardUC *reports.DashboardUseCase, pdfUC *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{dashboardUC: dashboardUC, pdfUC: pdfUC}
}

// ownerFromRequest resuelve el dueño del reporte: query user_id o el autenticado.
func ownerFromRequest(c *fiber.Ctx) string {
	if id := c.Query("user_id"); id != "" {
		return id
	}
	return GetUserID(c)
}

// CategorySummary godoc
// @Summary      Total de stock por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Usuario a reportar (solo admin; por defecto el autenticado)"
// @Success      200  {array}   dto.CategorySummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/category-summary [get]
func (h *ReportHandler) CategorySummary(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetCategorySummary(c.Context(), ownerFromRequest(c), GetUserID(c), GetRole(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Dashboard completo (KPIs, gráfico y productos valorizados)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Usuario a reportar (solo admin; por defecto el autenticado)"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetDashboard(c.Context(), ownerFromRequest(c), GetUserID(c), GetRole(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        user_id  query  string  false  "Usuario a reportar (solo admin; por defecto el autenticado)"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.GenerateInventoryReport(c.Context(), ownerFromRequest(c), GetUserID(c), GetRole(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
