package handlers

import (
	"net/http"

	"budget-coach/internal/dto"
	"budget-coach/internal/errors"
	"budget-coach/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlanningHandler serves the user's manually maintained plan: bills,
// income sources, debts and budget limits.
type PlanningHandler struct {
	planningService services.PlanningServiceInterface
}

func NewPlanningHandler(planningService services.PlanningServiceInterface) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

func invalidID(c echo.Context) error {
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("ID must be a valid UUID"))
}

// ListBills
// @Summary List bills
// @Tags Bills
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Bill} "Bills"
// @Router /bills [get]
func (h *PlanningHandler) ListBills(c echo.Context) error {
	bills, err := h.planningService.ListBills()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: bills})
}

// CreateBill
// @Summary Create bill
// @Tags Bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BillRequest true "Bill"
// @Success 201 {object} SuccessResponse{data=models.Bill} "Bill created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /bills [post]
func (h *PlanningHandler) CreateBill(c echo.Context) error {
	var req dto.BillRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	bill, err := h.planningService.CreateBill(req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: bill, Message: "Bill created"})
}

// UpdateBill
// @Summary Update bill
// @Tags Bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Param request body dto.BillRequest true "Bill"
// @Success 200 {object} SuccessResponse{data=models.Bill} "Bill updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "BILL_001 - Bill not found"
// @Router /bills/{id} [put]
func (h *PlanningHandler) UpdateBill(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidID(c)
	}

	var req dto.BillRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	bill, err := h.planningService.UpdateBill(id, req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: bill})
}

// DeleteBill
// @Summary Delete bill
// @Tags Bills
// @Security BearerAuth
// @Param id path string true "Bill ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "BILL_001 - Bill not found"
// @Router /bills/{id} [delete]
func (h *PlanningHandler) DeleteBill(c echo.Context) error {
	return h.deleteByID(c, h.planningService.DeleteBill)
}

// PromoteRecurring turns a detected recurring charge into a tracked bill
// @Summary Track recurring charge as bill
// @Description Look up a detected recurring charge by merchant signature and store it as a bill
// @Tags Bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PromoteRecurringRequest true "Recurring charge signature"
// @Success 201 {object} SuccessResponse{data=models.Bill} "Bill created"
// @Failure 404 {object} errors.ErrorResponse "BILL_002 - No recurring charge matches"
// @Failure 409 {object} errors.ErrorResponse "BILL_003 - Already tracked"
// @Router /bills/from-recurring [post]
func (h *PlanningHandler) PromoteRecurring(c echo.Context) error {
	var req dto.PromoteRecurringRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	bill, err := h.planningService.PromoteRecurring(c.Request().Context(), req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: bill, Message: "Recurring charge tracked as bill"})
}

// ListIncomeSources
// @Summary List income sources
// @Tags Income
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.IncomeSource} "Income sources"
// @Router /income-sources [get]
func (h *PlanningHandler) ListIncomeSources(c echo.Context) error {
	sources, err := h.planningService.ListIncomeSources()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: sources})
}

// CreateIncomeSource
// @Summary Create income source
// @Tags Income
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.IncomeSourceRequest true "Income source"
// @Success 201 {object} SuccessResponse{data=models.IncomeSource} "Income source created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /income-sources [post]
func (h *PlanningHandler) CreateIncomeSource(c echo.Context) error {
	var req dto.IncomeSourceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	source, err := h.planningService.CreateIncomeSource(req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: source})
}

// UpdateIncomeSource
// @Summary Update income source
// @Tags Income
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Income source ID (UUID)"
// @Param request body dto.IncomeSourceRequest true "Income source"
// @Success 200 {object} SuccessResponse{data=models.IncomeSource} "Income source updated"
// @Failure 404 {object} errors.ErrorResponse "INCOME_001 - Income source not found"
// @Router /income-sources/{id} [put]
func (h *PlanningHandler) UpdateIncomeSource(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidID(c)
	}

	var req dto.IncomeSourceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	source, err := h.planningService.UpdateIncomeSource(id, req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: source})
}

// DeleteIncomeSource
// @Summary Delete income source
// @Tags Income
// @Security BearerAuth
// @Param id path string true "Income source ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "INCOME_001 - Income source not found"
// @Router /income-sources/{id} [delete]
func (h *PlanningHandler) DeleteIncomeSource(c echo.Context) error {
	return h.deleteByID(c, h.planningService.DeleteIncomeSource)
}

// ListDebtAccounts
// @Summary List debt accounts
// @Tags Debts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.DebtAccount} "Debt accounts"
// @Router /debts [get]
func (h *PlanningHandler) ListDebtAccounts(c echo.Context) error {
	debts, err := h.planningService.ListDebtAccounts()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: debts})
}

// CreateDebtAccount
// @Summary Create debt account
// @Tags Debts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DebtAccountRequest true "Debt account"
// @Success 201 {object} SuccessResponse{data=models.DebtAccount} "Debt account created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /debts [post]
func (h *PlanningHandler) CreateDebtAccount(c echo.Context) error {
	var req dto.DebtAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	debt, err := h.planningService.CreateDebtAccount(req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: debt})
}

// UpdateDebtAccount
// @Summary Update debt account
// @Tags Debts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Debt account ID (UUID)"
// @Param request body dto.DebtAccountRequest true "Debt account"
// @Success 200 {object} SuccessResponse{data=models.DebtAccount} "Debt account updated"
// @Failure 404 {object} errors.ErrorResponse "DEBT_001 - Debt account not found"
// @Router /debts/{id} [put]
func (h *PlanningHandler) UpdateDebtAccount(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidID(c)
	}

	var req dto.DebtAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	debt, err := h.planningService.UpdateDebtAccount(id, req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: debt})
}

// DeleteDebtAccount
// @Summary Delete debt account
// @Tags Debts
// @Security BearerAuth
// @Param id path string true "Debt account ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "DEBT_001 - Debt account not found"
// @Router /debts/{id} [delete]
func (h *PlanningHandler) DeleteDebtAccount(c echo.Context) error {
	return h.deleteByID(c, h.planningService.DeleteDebtAccount)
}

// GetBudget
// @Summary Get budget limits
// @Tags Budget
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.BudgetLimits} "Budget limits"
// @Router /budget [get]
func (h *PlanningHandler) GetBudget(c echo.Context) error {
	budget, err := h.planningService.GetBudget()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: budget})
}

// SaveBudget
// @Summary Replace budget limits
// @Tags Budget
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BudgetLimitsRequest true "Budget limits"
// @Success 200 {object} SuccessResponse{data=models.BudgetLimits} "Budget limits saved"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or BUDGET_001 - Negative allocation"
// @Router /budget [put]
func (h *PlanningHandler) SaveBudget(c echo.Context) error {
	var req dto.BudgetLimitsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	budget, err := h.planningService.SaveBudget(req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: budget})
}

func (h *PlanningHandler) deleteByID(c echo.Context, remove func(uuid.UUID) error) error {
	id, err := parseIDParam(c)
	if err != nil {
		return invalidID(c)
	}
	if err := remove(id); err != nil {
		return SendServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
