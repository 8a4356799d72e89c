package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	_ "github.com/Astemirdum/lending-service/lending/swagger"
	"github.com/Astemirdum/lending-service/pkg/auth"
	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, auth.XUserNameHeader},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		h.Auth,
	)

	api.GET("/items", h.SearchItems)
	api.GET("/items/available", h.AvailableItems)
	api.GET("/items/:identifier", h.GetItem)
	api.GET("/items/:identifier/copies", h.GetCopies)
	api.GET("/items/:identifier/loans", h.ItemHistory)
	api.POST("/items", h.AddItem)
	api.POST("/items/:identifier/copies", h.AddCopies)
	api.POST("/items/:identifier/subscribe", h.Subscribe)
	api.PATCH("/copies/:copyId", h.SetCopyAvailable)

	api.POST("/loans", h.Borrow)
	api.GET("/loans", h.ViewLoans)
	api.GET("/loans/overdue", h.OverdueReport)
	api.POST("/loans/:loanId/return", h.ReturnItem)
	api.POST("/loans/:loanId/complete", h.CompleteReturn)

	return e
}

// Auth binds the user named in the X-User-Name header to the request context.
func (h *Handler) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.Request().Header.Get(auth.XUserNameHeader)
		if username == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrNotLoggedIn.Error())
		}
		ctx, err := h.lendingSvc.Login(c.Request().Context(), username)
		if err != nil {
			return h.httpError(err)
		}
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// SearchItems
// @Summary Search the catalog
// @Description Exactly one of title, author or identifier selects the field.
// @Tags items
// @Produce json
// @Security UserName
// @Param title query string false "title substring"
// @Param author query string false "author substring"
// @Param identifier query string false "exact identifier"
// @Success 200 {array} model.MediaItem
// @Failure 400 {object} echo.HTTPError
// @Router /items [get]
func (h *Handler) SearchItems(c echo.Context) error {
	var (
		field model.SearchField
		query string
	)
	for _, f := range []model.SearchField{model.SearchByTitle, model.SearchByAuthor, model.SearchByIdentifier} {
		if q := c.QueryParam(string(f)); q != "" {
			field, query = f, q
			break
		}
	}
	if field == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "one of title, author, identifier is required")
	}
	items, err := h.lendingSvc.Search(c.Request().Context(), field, query)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// AvailableItems
// @Summary List available items
// @Tags items
// @Produce json
// @Security UserName
// @Success 200 {array} model.MediaItem
// @Router /items/available [get]
func (h *Handler) AvailableItems(c echo.Context) error {
	items, err := h.lendingSvc.AvailableItems(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem
// @Summary Get an item
// @Tags items
// @Produce json
// @Security UserName
// @Param identifier path string true "item identifier"
// @Success 200 {object} model.MediaItem
// @Failure 404 {object} echo.HTTPError
// @Router /items/{identifier} [get]
func (h *Handler) GetItem(c echo.Context) error {
	item, err := h.lendingSvc.FindItem(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// GetCopies
// @Summary List the copies of an item
// @Tags copies
// @Produce json
// @Security UserName
// @Param identifier path string true "item identifier"
// @Success 200 {array} model.MediaCopy
// @Failure 404 {object} echo.HTTPError
// @Router /items/{identifier}/copies [get]
func (h *Handler) GetCopies(c echo.Context) error {
	copies, err := h.lendingSvc.CopiesFor(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

// AddItem
// @Summary Catalog a new item
// @Tags items
// @Accept json
// @Produce json
// @Security UserName
// @Param item body model.AddMediaItemRequest true "new item"
// @Success 201 {object} model.MediaItem
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /items [post]
func (h *Handler) AddItem(c echo.Context) error {
	var req model.AddMediaItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.lendingSvc.AddMediaItem(c.Request().Context(), model.MediaItem{
		Kind:       kind,
		Identifier: req.Identifier,
		Title:      req.Title,
		Author:     req.Author,
	}, req.Copies)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// AddCopies
// @Summary Register copies of an item
// @Tags copies
// @Accept json
// @Produce json
// @Security UserName
// @Param identifier path string true "item identifier"
// @Param copies body model.AddCopiesRequest true "how many"
// @Success 201 {array} model.MediaCopy
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /items/{identifier}/copies [post]
func (h *Handler) AddCopies(c echo.Context) error {
	var req model.AddCopiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	copies, err := h.lendingSvc.AddCopies(c.Request().Context(), c.Param("identifier"), req.Count, available)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, copies)
}

// SetCopyAvailable
// @Summary Mark a copy available or not
// @Tags copies
// @Accept json
// @Produce json
// @Security UserName
// @Param copyId path string true "copy id"
// @Param copy body model.SetCopyAvailableRequest true "availability"
// @Success 200 {object} model.MediaCopy
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /copies/{copyId} [patch]
func (h *Handler) SetCopyAvailable(c echo.Context) error {
	var req model.SetCopyAvailableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cp, err := h.lendingSvc.SetCopyAvailable(c.Request().Context(), c.Param("copyId"), *req.Available)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}

// ItemHistory
// @Summary Loan history of an item
// @Tags loans
// @Produce json
// @Security UserName
// @Param identifier path string true "item identifier"
// @Success 200 {array} model.Loan
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /items/{identifier}/loans [get]
func (h *Handler) ItemHistory(c echo.Context) error {
	loans, err := h.lendingSvc.ItemHistory(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// Subscribe
// @Summary Notify me when an item becomes available
// @Tags items
// @Security UserName
// @Param identifier path string true "item identifier"
// @Success 202
// @Failure 404 {object} echo.HTTPError
// @Router /items/{identifier}/subscribe [post]
func (h *Handler) Subscribe(c echo.Context) error {
	if err := h.lendingSvc.NotifyWhenAvailable(c.Request().Context(), c.Param("identifier")); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusAccepted)
}

// Borrow
// @Summary Borrow an item
// @Tags loans
// @Accept json
// @Produce json
// @Security UserName
// @Param loan body model.BorrowRequest true "item to borrow"
// @Success 201 {object} model.Loan
// @Failure 402 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /loans [post]
func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.lendingSvc.BorrowMediaItem(c.Request().Context(), req.Identifier)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// ViewLoans
// @Summary Active loans of the current user
// @Tags loans
// @Produce json
// @Security UserName
// @Success 200 {object} model.LoanReport
// @Router /loans [get]
func (h *Handler) ViewLoans(c echo.Context) error {
	report, err := h.lendingSvc.ViewLoans(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// OverdueReport
// @Summary Every overdue loan with its fine
// @Tags loans
// @Produce json
// @Security UserName
// @Success 200 {object} model.LoanReport
// @Failure 403 {object} echo.HTTPError
// @Router /loans/overdue [get]
func (h *Handler) OverdueReport(c echo.Context) error {
	report, err := h.lendingSvc.OverdueReport(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

type fineResponse struct {
	Message string `json:"message"`
	LoanID  string `json:"loanId,omitempty"`
	Fine    int    `json:"fine"`
}

// ReturnItem
// @Summary Return a borrowed item
// @Tags loans
// @Produce json
// @Security UserName
// @Param loanId path string true "loan id"
// @Success 200 {object} model.Loan
// @Failure 402 {object} handler.fineResponse
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /loans/{loanId}/return [post]
func (h *Handler) ReturnItem(c echo.Context) error {
	loan, err := h.lendingSvc.ReturnItem(c.Request().Context(), c.Param("loanId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

// CompleteReturn
// @Summary Pay the fine and return
// @Tags loans
// @Produce json
// @Security UserName
// @Param loanId path string true "loan id"
// @Success 200 {object} model.Loan
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /loans/{loanId}/complete [post]
func (h *Handler) CompleteReturn(c echo.Context) error {
	loan, err := h.lendingSvc.CompleteReturn(c.Request().Context(), c.Param("loanId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) httpError(err error) error {
	var fineErr *errs.FineError
	switch {
	case errors.As(err, &fineErr):
		return echo.NewHTTPError(http.StatusPaymentRequired, fineResponse{
			Message: errs.ErrOutstandingFine.Error(),
			LoanID:  fineErr.LoanID,
			Fine:    fineErr.Amount,
		})
	case errors.Is(err, errs.ErrNotLoggedIn):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrItemUnavailable),
		errors.Is(err, errs.ErrOverdueLoans),
		errors.Is(err, errs.ErrLoanClosed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrOutstandingFine):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	}
	h.log.Error("internal error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
