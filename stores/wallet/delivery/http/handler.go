package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/delivery"
	"github.com/rafflehouse/goapi/base/pricefmt"
	"github.com/rafflehouse/goapi/domain"
	mmiddleware "github.com/rafflehouse/goapi/middleware"
	authMiddleware "github.com/rafflehouse/goapi/stores/auth/delivery/http/middleware"
)

type walletHandler struct {
	wallet domain.Wallet
	// currency queried and deposited when the request names none
	currency domain.Address
}

func New(e *echo.Echo, wallet domain.Wallet, currency domain.Address, am *authMiddleware.AuthMiddleware) {
	h := &walletHandler{
		wallet:   wallet,
		currency: currency,
	}

	g := e.Group("/wallet")
	g.GET("/:address/balance", h.balanceOf, mmiddleware.IsValidAddress("address"))
	g.POST("/deposit", h.deposit, am.Auth(), am.IsAdmin())
}

func (h *walletHandler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	owner := domain.Address(c.Param("address"))
	currency := h.currency
	if q := c.QueryParam("currency"); q != "" {
		currency = domain.Address(q)
	}

	balance, err := h.wallet.BalanceOf(ctx, currency, owner)
	if err != nil {
		ctx.WithField("err", err).Error("wallet.BalanceOf failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Currency domain.Address `json:"currency"`
		Owner    domain.Address `json:"owner"`
		Amount   string         `json:"amount"`
		Display  string         `json:"display"`
	}{
		Currency: currency.ToLower(),
		Owner:    owner.ToLower(),
		Amount:   balance.String(),
		Display:  pricefmt.ToDisplay(balance).String(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *walletHandler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		To       domain.Address `json:"to" validate:"required"`
		Currency domain.Address `json:"currency"`
		Amount   string         `json:"amount" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	currency := h.currency
	if !p.Currency.IsEmpty() {
		currency = p.Currency
	}

	if err := h.wallet.Deposit(ctx, currency, p.To, amount); err != nil {
		ctx.WithField("err", err).Error("wallet.Deposit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
