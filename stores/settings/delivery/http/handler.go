package http

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/delivery"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/settings"
	authMiddleware "github.com/rafflehouse/goapi/stores/auth/delivery/http/middleware"
)

type settingsHandler struct {
	settings settings.UseCase
}

func New(e *echo.Echo, us settings.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &settingsHandler{
		settings: us,
	}

	g := e.Group("/settings")
	g.GET("", h.get)

	admin := g.Group("", am.Auth(), am.IsAdmin())
	admin.PUT("/minDuration", h.setMinDuration)
	admin.PUT("/maxDuration", h.setMaxDuration)
	admin.PUT("/maxTicketsPerAddressRate", h.setMaxTicketsPerAddressRate)
	admin.PUT("/feeRate", h.setFeeRate)
	admin.PUT("/mintFee", h.setMintFee)
	admin.PUT("/feeCollector", h.setFeeCollector)
}

func (h *settingsHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.settings.Get(ctx); err != nil {
		ctx.WithField("err", err).Error("settings.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *settingsHandler) bindValue(c echo.Context) (string, error) {
	type params struct {
		Value string `json:"value" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return "", domain.ErrBadParamInput
	}
	if err := c.Validate(p); err != nil {
		return "", domain.ErrBadParamInput
	}
	return p.Value, nil
}

func (h *settingsHandler) applySeconds(c echo.Context, apply func(ctx.Ctx, int64) error) error {
	context := c.Get("ctx").(ctx.Ctx)

	raw, err := h.bindValue(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds <= 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := apply(context, seconds); err != nil {
		context.WithField("err", err).Error("settings update failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "updated")
}

func (h *settingsHandler) applyBig(c echo.Context, apply func(ctx.Ctx, *big.Int) error) error {
	context := c.Get("ctx").(ctx.Ctx)

	raw, err := h.bindValue(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	value, err := domain.ParseAmount(raw)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := apply(context, value); err != nil {
		context.WithField("err", err).Error("settings update failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "updated")
}

func (h *settingsHandler) setMinDuration(c echo.Context) error {
	return h.applySeconds(c, h.settings.SetMinDuration)
}

func (h *settingsHandler) setMaxDuration(c echo.Context) error {
	return h.applySeconds(c, h.settings.SetMaxDuration)
}

func (h *settingsHandler) setMaxTicketsPerAddressRate(c echo.Context) error {
	return h.applyBig(c, h.settings.SetMaxTicketsPerAddressRate)
}

func (h *settingsHandler) setFeeRate(c echo.Context) error {
	return h.applyBig(c, h.settings.SetFeeRate)
}

func (h *settingsHandler) setMintFee(c echo.Context) error {
	return h.applyBig(c, h.settings.SetMintFee)
}

func (h *settingsHandler) setFeeCollector(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	raw, err := h.bindValue(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.settings.SetFeeCollector(context, domain.Address(raw)); err != nil {
		context.WithField("err", err).Error("settings.SetFeeCollector failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "updated")
}
