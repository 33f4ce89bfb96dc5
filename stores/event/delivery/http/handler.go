package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/delivery"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
)

type eventHandler struct {
	event event.Repo
}

func New(e *echo.Echo, repo event.Repo) {
	handler := &eventHandler{
		event: repo,
	}
	g := e.Group("/events")
	g.GET("", handler.findAll)

	e.GET("/listings/:id/events", handler.findByListing)
}

func (h *eventHandler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId *domain.ListingId `query:"listingId"`
		Type      *event.Type       `query:"type"`
		Offset    int32             `query:"offset"`
		Limit     int32             `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []event.FindAllOptionsFunc{}
	if p.Limit > 0 {
		opts = append(opts, event.WithPagination(p.Offset, p.Limit))
	}
	if p.ListingId != nil {
		opts = append(opts, event.WithListingId(*p.ListingId))
	}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}

	if res, err := h.event.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("event.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *eventHandler) findByListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	type params struct {
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []event.FindAllOptionsFunc{event.WithListingId(domain.ListingId(id))}
	if p.Limit > 0 {
		opts = append(opts, event.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.event.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("event.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
