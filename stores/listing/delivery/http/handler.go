package http

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/delivery"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/listing"
	authMiddleware "github.com/rafflehouse/goapi/stores/auth/delivery/http/middleware"
)

type listingHandler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, us listing.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &listingHandler{
		listing: us,
	}

	g := e.Group("/listings")
	g.GET("", h.findAll)
	g.GET("/:id", h.get)
	g.POST("", h.list, am.Auth())
	g.POST("/mint", h.mintAndList, am.Auth())
	g.POST("/:id/tickets", h.buyTickets, am.Auth())
	g.POST("/:id/tickets/swap", h.buyTicketsWithSwap, am.Auth())
	g.POST("/claims/items", h.claimItems, am.Auth())
	g.POST("/claims/tokens", h.claimTokens, am.Auth())
	g.POST("/reclaims/items", h.reclaimItems, am.Auth())
	g.POST("/reclaims/tokens", h.reclaimTokens, am.Auth())

	// callback target of the randomness coordinator
	e.POST("/oracle/callback", h.fulfillRandomness)
}

func (h *listingHandler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner   *domain.Address `query:"owner"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
		SortBy  *string         `query:"sortBy"`
		SortDir *int8           `query:"sortDir"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.Limit > 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}
	if p.Owner != nil {
		opts = append(opts, listing.WithOwner(*p.Owner))
	}
	if p.SortBy != nil && p.SortDir != nil {
		opts = append(opts, listing.WithSort(*p.SortBy, domain.SortDir(*p.SortDir)))
	}

	if res, err := h.listing.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("listing.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *listingHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if res, err := h.listing.Get(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *listingHandler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Items []listing.ListItemParams `json:"items" validate:"required,dive"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if ids, err := h.listing.List(ctx, address, p.Items); err != nil {
		ctx.WithField("err", err).Error("listing.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, ids)
	}
}

func (h *listingHandler) mintAndList(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := listing.MintAndListParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if ids, err := h.listing.MintAndList(ctx, address, p); err != nil {
		ctx.WithField("err", err).Error("listing.MintAndList failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, ids)
	}
}

func (h *listingHandler) buyTickets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	id, err := parseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	type params struct {
		Amount int64 `json:"amount" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.listing.BuyTickets(ctx, address, id, p.Amount); err != nil {
		ctx.WithField("err", err).Error("listing.BuyTickets failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *listingHandler) buyTicketsWithSwap(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	id, err := parseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	p := listing.SwapBuyParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if bought, err := h.listing.BuyTicketsWithSwap(ctx, address, id, p); err != nil {
		ctx.WithField("err", err).Error("listing.BuyTicketsWithSwap failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		res := struct {
			TicketsBought int64 `json:"ticketsBought"`
		}{
			TicketsBought: bought,
		}
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// claimParams are shared by the four claim/reclaim endpoints. Recipient
// defaults to the caller when omitted.
type claimParams struct {
	Ids       []domain.ListingId `json:"ids" validate:"required,min=1"`
	Recipient domain.Address     `json:"recipient"`
}

func (h *listingHandler) bindClaimParams(c echo.Context) (*claimParams, error) {
	p := &claimParams{}
	if err := c.Bind(p); err != nil {
		return nil, domain.ErrBadParamInput
	}
	if err := c.Validate(p); err != nil {
		return nil, domain.ErrBadParamInput
	}
	if p.Recipient.IsEmpty() {
		p.Recipient = c.Get("address").(domain.Address)
	}
	return p, nil
}

func (h *listingHandler) claimItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p, err := h.bindClaimParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.ClaimItems(ctx, address, p.Ids, p.Recipient); err != nil {
		ctx.WithField("err", err).Error("listing.ClaimItems failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *listingHandler) claimTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p, err := h.bindClaimParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.ClaimTokens(ctx, address, p.Ids, p.Recipient); err != nil {
		ctx.WithField("err", err).Error("listing.ClaimTokens failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *listingHandler) reclaimItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p, err := h.bindClaimParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.ReclaimItems(ctx, address, p.Ids, p.Recipient); err != nil {
		ctx.WithField("err", err).Error("listing.ReclaimItems failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *listingHandler) reclaimTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p, err := h.bindClaimParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.ReclaimTokens(ctx, address, p.Ids, p.Recipient); err != nil {
		ctx.WithField("err", err).Error("listing.ReclaimTokens failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *listingHandler) fulfillRandomness(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		RequestId string `json:"requestId" validate:"required"`
		Value     string `json:"value" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	value, ok := new(big.Int).SetString(p.Value, 10)
	if !ok || value.Sign() < 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	if err := h.listing.FulfillRandomness(ctx, domain.RandomnessRequestId(p.RequestId), value); err != nil {
		ctx.WithField("err", err).Error("listing.FulfillRandomness failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func parseListingId(s string) (domain.ListingId, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadParamInput
	}
	return domain.ListingId(id), nil
}
