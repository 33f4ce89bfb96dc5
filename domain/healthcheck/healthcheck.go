package healthcheck

import "github.com/rafflehouse/goapi/base/ctx"

type Repo interface {
	// Ping probes every backing store the API cannot serve without.
	Ping(ctx.Ctx) error
}

type UseCase interface {
	Check(ctx.Ctx) error
}
