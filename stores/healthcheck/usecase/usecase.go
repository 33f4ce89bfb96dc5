package usecase

import (
	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain/healthcheck"
)

type impl struct {
	repo healthcheck.Repo
}

func New(repo healthcheck.Repo) healthcheck.UseCase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.Ping(context)
}
