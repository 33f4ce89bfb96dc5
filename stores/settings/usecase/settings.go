package usecase

import (
	"math/big"
	"strconv"
	"time"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/event"
	"github.com/rafflehouse/goapi/domain/keys"
	"github.com/rafflehouse/goapi/domain/settings"
	"github.com/rafflehouse/goapi/service/cache"
)

var timeNow = time.Now

type SettingsUseCaseCfg struct {
	Settings settings.Repo
	Event    event.Repo
	Cache    cache.Service
}

type settingsImpl struct {
	settings settings.Repo
	event    event.Repo
	cache    cache.Service
}

func NewSettings(cfg *SettingsUseCaseCfg) settings.UseCase {
	return &settingsImpl{
		settings: cfg.Settings,
		event:    cfg.Event,
		cache:    cfg.Cache,
	}
}

// defaults used until an admin writes the first settings document
func defaultSettings() *settings.Settings {
	return &settings.Settings{
		Key:                      settings.Key,
		MinDuration:              3600,     // 1 hour
		MaxDuration:              2592000,  // 30 days
		MaxTicketsPerAddressRate: "200000000000000000", // 20%
		FeeRate:                  "60000000000000000",  // 6%
		MintFee:                  "0",
		FeeCollector:             domain.EmptyAddress,
	}
}

func (im *settingsImpl) load(c ctx.Ctx) (*settings.Settings, error) {
	res, err := im.settings.Get(c)
	if err == domain.ErrNotFound {
		return defaultSettings(), nil
	} else if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return nil, err
	}
	return res, nil
}

func (im *settingsImpl) Get(c ctx.Ctx) (*settings.Settings, error) {
	if im.cache == nil {
		return im.load(c)
	}

	res := &settings.Settings{}
	err := im.cache.GetByFunc(c, keys.PfxSettings, res, func() (interface{}, error) {
		return im.load(c)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// update applies mutate to the current settings, bumps the version and
// records an update event with the old and new values.
func (im *settingsImpl) update(c ctx.Ctx, field string, mutate func(*settings.Settings) (old, new string, err error)) error {
	cfg, err := im.load(c)
	if err != nil {
		return err
	}

	oldValue, newValue, err := mutate(cfg)
	if err != nil {
		return err
	}

	cfg.Version++
	cfg.UpdatedAt = timeNow()
	if err := im.settings.Upsert(c, cfg); err != nil {
		c.WithField("err", err).Error("settings.Upsert failed")
		return err
	}

	if im.cache != nil {
		if err := im.cache.Del(c, keys.PfxSettings); err != nil {
			c.WithField("err", err).Error("cache.Del failed")
		}
	}

	if err := im.event.Create(c, &event.Event{
		Type:      event.TypeUpdateSettings,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		CreatedAt: timeNow(),
	}); err != nil {
		c.WithField("err", err).Error("event.Create failed")
		return err
	}
	return nil
}

func (im *settingsImpl) SetMinDuration(c ctx.Ctx, seconds int64) error {
	return im.update(c, "minDuration", func(cfg *settings.Settings) (string, string, error) {
		if seconds > cfg.MaxDuration {
			return "", "", domain.ErrDurationsInvalid
		}
		old := strconv.FormatInt(cfg.MinDuration, 10)
		cfg.MinDuration = seconds
		return old, strconv.FormatInt(seconds, 10), nil
	})
}

func (im *settingsImpl) SetMaxDuration(c ctx.Ctx, seconds int64) error {
	return im.update(c, "maxDuration", func(cfg *settings.Settings) (string, string, error) {
		if seconds < cfg.MinDuration {
			return "", "", domain.ErrDurationsInvalid
		}
		old := strconv.FormatInt(cfg.MaxDuration, 10)
		cfg.MaxDuration = seconds
		return old, strconv.FormatInt(seconds, 10), nil
	})
}

func (im *settingsImpl) SetMaxTicketsPerAddressRate(c ctx.Ctx, rate *big.Int) error {
	return im.update(c, "maxTicketsPerAddressRate", func(cfg *settings.Settings) (string, string, error) {
		if rate.Sign() < 0 || rate.Cmp(domain.RateBase) > 0 {
			return "", "", domain.ErrCapTooHigh
		}
		old := cfg.MaxTicketsPerAddressRate
		cfg.MaxTicketsPerAddressRate = rate.String()
		return old, cfg.MaxTicketsPerAddressRate, nil
	})
}

func (im *settingsImpl) SetFeeRate(c ctx.Ctx, rate *big.Int) error {
	return im.update(c, "feeRate", func(cfg *settings.Settings) (string, string, error) {
		if rate.Sign() < 0 || rate.Cmp(settings.FeeRateCeiling) > 0 {
			return "", "", domain.ErrFeeTooHigh
		}
		old := cfg.FeeRate
		cfg.FeeRate = rate.String()
		return old, cfg.FeeRate, nil
	})
}

func (im *settingsImpl) SetMintFee(c ctx.Ctx, fee *big.Int) error {
	return im.update(c, "mintFee", func(cfg *settings.Settings) (string, string, error) {
		if fee.Sign() < 0 {
			return "", "", domain.ErrBadParamInput
		}
		old := cfg.MintFee
		cfg.MintFee = fee.String()
		return old, cfg.MintFee, nil
	})
}

func (im *settingsImpl) SetFeeCollector(c ctx.Ctx, collector domain.Address) error {
	return im.update(c, "feeCollector", func(cfg *settings.Settings) (string, string, error) {
		if collector.IsEmpty() {
			return "", "", domain.ErrInvalidAddress
		}
		old := string(cfg.FeeCollector)
		cfg.FeeCollector = collector.ToLower()
		return old, string(cfg.FeeCollector), nil
	})
}
