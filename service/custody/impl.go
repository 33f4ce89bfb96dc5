package custody

import (
	"crypto/rand"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/service/query"
)

type itemDoc struct {
	Collection domain.Address `bson:"collection"`
	TokenId    domain.TokenId `bson:"tokenId"`
	Holder     domain.Address `bson:"holder"`
}

type collectionDoc struct {
	Address domain.Address `bson:"address"`
	Name    string         `bson:"name,omitempty"`
	Symbol  string         `bson:"symbol,omitempty"`
	Owner   domain.Address `bson:"owner,omitempty"`
	// NextTokenId is the id handed out by the next mint
	NextTokenId int64 `bson:"nextTokenId,omitempty"`
}

type impl struct {
	q query.Mongo
}

// New returns a mongo-backed item custody service.
func New(q query.Mongo) domain.Custody {
	return &impl{q}
}

func (im *impl) Transfer(c ctx.Ctx, item domain.Item, from, to domain.Address) error {
	selector := itemDoc{Collection: item.Collection.ToLower(), TokenId: item.TokenId}

	res := itemDoc{}
	if err := im.q.FindOne(c, domain.TableItems, selector, &res); err == query.ErrNotFound {
		return domain.ErrItemNotEscrowed
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return err
	}
	if !res.Holder.Equals(from) {
		return domain.ErrItemNotEscrowed
	}

	update := itemDoc{Holder: to.ToLower()}
	if err := im.q.Patch(c, domain.TableItems, selector, update); err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *impl) HolderOf(c ctx.Ctx, item domain.Item) (domain.Address, error) {
	res := itemDoc{}
	selector := itemDoc{Collection: item.Collection.ToLower(), TokenId: item.TokenId}
	if err := im.q.FindOne(c, domain.TableItems, selector, &res); err == query.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return "", err
	}
	return res.Holder, nil
}

func (im *impl) Mint(c ctx.Ctx, collection domain.Address, to domain.Address) (domain.TokenId, error) {
	col := collectionDoc{}
	selector := collectionDoc{Address: collection.ToLower()}
	if err := im.q.Increment(c, domain.TableCollections, selector, &col, "nextTokenId", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return "", err
	}

	// ids start at 0, Increment returns the post-bump counter
	tokenId := domain.TokenId(strconv.FormatInt(col.NextTokenId-1, 10))
	doc := itemDoc{
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Holder:     to.ToLower(),
	}
	if err := im.q.Insert(c, domain.TableItems, doc); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return "", err
	}
	return tokenId, nil
}

func (im *impl) DeployCollection(c ctx.Ctx, name, symbol string, owner domain.Address) (domain.Address, error) {
	buf := make([]byte, common.AddressLength)
	if _, err := rand.Read(buf); err != nil {
		c.WithField("err", err).Error("rand.Read failed")
		return "", err
	}
	address := domain.Address(common.BytesToAddress(buf).Hex()).ToLower()

	doc := collectionDoc{
		Address: address,
		Name:    name,
		Symbol:  symbol,
		Owner:   owner.ToLower(),
	}
	if err := im.q.Insert(c, domain.TableCollections, doc); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return "", err
	}
	return address, nil
}
