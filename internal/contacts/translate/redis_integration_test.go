//go:build integration

package translate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"regcontacts/internal/contacts/translate"
	"regcontacts/pkg/testutil/containers"
)

type RedisCatalogSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	catalog *translate.RedisCatalog
}

func TestRedisCatalogSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCatalogSuite))
}

func (s *RedisCatalogSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.catalog = translate.NewRedisCatalog(s.redis.Client, translate.WithHash("test:labels"))
}

func (s *RedisCatalogSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCatalogSuite) TestTranslate() {
	ctx := context.Background()
	s.Require().NoError(s.catalog.Load(ctx, translate.Catalog{
		"contact_form_nichandle_gender_enum_female": "Female",
	}))

	label, err := s.catalog.Translate(ctx, "contact_form_nichandle_gender_enum_female")
	s.Require().NoError(err)
	s.Equal("Female", label)

	label, err = s.catalog.Translate(ctx, "contact_form_nichandle_gender_enum_male")
	s.Require().NoError(err)
	s.Equal("contact_form_nichandle_gender_enum_male", label)
}

func (s *RedisCatalogSuite) TestLoadReplacesLabels() {
	ctx := context.Background()
	s.Require().NoError(s.catalog.Load(ctx, translate.Catalog{"k": "old"}))
	s.Require().NoError(s.catalog.Load(ctx, translate.Catalog{"k": "new"}))

	label, err := s.catalog.Translate(ctx, "k")
	s.Require().NoError(err)
	s.Equal("new", label)
}

func (s *RedisCatalogSuite) TestMemoOverRedis() {
	ctx := context.Background()
	s.Require().NoError(s.catalog.Load(ctx, translate.DefaultLabels()))
	memo := translate.NewMemo(s.catalog, 0)

	label, err := memo.Translate(ctx, "contact_form_nichandle_country_enum_FR")
	s.Require().NoError(err)
	s.Equal("France", label)

	s.Require().NoError(s.redis.FlushAll(ctx))
	label, err = memo.Translate(ctx, "contact_form_nichandle_country_enum_FR")
	s.Require().NoError(err)
	s.Equal("France", label)
}
