package service

import (
	"context"
	"slices"
	"strings"

	"github.com/stoewer/go-strcase"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"regcontacts/internal/contacts/models"
	"regcontacts/internal/contacts/transform"
	str "regcontacts/pkg/platform/strings"
)

// GetCreationRules returns render-ready rules for predefinedPaths (plus the
// phone country) with localized enum labels. Company and subsidiary always
// come from the current identity; country and phone country default to it.
func (s *Service) GetCreationRules(ctx context.Context, opts models.RuleOptions, predefinedPaths []string) (_ models.RuleSet, err error) {
	ctx, finish := s.begin(ctx, "get_creation_rules",
		attribute.Int("contacts.predefined_paths", len(predefinedPaths)))
	defer func() { finish(err) }()

	identity, err := s.currentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	values := ruleValues(identity, opts)

	var (
		snap  *schemaSnapshot
		rules []models.CreationRule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sn, err := s.schemaSnapshot(gctx)
		if err != nil {
			return err
		}
		if sn.err != nil {
			return shapeError(sn.err)
		}
		snap = sn
		return nil
	})
	g.Go(func() error {
		r, err := s.rules.FetchCreationRules(gctx, values)
		if err != nil {
			return upstreamError(err, "creation rules")
		}
		rules = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := transform.MergeRulesWithCreationRules(
		snap.properties,
		models.IndexCreationRules(rules),
		str.DedupeAndTrim(predefinedPaths),
		values,
		s.mapper,
	)
	country, _ := values[models.OptionCountry].(string)
	s.localize(ctx, snap.schema, merged, country)
	return merged, nil
}

// ruleValues resolves the rules request options against the identity record.
func ruleValues(identity models.Record, opts models.RuleOptions) map[string]any {
	values := opts.Values()
	for _, key := range []string{models.OptionCompany, models.OptionSubsidiary} {
		if v, ok := identity[key]; ok {
			values[key] = v
		} else {
			delete(values, key)
		}
	}

	country := opts.Country
	if country == "" {
		country, _ = identity[models.OptionCountry].(string)
	}
	phoneCountry := opts.PhoneCountry
	if phoneCountry == "" {
		phoneCountry = country
	}
	if country != "" {
		values[models.OptionCountry] = country
	}
	if phoneCountry != "" {
		values[models.OptionPhoneCountry] = phoneCountry
	}
	return values
}

// localize labels every enumerated rule. Values come from the schema enum
// model named by the rule type when it exists, else from the rule itself.
func (s *Service) localize(ctx context.Context, schema *models.Schema, rules models.RuleSet, country string) {
	for path, rule := range rules {
		values, ok := schema.EnumValues(rule.FullType)
		if !ok {
			if len(rule.Enum) == 0 {
				continue
			}
			values = make([]string, 0, len(rule.Enum))
			for _, opt := range rule.Enum {
				values = append(values, opt.Value)
			}
		}

		keyed := slices.Contains(s.countryKeyedPaths, rule.Path)
		options := make([]models.EnumOption, 0, len(values))
		for _, value := range values {
			key := translationKey(s.translationPrefix, rule, country, keyed, value)
			options = append(options, models.EnumOption{Value: value, Label: s.label(ctx, key)})
		}
		rule.Enum = options
		rules[path] = rule
	}
}

func (s *Service) label(ctx context.Context, key string) string {
	label, err := s.translator.Translate(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "translation lookup failed",
			"key", key,
			"error", err,
		)
		return key
	}
	if label == "" {
		return key
	}
	return label
}

// translationKey builds <prefix>_<snake(type)>_<value>. Country-keyed
// fields insert the country before the value and name plain string fields
// by path instead of type.
func translationKey(prefix string, rule models.PropertyDescriptor, country string, countryKeyed bool, value string) string {
	if !countryKeyed {
		return prefix + "_" + snakeCase(rule.FullType) + "_" + value
	}
	subject := rule.FullType
	if subject == models.TypeString {
		subject = rule.Path
	}
	return prefix + "_" + snakeCase(subject) + "_" + country + "_" + value
}

// snakeCase treats dots as word boundaries: "nichandle.GenderEnum" becomes
// "nichandle_gender_enum".
func snakeCase(s string) string {
	return strcase.SnakeCase(strings.ReplaceAll(s, ".", " "))
}
