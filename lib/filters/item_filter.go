package filters

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/pescuma/takeoff/lib/model"
	"github.com/pescuma/takeoff/lib/utils"
)

// ItemFilter decides whether one takeoff line item matches a rule.
type ItemFilter func(*model.LineItem) bool

type itemFilterWithUsage struct {
	filter ItemFilter
	usage  UsageType
}

func (s *itemFilterWithUsage) Filter(item *model.LineItem) UsageType {
	return utils.IIf(s.filter(item), s.usage, DontCare)
}

type itemFilterGroup struct {
	filters []*itemFilterWithUsage
}

func (g *itemFilterGroup) Keep(item *model.LineItem) bool {
	result := DontCare
	for _, f := range g.filters {
		result = result.Merge(f.Filter(item))
	}

	usage := Exclude
	for _, f := range g.filters {
		if f.usage == Include {
			usage = Include
		}
	}

	return result.DecideFor(usage)
}

// ParseAndFilterItems keeps the line items matching the rules. Rules match
// the item name, pricing key, bid group or category; a leading "-" turns a
// rule into an exclusion. No rules keeps everything.
func ParseAndFilterItems(items []*model.LineItem, rules []string) ([]*model.LineItem, error) {
	if len(rules) == 0 {
		return items, nil
	}

	group := &itemFilterGroup{}

	for _, rule := range rules {
		usage := Include
		if strings.HasPrefix(rule, "-") {
			usage = Exclude
			rule = rule[1:]
		}

		filter, err := ParseItemFilter(rule)
		if err != nil {
			return nil, err
		}

		group.filters = append(group.filters, &itemFilterWithUsage{filter: filter, usage: usage})
	}

	var result []*model.LineItem
	for _, i := range items {
		if group.Keep(i) {
			result = append(result, i)
		}
	}

	return result, nil
}

// ParseItemFilter builds one rule. Prefixes select the field to match:
// key:, group:, category:; no prefix matches the display name. Values may
// be plain text (case-insensitive equals for key/group/category, substring
// for names), a glob, or re: followed by a regexp.
func ParseItemFilter(rule string) (ItemFilter, error) {
	rule = strings.TrimSpace(rule)

	if rule == "" {
		return func(*model.LineItem) bool { return true }, nil
	}

	field := func(i *model.LineItem) string { return i.Name }
	substring := true

	switch {
	case strings.HasPrefix(rule, "key:"):
		rule = strings.TrimPrefix(rule, "key:")
		field = func(i *model.LineItem) string { return i.PricingKey }
		substring = false

	case strings.HasPrefix(rule, "group:"):
		rule = strings.TrimPrefix(rule, "group:")
		field = func(i *model.LineItem) string { return i.BidGroup.String() }
		substring = false

	case strings.HasPrefix(rule, "category:"):
		rule = strings.TrimPrefix(rule, "category:")
		field = func(i *model.LineItem) string { return i.Category.String() }
		substring = false
	}

	matcher, err := parseValueMatcher(rule, substring)
	if err != nil {
		return nil, err
	}

	return func(i *model.LineItem) bool { return matcher(field(i)) }, nil
}

func parseValueMatcher(rule string, substring bool) (func(string) bool, error) {
	switch {
	case strings.HasPrefix(rule, "re:"):
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid item filter RE: %v", rule)
		}

		return re.MatchString, nil

	case strings.ContainsAny(rule, "*?["):
		g, err := glob.Compile(strings.ToLower(rule))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid item filter: %v", rule)
		}

		return func(s string) bool { return g.Match(strings.ToLower(s)) }, nil

	case substring:
		return func(s string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(rule))
		}, nil

	default:
		return func(s string) bool { return strings.EqualFold(s, rule) }, nil
	}
}
