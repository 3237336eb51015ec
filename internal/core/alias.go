package core

import "strings"

// AliasRule rewrites a short-form prefix to its canonical long form.
type AliasRule struct {
	Prefix    string
	Canonical string
}

// aliasRules is the ordered rewrite table applied to resolved version
// strings. Order is part of the contract. A rule is skipped when the value
// already carries the canonical prefix, so normalization is idempotent
// ("sdformat15" stays "sdformat15").
var aliasRules = []AliasRule{
	{Prefix: "ign-", Canonical: "ignition-"},
	{Prefix: "sdf", Canonical: "sdformat"},
}

// ApplyAliases normalizes a version identifier through the rule table,
// e.g. "sdf15" becomes "sdformat15" and "ign-math6" becomes
// "ignition-math6". Identifiers matching no rule pass through unchanged.
func ApplyAliases(value string) string {
	for _, rule := range aliasRules {
		if strings.HasPrefix(value, rule.Canonical) {
			continue
		}
		if strings.HasPrefix(value, rule.Prefix) {
			value = rule.Canonical + value[len(rule.Prefix):]
		}
	}
	return value
}
