package intent

import "github.com/jeredhiggins/keyintent/core"

// Rule binds one intent label to its ordered trigger phrases. A keyword
// matches the rule when any phrase appears as a substring of the
// lower-cased keyword.
type Rule struct {
	Label   core.IntentLabel `yaml:"intent"`
	Phrases []string         `yaml:"phrases"`
}

// DefaultRules returns the built-in rule table in priority order:
// informational, navigational, local, commercial_investigation,
// transactional. The first rule with any phrase hit wins, so the order is
// part of the classification contract.
func DefaultRules() []Rule {
	return []Rule{
		{
			Label: core.IntentInformational,
			Phrases: []string{
				"advice", "help", "how do i", "how does", "how to", "ideas", "information", "tools", "list",
				"resources", "tips", "tutorial", "diy", "ways to", "what does", "what is", "what was", "where are", "where does",
				"where can", "where is", "where was", "when is", "when are", "when was", "where to", "who is", "who said", "who wrote",
				"who are", "why are", "who was", "why is", "examples", "explained", "meaning of", "definition", "benefits of", "uses of",
				"overview", "summary", "report", "study", "analysis", "research", "insight", "data", "facts", "details", "background",
				"context", "news", "history", "documentation", "article", "paper", "blog", "forum", "discussion", "commentary",
				"opinion", "perspective", "viewpoint", "guide", "difference between", "types of",
			},
		},
		{
			Label: core.IntentNavigational,
			Phrases: []string{
				"facebook", "meta", "twitter", "site", "login", "account", "official website", "homepage", "portal",
				"signin", "register", "signup", "dashboard", "profile", "settings", "control panel", "main page",
				"user area", "admin", "control", "access", "entry", "webpage", "navigate", "home", "site map",
				"directory", "find", "search", "lookup", "index", "online", "internet", "web", "browser", "navigate to",
				"goto", "landing page", "url", "hyperlink", "link", "web address", "navigate",
				"web navigation", "website address", "app", "download", "status", "join",
			},
		},
		{
			Label: core.IntentLocal,
			Phrases: []string{
				"closest", "close", "near me", "my area", "residential", "my zip", "my city", "nearby", "in town",
				"around here", "local", "near", "vicinity", "local area", "nearest", "surrounding", "within miles",
				"in my neighborhood", "district", "zone", "region", "near my location", "local services", "community",
				"local shop", "in my vicinity", "local store", "suburb", "urban area", "within walking distance",
				"around my place", "within my reach", "close by", "local office", "local branch", "near me now",
				"in my locale", "within the city", "local market", "in my town", "local spot", "local point",
				"local guide", "near my house", "local venue", "close to me", "within blocks", "local attractions",
				"local events", "address",
			},
		},
		{
			Label: core.IntentCommercial,
			Phrases: []string{
				"best", "affordable", "budget", "cheap", "expensive", "review", "top", "service", "cost", "average cost",
				"calculator", "provider", "company", "vs", "companies", "professional", "specialist", "compare",
				"comparison", "rating", "testimonials", "recommendation", "advisor", "consultant", "expert", "ranking",
				"leader", "top-rated", "best-selling", "trending", "featured", "highlighted", "recommended", "popular",
				"favorite", "preferred", "choice", "most reviewed", "highest rated", "highly recommended", "award-winning",
				"five-star", "customer favorite", "top pick", "critically acclaimed", "editor's choice", "people's choice",
				"top performer", "best value", "best overall", "best quality", "best price", "most trusted", "leading brand",
				"popular choice", "most popular", "fees", "pros and cons",
			},
		},
		{
			Label: core.IntentTransactional,
			Phrases: []string{
				"price", "quotes", "pricing", "purchase", "rates", "how much", "same day", "same-day", "buy", "order",
				"discount", "deal", "offers", "sale", "checkout", "book", "reservation", "reserve", "bargain", "coupon",
				"promo", "rebate", "clearance", "markdown", "buy one get one", "bogo", "special", "exclusive", "bundle",
				"package", "subscription", "membership", "payment", "installment", "financing", "contract", "billing",
				"invoice", "ticket", "admission", "entry", "enrollment", "register", "sign up", "pre-order", "e-commerce",
				"shopping cart",
			},
		},
	}
}
