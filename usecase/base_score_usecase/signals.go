package base_score_usecase

// reputableSources are matched as case-insensitive substrings of the source name.
var reputableSources = []string{
	"reuters",
	"associated press",
	"ap news",
	"bloomberg",
	"bbc",
	"the guardian",
	"new york times",
	"nytimes",
	"washington post",
	"wall street journal",
	"wsj",
	"financial times",
	"the economist",
	"cnbc",
	"techcrunch",
	"the verge",
	"wired",
	"ars technica",
	"coindesk",
	"the block",
	"cointelegraph",
	"nature",
	"npr",
	"al jazeera",
}

// reputableDomains are registrable domains of the same outlets, for
// providers that report an aggregator or blank source name.
var reputableDomains = map[string]struct{}{
	"reuters.com":        {},
	"apnews.com":         {},
	"bloomberg.com":      {},
	"bbc.co.uk":          {},
	"bbc.com":            {},
	"theguardian.com":    {},
	"nytimes.com":        {},
	"washingtonpost.com": {},
	"wsj.com":            {},
	"ft.com":             {},
	"economist.com":      {},
	"cnbc.com":           {},
	"techcrunch.com":     {},
	"theverge.com":       {},
	"wired.com":          {},
	"arstechnica.com":    {},
	"coindesk.com":       {},
	"theblock.co":        {},
	"cointelegraph.com":  {},
	"nature.com":         {},
	"npr.org":            {},
	"aljazeera.com":      {},
}

// highValuePhrases are matched as whole words in title, description and content.
var highValuePhrases = []string{
	"breakthrough",
	"record high",
	"all-time high",
	"acquisition",
	"acquires",
	"merger",
	"regulation",
	"lawsuit",
	"data breach",
	"interest rate",
	"interest rates",
	"bankruptcy",
	"ipo",
	"layoffs",
	"sanctions",
	"vulnerability",
	"partnership",
	"antitrust",
	"ceasefire",
	"election results",
	"recall",
	"outage",
	"zero-day",
	"open source release",
	"clinical trial",
}
