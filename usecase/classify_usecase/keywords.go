package classify_usecase

import "news-pipeline/domain"

// categoryKeywords drives category scoring. Lists are matched as lower-case
// substrings; "model" stays out of every list but llm's phrases and "ai"
// stays out of llm.
var categoryKeywords = map[domain.Category][]string{
	domain.CategoryLLM: {
		"large language model", "language model", "llm", "llms", "gpt", "chatgpt",
		"claude", "gemini", "llama", "mistral", "openai", "anthropic",
		"prompt engineering", "fine-tuning", "chatbot", "foundation model",
	},
	domain.CategoryAI: {
		"ai", "artificial intelligence", "machine learning", "deep learning",
		"neural network", "computer vision", "robotics", "autonomous", "algorithm",
	},
	domain.CategoryCrypto: {
		"bitcoin", "btc", "ethereum", "crypto", "cryptocurrency", "blockchain",
		"stablecoin", "defi", "nft", "altcoin", "solana", "binance", "coinbase",
		"web3", "halving", "etf",
	},
	domain.CategoryTechnology: {
		"technology", "tech", "software", "hardware", "smartphone", "iphone",
		"android", "apple", "google", "microsoft", "chip", "semiconductor",
		"cloud", "cybersecurity", "startup", "internet", "5g", "gadget",
		"computing", "processor",
	},
	domain.CategoryBusiness: {
		"business", "market", "stock", "shares", "earnings", "revenue", "profit",
		"economy", "economic", "inflation", "investor", "merger", "acquisition",
		"ipo", "bank", "finance", "trade", "ceo", "company",
	},
	domain.CategoryScience: {
		"science", "scientist", "research", "study", "space", "nasa", "physics",
		"astronomy", "climate", "biology", "chemistry", "discovery", "planet",
		"telescope",
	},
	domain.CategoryHealth: {
		"health", "medical", "medicine", "hospital", "disease", "vaccine", "virus",
		"covid", "cancer", "patient", "doctor", "drug", "fda", "pandemic",
		"clinical",
	},
	domain.CategoryPolitics: {
		"politics", "political", "election", "government", "president", "congress",
		"senate", "parliament", "minister", "policy", "vote", "democrat",
		"republican", "legislation", "campaign",
	},
	domain.CategorySports: {
		"sports", "football", "soccer", "basketball", "baseball", "tennis",
		"olympics", "nfl", "nba", "championship", "tournament", "league", "coach",
		"player", "world cup",
	},
	domain.CategoryEntertainment: {
		"entertainment", "movie", "film", "music", "celebrity", "hollywood",
		"netflix", "album", "concert", "actor", "actress", "box office",
		"streaming", "series",
	},
}

// extraTagKeywords extend the category lists for tagging only.
var extraTagKeywords = []string{
	"regulation", "sec", "layoffs", "funding", "open source", "security",
	"privacy", "quantum", "energy", "electric vehicle", "tesla", "nvidia",
	"amd", "intel", "meta", "amazon", "ukraine", "china", "europe", "ransomware",
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "into": {}, "this": {},
	"that": {}, "are": {}, "was": {}, "were": {}, "has": {}, "have": {}, "had": {},
	"will": {}, "its": {}, "new": {}, "how": {}, "why": {}, "what": {}, "who": {},
	"when": {}, "after": {}, "before": {}, "over": {}, "under": {}, "amid": {},
	"about": {}, "but": {}, "not": {}, "can": {}, "may": {}, "says": {}, "said": {},
	"past": {}, "more": {}, "than": {}, "you": {}, "your": {}, "our": {}, "their": {},
	"his": {}, "her": {}, "all": {}, "out": {}, "off": {}, "now": {}, "just": {},
}
