package domain

import "strings"

const promotionalRejection = "Message content detected as promotional and rejected."

var promotionalPhrases = []string{
	"limited offer", "exclusive deal", "buy now",
	"discount", "promo code", "act fast", "click to buy",
	"guaranteed", "lowest price", "sale", "special offer",
	"money back", "risk free", "winner", "claim now",
	"no obligation", "free gift", "once in a lifetime",
	"don’t miss", "instant access", "congratulations", "get rich",
	"double your", "secret trick", "as seen on",
	"unbelievable offer", "lose weight", "miracle cure", "easy money",
	"earn instantly", "limited spots", "hidden fees", "fake testimonials", "limited quantity",
	"limited time only", "buy one, get one free",
	"lowest price guaranteed", "save big", "act now", "today only",
	"flash sale", "clearance", "don’t miss out", "hurry", "only a few left",
	"while supplies last", "ends soon", "limited stock",
	"no cost", "complimentary", "sign up and save", "claim your prize",
	"enter to win", "earn money fast", "make $1000 a week", "passive income",
	"get rich quick", "no investment required", "click here", "see for yourself",
	"guaranteed satisfaction", "risk-free trial", "as seen on tv", "best on the market",
	"proven results", "revolutionary", "top-rated",
	"lose weight fast", "anti-aging miracle", "cure-all solution",
	"get flawless skin", "boost your energy",
}

// IsPromotional reports whether content contains any promotional phrase.
// Matching is a case-insensitive substring check.
func IsPromotional(content string) bool {
	lower := strings.ToLower(content)
	for _, phrase := range promotionalPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// CheckPromotional returns a conflict error when content is promotional.
func CheckPromotional(content string) error {
	if IsPromotional(content) {
		return WithDetail(ErrConflict, promotionalRejection)
	}
	return nil
}
