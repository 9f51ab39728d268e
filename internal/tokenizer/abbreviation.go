package tokenizer

import (
	"regexp"
	"strings"
)

var (
	abbrevInitialsRe = regexp.MustCompile(`^([A-Z]\.){2,}$`)
	abbrevDegreeRe   = regexp.MustCompile(`^[A-Z][a-z]?\.[A-Z]\.$`)
	abbrevSingleRe   = regexp.MustCompile(`^[A-Z]\.$`)
	abbrevLowerPairRe = regexp.MustCompile(`^[a-z]\.[a-z]\.$`)
)

// commonAbbreviations is checked case-insensitively against the token with
// at most one trailing period stripped, so both "Mr" and "Mr." match.
var commonAbbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"rev": {}, "hon": {}, "gen": {}, "col": {}, "lt": {}, "sgt": {},
	"phd": {}, "md": {}, "ba": {}, "bs": {}, "ma": {}, "mba": {}, "jd": {},
	"esq": {}, "dds": {}, "rn": {}, "etc": {}, "eg": {}, "ie": {}, "vs": {},
	"viz": {}, "cf": {}, "al": {}, "ca": {}, "et": {}, "nb": {}, "ps": {},
	"ibid": {}, "st": {}, "ave": {}, "blvd": {}, "rd": {}, "apt": {},
	"no": {}, "mt": {}, "ft": {}, "in": {}, "lb": {}, "oz": {}, "hr": {},
	"min": {}, "sec": {}, "yr": {}, "mo": {}, "wk": {}, "inc": {},
	"corp": {}, "ltd": {}, "co": {}, "llc": {}, "plc": {}, "am": {},
	"pm": {}, "ad": {}, "bc": {}, "ce": {}, "bce": {}, "approx": {},
	"dept": {}, "est": {}, "govt": {}, "misc": {}, "natl": {}, "orig": {},
	"pp": {}, "vol": {}, "fig": {}, "ch": {},
}

// isAbbreviation tests the full surface form (trailing period included),
// since the regex patterns for initials and degrees require it.
func isAbbreviation(raw string) bool {
	if abbrevInitialsRe.MatchString(raw) || abbrevDegreeRe.MatchString(raw) ||
		abbrevSingleRe.MatchString(raw) || abbrevLowerPairRe.MatchString(raw) {
		return true
	}
	stripped := strings.TrimSuffix(strings.ToLower(raw), ".")
	_, ok := commonAbbreviations[stripped]
	return ok
}
