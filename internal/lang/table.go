package lang

// Entry describes one language in the code table.
type Entry struct {
	Alpha2        string // two-letter ISO 639-1 code
	Alpha3        string // three-letter terminological code
	Bibliographic string // three-letter bibliographic code, empty when identical to Alpha3
}

// Lookup resolves two-letter language codes against a code table.
type Lookup interface {
	ByAlpha2(code string) (Entry, bool)
}

// Table is an in-memory code table keyed by two-letter code.
type Table map[string]Entry

// ByAlpha2 implements Lookup.
func (t Table) ByAlpha2(code string) (Entry, bool) {
	e, ok := t[code]
	return e, ok
}

// defaultTable covers the languages that appear in journal exports.
// Where ISO 639-2 defines a separate bibliographic code it is listed;
// otherwise the terminological code doubles as the bibliographic one.
var defaultTable = Table{
	"ar": {Alpha2: "ar", Alpha3: "ara"},
	"bg": {Alpha2: "bg", Alpha3: "bul"},
	"cs": {Alpha2: "cs", Alpha3: "ces", Bibliographic: "cze"},
	"da": {Alpha2: "da", Alpha3: "dan"},
	"de": {Alpha2: "de", Alpha3: "deu", Bibliographic: "ger"},
	"el": {Alpha2: "el", Alpha3: "ell", Bibliographic: "gre"},
	"en": {Alpha2: "en", Alpha3: "eng"},
	"es": {Alpha2: "es", Alpha3: "spa"},
	"fi": {Alpha2: "fi", Alpha3: "fin"},
	"fr": {Alpha2: "fr", Alpha3: "fra", Bibliographic: "fre"},
	"hr": {Alpha2: "hr", Alpha3: "hrv"},
	"hu": {Alpha2: "hu", Alpha3: "hun"},
	"hy": {Alpha2: "hy", Alpha3: "hye", Bibliographic: "arm"},
	"is": {Alpha2: "is", Alpha3: "isl", Bibliographic: "ice"},
	"it": {Alpha2: "it", Alpha3: "ita"},
	"ja": {Alpha2: "ja", Alpha3: "jpn"},
	"ka": {Alpha2: "ka", Alpha3: "kat", Bibliographic: "geo"},
	"la": {Alpha2: "la", Alpha3: "lat"},
	"mk": {Alpha2: "mk", Alpha3: "mkd", Bibliographic: "mac"},
	"nl": {Alpha2: "nl", Alpha3: "nld", Bibliographic: "dut"},
	"no": {Alpha2: "no", Alpha3: "nor"},
	"pl": {Alpha2: "pl", Alpha3: "pol"},
	"pt": {Alpha2: "pt", Alpha3: "por"},
	"ro": {Alpha2: "ro", Alpha3: "ron", Bibliographic: "rum"},
	"ru": {Alpha2: "ru", Alpha3: "rus"},
	"sk": {Alpha2: "sk", Alpha3: "slk", Bibliographic: "slo"},
	"sl": {Alpha2: "sl", Alpha3: "slv"},
	"sq": {Alpha2: "sq", Alpha3: "sqi", Bibliographic: "alb"},
	"sr": {Alpha2: "sr", Alpha3: "srp"},
	"sv": {Alpha2: "sv", Alpha3: "swe"},
	"uk": {Alpha2: "uk", Alpha3: "ukr"},
	"zh": {Alpha2: "zh", Alpha3: "zho", Bibliographic: "chi"},
}

// DefaultTable returns the built-in language code table.
func DefaultTable() Lookup {
	return defaultTable
}
