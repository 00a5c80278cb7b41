package intake

// Recognizer data for the Central Florida service area. Everything in this
// file is plain data: the extraction and dispatch algorithms never depend on
// specific entries, so coverage, keyword lists, and phrase lists can be
// swapped without touching them.

const regionLabel = "Central Florida"

// knownCities are the city names the extractor recognizes. All of them are
// inside the service area, so a city match implies in-area.
var knownCities = []string{
	"Altamonte Springs",
	"Apopka",
	"Casselberry",
	"Clermont",
	"Kissimmee",
	"Lake Mary",
	"Longwood",
	"Maitland",
	"Ocoee",
	"Orlando",
	"Oviedo",
	"Saint Cloud",
	"Sanford",
	"Windermere",
	"Winter Garden",
	"Winter Park",
	"Winter Springs",
}

// coverageZips is the set of ZIP codes considered within the service area.
var coverageZips = map[string]bool{
	// Orlando
	"32801": true, "32803": true, "32804": true, "32805": true, "32806": true,
	"32807": true, "32808": true, "32809": true, "32810": true, "32811": true,
	"32812": true, "32814": true, "32817": true, "32818": true, "32819": true,
	"32820": true, "32821": true, "32822": true, "32824": true, "32825": true,
	"32826": true, "32827": true, "32828": true, "32829": true, "32832": true,
	"32835": true, "32836": true, "32837": true, "32839": true,
	// Seminole county
	"32701": true, "32714": true, "32707": true, "32708": true, "32746": true,
	"32750": true, "32765": true, "32766": true, "32771": true, "32773": true,
	"32779": true,
	// Orange county suburbs
	"32703": true, "32712": true, "32751": true, "32789": true, "32792": true,
	"34761": true, "34786": true, "34787": true,
	// Osceola / Lake
	"34741": true, "34743": true, "34744": true, "34746": true, "34747": true,
	"34769": true, "34771": true, "34711": true, "34714": true, "34715": true,
}

// zipCities back-fills a city name when only a ZIP was captured.
var zipCities = map[string]string{
	"32801": "Orlando", "32803": "Orlando", "32804": "Orlando", "32805": "Orlando",
	"32806": "Orlando", "32807": "Orlando", "32808": "Orlando", "32809": "Orlando",
	"32810": "Orlando", "32811": "Orlando", "32812": "Orlando", "32814": "Orlando",
	"32817": "Orlando", "32818": "Orlando", "32819": "Orlando", "32820": "Orlando",
	"32821": "Orlando", "32822": "Orlando", "32824": "Orlando", "32825": "Orlando",
	"32826": "Orlando", "32827": "Orlando", "32828": "Orlando", "32829": "Orlando",
	"32832": "Orlando", "32835": "Orlando", "32836": "Orlando", "32837": "Orlando",
	"32839": "Orlando",
	"32701": "Altamonte Springs", "32714": "Altamonte Springs",
	"32703": "Apopka", "32712": "Apopka",
	"32707": "Casselberry",
	"32708": "Winter Springs",
	"32746": "Lake Mary",
	"32750": "Longwood", "32779": "Longwood",
	"32751": "Maitland",
	"32765": "Oviedo", "32766": "Oviedo",
	"32771": "Sanford", "32773": "Sanford",
	"32789": "Winter Park", "32792": "Winter Park",
	"34711": "Clermont", "34714": "Clermont", "34715": "Clermont",
	"34741": "Kissimmee", "34743": "Kissimmee", "34744": "Kissimmee",
	"34746": "Kissimmee", "34747": "Kissimmee",
	"34761": "Ocoee",
	"34769": "Saint Cloud", "34771": "Saint Cloud",
	"34786": "Windermere",
	"34787": "Winter Garden",
}

// serviceKeywords are concrete trade and action words. An utterance that
// contains one is captured verbatim as the service description; generic
// category words ("plumbing", "help") are deliberately absent so a later,
// concrete description wins over an opening "I need X help" message.
var serviceKeywords = []string{
	"assemble", "build", "caulk", "fix", "hang", "install", "mount",
	"patch", "remodel", "repair", "replace",
	"cabinet", "ceiling fan", "clog", "clogged", "deck", "door", "drain",
	"drywall", "faucet", "fence", "floor", "garbage disposal", "gate",
	"grout", "gutter", "leak", "leaky", "light fixture", "outlet",
	"paint", "pressure wash", "power wash", "roof", "shelf", "shelves",
	"shower", "sink", "tile", "toilet", "water heater", "window",
	"handyman",
}

// nonNameTokens suppress two-capitalized-word false positives in plain
// (non-service) utterances.
var nonNameTokens = map[string]bool{
	"good": true, "great": true, "hello": true, "hey": true, "hi": true,
	"no": true, "ok": true, "okay": true, "please": true, "sorry": true,
	"sounds": true, "sure": true, "thank": true, "thanks": true, "that": true,
	"the": true, "this": true, "yes": true,
}

// nonNamePhrases is a small deny-list of full two-word phrases that look like
// names to the pattern but never are.
var nonNamePhrases = map[string]bool{
	"central florida": true,
	"good afternoon":  true,
	"good evening":    true,
	"good morning":    true,
	"ok great":        true,
	"okay great":      true,
	"skillful hands":  true,
	"sounds good":     true,
	"thank you":       true,
	"thanks again":    true,
	"yes please":      true,
}

// closingPhrases mark an assistant reply as the wrap-up of the conversation.
var closingPhrases = []string{
	"all set",
	"be in touch",
	"confirm",
	"contact you",
	"have a great day",
	"look forward",
	"reach out",
	"talk to you soon",
	"to recap",
	"we'll see you",
}
