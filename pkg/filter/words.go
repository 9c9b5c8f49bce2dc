package filter

// defaultWords is the built-in censor list applied when no custom list is
// supplied. Matching is whole-token, case-insensitive.
var defaultWords = []string{
	"arse",
	"arsehole",
	"ass",
	"asshat",
	"asshole",
	"bastard",
	"bitch",
	"bollocks",
	"bullshit",
	"crap",
	"cunt",
	"damn",
	"dick",
	"dickhead",
	"douche",
	"douchebag",
	"dumbass",
	"fuck",
	"fucked",
	"fucker",
	"fucking",
	"goddamn",
	"jackass",
	"jerk",
	"moron",
	"motherfucker",
	"piss",
	"pissed",
	"prick",
	"pussy",
	"scumbag",
	"shit",
	"shithead",
	"shitty",
	"slut",
	"twat",
	"wanker",
	"whore",
}
