package sentiment

// lexicon maps tokens to AFINN-style valences in [-5, 5]. Entries are the
// vocabulary that actually shows up in retail product reviews.
var lexicon = map[string]int{
	// positive
	"amazing":     4,
	"awesome":     4,
	"beautiful":   3,
	"best":        3,
	"better":      2,
	"brilliant":   4,
	"charming":    3,
	"cheap":       1,
	"clean":       2,
	"clear":       1,
	"comfortable": 2,
	"comfy":       2,
	"convenient":  2,
	"cool":        1,
	"cute":        2,
	"delicious":   3,
	"delight":     3,
	"delighted":   3,
	"dependable":  2,
	"durable":     2,
	"easy":        1,
	"effective":   2,
	"efficient":   2,
	"elegant":     2,
	"enjoy":       2,
	"enjoyed":     2,
	"enjoys":      2,
	"excellent":   3,
	"exceptional": 3,
	"exciting":    3,
	"fabulous":    4,
	"fantastic":   4,
	"fast":        1,
	"favorite":    2,
	"favourite":   2,
	"fine":        2,
	"flawless":    4,
	"fresh":       1,
	"fun":         4,
	"generous":    2,
	"gift":        2,
	"glad":        3,
	"good":        3,
	"gorgeous":    3,
	"great":       3,
	"handy":       2,
	"happy":       3,
	"helpful":     2,
	"impressed":   3,
	"impressive":  3,
	"incredible":  4,
	"like":        2,
	"liked":       2,
	"likes":       2,
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"loves":       3,
	"marvelous":   3,
	"neat":        1,
	"nice":        3,
	"outstanding": 5,
	"perfect":     3,
	"perfectly":   3,
	"pleasant":    3,
	"pleased":     3,
	"pleasure":    3,
	"powerful":    2,
	"pretty":      1,
	"quality":     2,
	"quick":       1,
	"recommend":   2,
	"recommended": 2,
	"reliable":    2,
	"remarkable":  2,
	"robust":      2,
	"satisfied":   2,
	"satisfying":  2,
	"sleek":       2,
	"smart":       1,
	"smooth":      2,
	"solid":       2,
	"stunning":    4,
	"sturdy":      2,
	"stylish":     2,
	"super":       3,
	"superb":      5,
	"superior":    2,
	"terrific":    4,
	"thank":       2,
	"thanks":      2,
	"top":         2,
	"useful":      2,
	"valuable":    2,
	"value":       1,
	"versatile":   2,
	"vibrant":     3,
	"win":         4,
	"winner":      4,
	"wonderful":   4,
	"worth":       2,
	"worthy":      2,
	"wow":         4,

	// negative
	"annoying":      -2,
	"awful":         -3,
	"bad":           -3,
	"breaks":        -1,
	"broke":         -1,
	"broken":        -1,
	"cheaply":       -2,
	"crap":          -3,
	"cracked":       -2,
	"damage":        -3,
	"damaged":       -3,
	"dead":          -3,
	"defect":        -3,
	"defective":     -3,
	"disappoint":    -2,
	"disappointed":  -2,
	"disappointing": -2,
	"dirty":         -2,
	"dislike":       -2,
	"expensive":     -2,
	"fail":          -2,
	"failed":        -2,
	"fails":         -2,
	"fake":          -3,
	"faulty":        -3,
	"flaw":          -2,
	"flawed":        -2,
	"flimsy":        -2,
	"fraud":         -4,
	"frustrated":    -2,
	"frustrating":   -2,
	"garbage":       -3,
	"hate":          -3,
	"hated":         -3,
	"hates":         -3,
	"horrible":      -3,
	"junk":          -3,
	"lack":          -2,
	"lacking":       -2,
	"leak":          -2,
	"leaked":        -2,
	"leaks":         -2,
	"loose":         -3,
	"lousy":         -3,
	"mediocre":      -2,
	"mess":          -2,
	"misleading":    -3,
	"missing":       -2,
	"mistake":       -2,
	"noisy":         -1,
	"pathetic":      -3,
	"poor":          -2,
	"poorly":        -2,
	"problem":       -2,
	"problems":      -2,
	"refund":        -2,
	"regret":        -2,
	"return":        -1,
	"returned":      -1,
	"ridiculous":    -3,
	"rip":           -4,
	"ripoff":        -4,
	"rubbish":       -2,
	"sad":           -2,
	"scam":          -2,
	"slow":          -2,
	"stink":         -2,
	"stinks":        -2,
	"stopped":       -1,
	"stuck":         -2,
	"terrible":      -3,
	"trash":         -2,
	"ugly":          -3,
	"unacceptable":  -2,
	"uncomfortable": -2,
	"unhappy":       -2,
	"unreliable":    -2,
	"unusable":      -3,
	"upset":         -2,
	"useless":       -2,
	"waste":         -1,
	"wasted":        -2,
	"weak":          -2,
	"worse":         -3,
	"worst":         -3,
	"worthless":     -2,
	"wrong":         -2,
}
