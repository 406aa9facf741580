package coffee

// cupArt holds a small drawing per drink. Every line of a drawing has the
// same width so it can be centered as a block.
var cupArt = map[string][]string{
	"Espresso": {
		"              ",
		"     ) )      ",
		"    ( (       ",
		"   .-----.    ",
		"   |#####|]   ",
		"   `-----'    ",
		"  ~~~~~~~~~   ",
	},
	"Espresso Macchiato": {
		"     ) )      ",
		"    ( (       ",
		"   .-----.    ",
		"   |ooooo|]   ",
		"   |#####|    ",
		"   `-----'    ",
		"  ~~~~~~~~~   ",
	},
	"Latte": {
		"    ( (       ",
		"  .-------.   ",
		"  |ooooooo|   ",
		"  |:::::::|   ",
		"  |:::::::|   ",
		"  |#######|   ",
		"  `-------'   ",
	},
	"Flat White": {
		"     ) )      ",
		"  .-------.   ",
		"  |:::::::|]  ",
		"  |#######|   ",
		"  `-------'   ",
		" ~~~~~~~~~~~  ",
		"              ",
	},
	"Cappuccino": {
		"    ( ( (     ",
		"  .-------.   ",
		"  |ooooooo|]  ",
		"  |ooooooo|   ",
		"  |:::::::|   ",
		"  |#######|   ",
		"  `-------'   ",
	},
	"Americano": {
		"     ) )      ",
		"  .-------.   ",
		"  |~~~~~~~|]  ",
		"  |~~~~~~~|   ",
		"  |#######|   ",
		"  `-------'   ",
		" ~~~~~~~~~~~  ",
	},
}

// genericCup is drawn for drinks without their own art.
var genericCup = []string{
	"     ) )      ",
	"    ( (       ",
	"  .-------.   ",
	"  |       |]  ",
	"  |       |   ",
	"  `-------'   ",
	" ~~~~~~~~~~~  ",
}

// CupArt returns the drawing for a drink, falling back to a plain cup.
func CupArt(name string) []string {
	if art, ok := cupArt[name]; ok {
		return art
	}
	return genericCup
}
