// Package barista implements the coffee-order round engine: a small state
// machine that hands the player a drink order, matches key presses against
// the recipe's ingredient set, runs the round timer and keeps score.
//
// The engine is pure. It never draws, plays audio or reads the clock; the
// host feeds it key and tick events stamped with elapsed time and executes
// the Effects it returns.
package barista

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors returned when building a recipe book.
var (
	ErrNoRecipes       = errors.New("barista: recipe book is empty")
	ErrDuplicateRecipe = errors.New("barista: duplicate recipe name")
	ErrEmptyRecipe     = errors.New("barista: recipe has no ingredients")
	ErrUnknownToken    = errors.New("barista: unknown ingredient token")
)

// Token is one ingredient key. Each token is a distinct bit so a set of
// tokens fits in a TokenSet.
type Token uint8

const (
	TokenEspresso Token = 1 << iota // E
	TokenFoam                       // F
	TokenMilk                       // M
	TokenWater                      // W
)

// Alphabet lists the accepted tokens in legend order.
var Alphabet = []Token{TokenEspresso, TokenFoam, TokenMilk, TokenWater}

// ParseToken maps a pressed key to its token. Lowercase keys are accepted.
func ParseToken(r rune) (Token, bool) {
	switch unicode.ToUpper(r) {
	case 'E':
		return TokenEspresso, true
	case 'F':
		return TokenFoam, true
	case 'M':
		return TokenMilk, true
	case 'W':
		return TokenWater, true
	}
	return 0, false
}

// Letter returns the key letter for the token.
func (t Token) Letter() rune {
	switch t {
	case TokenEspresso:
		return 'E'
	case TokenFoam:
		return 'F'
	case TokenMilk:
		return 'M'
	case TokenWater:
		return 'W'
	}
	return '?'
}

// Label returns the ingredient name shown in the legend.
func (t Token) Label() string {
	switch t {
	case TokenEspresso:
		return "Espresso"
	case TokenFoam:
		return "Milk Foam"
	case TokenMilk:
		return "Steamed Milk"
	case TokenWater:
		return "Water"
	}
	return "Unknown"
}

func (t Token) String() string {
	return string(t.Letter())
}

// TokenSet is an unordered set of tokens. Multiplicity is not tracked.
type TokenSet uint8

// NewTokenSet builds a set from the given tokens.
func NewTokenSet(tokens ...Token) TokenSet {
	var s TokenSet
	for _, t := range tokens {
		s = s.With(t)
	}
	return s
}

// With returns the set with t added.
func (s TokenSet) With(t Token) TokenSet {
	return s | TokenSet(t)
}

// Has reports whether t is in the set.
func (s TokenSet) Has(t Token) bool {
	return s&TokenSet(t) != 0
}

// Covers reports whether every token of other is also in s.
func (s TokenSet) Covers(other TokenSet) bool {
	return other&^s == 0
}

// Len returns the number of tokens in the set.
func (s TokenSet) Len() int {
	n := 0
	for _, t := range Alphabet {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Tokens returns the members in alphabet order.
func (s TokenSet) Tokens() []Token {
	out := make([]Token, 0, len(Alphabet))
	for _, t := range Alphabet {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// String renders the set in alphabet order, e.g. "E+F+M".
func (s TokenSet) String() string {
	parts := make([]string, 0, len(Alphabet))
	for _, t := range s.Tokens() {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "+")
}

// Recipe is a named drink and the ingredients it requires.
type Recipe struct {
	Name   string
	Tokens TokenSet
}

// ParseRecipe builds a recipe from a name and token letters such as
// []string{"E", "M"}.
func ParseRecipe(name string, letters []string) (Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipe{}, fmt.Errorf("barista: recipe name is empty")
	}

	var set TokenSet
	for _, l := range letters {
		runes := []rune(strings.TrimSpace(l))
		if len(runes) != 1 {
			return Recipe{}, fmt.Errorf("%w: %q in %s", ErrUnknownToken, l, name)
		}
		t, ok := ParseToken(runes[0])
		if !ok {
			return Recipe{}, fmt.Errorf("%w: %q in %s", ErrUnknownToken, l, name)
		}
		set = set.With(t)
	}
	if set == 0 {
		return Recipe{}, fmt.Errorf("%w: %s", ErrEmptyRecipe, name)
	}

	return Recipe{Name: name, Tokens: set}, nil
}

// Book is an immutable, ordered list of recipes with unique names.
type Book struct {
	recipes []Recipe
	index   map[string]int
}

// NewBook validates and freezes a recipe list.
func NewBook(recipes []Recipe) (*Book, error) {
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}

	b := &Book{
		recipes: make([]Recipe, 0, len(recipes)),
		index:   make(map[string]int, len(recipes)),
	}
	for _, r := range recipes {
		if r.Tokens == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyRecipe, r.Name)
		}
		if _, dup := b.index[r.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRecipe, r.Name)
		}
		b.index[r.Name] = len(b.recipes)
		b.recipes = append(b.recipes, r)
	}
	return b, nil
}

// DefaultRecipes returns the built-in drink menu. Latte and Cappuccino
// share the same ingredients on purpose.
func DefaultRecipes() []Recipe {
	return []Recipe{
		{Name: "Espresso", Tokens: NewTokenSet(TokenEspresso)},
		{Name: "Espresso Macchiato", Tokens: NewTokenSet(TokenEspresso, TokenFoam)},
		{Name: "Latte", Tokens: NewTokenSet(TokenEspresso, TokenMilk, TokenFoam)},
		{Name: "Flat White", Tokens: NewTokenSet(TokenEspresso, TokenMilk)},
		{Name: "Cappuccino", Tokens: NewTokenSet(TokenEspresso, TokenMilk, TokenFoam)},
		{Name: "Americano", Tokens: NewTokenSet(TokenEspresso, TokenWater)},
	}
}

// DefaultBook returns a book over DefaultRecipes.
func DefaultBook() *Book {
	b, err := NewBook(DefaultRecipes())
	if err != nil {
		panic(err) // built-in menu is valid
	}
	return b
}

// Len returns the number of recipes.
func (b *Book) Len() int {
	return len(b.recipes)
}

// At returns the recipe at index i.
func (b *Book) At(i int) Recipe {
	return b.recipes[i]
}

// Lookup finds a recipe by name.
func (b *Book) Lookup(name string) (Recipe, bool) {
	i, ok := b.index[name]
	if !ok {
		return Recipe{}, false
	}
	return b.recipes[i], true
}

// Recipes returns a copy of the recipe list.
func (b *Book) Recipes() []Recipe {
	out := make([]Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Twins groups recipe names whose ingredient sets are identical. Such
// drinks cannot be told apart by input alone.
func (b *Book) Twins() [][]string {
	bySet := make(map[TokenSet][]string)
	var order []TokenSet
	for _, r := range b.recipes {
		if _, seen := bySet[r.Tokens]; !seen {
			order = append(order, r.Tokens)
		}
		bySet[r.Tokens] = append(bySet[r.Tokens], r.Name)
	}

	var groups [][]string
	for _, set := range order {
		if names := bySet[set]; len(names) > 1 {
			groups = append(groups, names)
		}
	}
	return groups
}
