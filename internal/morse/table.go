// internal/morse/table.go
// Package morse implements the fixed bidirectional Morse code table.
package morse

// Morse timing ratios (ITU standard). All stage durations in the rest of
// the system derive from the base unit using these multiples.
const (
	// DotUnits is the duration of a dot tone in units (ITU: 1)
	DotUnits = 1
	// DashUnits is the duration of a dash tone in units (ITU: 3)
	DashUnits = 3
	// ElementGapUnits is the silence between elements within a letter (ITU: 1)
	ElementGapUnits = 1
	// LetterGapUnits is the silence between letters (ITU: 3)
	LetterGapUnits = 3
	// WordGapUnits is the silence between words (ITU: 7)
	WordGapUnits = 7
)

// Symbols used in pattern strings.
const (
	Dot  = '.'
	Dash = '-'
)

// Unknown is returned by Decode for any pattern not in the table.
const Unknown = '?'

// Entry maps one pattern string to one character. The table is bijective
// per entry: every pattern and every character appears exactly once.
type Entry struct {
	Pattern string
	Char    rune
}

// Table is the full alphabet: letters, digits and common punctuation.
var Table = []Entry{
	{".-", 'A'}, {"-...", 'B'}, {"-.-.", 'C'}, {"-..", 'D'}, {".", 'E'},
	{"..-.", 'F'}, {"--.", 'G'}, {"....", 'H'}, {"..", 'I'}, {".---", 'J'},
	{"-.-", 'K'}, {".-..", 'L'}, {"--", 'M'}, {"-.", 'N'}, {"---", 'O'},
	{".--.", 'P'}, {"--.-", 'Q'}, {".-.", 'R'}, {"...", 'S'}, {"-", 'T'},
	{"..-", 'U'}, {"...-", 'V'}, {".--", 'W'}, {"-..-", 'X'}, {"-.--", 'Y'},
	{"--..", 'Z'},
	{"-----", '0'}, {".----", '1'}, {"..---", '2'}, {"...--", '3'},
	{"....-", '4'}, {".....", '5'}, {"-....", '6'}, {"--...", '7'},
	{"---..", '8'}, {"----.", '9'},
	{".-.-.-", '.'}, {"--..--", ','}, {"..--..", '?'}, {".----.", '\''},
	{"-.-.--", '!'}, {"-..-.", '/'}, {"-.--.", '('}, {"-.--.-", ')'},
	{".-...", '&'}, {"---...", ':'}, {"-.-.-.", ';'}, {"-...-", '='},
	{".-.-.", '+'}, {"-....-", '-'}, {"..--.-", '_'}, {".-..-.", '"'},
	{".--.-.", '@'},
}

var (
	byPattern = make(map[string]rune, len(Table))
	byChar    = make(map[rune]string, len(Table))
)

func init() {
	for _, e := range Table {
		byPattern[e.Pattern] = e.Char
		byChar[e.Char] = e.Pattern
	}
}

// Decode returns the character for a pattern of dots and dashes.
// Any pattern not in the table, including the empty pattern, decodes
// to Unknown. Decode never fails.
func Decode(pattern string) rune {
	if c, ok := byPattern[pattern]; ok {
		return c
	}
	return Unknown
}

// Encode returns the pattern for a character, folding a-z to upper case.
// Characters not in the table encode to the empty string, which playback
// compilation treats as "skip this character".
func Encode(c rune) string {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return byChar[c]
}
