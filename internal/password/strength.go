package password

import "unicode/utf8"

// Label classifies a strength score.
type Label string

const (
	LabelWeak       Label = "weak"
	LabelStrong     Label = "strong"
	LabelVeryStrong Label = "very_strong"
)

// MaxScore is the highest score ScoreStrength can return.
const MaxScore = 5

// Message returns the text shown next to the strength indicator.
func (l Label) Message() string {
	switch l {
	case LabelVeryStrong:
		return "Password will take centuries to crack"
	case LabelStrong:
		return "Strong"
	default:
		return "Weak"
	}
}

// Strength is the result of scoring a password.
type Strength struct {
	Score int
	Label Label
}

// ScoreStrength awards one point for each of: more than 8 characters,
// more than 12 characters, an ASCII uppercase letter, an ASCII digit,
// and a character that is neither an ASCII letter nor a digit.
// It is a heuristic, not an entropy estimate.
func ScoreStrength(password string) Strength {
	var hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
		default:
			hasOther = true
		}
	}

	n := utf8.RuneCountInString(password)
	score := 0
	for _, ok := range []bool{n > 8, n > 12, hasUpper, hasDigit, hasOther} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Label: labelFor(score)}
}

func labelFor(score int) Label {
	switch {
	case score <= 2:
		return LabelWeak
	case score <= 4:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}
