package assessment

import (
	"math"
	"net/url"
)

// Answers maps a question key to the chosen option token.
type Answers map[string]string

const maxPoints = 2

// points holds the weight of every answer token that counts toward the score.
var points = map[string]int{
	// security-positive answers
	"always": 2, "all": 2, "very_careful": 2, "strong": 2, "never": 2, "careful": 2,
	"daily": 2, "comprehensive": 2, "detailed": 2, "monthly": 2, "automatic": 2, "active": 2,

	// partial answers
	"sometimes": 1, "most": 1, "some": 1, "regular": 1, "basic": 1, "weekly": 1,
	"quarterly": 1, "occasional": 1,

	// risky answers
	"rarely": 0, "few": 0, "casual": 0, "weak": 0, "irregular": 0, "delayed": 0,
	"none": 0, "open": 0, "often": 0, "click": 0,
}

// Score converts answers to a percentage. Tokens outside the weight table are not questions
// and are left out of the total. No scorable answers yields 0.
func Score(answers Answers) int {
	var earned, questions int
	for _, token := range answers {
		p, ok := points[token]
		if !ok {
			continue
		}
		earned += p
		questions++
	}

	if questions == 0 {
		return 0
	}

	return int(math.Round(float64(earned) / float64(questions*maxPoints) * 100))
}

// AnswersFromForm keeps single-valued fields only; checkbox groups posting several values are not scored.
func AnswersFromForm(form url.Values) Answers {
	answers := make(Answers, len(form))
	for key, values := range form {
		if len(values) == 1 {
			answers[key] = values[0]
		}
	}

	return answers
}
