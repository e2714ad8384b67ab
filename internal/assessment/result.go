package assessment

import "strings"

type Tier string

const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierNeedsImprovement Tier = "needs-improvement"
	TierCritical         Tier = "critical"
)

// Severity ranks tiers from 0 (excellent) to 3 (critical).
func (t Tier) Severity() int {
	switch t {
	case TierExcellent:
		return 0
	case TierGood:
		return 1
	case TierNeedsImprovement:
		return 2
	default:
		return 3
	}
}

type Result struct {
	Tier            Tier
	Message         string
	Recommendations []string
}

type tierRule struct {
	min    int
	result Result
}

// rules are ordered by descending threshold.
var rules = []tierRule{
	{
		min: 80,
		result: Result{
			Tier:    TierExcellent,
			Message: "Excellent! Your security practices are strong.",
			Recommendations: []string{
				"Continue regular security updates and training",
				"Consider advanced threat protection solutions",
				"Share your knowledge with colleagues and peers",
				"Schedule periodic security reviews to stay current",
			},
		},
	},
	{
		min: 60,
		result: Result{
			Tier:    TierGood,
			Message: "Good foundation, but there's room for improvement.",
			Recommendations: []string{
				"Implement multi-factor authentication on all critical accounts",
				"Establish regular security training sessions",
				"Review and update security policies quarterly",
				"Consider professional security consultation",
			},
		},
	},
	{
		min: 40,
		result: Result{
			Tier:    TierNeedsImprovement,
			Message: "Your security practices need attention.",
			Recommendations: []string{
				"Urgent password security overhaul needed",
				"Implement basic security tools immediately",
				"Comprehensive security training is essential",
				"Professional security assessment highly recommended",
			},
		},
	},
	{
		min: 0,
		result: Result{
			Tier:    TierCritical,
			Message: "Critical: Your security needs immediate attention.",
			Recommendations: []string{
				"Immediate professional security intervention required",
				"Complete security infrastructure overhaul needed",
				"Emergency security training for all team members",
				"Consider this a high-priority business risk",
			},
		},
	},
}

// Classify maps a score to its tier. Scores are clamped to [0,100] first.
func Classify(score int) Result {
	score = min(max(score, 0), 100)

	for _, r := range rules {
		if score >= r.min {
			res := r.result
			res.Recommendations = append([]string(nil), r.result.Recommendations...)
			return res
		}
	}

	return rules[len(rules)-1].result
}

type Kind string

const (
	KindPersonal    Kind = "personal"
	KindBusiness    Kind = "business"
	KindSocialMedia Kind = "social-media"
)

// ParseKind derives the assessment kind from a form id such as "personal-assessment".
func ParseKind(formID string) Kind {
	switch {
	case strings.Contains(formID, "personal"):
		return KindPersonal
	case strings.Contains(formID, "business"):
		return KindBusiness
	default:
		return KindSocialMedia
	}
}

func (k Kind) Label() string {
	switch k {
	case KindPersonal:
		return "Personal"
	case KindBusiness:
		return "Business"
	default:
		return "Social Media"
	}
}

type Report struct {
	Kind   Kind
	Title  string
	Score  int
	Result Result
}

// Evaluate scores one submitted questionnaire.
func Evaluate(kind Kind, answers Answers) Report {
	score := Score(answers)

	return Report{
		Kind:   kind,
		Title:  "Your " + kind.Label() + " Security Score",
		Score:  score,
		Result: Classify(score),
	}
}
