package rpc

import (
	"context"

	"github.com/daniilsolovey/secure-site/internal/assessment"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// AssessmentService scores security self-assessments.
type AssessmentService struct {
	zenrpc.Service
}

func NewAssessmentService() *AssessmentService {
	return &AssessmentService{}
}

// Evaluate scores the answers of one questionnaire and classifies the result.
//
//zenrpc:kind assessment form id, e.g. personal-assessment
//zenrpc:answers question name to answer token
//zenrpc:return score report
func (s *AssessmentService) Evaluate(ctx context.Context, kind string, answers map[string]string) Report {
	return NewReport(assessment.Evaluate(assessment.ParseKind(kind), assessment.Answers(answers)))
}
