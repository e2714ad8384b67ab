package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/daniilsolovey/secure-site/internal/assessment"
	"github.com/labstack/echo/v4"
)

// readAnswers reads the submitted questionnaire from a JSON object or a form body.
// Only single string answers are scored.
func readAnswers(c echo.Context) (assessment.Answers, error) {
	req := c.Request()
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var raw map[string]any
		if err := json.NewDecoder(req.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		result := make(assessment.Answers, len(raw))
		for key, value := range raw {
			if token, ok := value.(string); ok {
				result[key] = token
			}
		}
		return result, nil
	}

	form, err := c.FormParams()
	if err != nil {
		return nil, err
	}

	return assessment.AnswersFromForm(form), nil
}

// Assessment handles POST /api/v1/assessments/:kind
// @Summary Score a security self-assessment
// @Description Scores the submitted answers and classifies the result. kind is the form id, e.g. personal-assessment
// @Tags assessment
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param kind path string true "Assessment form id"
// @Success 200 {object} rest.Report
// @Failure 400 {object} map[string]string
// @Router /api/v1/assessments/{kind} [post]
func (h *Handler) Assessment(c echo.Context) error {
	answers, err := readAnswers(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid answers")
	}

	report := assessment.Evaluate(assessment.ParseKind(c.Param("kind")), answers)
	h.log.Info("assessment scored", "kind", report.Kind, "score", report.Score, "tier", report.Result.Tier)

	return c.JSON(http.StatusOK, NewReport(report))
}
