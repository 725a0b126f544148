package service

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/IslomjonovAbdulazim/vocab-builder-backend/internal/models"
)

// normalizeAnswer is the entire correctness policy: lower-case plus trim.
// No fuzzy matching, no locale-aware comparison.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func calculateScore(correct, answered int) float64 {
	if answered == 0 {
		return 0.0
	}
	return math.Round(float64(correct)/float64(answered)*1000) / 10
}

func hasDefinition(item models.VocabItem) bool {
	return item.Definition != nil && strings.TrimSpace(*item.Definition) != ""
}

// pickCandidate draws uniformly from the folder items not yet asked in this
// session. Items must arrive in stable order so a given rng always lands on
// the same entry.
func pickCandidate(items []models.VocabItem, asked map[int64]struct{}, rng *rand.Rand) (models.VocabItem, error) {
	pool := make([]models.VocabItem, 0, len(items))
	for _, item := range items {
		if _, ok := asked[item.ID]; ok {
			continue
		}
		pool = append(pool, item)
	}

	if len(pool) == 0 {
		return models.VocabItem{}, errNoMoreQuestions
	}

	return pool[rng.Intn(len(pool))], nil
}

// buildQuestion turns one vocabulary item and a quiz type into a question with
// a normalized canonical answer. Pure given (item, quizType, rng): the only
// randomness is the coin flip for mixed mode.
func buildQuestion(item models.VocabItem, quizType string, rng *rand.Rand) models.Question {
	switch quizType {
	case models.QuizTypeDefinition:
		if !hasDefinition(item) {
			// per-question fallback, not a session-wide mode change
			return buildQuestion(item, models.QuizTypeTranslation, rng)
		}
		return models.Question{
			VocabItemID:   item.ID,
			Type:          models.QuizTypeDefinition,
			Text:          fmt.Sprintf("What does '%s' mean?", item.Word),
			Word:          item.Word,
			CorrectAnswer: normalizeAnswer(*item.Definition),
		}
	case models.QuizTypeMixed:
		if hasDefinition(item) && rng.Intn(2) == 0 {
			return buildQuestion(item, models.QuizTypeDefinition, rng)
		}
		return buildQuestion(item, models.QuizTypeTranslation, rng)
	default:
		return models.Question{
			VocabItemID:   item.ID,
			Type:          models.QuizTypeTranslation,
			Text:          fmt.Sprintf("What is the translation of '%s'?", item.Word),
			Word:          item.Word,
			CorrectAnswer: normalizeAnswer(item.Translation),
		}
	}
}
