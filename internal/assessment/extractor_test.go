package assessment

import (
	"testing"

	"github.com/shenikar/crisis_assessment_engine/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractVulnerabilities_NumberedCounts(t *testing.T) {
	counts := ExtractVulnerabilities("2 children and 1 elderly")

	assert.Equal(t, 2, counts.Children)
	assert.Equal(t, 1, counts.Elderly)
	assert.Equal(t, 0, counts.Pregnant)
	assert.Equal(t, 0, counts.MedicalNeeds)
	assert.Equal(t, 3, counts.Total())
}

func TestExtractVulnerabilities_BareKeywordMeansOne(t *testing.T) {
	// Упоминание без числа означает "как минимум один"
	counts := ExtractVulnerabilities("my grandmother is pregnant... just kidding, she is elderly and sick")

	assert.Equal(t, 1, counts.Elderly)
	assert.Equal(t, 1, counts.Pregnant)
	assert.Equal(t, 1, counts.MedicalNeeds)
}

func TestExtractVulnerabilities_MultipleNumberedMatchesAreSummed(t *testing.T) {
	counts := ExtractVulnerabilities("3 kids here and 2 children next door")

	assert.Equal(t, 5, counts.Children)
}

func TestExtractVulnerabilities_NoMatchesYieldZero(t *testing.T) {
	// Текст без совпадений дает нулевые счетчики, а не ошибку
	counts := ExtractVulnerabilities("none")

	assert.Equal(t, models.VulnerabilityCounts{}, counts)
	assert.Equal(t, 0, counts.Total())
}

func TestExtractVulnerabilities_EmptyText(t *testing.T) {
	counts := ExtractVulnerabilities("")

	assert.Equal(t, models.VulnerabilityCounts{}, counts)
}

func TestExtractVulnerabilities_CategoriesAreIndependent(t *testing.T) {
	// "3 elderly" не должно влиять на счетчик детей
	counts := ExtractVulnerabilities("3 elderly")

	assert.Equal(t, 0, counts.Children)
	assert.Equal(t, 3, counts.Elderly)
}

func TestExtractVulnerabilities_NegationIsNotHandled(t *testing.T) {
	// Известное ограничение эвристики: отрицание считается положительным упоминанием
	counts := ExtractVulnerabilities("no children")

	assert.Equal(t, 1, counts.Children)
}

func TestExtractVulnerabilities_CaseInsensitive(t *testing.T) {
	counts := ExtractVulnerabilities("2 CHILDREN and one Grandparent")

	assert.Equal(t, 2, counts.Children)
	assert.Equal(t, 1, counts.Elderly)
}

func TestSummarizeVulnerabilities(t *testing.T) {
	counts := models.VulnerabilityCounts{Children: 2, Elderly: 1}

	summary := SummarizeVulnerabilities(counts)

	assert.Equal(t, "2 children, 1 elderly (3 vulnerable individuals)", summary)
}

func TestSummarizeVulnerabilities_None(t *testing.T) {
	summary := SummarizeVulnerabilities(models.VulnerabilityCounts{})

	assert.Equal(t, "none", summary)
}
