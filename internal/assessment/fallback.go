package assessment

// Названия активных форм диалогового движка, известные роутеру
const FormCrisis = "crisis_form"

// Реплики fallback-роутера для состояний вне формы
const (
	promptStart = "I didn't understand that. If this is an emergency, type: emergency"

	promptAnswerCurrent = "I didn't understand. Please answer the current question so I can continue the assessment."

	promptOfferMore = "✅ Assessment complete. You can ask for the safety protocol again, report another emergency, or type: restart"
)

// FallbackPrompt решает, что переспросить, когда ввод пользователя не
// распознан. Машина состояний над тремя наблюдаемыми входами: задан ли
// тип кризиса, активна ли форма и какой слот запрошен. Роутер реактивный
// и никогда не изменяет состояние сессии.
func FallbackPrompt(crisisTypeSet bool, activeForm, requestedSlot string) string {
	// Диалог еще не начат
	if !crisisTypeSet && activeForm == "" {
		return promptStart
	}

	// Форма активна: повторяем вопрос текущего слота дословно
	if activeForm == FormCrisis {
		if q, ok := slotQuestions[requestedSlot]; ok {
			return q
		}
		return promptAnswerCurrent
	}

	// Кризис задан, форма не активна: оценка уже доставлена
	return promptOfferMore
}
