package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubot/internal/entity"
)

var testDays = []string{"ПН", "ВТ", "СР", "ЧТ", "ПТ"}

// TestParseFullWeek тестирует разбор полного меню на неделю
func TestParseFullWeek(t *testing.T) {
	text := `15.12–19.12

ПН:
1. БОРЩ [говядина, свёкла, сметана]
2. ПЛОВ [рис, курица, морковь]

ВТ:
1. СУП ЛАПША [куриный бульон, лапша]

СР:
1. ГРЕЧКА [гречка, курица]
2. КОТЛЕТА [свинина, лук]
3. САЛАТ [овощи]
`

	p := NewMenuParser(testDays, 7)
	menu, err := p.Parse(text)
	require.NoError(t, err)
	require.NotNil(t, menu)

	assert.Equal(t, "15.12–19.12", menu.DateRange)
	assert.Len(t, menu.Days, 3)

	mon := menu.Days["ПН"]
	require.NotNil(t, mon)
	assert.Equal(t, entity.DayStatusNormal, mon.Status)
	require.Len(t, mon.Dishes, 2)
	assert.Equal(t, "БОРЩ", mon.Dishes[0].Title)
	assert.Equal(t, "говядина, свёкла, сметана", mon.Dishes[0].Description)

	wed := menu.Days["СР"]
	require.NotNil(t, wed)
	assert.Len(t, wed.Dishes, 3)
}

// TestParseDateRange тестирует распознавание диапазона дат в разных форматах
func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "en dash",
			header:   "15.12–19.12",
			expected: "15.12–19.12",
		},
		{
			name:     "hyphen",
			header:   "15.12-19.12",
			expected: "15.12–19.12",
		},
		{
			name:     "s po form",
			header:   "С 15.12 по 19.12",
			expected: "15.12–19.12",
		},
		{
			name:     "lowercase s po form",
			header:   "с 01.02 по 05.02",
			expected: "01.02–05.02",
		},
		{
			name:     "no date range",
			header:   "меню на неделю",
			expected: "",
		},
	}

	p := NewMenuParser(testDays, 7)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.header + "\nПН:\n1. БОРЩ [свёкла]\n"
			menu, err := p.Parse(text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, menu.DateRange)
		})
	}
}

// TestParseDisabledDay тестирует дни без бизнес-ланчей
func TestParseDisabledDay(t *testing.T) {
	tests := []struct {
		name          string
		dayBody       string
		expectedUntil string
	}{
		{
			name:          "disabled without date",
			dayBody:       "БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ",
			expectedUntil: "",
		},
		{
			name:          "disabled with date",
			dayBody:       "ДО 12.01.26 БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ",
			expectedUntil: "12.01.26",
		},
		{
			name:          "disabled lowercase",
			dayBody:       "бизнес ланчей не будет",
			expectedUntil: "",
		},
	}

	p := NewMenuParser(testDays, 7)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, err := p.Parse("ПТ:\n" + tt.dayBody + "\n")
			require.NoError(t, err)

			fri := menu.Days["ПТ"]
			require.NotNil(t, fri)
			assert.Equal(t, entity.DayStatusDisabled, fri.Status)
			assert.Equal(t, tt.expectedUntil, fri.DisabledUntil)
			assert.Empty(t, fri.Dishes)
		})
	}
}

// TestParseDayHeaders тестирует варианты заголовков дней
func TestParseDayHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "with colon", header: "ПН:"},
		{name: "bare", header: "ПН"},
	}

	p := NewMenuParser(testDays, 7)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, err := p.Parse(tt.header + "\n1. БОРЩ [свёкла]\n")
			require.NoError(t, err)
			require.NotNil(t, menu.Days["ПН"])
			assert.Len(t, menu.Days["ПН"].Dishes, 1)
		})
	}
}

// TestParseErrors тестирует ошибочные входные данные
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "empty text",
			text: "   \n  ",
		},
		{
			name: "no day headers",
			text: "1. БОРЩ [свёкла]\n2. ПЛОВ [рис]",
		},
		{
			name: "too many dishes",
			text: "ПН:\n1. А [а]\n2. Б [б]\n3. В [в]\n",
		},
	}

	p := NewMenuParser(testDays, 2)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, err := p.Parse(tt.text)
			assert.Error(t, err)
			assert.Nil(t, menu)
		})
	}
}

// TestParseIgnoresMalformedDishLines проверяет, что строки без
// описания в скобках не попадают в блюда
func TestParseIgnoresMalformedDishLines(t *testing.T) {
	text := `ПН:
1. БОРЩ [свёкла]
2. ПЛОВ без описания
какая-то строка
`
	p := NewMenuParser(testDays, 7)
	menu, err := p.Parse(text)
	require.NoError(t, err)

	mon := menu.Days["ПН"]
	require.NotNil(t, mon)
	require.Len(t, mon.Dishes, 1)
	assert.Equal(t, "БОРЩ", mon.Dishes[0].Title)
}
