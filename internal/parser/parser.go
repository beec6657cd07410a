package parser

import (
	"fmt"
	"regexp"
	"strings"

	"menubot/internal/entity"
)

var (
	// Формат блюда: "1. НАЗВАНИЕ [описание]"
	dishPattern = regexp.MustCompile(`^\d+\.\s*(.+?)\s*\[(.+?)\]$`)

	// Диапазон дат: "15.12–19.12", "15.12-19.12", "С 15.12 по 19.12"
	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{2}\.\d{2})\s*[-–—]\s*(\d{2}\.\d{2})`),
		regexp.MustCompile(`[Сс]\s+(\d{2}\.\d{2})\s+[Пп]о\s+(\d{2}\.\d{2})`),
	}

	// Дата в блоке "ДО 12.01.26 БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ"
	disabledUntilPatterns = []*regexp.Regexp{
		regexp.MustCompile(`ДО\s+(\d{2}\.\d{2}\.\d{2})`),
		regexp.MustCompile(`(\d{2}\.\d{2}\.\d{2})`),
	}
)

const disabledMarker = "БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ"

type MenuParser struct {
	days            []string
	maxDishesPerDay int
}

func NewMenuParser(days []string, maxDishesPerDay int) *MenuParser {
	return &MenuParser{
		days:            days,
		maxDishesPerDay: maxDishesPerDay,
	}
}

// Parse разбирает текст меню на дни, блюда и диапазон дат.
// Ошибка содержит готовое для пользователя описание проблемы.
func (p *MenuParser) Parse(text string) (*entity.WeekMenu, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyMenu
	}

	menu := &entity.WeekMenu{
		DateRange: extractDateRange(text),
		Days:      make(map[string]*entity.DayMenu),
	}

	var currentDay string
	var currentLines []string

	flush := func() {
		if currentDay == "" {
			return
		}
		menu.Days[currentDay] = processDayLines(currentLines)
		currentLines = nil
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if day, ok := p.matchDayHeader(line); ok {
			flush()
			currentDay = day
			continue
		}

		// Строки до первого заголовка дня игнорируются
		// (там обычно стоит диапазон дат)
		if currentDay == "" {
			continue
		}

		currentLines = append(currentLines, line)
	}
	flush()

	if len(menu.Days) == 0 {
		return nil, fmt.Errorf("в тексте не найден ни один день недели (%s)", strings.Join(p.days, ", "))
	}

	if err := p.validate(menu); err != nil {
		return nil, err
	}

	return menu, nil
}

func (p *MenuParser) matchDayHeader(line string) (string, bool) {
	for _, day := range p.days {
		if line == day || strings.HasPrefix(line, day+":") {
			return day, true
		}
	}
	return "", false
}

func (p *MenuParser) validate(menu *entity.WeekMenu) error {
	for day, dm := range menu.Days {
		if dm.Status != entity.DayStatusNormal {
			continue
		}
		for _, dish := range dm.Dishes {
			if dish.Title == "" || dish.Description == "" {
				return fmt.Errorf("у блюда в дне %s отсутствует название или описание", day)
			}
		}
		if len(dm.Dishes) > p.maxDishesPerDay {
			return fmt.Errorf("превышено максимальное количество блюд (%d) для дня %s", p.maxDishesPerDay, day)
		}
	}
	return nil
}

// processDayLines превращает строки одного дня в DayMenu.
// День без блюд, но с фразой "БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ" считается отключенным.
func processDayLines(lines []string) *entity.DayMenu {
	var dishes []entity.Dish
	for _, line := range lines {
		if m := dishPattern.FindStringSubmatch(line); m != nil {
			dishes = append(dishes, entity.Dish{
				Title:       strings.TrimSpace(m[1]),
				Description: strings.TrimSpace(m[2]),
			})
		}
	}

	until, disabled := parseDisabled(lines)
	if len(dishes) == 0 && disabled {
		return &entity.DayMenu{
			Status:        entity.DayStatusDisabled,
			DisabledUntil: until,
		}
	}

	return &entity.DayMenu{
		Status: entity.DayStatusNormal,
		Dishes: dishes,
	}
}

func parseDisabled(lines []string) (string, bool) {
	joined := strings.ToUpper(strings.Join(lines, " "))
	if !strings.Contains(joined, disabledMarker) {
		return "", false
	}
	for _, p := range disabledUntilPatterns {
		if m := p.FindStringSubmatch(joined); m != nil {
			return m[1], true
		}
	}
	return "", true
}

func extractDateRange(text string) string {
	for _, p := range dateRangePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1] + "–" + m[2]
		}
	}
	return ""
}
