package service

import (
	"image/color"

	"menubot/config"
	"menubot/internal/entity"
	"menubot/internal/pkg/compositor"
)

const dateBlockZone = "date_block"

// buildRequest переводит разобранное меню в запрос компоновщика:
// зоны дней получают блюда, отключенные дни - предупреждающий блок,
// зона date_block - диапазон дат в рамке
func (s *renderService) buildRequest(menu *entity.WeekMenu) compositor.Request {
	return buildMenuRequest(menu, s.cfg)
}

func buildMenuRequest(menu *entity.WeekMenu, cfg *config.Config) compositor.Request {
	req := make(compositor.Request)

	for _, day := range cfg.Menu.Days {
		dm, ok := menu.Days[day]
		if !ok || dm == nil {
			continue
		}

		switch dm.Status {
		case entity.DayStatusDisabled:
			req[day] = warningContent(dm, cfg.Blocks.Warning)
		case entity.DayStatusNormal:
			if len(dm.Dishes) == 0 {
				continue
			}
			req[day] = dishesContent(dm.Dishes, cfg.Layout.DishSpacing)
		}
	}

	if menu.DateRange != "" {
		req[dateBlockZone] = dateContent(menu.DateRange, cfg.Blocks.Date)
	}

	return req
}

// dishesContent - чередование названий и описаний блюд одной зоны
func dishesContent(dishes []entity.Dish, dishSpacing int) compositor.Content {
	spans := make([]compositor.Span, 0, len(dishes)*2)
	for i, dish := range dishes {
		titleSpacing := 0
		if i > 0 {
			titleSpacing = dishSpacing
		}
		spans = append(spans,
			compositor.Span{Text: dish.Title, Face: compositor.FaceTitle, SpacingBefore: titleSpacing},
			compositor.Span{Text: dish.Description, Face: compositor.FaceDescription, SpacingBefore: dishSpacing},
		)
	}
	return compositor.Content{Spans: spans}
}

// warningContent - рамочный блок "БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ",
// с датой если она указана
func warningContent(dm *entity.DayMenu, style config.BlockStyle) compositor.Content {
	var lines []string
	if dm.DisabledUntil != "" {
		lines = []string{"ДО " + dm.DisabledUntil, "БИЗНЕС ЛАНЧЕЙ", "НЕ БУДЕТ"}
	} else {
		lines = []string{"БИЗНЕС ЛАНЧЕЙ", "НЕ БУДЕТ"}
	}

	spans := make([]compositor.Span, 0, len(lines))
	for _, line := range lines {
		spans = append(spans, compositor.Span{Text: line, Face: compositor.FaceWarning})
	}

	return compositor.Content{
		Spans: spans,
		Box:   boxFromStyle(style, 8),
	}
}

func dateContent(dateRange string, style config.BlockStyle) compositor.Content {
	return compositor.Content{
		Spans: []compositor.Span{{Text: dateRange, Face: compositor.FaceDate}},
		Box:   boxFromStyle(style, 0),
	}
}

func boxFromStyle(style config.BlockStyle, lineSpacing int) *compositor.Box {
	box := &compositor.Box{
		Border:      compositor.ParseHexColor(style.BorderColor, color.NRGBA{R: 0xF2, G: 0x99, B: 0x4A, A: 255}),
		TextColor:   compositor.ParseHexColor(style.TextColor, color.NRGBA{A: 255}),
		Radius:      style.BorderRadius,
		BorderWidth: style.BorderWidth,
		Padding:     style.Padding,
		LineSpacing: lineSpacing,
	}
	if style.Background != "" {
		box.Background = compositor.ParseHexColor(style.Background, color.NRGBA{A: 0})
		box.HasBackground = true
	}
	return box
}
