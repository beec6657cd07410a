package service

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubot/config"
	"menubot/internal/entity"
	"menubot/internal/pkg/compositor"
)

func layoutTestConfig() *config.Config {
	return &config.Config{
		Menu: config.MenuConfig{
			Days: []string{"ПН", "ВТ", "СР", "ЧТ", "ПТ"},
		},
		Layout: config.LayoutConfig{
			LineSpacing: 6,
			DishSpacing: 10,
		},
		Blocks: config.BlocksConfig{
			Date: config.BlockStyle{
				BorderColor: "#F2994A",
				TextColor:   "#F2994A",
			},
			Warning: config.BlockStyle{
				Background:  "#FCE4D6",
				BorderColor: "#C0392B",
				TextColor:   "#C0392B",
				Padding:     20,
			},
		},
	}
}

// TestBuildMenuRequestDishes: обычный день дает чередование
// название/описание с отступами между блюдами
func TestBuildMenuRequestDishes(t *testing.T) {
	menu := &entity.WeekMenu{
		Days: map[string]*entity.DayMenu{
			"ПН": {
				Status: entity.DayStatusNormal,
				Dishes: []entity.Dish{
					{Title: "Борщ", Description: "со сметаной"},
					{Title: "Плов", Description: "с бараниной"},
				},
			},
		},
	}

	req := buildMenuRequest(menu, layoutTestConfig())

	content, ok := req["ПН"]
	require.True(t, ok)
	require.Len(t, content.Spans, 4)
	assert.Nil(t, content.Box)

	assert.Equal(t, compositor.Span{Text: "Борщ", Face: compositor.FaceTitle}, content.Spans[0])
	assert.Equal(t, compositor.Span{Text: "со сметаной", Face: compositor.FaceDescription, SpacingBefore: 10}, content.Spans[1])
	// Перед вторым блюдом отступ
	assert.Equal(t, compositor.Span{Text: "Плов", Face: compositor.FaceTitle, SpacingBefore: 10}, content.Spans[2])
}

// TestBuildMenuRequestDisabledDay: отключенный день дает рамочный блок
func TestBuildMenuRequestDisabledDay(t *testing.T) {
	tests := []struct {
		name      string
		day       *entity.DayMenu
		wantLines []string
	}{
		{
			name:      "without date",
			day:       &entity.DayMenu{Status: entity.DayStatusDisabled},
			wantLines: []string{"БИЗНЕС ЛАНЧЕЙ", "НЕ БУДЕТ"},
		},
		{
			name:      "with date",
			day:       &entity.DayMenu{Status: entity.DayStatusDisabled, DisabledUntil: "15.01.25"},
			wantLines: []string{"ДО 15.01.25", "БИЗНЕС ЛАНЧЕЙ", "НЕ БУДЕТ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := &entity.WeekMenu{
				Days: map[string]*entity.DayMenu{"ПТ": tt.day},
			}

			req := buildMenuRequest(menu, layoutTestConfig())

			content, ok := req["ПТ"]
			require.True(t, ok)
			require.NotNil(t, content.Box)
			assert.True(t, content.Box.HasBackground)
			assert.Equal(t, color.NRGBA{R: 0xFC, G: 0xE4, B: 0xD6, A: 255}, content.Box.Background)

			require.Len(t, content.Spans, len(tt.wantLines))
			for i, line := range tt.wantLines {
				assert.Equal(t, line, content.Spans[i].Text)
				assert.Equal(t, compositor.FaceWarning, content.Spans[i].Face)
			}
		})
	}
}

// TestBuildMenuRequestDateRange: диапазон дат попадает в зону date_block
func TestBuildMenuRequestDateRange(t *testing.T) {
	menu := &entity.WeekMenu{
		DateRange: "15.12-19.12",
		Days:      map[string]*entity.DayMenu{},
	}

	req := buildMenuRequest(menu, layoutTestConfig())

	content, ok := req[dateBlockZone]
	require.True(t, ok)
	require.Len(t, content.Spans, 1)
	assert.Equal(t, "15.12-19.12", content.Spans[0].Text)
	assert.Equal(t, compositor.FaceDate, content.Spans[0].Face)
	require.NotNil(t, content.Box)
	assert.False(t, content.Box.HasBackground)
	assert.Equal(t, color.NRGBA{R: 0xF2, G: 0x99, B: 0x4A, A: 255}, content.Box.Border)
}

// TestBuildMenuRequestSkipsAbsentDays: дни без меню и пустые дни
// не попадают в запрос
func TestBuildMenuRequestSkipsAbsentDays(t *testing.T) {
	menu := &entity.WeekMenu{
		Days: map[string]*entity.DayMenu{
			"ПН": {Status: entity.DayStatusNormal, Dishes: []entity.Dish{{Title: "Суп"}}},
			"ВТ": {Status: entity.DayStatusNormal}, // без блюд
		},
	}

	req := buildMenuRequest(menu, layoutTestConfig())

	assert.Contains(t, req, "ПН")
	assert.NotContains(t, req, "ВТ")
	assert.NotContains(t, req, "СР")
	assert.NotContains(t, req, dateBlockZone)
}
