package entity

// Статус дня недели в меню
const (
	DayStatusNormal   = "normal"
	DayStatusDisabled = "disabled"
)

type Dish struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DayMenu описывает один день недели: либо список блюд,
// либо состояние "бизнес-ланчей не будет"
type DayMenu struct {
	Status        string `json:"status"`
	DisabledUntil string `json:"disabled_until,omitempty"`
	Dishes        []Dish `json:"dishes,omitempty"`
}

// WeekMenu - результат разбора текста меню
type WeekMenu struct {
	DateRange string              `json:"date_range,omitempty"`
	Days      map[string]*DayMenu `json:"days"`
}
