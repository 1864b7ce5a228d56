package models

// Reminder — запись напоминания о приёме лекарства в data/reminder.json.
//
// Times и Days сохраняются как пришли от клиента (фронт шлёт ISO-строки и
// названия дней недели). NumberOfDays равен nil в еженедельном режиме.
type Reminder struct {
	ID           string   `json:"id"`
	Medicine     string   `json:"medicine"`
	Times        []string `json:"times"`
	Days         []string `json:"days"`
	NumberOfDays *int     `json:"numberOfDays"`
	CreatedAt    string   `json:"created_at"`
}
