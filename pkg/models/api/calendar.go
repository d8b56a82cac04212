package api

type Calendar struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Primary    bool   `json:"primary,omitempty"`
	AccessRole string `json:"access_role,omitempty"`
}

type CalendarSelection struct {
	Ids []string `json:"ids"`
}
