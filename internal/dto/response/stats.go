package response

type AdminStatsResponse struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type CategoryStats struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
