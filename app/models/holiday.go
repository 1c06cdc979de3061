package models

// Holiday rows have no creation route; they are seeded out of band.
type Holiday struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Occasion string `json:"occasion"`
}
