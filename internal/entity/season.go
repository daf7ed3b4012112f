package entity

import "time"

const (
	SeasonActive   = "active"
	SeasonInactive = "inactive"
)

type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (that *Season) IsActive() bool {
	return that.Status == SeasonActive
}
