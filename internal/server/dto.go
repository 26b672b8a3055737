package server

import "MidnightPledge/internal/shop"

type outboundMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type newsItemDTO struct {
	ID        string `json:"id"`
	Headline  string `json:"headline"`
	Remaining int    `json:"remaining"`
}

type stateDTO struct {
	Day          int                    `json:"day"`
	Cash         float64                `json:"cash"`
	ActionPoints int                    `json:"action_points"`
	Reputation   shop.ReputationProfile `json:"reputation"`
	Items        []shop.Item            `json:"items"`
	Customer     *shop.Customer         `json:"customer,omitempty"`
	News         []newsItemDTO          `json:"news,omitempty"`
	Inbox        []shop.Mail            `json:"inbox,omitempty"`
	Milestones   []string               `json:"milestones,omitempty"`
	MotherHealth float64                `json:"mother_health"`
	MedicalDebt  float64                `json:"medical_debt"`
	Satisfaction shop.Satisfaction      `json:"last_satisfaction,omitempty"`
	Over         *shop.GameOver         `json:"game_over,omitempty"`
}

func buildStateDTO(gs *shop.GameState, content *shop.Content) stateDTO {
	dto := stateDTO{
		Day:          gs.Day,
		Cash:         gs.Cash,
		ActionPoints: gs.ActionPoints,
		Reputation:   gs.Reputation,
		Items:        gs.Items,
		Customer:     gs.Customer,
		Inbox:        gs.Inbox,
		MotherHealth: gs.MotherHealth,
		MedicalDebt:  gs.MedicalDebt,
		Satisfaction: gs.LastSatisfaction,
		Over:         gs.Over,
	}
	for _, a := range gs.ActiveNews {
		item := newsItemDTO{ID: a.ID, Remaining: a.Remaining}
		for i := range content.News {
			if content.News[i].ID == a.ID {
				item.Headline = content.News[i].Headline
			}
		}
		dto.News = append(dto.News, item)
	}
	for id := range gs.Milestones {
		dto.Milestones = append(dto.Milestones, id)
	}
	return dto
}
