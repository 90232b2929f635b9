package handlers

import "time"

type ItemRequest struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
}

type ItemUpdateRequest struct {
	Name   *string  `json:"name,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

type ItemResponse struct {
	Id           int       `json:"id"`
	Name         string    `json:"name"`
	Weight       float64   `json:"weight"`
	Quantity     int       `json:"quantity"`
	Notes        string    `json:"notes"`
	DisplayNotes string    `json:"display_notes"`
	OutOfStock   bool      `json:"out_of_stock,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ItemsSearchResult struct {
	Data []ItemResponse `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type QuantityChangeRequest struct {
	By int `json:"by"` // defaults to 1 when omitted
}

type SetQuantityRequest struct {
	Value int `json:"value"`
}

type QuantityChangeResponse struct {
	Id          int  `json:"id"`
	OldQuantity int  `json:"old_quantity"`
	NewQuantity int  `json:"new_quantity"`
	OutOfStock  bool `json:"out_of_stock"`
}

type StatsResponse struct {
	TotalItems      int `json:"total_items"`
	OutOfStockItems int `json:"out_of_stock_items"`
}

type AlertOutcomeResponse struct {
	ItemID int    `json:"item_id,omitempty"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type ResendAlertsResult struct {
	Total int `json:"total"`
	Sent  int `json:"sent"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
