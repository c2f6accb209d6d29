package models

type RequestListResponse struct {
	Requests []RestorationRequest `json:"requests"`
	Total    int                  `json:"total"`
	Filtered int                  `json:"filtered"`
	Loading  bool                 `json:"loading"`
	Error    *string              `json:"error"`
}

type SummaryResponse struct {
	Counts   map[Status]int       `json:"counts"`
	Priority []RestorationRequest `json:"priority"`
	Recent   []RestorationRequest `json:"recent"`
	Loading  bool                 `json:"loading"`
	Error    *string              `json:"error"`
}

type RequestResponse struct {
	Request RestorationRequest `json:"request"`
}

type ContactLinksResponse struct {
	RequestID string  `json:"request_id"`
	Mailto    string  `json:"mailto"`
	WhatsApp  *string `json:"whatsapp,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Loading  bool   `json:"loading"`
	Requests int    `json:"requests"`
}
