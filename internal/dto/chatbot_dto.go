package dto

type ChatAskRequest struct {
	Question string `json:"question" validate:"required"`
	DeviceId string `json:"deviceId" validate:"required"`
}

type ChatAskResponse struct {
	Response  string `json:"response"`
	Remaining int    `json:"remaining"`
}

type ChatLimitResponse struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

type PredefinedQuestionsResponse struct {
	Questions []string `json:"questions"`
}
