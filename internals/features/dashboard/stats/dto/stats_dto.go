package dto

// Dashboard payloads are consumed by the chart components as-is, hence the camelCase keys.

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalContacts             int64       `json:"totalContacts"`
	Organizations             int64       `json:"organizations"`
	TotalPartnerCompanies     int64       `json:"totalPartnerCompanies"`
	ActiveRelations           int64       `json:"activeRelations"`
	PendingRelations          int64       `json:"pendingRelations"`
	ActiveTasks               int64       `json:"activeTasks"`
	ConversionRate            string      `json:"conversionRate"`
	ContactsByType            []TypeCount `json:"contactsByType"`
	MentorsCount              int64       `json:"mentorsCount"`
	MenteesCount              int64       `json:"menteesCount"`
	SupportersCount           int64       `json:"supportersCount"`
	PartnerCompaniesCount     int64       `json:"partnerCompaniesCount"`
	PartnerOrganizationsCount int64       `json:"partnerOrganizationsCount"`
}

type MonthlyGrowth struct {
	Name       string `json:"name"`
	Mentors    int64  `json:"mentors"`
	Mentees    int64  `json:"mentees"`
	Supporters int64  `json:"supporters"`
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type RecentActivity struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"`
}
