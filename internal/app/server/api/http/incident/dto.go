package incident

import (
	domain "safetylog/internal/domain/incident"
)

type listInput struct {
	Search   string `query:"search" doc:"Case-insensitive substring over title, type and description"`
	Type     string `query:"type" default:"All" doc:"Exact incident type, or All"`
	Sort     string `query:"sort" default:"newest" enum:"newest,oldest,typeAsc,typeDesc" doc:"Sort key"`
	Page     int    `query:"page" default:"1" minimum:"1" doc:"1-based page number"`
	PageSize int    `query:"page_size" default:"5" minimum:"1" maximum:"100" doc:"Records per page"`
}

type listOutput struct {
	Body domain.QueryResult
}

type createInput struct {
	Body request
}

type request struct {
	Title       string           `json:"title" doc:"Incident title" minLength:"1"`
	Type        domain.Type      `json:"type" doc:"Incident category"`
	Description string           `json:"description" doc:"What happened" minLength:"1"`
	Impact      domain.Impact    `json:"impact,omitempty" doc:"Severity, optional"`
	Files       []domain.FileRef `json:"files,omitempty" doc:"Attached files, replaced wholesale on edit"`
}

type findInput struct {
	ID int64 `path:"id" example:"1717689600000" doc:"Incident ID"`
}

type findOutput struct {
	Body *domain.Incident
}

type updateInput struct {
	ID   int64 `path:"id" example:"1717689600000" doc:"Incident ID"`
	Body request
}

type deleteInput struct {
	ID      int64 `path:"id" example:"1717689600000" doc:"Incident ID"`
	Confirm bool  `query:"confirm" doc:"Must be true; deletion without confirmation is refused"`
}

type output struct {
	Body response
}

type response struct {
	ID      int64  `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type incidentOutput struct {
	Body *domain.Incident
}

type summaryOutput struct {
	Body domain.Summary
}

type exportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
