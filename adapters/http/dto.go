package http

import (
	"time"

	"github.com/google/uuid"

	educationUC "github.com/resumee-hq/resumee-api/internal/application/usecase/education"
	portfolioUC "github.com/resumee-hq/resumee-api/internal/application/usecase/portfolio"
	refereeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/referee"
	resumeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/resume"
	workUC "github.com/resumee-hq/resumee-api/internal/application/usecase/work"
	"github.com/resumee-hq/resumee-api/internal/domain/work"
)

const requestDateLayout = "2006-01-02"

// dateOnly binds "YYYY-MM-DD" strings from request bodies.
type dateOnly struct {
	time.Time
}

func (d *dateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	t, err := time.Parse(`"`+requestDateLayout+`"`, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type ResumeRequest struct {
	Title        *string    `json:"title"`
	FirstName    string     `json:"first_name" binding:"required"`
	MiddleName   string     `json:"middle_name"`
	Surname      string     `json:"surname" binding:"required"`
	Contact      string     `json:"contact"`
	Roles        string     `json:"roles"`
	Email        string     `json:"email" binding:"required,email"`
	Website      string     `json:"website"`
	State        string     `json:"state"`
	Country      string     `json:"country"`
	GithubLink   string     `json:"github_link"`
	LinkedinLink string     `json:"linkedin_link"`
	Objective    string     `json:"objective"`
	TemplateID   *uuid.UUID `json:"template_id"`
}

func (r ResumeRequest) ToFields() resumeUC.ResumeFields {
	return resumeUC.ResumeFields{
		Title:        r.Title,
		FirstName:    r.FirstName,
		MiddleName:   r.MiddleName,
		Surname:      r.Surname,
		Contact:      r.Contact,
		Roles:        r.Roles,
		Email:        r.Email,
		Website:      r.Website,
		State:        r.State,
		Country:      r.Country,
		GithubLink:   r.GithubLink,
		LinkedinLink: r.LinkedinLink,
		Objective:    r.Objective,
		TemplateID:   r.TemplateID,
	}
}

type ActivateRequest struct {
	// SelectedIDs mirrors an admin list selection; the action itself
	// enforces that exactly one is given.
	SelectedIDs []uuid.UUID `json:"selected_ids" binding:"required"`
}

type LinkRequest struct {
	Relation string    `json:"relation" binding:"required"`
	TargetID uuid.UUID `json:"target_id" binding:"required"`
}

type WorkExperienceRequest struct {
	Role            string    `json:"role" binding:"required"`
	Company         string    `json:"company" binding:"required"`
	CompanyLocation string    `json:"company_location"`
	WorkType        string    `json:"work_type"`
	StartDate       dateOnly  `json:"start_date" binding:"required"`
	EndDate         *dateOnly `json:"end_date"`
}

func (r WorkExperienceRequest) ToFields() workUC.WorkExperienceFields {
	fields := workUC.WorkExperienceFields{
		Role:            r.Role,
		Company:         r.Company,
		CompanyLocation: r.CompanyLocation,
		WorkType:        work.WorkType(r.WorkType),
		StartDate:       r.StartDate.Time,
	}
	if r.EndDate != nil {
		end := r.EndDate.Time
		fields.EndDate = &end
	}
	return fields
}

type DescriptionRequest struct {
	Description string `json:"description" binding:"required"`
	Order       int    `json:"order"`
}

type SkillRequest struct {
	Name   string `json:"name" binding:"required"`
	Degree int    `json:"degree"`
	Order  int    `json:"order"`
}

func (r SkillRequest) ToFields() workUC.SkillFields {
	return workUC.SkillFields{Name: r.Name, Degree: r.Degree, Order: r.Order}
}

type EducationRequest struct {
	FieldOfStudy string    `json:"field_of_study" binding:"required"`
	Degree       string    `json:"degree"`
	Grade        string    `json:"grade"`
	Institution  string    `json:"institution" binding:"required"`
	StartDate    dateOnly  `json:"start_date" binding:"required"`
	EndDate      *dateOnly `json:"end_date"`
}

func (r EducationRequest) ToFields() educationUC.EducationFields {
	fields := educationUC.EducationFields{
		FieldOfStudy: r.FieldOfStudy,
		Degree:       r.Degree,
		Grade:        r.Grade,
		Institution:  r.Institution,
		StartDate:    r.StartDate.Time,
	}
	if r.EndDate != nil {
		end := r.EndDate.Time
		fields.EndDate = &end
	}
	return fields
}

type RefereeRequest struct {
	Name             string     `json:"name" binding:"required"`
	Role             string     `json:"role"`
	Email            string     `json:"email"`
	Contact          string     `json:"contact"`
	WorkExperienceID *uuid.UUID `json:"work_experience_id"`
	EducationID      *uuid.UUID `json:"education_id"`
}

func (r RefereeRequest) ToFields() refereeUC.RefereeFields {
	return refereeUC.RefereeFields{
		Name:             r.Name,
		Role:             r.Role,
		Email:            r.Email,
		Contact:          r.Contact,
		WorkExperienceID: r.WorkExperienceID,
		EducationID:      r.EducationID,
	}
}

type PortfolioRequest struct {
	Name        string   `json:"name" binding:"required"`
	Company     string   `json:"company"`
	Client      *string  `json:"client"`
	Category    string   `json:"category"`
	DateStarted dateOnly `json:"date_started" binding:"required"`
	DateEnded   dateOnly `json:"date_ended" binding:"required"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
}

func (r PortfolioRequest) ToFields() portfolioUC.PortfolioFields {
	return portfolioUC.PortfolioFields{
		Name:        r.Name,
		Company:     r.Company,
		Client:      r.Client,
		Category:    r.Category,
		DateStarted: r.DateStarted.Time,
		DateEnded:   r.DateEnded.Time,
		Description: r.Description,
		Link:        r.Link,
	}
}

type TemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

type LanguageRequest struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level"`
}

type JobRequest struct {
	Name    string `json:"name" binding:"required"`
	Foreign bool   `json:"foreign"`
	Country string `json:"country"`
}

type JobResumeRequest struct {
	ResumeID uuid.UUID `json:"resume_id" binding:"required"`
}
