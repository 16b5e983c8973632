package publish

import (
	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/domain/education"
	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/internal/domain/referee"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/timespan"
)

// ResumeDocument is the nested view of one résumé the public site and
// the JSON API serve. Scalar fields pass through from the record;
// everything else is computed.
type ResumeDocument struct {
	ID           uuid.UUID `json:"id"`
	Title        *string   `json:"title"`
	FirstName    string    `json:"first_name"`
	MiddleName   string    `json:"middle_name"`
	Surname      string    `json:"surname"`
	Contact      string    `json:"contact"`
	Roles        string    `json:"roles"`
	Email        string    `json:"email"`
	Website      string    `json:"website"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	GithubLink   string    `json:"github_link"`
	LinkedinLink string    `json:"linkedin_link"`
	Objective    string    `json:"objective"`
	Template     *string   `json:"template"`
	Active       bool      `json:"active"`

	Skills           []SkillDocument     `json:"skills"`
	WorkHistory      []WorkDocument      `json:"work_history"`
	EducationHistory []EducationDocument `json:"education_history"`
	Portfolios       []PortfolioDocument `json:"portfolios"`
	Languages        []LanguageDocument  `json:"languages"`
	Referees         []RefereeDocument   `json:"referees"`

	WorkCompleted int     `json:"work_completed"`
	YearsOfExp    float64 `json:"years_of_exp"`
	TotalClients  int     `json:"total_clients"`
	ProfilePic    *string `json:"profile_pic"`
}

// SkillDocument deliberately leaves the display order field out.
type SkillDocument struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Degree int       `json:"degree"`
}

type WorkDocument struct {
	ID              uuid.UUID       `json:"id"`
	Role            string          `json:"role"`
	Company         string          `json:"company"`
	CompanyLocation string          `json:"company_location"`
	WorkType        string          `json:"work_type"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Duration        string          `json:"duration"`
	Skills          []SkillDocument `json:"skills"`
	Descriptions    []string        `json:"descriptions"`
}

type EducationDocument struct {
	ID           uuid.UUID `json:"id"`
	FieldOfStudy string    `json:"field_of_study"`
	Degree       string    `json:"degree"`
	Grade        string    `json:"grade"`
	Institution  string    `json:"institution"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Duration     string    `json:"duration"`
}

type PortfolioDocument struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Client      *string   `json:"client"`
	Category    string    `json:"category"`
	DateStarted string    `json:"date_started"`
	DateEnded   string    `json:"date_ended"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Duration    string    `json:"duration"`
	Images      []string  `json:"images"`
	// Image is one entry of Images picked at random for the showcase
	// card, absent when the portfolio has no images.
	Image *string `json:"image,omitempty"`
}

type LanguageDocument struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type RefereeDocument struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

const dateLayout = "2006-01-02"

func toSkillDocuments(skills []work.Skill) []SkillDocument {
	docs := make([]SkillDocument, len(skills))
	for i, s := range skills {
		docs[i] = SkillDocument{ID: s.ID, Name: s.Name, Degree: s.Degree}
	}
	return docs
}

func toWorkDocument(w *work.WorkExperience, skills []work.Skill, descriptions []work.Description) WorkDocument {
	texts := make([]string, len(descriptions))
	for i, d := range descriptions {
		texts[i] = d.Description
	}
	return WorkDocument{
		ID:              w.ID,
		Role:            w.Role,
		Company:         w.Company,
		CompanyLocation: w.CompanyLocation,
		WorkType:        string(w.WorkType),
		StartDate:       timespan.MonthYear(w.StartDate),
		EndDate:         timespan.MonthYearOrPresent(w.EndDate),
		Duration:        timespan.Span(w.StartDate, w.EndDate),
		Skills:          toSkillDocuments(skills),
		Descriptions:    texts,
	}
}

func toEducationDocument(e *education.Education) EducationDocument {
	return EducationDocument{
		ID:           e.ID,
		FieldOfStudy: e.FieldOfStudy,
		Degree:       e.Degree,
		Grade:        e.Grade,
		Institution:  e.Institution,
		StartDate:    timespan.MonthYear(e.StartDate),
		EndDate:      timespan.MonthYearOrPresent(e.EndDate),
		Duration:     timespan.Span(e.StartDate, e.EndDate),
	}
}

func toPortfolioDocument(p *portfolio.Portfolio, imageURLs []string, pick Picker) PortfolioDocument {
	doc := PortfolioDocument{
		ID:          p.ID,
		Name:        p.Name,
		Company:     p.Company,
		Client:      p.Client,
		Category:    p.Category,
		DateStarted: p.DateStarted.Format(dateLayout),
		DateEnded:   p.DateEnded.Format(dateLayout),
		Description: p.Description,
		Link:        p.Link,
		Duration:    timespan.Span(p.DateStarted, &p.DateEnded),
		Images:      imageURLs,
	}
	if len(imageURLs) > 0 {
		chosen := imageURLs[pick(len(imageURLs))]
		doc.Image = &chosen
	}
	return doc
}

func toLanguageDocuments(languages []resume.Language) []LanguageDocument {
	docs := make([]LanguageDocument, len(languages))
	for i, l := range languages {
		docs[i] = LanguageDocument{Name: l.Name, Level: string(l.Level)}
	}
	return docs
}

func toRefereeDocuments(referees []*referee.Referee) []RefereeDocument {
	docs := make([]RefereeDocument, len(referees))
	for i, r := range referees {
		docs[i] = RefereeDocument{
			Name:    r.Name,
			Title:   r.DisplayTitle(),
			Email:   r.Email,
			Contact: r.Contact,
		}
	}
	return docs
}
