package points

import "time"

// Секции профиля. PUT /api/profile принимает конверт {type, data},
// каждая секция - отдельный тип, диспетчеризация по Section().
type ProfileSection interface {
	Section() string
}

const (
	SectionBasicDetails  = "basic_details"
	SectionEmployment    = "employment"
	SectionEducation     = "education"
	SectionAddress       = "address"
	SectionCertification = "certification"
)

type BasicDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Headline string `json:"headline"`
	About    string `json:"about"`
}

func (BasicDetails) Section() string { return SectionBasicDetails }

type Employment struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Current   bool   `json:"current"`
}

// История занятости: PUT присылает секцию целиком
type EmploymentHistory []Employment

func (EmploymentHistory) Section() string { return SectionEmployment }

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year,omitempty"`
}

type EducationHistory []Education

func (EducationHistory) Section() string { return SectionEducation }

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

func (Address) Section() string { return SectionAddress }

type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	IssuedAt   string `json:"issued_at"`
	ExpiresAt  string `json:"expires_at,omitempty"`
	FileURL    string `json:"file_url,omitempty"`
	Credential string `json:"credential,omitempty"`
}

type Certifications []Certification

func (Certifications) Section() string { return SectionCertification }

// Профиль пользователя
type Profile struct {
	User           string
	Basic          BasicDetails
	Employment     EmploymentHistory
	Education      EducationHistory
	Address        Address
	Certifications Certifications
	AvatarURL      string
	UpdatedAt      time.Time
}

// Настройки уведомлений
type NotificationSettings struct {
	User            string `json:"-"`
	EmailEnabled    bool   `json:"email_enabled"`
	PurchaseEmails  bool   `json:"purchase_emails"`
	JobAlerts       bool   `json:"job_alerts"`
	TrainingUpdates bool   `json:"training_updates"`
}
