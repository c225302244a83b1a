package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Referee is a professional reference on a doula profile.
type Referee struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ParentProfile struct {
	BaseModel
	UserID  string `gorm:"uniqueIndex;not null" json:"userId"`
	Name    string `gorm:"not null" json:"name"`
	State   string `gorm:"not null" json:"state"`
	Town    string `json:"town"`
	ZipCode string `json:"zipCode"`

	ServiceCategories  datatypes.JSON `gorm:"type:jsonb" json:"serviceCategories"`  // ["birth", "postpartum"]
	FinancingType      datatypes.JSON `gorm:"type:jsonb" json:"financingType"`      // ["self", "carrot", "medicaid"]
	PreferredLanguages datatypes.JSON `gorm:"type:jsonb" json:"preferredLanguages"` // ["english", "spanish"]
	DesiredDays        datatypes.JSON `gorm:"type:jsonb" json:"desiredDays"`        // ["monday", "wednesday"]

	ServiceStart *time.Time `json:"serviceStart"`
	ServiceEnd   *time.Time `json:"serviceEnd"`

	// Desired daily time window, "HH:MM" 24h format.
	DesiredTimeStart *string `json:"desiredTimeStart"`
	DesiredTimeEnd   *string `json:"desiredTimeEnd"`

	AcceptedTerms      bool `gorm:"default:false" json:"acceptedTerms"`
	SubscriptionActive bool `gorm:"default:false" json:"subscriptionActive"`
}

type DoulaProfile struct {
	BaseModel
	UserID  string `gorm:"uniqueIndex;not null" json:"userId"`
	Name    string `gorm:"not null" json:"name"`
	State   string `gorm:"not null" json:"state"`
	Town    string `json:"town"`
	ZipCode string `json:"zipCode"`

	PaymentPreferences datatypes.JSON `gorm:"type:jsonb" json:"paymentPreferences"`
	ServiceCategories  datatypes.JSON `gorm:"type:jsonb" json:"serviceCategories"`
	SpokenLanguages    datatypes.JSON `gorm:"type:jsonb" json:"spokenLanguages"`
	Certifications     datatypes.JSON `gorm:"type:jsonb" json:"certifications"`
	CertificationDocs  datatypes.JSON `gorm:"type:jsonb" json:"certificationDocs"` // up to 7 document references
	Referees           datatypes.JSON `gorm:"type:jsonb" json:"referees"`          // up to 3

	DriveDistance  int     `gorm:"check:drive_distance >= 1 AND drive_distance <= 70" json:"driveDistance"` // miles
	HourlyRateMin  float64 `gorm:"check:hourly_rate_min >= 0" json:"hourlyRateMin"`
	HourlyRateMax  float64 `gorm:"check:hourly_rate_max >= 0" json:"hourlyRateMax"`
	ProfilePicture string  `json:"profilePicture"`

	AcceptedTerms      bool    `gorm:"default:false" json:"acceptedTerms"`
	SubscriptionActive bool    `gorm:"default:false" json:"subscriptionActive"`
	Rating             float64 `gorm:"default:0" json:"rating"`
	ReviewCount        int     `gorm:"default:0" json:"reviewCount"`
}

// --- JSONB set accessors ---

func jsonToStrings(data datatypes.JSON) []string {
	var out []string
	if len(data) > 0 {
		_ = json.Unmarshal(data, &out)
	}
	return out
}

func stringsToJSON(values []string) datatypes.JSON {
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

func (p *ParentProfile) GetServiceCategories() []string  { return jsonToStrings(p.ServiceCategories) }
func (p *ParentProfile) GetFinancingType() []string      { return jsonToStrings(p.FinancingType) }
func (p *ParentProfile) GetPreferredLanguages() []string { return jsonToStrings(p.PreferredLanguages) }
func (p *ParentProfile) GetDesiredDays() []string        { return jsonToStrings(p.DesiredDays) }

func (p *ParentProfile) SetServiceCategories(v []string)  { p.ServiceCategories = stringsToJSON(v) }
func (p *ParentProfile) SetFinancingType(v []string)      { p.FinancingType = stringsToJSON(v) }
func (p *ParentProfile) SetPreferredLanguages(v []string) { p.PreferredLanguages = stringsToJSON(v) }
func (p *ParentProfile) SetDesiredDays(v []string)        { p.DesiredDays = stringsToJSON(v) }

func (d *DoulaProfile) GetPaymentPreferences() []string { return jsonToStrings(d.PaymentPreferences) }
func (d *DoulaProfile) GetServiceCategories() []string  { return jsonToStrings(d.ServiceCategories) }
func (d *DoulaProfile) GetSpokenLanguages() []string    { return jsonToStrings(d.SpokenLanguages) }
func (d *DoulaProfile) GetCertifications() []string     { return jsonToStrings(d.Certifications) }
func (d *DoulaProfile) GetCertificationDocs() []string  { return jsonToStrings(d.CertificationDocs) }

func (d *DoulaProfile) SetPaymentPreferences(v []string) { d.PaymentPreferences = stringsToJSON(v) }
func (d *DoulaProfile) SetServiceCategories(v []string)  { d.ServiceCategories = stringsToJSON(v) }
func (d *DoulaProfile) SetSpokenLanguages(v []string)    { d.SpokenLanguages = stringsToJSON(v) }
func (d *DoulaProfile) SetCertifications(v []string)     { d.Certifications = stringsToJSON(v) }
func (d *DoulaProfile) SetCertificationDocs(v []string)  { d.CertificationDocs = stringsToJSON(v) }

func (d *DoulaProfile) GetReferees() []Referee {
	var out []Referee
	if len(d.Referees) > 0 {
		_ = json.Unmarshal(d.Referees, &out)
	}
	return out
}

func (d *DoulaProfile) SetReferees(referees []Referee) {
	data, _ := json.Marshal(referees)
	d.Referees = datatypes.JSON(data)
}
